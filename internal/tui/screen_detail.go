package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

func (m rootModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		return m.dispatch(controller.Back())
	case key.Matches(msg, keys.up):
		return m.dispatch(controller.MoveCursor(-1))
	case key.Matches(msg, keys.down):
		return m.dispatch(controller.MoveCursor(1))
	case key.Matches(msg, keys.left):
		return m.dispatch(controller.AdjustScore(-1))
	case key.Matches(msg, keys.right):
		return m.dispatch(controller.AdjustScore(1))
	case key.Matches(msg, keys.submit):
		return m.dispatch(controller.SubmitRating())
	case key.Matches(msg, keys.refresh):
		return m.dispatch(controller.Refresh())
	case key.Matches(msg, keys.copy):
		if st.Detail == nil {
			return m, nil
		}
		code, copyText := st.Detail.Item.Code, m.copyText
		return m, func() tea.Msg {
			return copiedMsg{err: copyText(code)}
		}
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return m.dispatch(controller.SetScore(st.Editor.Cursor(), int(s[0]-'0')))
	}
	return m, nil
}

func renderDetail(st controller.State, now time.Time) string {
	d := st.Detail
	if d == nil {
		body := mutedStyle.Render("Loading...")
		if st.InFlight == 0 {
			body = app.MsgNoData
		}
		return renderPage("ITEM", body, "esc back  ctrl+r refresh")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Item.Code))
	if d.Item.Name != "" {
		b.WriteString("  ")
		b.WriteString(d.Item.Name)
	}
	b.WriteString("\n\n")

	b.WriteString("My rating")
	if d.MyRating != nil && !d.MyRating.CreatedAt.IsZero() {
		b.WriteString(mutedStyle.Render(" · rated " + humanize.RelTime(d.MyRating.CreatedAt, now, "ago", "from now")))
	}
	b.WriteString("\n")

	for _, f := range models.ScoreFieldsOrdered {
		v := st.Editor.Value(f)
		line := fmt.Sprintf("%s%s %s %2d/%d", cursorMark(f == st.Editor.Cursor()), f, scoreBar(v, f.Max()), v, f.Max())
		if f == st.Editor.Cursor() {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  Total %d\n\n", st.Editor.Scores().Total())

	b.WriteString("Ratings\n")
	for _, pr := range d.RatingsByProfile {
		b.WriteString(profileRatingLine(pr))
		b.WriteString("\n")
	}
	if !d.CanViewOthers {
		b.WriteString(mutedStyle.Render(app.MsgRateToSeeOthers))
		b.WriteString("\n")
	}

	return renderPage(
		"ITEM",
		b.String(),
		"↑/↓ field  ←/→ adjust  0-9 set  enter save  c copy code  ctrl+r refresh  esc back",
	)
}

func scoreBar(v, maxValue int) string {
	return strings.Repeat("■", v) + strings.Repeat("□", max(0, maxValue-v))
}

func profileRatingLine(pr models.ProfileRating) string {
	if pr.Rating == nil {
		return fmt.Sprintf("P%s | %s", pr.Profile, emptyValue)
	}
	r := pr.Rating
	return fmt.Sprintf("P%s | A %d · B %d · C %d · D %d · N %d = %d", pr.Profile, r.A, r.B, r.C, r.D, r.N, r.Total)
}
