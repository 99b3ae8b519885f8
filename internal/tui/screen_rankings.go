package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m rootModel) updateRankings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := flattenRows(m.ctrl.State().Rankings)

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.rankIdx = 0
		return m.dispatch(controller.Back())
	case key.Matches(msg, keys.mode):
		m.rankIdx = 0
		return m.dispatch(controller.ToggleRankingMode())
	case key.Matches(msg, keys.refresh):
		return m.dispatch(controller.Refresh())
	case key.Matches(msg, keys.up):
		m.rankIdx = clampIndex(m.rankIdx-1, len(rows))
	case key.Matches(msg, keys.down):
		m.rankIdx = clampIndex(m.rankIdx+1, len(rows))
	case key.Matches(msg, keys.enter):
		if len(rows) > 0 {
			return m.dispatch(controller.OpenRankingEntry(rows[clampIndex(m.rankIdx, len(rows))].ItemID))
		}
	}
	return m, nil
}

// flattenRows lists the rows of every section in display order, which is
// the order the cursor walks.
func flattenRows(sections []controller.RankingSection) []controller.RankingRow {
	var rows []controller.RankingRow
	for _, s := range sections {
		rows = append(rows, s.Rows...)
	}
	return rows
}

func renderRankings(st controller.State, rankIdx int) string {
	var b strings.Builder

	mine, global := "mine", "global"
	if st.RankingsMode == models.RankingModeGlobal {
		global = selectedStyle.Render("[global]")
	} else {
		mine = selectedStyle.Render("[mine]")
	}
	fmt.Fprintf(&b, "Mode: %s / %s\n", mine, global)

	if !st.RankingsLoaded {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Loading..."))
		return renderPage("RANKINGS", b.String(), "m/tab mode  esc back")
	}

	pos := 0
	for _, s := range st.Rankings {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n")
		if s.Empty() {
			b.WriteString(mutedStyle.Render(app.MsgNoData))
			b.WriteString("\n")
			continue
		}
		for _, row := range s.Rows {
			line := fmt.Sprintf("%s%2d. %-16s %6s", cursorMark(pos == rankIdx), row.Rank, fitText(row.Code, 16), formatValue(row.Value))
			if pos == rankIdx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			pos++
		}
	}

	return renderPage(
		"RANKINGS",
		b.String(),
		"↑/↓ move  enter open  m/tab mode  ctrl+r refresh  esc back",
	)
}
