package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/controller"
)

const uiDivider = "──────────────────────────────────────────────────────"

const emptyValue = "—"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func renderNotice(n *controller.Notice) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case controller.NoticeError:
		return errorStyle.Render(n.Text)
	case controller.NoticeSuccess:
		return successStyle.Render(n.Text)
	default:
		return infoStyle.Render(n.Text)
	}
}

// formatValue renders a ranking value or total with one decimal.
func formatValue(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func clampIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(idx, n-1))
}
