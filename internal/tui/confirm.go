package tui

// confirmModel asks before deleting an item.
type confirmModel struct {
	itemID string
	label  string
}

func (m confirmModel) active() bool {
	return m.itemID != ""
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.label + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
