package bubbletea

// TruncateLeft exports truncateLeft for testing.
func TruncateLeft(s string, width int) string {
	return truncateLeft(s, width)
}

// ShowingHelp reports whether the help overlay is visible.
func ShowingHelp(m Model) bool {
	return m.showHelp
}
