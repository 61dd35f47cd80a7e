package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the loader panel and the optional inspector
// horizontally, with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, loaderPanel, inspector, statusBar string) string {
	middle := loaderPanel
	if inspector != "" {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, loaderPanel, inspector)
	}
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
