package ui

import (
	"fmt"
	"strings"

	"dotloader.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, paused, inspector bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	pauseLabel := "ause"
	if paused {
		pauseLabel = "lay"
	}
	keys := []struct{ key, label string }{
		{"P", pauseLabel},
		{"R", "eset"},
		{"I", "nspect"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusRunning.Render("RUNNING")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}
	view := StyleMenuLabel.Render("Inspector: off")
	if inspector {
		view = StyleMenuLabel.Render("Inspector: on")
	}

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + view + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right) // 2 for bar padding
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
