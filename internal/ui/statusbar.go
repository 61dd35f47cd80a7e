package ui

import (
	"fmt"
	"strings"

	"dotloader.klederson.com/internal/loader"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, paused bool, stats loader.Stats, fps float64) string {
	var status string
	switch {
	case paused:
		status = StyleStatusPaused.Render("[PAUSED]")
	case stats.Phase == loader.PhaseScattered:
		status = StyleStatusScattered.Render("[SCATTERED]")
	default:
		status = StyleStatusRunning.Render("[REASSEMBLED]")
	}

	motion := "settled"
	if stats.Transitioning {
		motion = "moving"
	}

	info := fmt.Sprintf(" Rotation: %3ddeg  Ticks: %d/%d  Scene: %s  FPS: %.0f",
		int(stats.Heading), stats.RotationTicks, stats.AnimationTicks, motion, fps)

	content := status + StyleStatusBar.Foreground(ColorText).Render(info)

	gap := width - 2 - lipgloss.Width(content) // 2 for bar padding
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
