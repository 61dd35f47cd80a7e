package ui

import (
	"fmt"
	"strings"

	"dotloader.klederson.com/internal/loader"
	"dotloader.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
)

const dialHeight = 7

// RenderInspector renders the scene inspector: a rotation dial followed by
// one entry per group with its children. The header stays fixed; only the
// group entries scroll, keeping the cursor group visible.
func RenderInspector(snap scene.Snapshot, stats loader.Stats, width, height, cursor int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("SCENE [%d]", len(snap.Groups)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	dial := RenderDial(min(innerW, 17), dialHeight, stats.Heading, phaseColor(stats.Phase))
	heading := StyleLabel.Render("  heading ") + StyleValue.Render(fmt.Sprintf("%.0fdeg", stats.Heading))

	headerLines := []string{title, separator}
	if dial != "" {
		headerLines = append(headerLines, strings.Split(dial, "\n")...)
	}
	help := StyleHelp.Render(truncRaw(" j/k select  s scatter  g gather", innerW))
	headerLines = append(headerLines, heading, help, separator)
	headerCount := len(headerLines)

	// Total inner height (excluding border top+bottom)
	innerH := height - 2
	if innerH < headerCount+1 {
		innerH = headerCount + 1
	}
	space := innerH - headerCount

	var lines []string
	if len(snap.Groups) == 0 {
		lines = append(lines, StyleHelp.Render(" No groups"))
	} else {
		perGroup := snap.ChildCount + 2 // group line + children + blank
		maxVisible := max(space/perGroup, 1)

		viewStart := 0
		if cursor >= maxVisible {
			viewStart = cursor - maxVisible + 1
		}

		for g := viewStart; g < len(snap.Groups) && len(lines) < space; g++ {
			entry := renderGroupEntry(g, snap.Groups[g], snap.ChildrenOf(g), innerW, g == cursor)
			for _, l := range entry {
				if len(lines) >= space {
					break
				}
				lines = append(lines, l)
			}
		}
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	all := append(headerLines, lines...)
	if len(all) > innerH {
		all = all[:innerH]
	}

	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; it won't truncate overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderGroupEntry(g int, grp scene.Dot, children []scene.Dot, maxW int, isCursor bool) []string {
	marker := "  "
	if isCursor {
		marker = "> "
	}

	lines := make([]string, 0, len(children)+2)
	head := truncRaw(fmt.Sprintf("%sG%d %s", marker, g+1, grp), maxW-2)
	lines = append(lines, swatch(grp.Color)+" "+styleEntry(isCursor, true).Render(head))
	for _, c := range children {
		raw := truncRaw(fmt.Sprintf("     %s", c), maxW-2)
		lines = append(lines, swatch(c.Color)+" "+styleEntry(isCursor, false).Render(raw))
	}
	return append(lines, "")
}

func styleEntry(isCursor, isGroup bool) lipgloss.Style {
	s := StyleLabel
	if isGroup {
		s = StyleValue
	}
	if isCursor {
		s = s.Inherit(StyleCursorLine)
	}
	return s
}

func swatch(c scene.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●")
}

func phaseColor(p loader.Phase) lipgloss.Color {
	if p == loader.PhaseScattered {
		return ColorScattered
	}
	return ColorAccent
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
