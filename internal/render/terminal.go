package render

import (
	"fmt"
	"image/color"
	"strings"

	"dotloader.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
)

const (
	glyphUpper = "▀"
	glyphLower = "▄"
	glyphFull  = "█"
)

var styleLegendLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))

// cell is one terminal character: two stacked pixels.
type cell struct {
	glyph  string
	fg, bg color.RGBA
	hasBG  bool
}

// styleCache reuses lipgloss styles across cells with the same colors.
type styleCache map[cell]lipgloss.Style

func (c styleCache) get(k cell) lipgloss.Style {
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(k.fg)))
	if k.hasBG {
		s = s.Background(lipgloss.Color(hex(k.bg)))
	}
	c[k] = s
	return s
}

// Terminal renders the frame as width×height character cells. Every cell
// carries two vertically stacked pixels, which keeps discs round on
// terminals whose cells are twice as tall as they are wide.
func Terminal(f Frame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	img := Rasterize(f, width, height*2)
	styles := make(styleCache)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		var run strings.Builder
		var cur cell
		inRun := false

		flush := func() {
			if !inRun {
				return
			}
			if cur.glyph == " " {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styles.get(cur).Render(run.String()))
			}
			run.Reset()
			inRun = false
		}

		for col := 0; col < width; col++ {
			c := cellAt(img.RGBAAt(col, row*2), img.RGBAAt(col, row*2+1))
			if inRun && c != cur {
				flush()
			}
			cur = c
			inRun = true
			run.WriteString(c.glyph)
		}
		flush()

		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellAt(top, bottom color.RGBA) cell {
	switch {
	case top.A == 0 && bottom.A == 0:
		return cell{glyph: " "}
	case bottom.A == 0:
		return cell{glyph: glyphUpper, fg: top}
	case top.A == 0:
		return cell{glyph: glyphLower, fg: bottom}
	case top == bottom:
		return cell{glyph: glyphFull, fg: top}
	default:
		return cell{glyph: glyphUpper, fg: top, bg: bottom, hasBG: true}
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Legend produces a centered line of palette swatches.
func Legend(width int, palette scene.Palette) string {
	parts := make([]string, 0, len(palette))
	for _, c := range palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●")
		parts = append(parts, swatch+" "+styleLegendLabel.Render(c.Name))
	}
	legend := strings.Join(parts, "  ")

	if lipgloss.Width(legend) > width {
		// Too narrow for names; swatches only.
		parts = parts[:0]
		for _, c := range palette {
			parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●"))
		}
		legend = strings.Join(parts, " ")
	}

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
