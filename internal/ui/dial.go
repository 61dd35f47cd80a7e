package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderDial renders a small dial with a hand pointing at heading.
// heading: degrees, 0=12 o'clock, increasing clockwise.
func RenderDial(width, height int, heading float64, handColor lipgloss.Color) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]rune, height)
	isHand := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		isHand[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := fcx - 1.0 // horizontal radius in columns
	ry := fcy - 1.0 // vertical radius in rows
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	// Ring
	steps := 64
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		setGrid(grid, width, height, col, row, '·')
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))
	setGrid(grid, width, height, cx, cy-int(math.Round(ry)), '0')

	// Hand from center toward heading
	rad := heading * math.Pi / 180
	sinA, cosA := math.Sincos(rad)
	handSteps := int(math.Max(rx, ry))
	tipCol, tipRow := cx, cy
	for s := 1; s < handSteps; s++ {
		t := float64(s) / float64(handSteps) * 0.8
		col := int(math.Round(fcx + t*rx*sinA))
		row := int(math.Round(fcy - t*ry*cosA))
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = shaftChar(rad)
			isHand[row][col] = true
			tipCol, tipRow = col, row
		}
	}
	if tipCol != cx || tipRow != cy {
		grid[tipRow][tipCol] = arrowTip(rad)
	}
	setGrid(grid, width, height, cx, cy, '+')

	handSty := lipgloss.NewStyle().Foreground(handColor).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case ch == '+' || ch == '0':
				sb.WriteString(StyleDialMark.Render(string(ch)))
			case isHand[row][col]:
				sb.WriteString(handSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(StyleDialRing.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func setGrid(grid [][]rune, w, h, col, row int, ch rune) {
	if col >= 0 && col < w && row >= 0 && row < h {
		grid[row][col] = ch
	}
}

func sector(a float64) int {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return int(math.Round(a/(math.Pi/4))) % 8
}

// shaftChar returns the line character for a given angle direction.
func shaftChar(a float64) rune {
	switch sector(a) {
	case 0, 4: // N, S
		return '|'
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '/'
	default: // SE, NW
		return '\\'
	}
}

// arrowTip returns the arrowhead character for a given angle.
func arrowTip(a float64) rune {
	return []rune{'^', '/', '>', '\\', 'v', '/', '<', '\\'}[sector(a)]
}
