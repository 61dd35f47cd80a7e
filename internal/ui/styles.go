package ui

import "github.com/charmbracelet/lipgloss"

// Neutral chrome so the dots carry all the color.
var (
	ColorBright    = lipgloss.Color("#F2F2F2")
	ColorText      = lipgloss.Color("#BDBDBD")
	ColorMuted     = lipgloss.Color("#7A7A7A")
	ColorDim       = lipgloss.Color("#3A3A3A")
	ColorBarBG     = lipgloss.Color("#1C1C1E")
	ColorBorder    = lipgloss.Color("#48484A")
	ColorAccent    = lipgloss.Color("#0A84FF")
	ColorScattered = lipgloss.Color("#FF375F")
	ColorPaused    = lipgloss.Color("#FFD60A")
	ColorCursorBG  = lipgloss.Color("#2C2C2E")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBG).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBG).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StyleStatusScattered = lipgloss.NewStyle().
				Foreground(ColorScattered).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorPaused).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleCursorLine = lipgloss.NewStyle().
			Background(ColorCursorBG)

	StyleDialRing = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleDialMark = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)
