package render

import (
	"image/color"
	"strings"
	"testing"

	"dotloader.klederson.com/internal/layout"
	"dotloader.klederson.com/internal/scene"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterize_CenteredDisc(t *testing.T) {
	f := Frame{Size: 100, Circles: []Circle{
		{Center: layout.Vec2{X: 50, Y: 50}, Radius: 10, Color: scene.Red},
	}}
	img := Rasterize(f, 100, 100)

	assert.Equal(t, scene.Red.RGBA(), img.RGBAAt(50, 50))
	assert.Equal(t, scene.Red.RGBA(), img.RGBAAt(58, 50))
	assert.Equal(t, uint8(0), img.RGBAAt(62, 50).A)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
}

func TestRasterize_LaterCirclesPaintOver(t *testing.T) {
	f := Frame{Size: 100, Circles: []Circle{
		{Center: layout.Vec2{X: 50, Y: 50}, Radius: 20, Color: scene.Blue},
		{Center: layout.Vec2{X: 50, Y: 50}, Radius: 5, Color: scene.Yellow},
	}}
	img := Rasterize(f, 100, 100)

	assert.Equal(t, scene.Yellow.RGBA(), img.RGBAAt(50, 50))
	assert.Equal(t, scene.Blue.RGBA(), img.RGBAAt(65, 50))
}

func TestRasterize_ScalesAndCenters(t *testing.T) {
	f := Frame{Size: 10, Circles: []Circle{
		{Center: layout.Vec2{X: 5, Y: 5}, Radius: 1, Color: scene.Mint},
	}}
	// 200x100: scale 10, canvas centered horizontally at x=50..150.
	img := Rasterize(f, 200, 100)
	assert.Equal(t, scene.Mint.RGBA(), img.RGBAAt(100, 50))
	assert.Equal(t, uint8(0), img.RGBAAt(50, 50).A)
}

func TestRasterize_Degenerate(t *testing.T) {
	assert.Equal(t, 0, Rasterize(Frame{Size: 10}, 0, 10).Bounds().Dx())
	img := Rasterize(Frame{}, 4, 4)
	assert.Equal(t, uint8(0), img.RGBAAt(1, 1).A)
}

func TestFlatten(t *testing.T) {
	f := Frame{Size: 10, Circles: []Circle{{Center: layout.Vec2{X: 5, Y: 5}, Radius: 2, Color: scene.Red}}}
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	img := Flatten(Rasterize(f, 10, 10), bg)

	assert.Equal(t, bg, img.RGBAAt(0, 0))
	assert.Equal(t, scene.Red.RGBA(), img.RGBAAt(5, 5))
}

func TestTerminal_Dimensions(t *testing.T) {
	f := Frame{Size: 100, Circles: []Circle{
		{Center: layout.Vec2{X: 50, Y: 50}, Radius: 30, Color: scene.Teal},
	}}
	out := Terminal(f, 40, 20)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Equal(t, 40, lipgloss.Width(l))
	}
	assert.Contains(t, out, glyphFull)
}

func TestTerminal_Empty(t *testing.T) {
	assert.Equal(t, "", Terminal(Frame{Size: 10}, 0, 5))

	out := Terminal(Frame{Size: 10}, 3, 2)
	assert.Equal(t, "   \n   ", out)
}

func TestCellAt(t *testing.T) {
	red := scene.Red.RGBA()
	blue := scene.Blue.RGBA()
	none := color.RGBA{}

	assert.Equal(t, " ", cellAt(none, none).glyph)
	assert.Equal(t, glyphUpper, cellAt(red, none).glyph)
	assert.Equal(t, glyphLower, cellAt(none, red).glyph)
	assert.Equal(t, glyphFull, cellAt(red, red).glyph)

	split := cellAt(red, blue)
	assert.Equal(t, glyphUpper, split.glyph)
	assert.True(t, split.hasBG)
	assert.Equal(t, blue, split.bg)
}

func TestLegend(t *testing.T) {
	wide := Legend(200, scene.DefaultPalette)
	for _, c := range scene.DefaultPalette {
		assert.Contains(t, wide, c.Name)
	}

	narrow := Legend(20, scene.DefaultPalette)
	assert.NotContains(t, narrow, "purple")
	assert.Equal(t, 8, strings.Count(narrow, "●"))
}
