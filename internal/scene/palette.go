package scene

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

// Color is a named opaque RGB color.
type Color struct {
	Name    string
	R, G, B uint8
}

// Named colors. Values follow the usual system palette on dark backgrounds.
var (
	Pink   = Color{"pink", 0xFF, 0x37, 0x5F}
	Purple = Color{"purple", 0xBF, 0x5A, 0xF2}
	Mint   = Color{"mint", 0x66, 0xD4, 0xCF}
	Blue   = Color{"blue", 0x0A, 0x84, 0xFF}
	Yellow = Color{"yellow", 0xFF, 0xD6, 0x0A}
	Red    = Color{"red", 0xFF, 0x45, 0x3A}
	Teal   = Color{"teal", 0x40, 0xC8, 0xE0}
	Cyan   = Color{"cyan", 0x64, 0xD2, 0xFF}

	// Neutral is the resting color of child dots.
	Neutral = Color{"primary", 0xF2, 0xF2, 0xF2}
)

// Palette is an ordered set of colors to draw random picks from.
type Palette []Color

// DefaultPalette is the eight-color set used for scatter and group colors.
var DefaultPalette = Palette{Pink, Purple, Mint, Blue, Yellow, Red, Teal, Cyan}

// Random returns a uniform pick from the palette, or Blue when it is empty.
func (p Palette) Random(rng *rand.Rand) Color {
	if len(p) == 0 {
		return Blue
	}
	return p[rng.Intn(len(p))]
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA converts to an opaque image color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Lerp blends toward o. Channels are clamped, so overshooting curves saturate
// instead of wrapping. The result keeps o's name once t reaches 1.
func (c Color) Lerp(o Color, t float64) Color {
	name := c.Name
	if t >= 1 {
		name = o.Name
	}
	return Color{name, lerpChannel(c.R, o.R, t), lerpChannel(c.G, o.G, t), lerpChannel(c.B, o.B, t)}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
