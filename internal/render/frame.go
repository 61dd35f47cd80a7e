package render

import (
	"image"
	"image/color"
	"math"

	"dotloader.klederson.com/internal/layout"
	"dotloader.klederson.com/internal/scene"
)

// Circle is one filled disc in canvas points.
type Circle struct {
	ID     int
	Center layout.Vec2
	Radius float64
	Color  scene.Color
}

// Frame is everything needed to draw one moment of the animation: a square
// canvas and the discs on it in paint order.
type Frame struct {
	Size     float64 // Canvas edge length in points
	Rotation float64 // Degrees already applied to Circles, kept for display
	Circles  []Circle
}

// Rasterize paints the frame into a w×h image, scaling the canvas uniformly
// and centering it. Pixels no disc covers stay fully transparent.
func Rasterize(f Frame, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 || f.Size <= 0 {
		return img
	}

	scale := math.Min(float64(w), float64(h)) / f.Size
	ox := (float64(w) - f.Size*scale) / 2
	oy := (float64(h) - f.Size*scale) / 2

	for _, c := range f.Circles {
		if c.Radius <= 0 {
			continue
		}
		cx := ox + c.Center.X*scale
		cy := oy + c.Center.Y*scale
		r := c.Radius * scale
		fill := c.Color.RGBA()

		x0 := max(int(math.Floor(cx-r)), 0)
		x1 := min(int(math.Ceil(cx+r)), w-1)
		y0 := max(int(math.Floor(cy-r)), 0)
		y1 := min(int(math.Ceil(cy+r)), h-1)

		for y := y0; y <= y1; y++ {
			dy := float64(y) + 0.5 - cy
			for x := x0; x <= x1; x++ {
				dx := float64(x) + 0.5 - cx
				if dx*dx+dy*dy <= r*r {
					img.SetRGBA(x, y, fill)
				}
			}
		}
	}
	return img
}

// Flatten composites img over an opaque background.
func Flatten(img *image.RGBA, bg color.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A == 0 {
				out.SetRGBA(x, y, bg)
				continue
			}
			out.SetRGBA(x, y, px)
		}
	}
	return out
}
