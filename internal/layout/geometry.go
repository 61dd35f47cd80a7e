package layout

import "math"

// Vec2 is a point or offset in canvas points. Y grows downward.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Len() float64    { return math.Hypot(v.X, v.Y) }

// Lerp moves from v toward o by t. t outside [0, 1] extrapolates.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the box.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Inset shrinks the box by pad on every side, never below zero size.
func (r Rect) Inset(pad float64) Rect {
	w := math.Max(r.W-2*pad, 0)
	h := math.Max(r.H-2*pad, 0)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Rotate turns v by deg degrees about the origin. In screen coordinates a
// positive angle turns clockwise.
func Rotate(v Vec2, deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround turns p by deg degrees about pivot.
func RotateAround(p, pivot Vec2, deg float64) Vec2 {
	return Rotate(p.Sub(pivot), deg).Add(pivot)
}

// AngleDegrees returns the bearing of p seen from center.
// Returns degrees in [0, 360), where 0=north (12 o'clock), increasing clockwise.
func AngleDegrees(center, p Vec2) float64 {
	d := p.Sub(center)
	return NormalizeDegrees(math.Atan2(d.X, -d.Y) * 180 / math.Pi)
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
