package layout

import "math"

// Place returns count points evenly spaced on the circle inscribed in bounds,
// radius min(w, h)/3. The first point sits at 12 o'clock and the rest follow
// clockwise on screen. A non-positive count yields no points.
func Place(count int, bounds Rect) []Vec2 {
	if count <= 0 {
		return nil
	}

	radius := math.Min(bounds.W, bounds.H) / 3
	step := 360 / float64(count)
	center := bounds.Center()
	start := Vec2{X: 0, Y: -radius}

	points := make([]Vec2, count)
	for i := range points {
		points[i] = Rotate(start, step*float64(i)).Add(center)
	}
	return points
}
