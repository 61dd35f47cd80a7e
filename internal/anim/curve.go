package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Curve maps linear progress t in [0, 1] to eased progress. Results may
// leave [0, 1] for curves that overshoot, but Ease(0) == 0 and Ease(1) == 1.
type Curve interface {
	Ease(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Ease(t float64) float64 { return f(t) }

// Linear is the identity curve.
var Linear Curve = CurveFunc(func(t float64) float64 { return clamp01(t) })

// Named timing curves.
var (
	// Smooth has pronounced overshoot: it bounces past the target and settles back.
	Smooth = CubicBezier(0.11, 0.16, 0.05, 1.53)
	// SmoothShort is the milder anticipating variant, meant for short durations.
	SmoothShort = CubicBezier(0.5, -0.5, 0.4, 1.5)
	// Ease is the standard ease timing curve.
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
)

// Bezier is a cubic timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1).
// X1 and X2 are expected in [0, 1] so that x(s) is monotonic.
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// CubicBezier builds a timing curve from its two control points.
func CubicBezier(x1, y1, x2, y2 float64) Bezier {
	return Bezier{X1: clamp01(x1), Y1: y1, X2: clamp01(x2), Y2: y2}
}

// Ease solves x(s) = t for the curve parameter s and returns y(s).
func (b Bezier) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return bezier(b.Y1, b.Y2, b.solve(t))
}

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 40
)

func (b Bezier) solve(x float64) float64 {
	// Newton first; fast when the slope is healthy.
	s := x
	for i := 0; i < newtonIterations; i++ {
		err := bezier(b.X1, b.X2, s) - x
		if math.Abs(err) < newtonEpsilon {
			return s
		}
		d := bezierSlope(b.X1, b.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= err / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < bisectIterations; i++ {
		v := bezier(b.X1, b.X2, s)
		if math.Abs(v-x) < newtonEpsilon {
			return s
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

// bezier evaluates one axis of the curve with endpoints 0 and 1.
func bezier(p1, p2, s float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(p1, p2, s float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// SpringCurve is a damped spring response from 0 toward 1, sampled ahead of
// time so it can be evaluated at any progress.
type SpringCurve struct {
	samples []float64
}

// Spring simulates a harmonica spring for duration at fps and records the
// trajectory. The final sample is pinned to 1.
func Spring(fps int, frequency, damping float64, duration time.Duration) SpringCurve {
	if fps <= 0 {
		fps = 60
	}
	steps := int(math.Ceil(duration.Seconds() * float64(fps)))
	if steps < 1 {
		steps = 1
	}

	spring := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	samples := make([]float64, steps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= steps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[steps] = 1
	return SpringCurve{samples: samples}
}

// Ease interpolates between the recorded samples.
func (c SpringCurve) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 || len(c.samples) < 2 {
		return 1
	}
	f := t * float64(len(c.samples)-1)
	i := int(f)
	frac := f - float64(i)
	return c.samples[i] + (c.samples[i+1]-c.samples[i])*frac
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
