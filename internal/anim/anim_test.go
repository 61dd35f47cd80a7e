package anim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"dotloader.klederson.com/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":      Linear,
		"smooth":      Smooth,
		"smoothShort": SmoothShort,
		"ease":        Ease,
		"spring":      Spring(60, 6, 0.5, 350*time.Millisecond),
	}

	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, c.Ease(0))
			assert.Equal(t, 1.0, c.Ease(1))
			assert.Equal(t, 0.0, c.Ease(-0.5))
			assert.Equal(t, 1.0, c.Ease(1.5))
		})
	}
}

func TestSmooth_Overshoots(t *testing.T) {
	peak := 0.0
	for i := 1; i < 100; i++ {
		peak = math.Max(peak, Smooth.Ease(float64(i)/100))
	}
	assert.Greater(t, peak, 1.05, "smooth must bounce past the target")
}

func TestEase_Monotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Ease.Ease(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev-1e-9)
		assert.LessOrEqual(t, v, 1+1e-9)
		prev = v
	}
}

func TestBezier_SolvesX(t *testing.T) {
	b := CubicBezier(0.11, 0.16, 0.05, 1.53)
	for i := 1; i < 20; i++ {
		x := float64(i) / 20
		s := b.solve(x)
		assert.InDelta(t, x, bezier(b.X1, b.X2, s), 1e-6)
	}
}

func TestBezier_LinearControlPoints(t *testing.T) {
	b := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		assert.InDelta(t, x, b.Ease(x), 1e-6)
	}
}

func TestSpring_Settles(t *testing.T) {
	c := Spring(60, 6, 0.5, time.Second)
	assert.InDelta(t, 1, c.Ease(0.95), 0.05)
	assert.Greater(t, c.Ease(0.5), 0.5)
}

func TestSpring_DegenerateInputs(t *testing.T) {
	c := Spring(0, 6, 0.5, 0)
	assert.Equal(t, 1.0, c.Ease(0.5))
}

func newSnapshots(t *testing.T) (scene.Snapshot, scene.Snapshot) {
	t.Helper()
	s := scene.NewStore(6, 3, scene.Ranges{ChildOffset: 30, GroupOffset: 20, GroupScale: 2.5},
		scene.DefaultPalette, rand.New(rand.NewSource(1)))
	from := s.Snapshot()
	s.RandomizeAll()
	return from, s.Snapshot()
}

func TestTransition_At(t *testing.T) {
	from, to := newSnapshots(t)
	start := time.Unix(100, 0)
	tr := &Transition{Start: start, Duration: time.Second, Curve: Linear, From: from, To: to}

	assert.Equal(t, from, tr.At(start))
	assert.False(t, tr.Done(start))

	mid := tr.At(start.Add(500 * time.Millisecond))
	assert.InDelta(t, 1.75, mid.Groups[0].Scale, 1e-9)

	end := tr.At(start.Add(time.Second))
	assert.Equal(t, to, end)
	assert.True(t, tr.Done(start.Add(time.Second)))

	// Before the start nothing has moved yet.
	assert.Equal(t, from, tr.At(start.Add(-time.Second)))
}

func TestTransition_OvershootMidway(t *testing.T) {
	from, to := newSnapshots(t)
	start := time.Unix(0, 0)
	tr := &Transition{Start: start, Duration: 1600 * time.Millisecond, Curve: Smooth, From: from, To: to}

	peak := 0.0
	for ms := 0; ms < 1600; ms += 20 {
		peak = math.Max(peak, tr.At(start.Add(time.Duration(ms)*time.Millisecond)).Groups[0].Scale)
	}
	assert.Greater(t, peak, 2.5)
	assert.Equal(t, 2.5, tr.At(start.Add(1600*time.Millisecond)).Groups[0].Scale)
}

func TestTransition_ZeroDuration(t *testing.T) {
	from, to := newSnapshots(t)
	tr := &Transition{Start: time.Unix(0, 0), From: from, To: to}
	assert.Equal(t, to, tr.At(time.Unix(0, 0)))
}

func TestTransition_NilCurveIsLinear(t *testing.T) {
	from, to := newSnapshots(t)
	start := time.Unix(0, 0)
	tr := &Transition{Start: start, Duration: time.Second, From: from, To: to}
	p, done := tr.Progress(start.Add(250 * time.Millisecond))
	require.False(t, done)
	assert.InDelta(t, 0.25, p, 1e-9)
}

func TestRotation_Accumulates(t *testing.T) {
	r := NewRotation(100 * time.Millisecond)
	now := time.Unix(0, 0)

	const n = 40
	for i := 0; i < n; i++ {
		now = now.Add(100 * time.Millisecond)
		r.Advance(23, now)
	}

	assert.Equal(t, float64(n*23), r.Target())
	assert.Equal(t, n, r.Ticks())
	assert.Equal(t, float64(n*23), r.Degrees(now.Add(100*time.Millisecond)))
	assert.InDelta(t, math.Mod(n*23, 360), r.Heading(now.Add(time.Second)), 1e-9)
}

func TestRotation_LinearTween(t *testing.T) {
	r := NewRotation(100 * time.Millisecond)
	start := time.Unix(0, 0)

	r.Advance(20, start)
	assert.Equal(t, 0.0, r.Degrees(start))
	assert.InDelta(t, 10, r.Degrees(start.Add(50*time.Millisecond)), 1e-9)
	assert.Equal(t, 20.0, r.Degrees(start.Add(100*time.Millisecond)))

	// Retargeting mid-tween continues from the displayed angle.
	r.Advance(20, start.Add(50*time.Millisecond))
	assert.InDelta(t, 10, r.Degrees(start.Add(50*time.Millisecond)), 1e-9)
	assert.InDelta(t, 25, r.Degrees(start.Add(100*time.Millisecond)), 1e-9)
	assert.Equal(t, 40.0, r.Target())
}

func TestRotation_NoTween(t *testing.T) {
	r := NewRotation(0)
	r.Advance(3, time.Unix(0, 0))
	assert.Equal(t, 3.0, r.Degrees(time.Unix(0, 0)))
}
