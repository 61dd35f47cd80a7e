package anim

import (
	"time"

	"dotloader.klederson.com/internal/layout"
)

// Rotation accumulates the spin of the whole composition.
// The target grows without bound; the displayed angle chases it linearly.
type Rotation struct {
	target   float64 // Accumulated degrees
	from     float64 // Displayed degrees when the current tween began
	start    time.Time
	duration time.Duration
	ticks    int
}

// NewRotation creates a rotation at 0 degrees whose per-step tweens last
// tween.
func NewRotation(tween time.Duration) *Rotation {
	return &Rotation{duration: tween}
}

// Advance adds delta degrees to the target and starts a new linear tween
// from wherever the display is at now.
func (r *Rotation) Advance(delta float64, now time.Time) {
	r.from = r.Degrees(now)
	r.target += delta
	r.start = now
	r.ticks++
}

// Target returns the accumulated rotation in degrees.
func (r *Rotation) Target() float64 {
	return r.target
}

// Ticks returns how many times Advance has been called.
func (r *Rotation) Ticks() int {
	return r.ticks
}

// Degrees returns the displayed rotation at now.
func (r *Rotation) Degrees(now time.Time) float64 {
	if r.duration <= 0 || r.start.IsZero() {
		return r.target
	}
	elapsed := now.Sub(r.start)
	if elapsed >= r.duration {
		return r.target
	}
	if elapsed <= 0 {
		return r.from
	}
	t := float64(elapsed) / float64(r.duration)
	return r.from + (r.target-r.from)*t
}

// Heading returns the displayed rotation wrapped to [0, 360).
func (r *Rotation) Heading(now time.Time) float64 {
	return layout.NormalizeDegrees(r.Degrees(now))
}
