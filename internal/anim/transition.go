package anim

import (
	"time"

	"dotloader.klederson.com/internal/scene"
)

// Transition tweens the scene from one snapshot to another.
type Transition struct {
	Start    time.Time
	Duration time.Duration
	Curve    Curve
	From     scene.Snapshot
	To       scene.Snapshot
}

// Progress returns the eased progress at now and whether the transition has
// finished. A zero duration finishes immediately.
func (tr *Transition) Progress(now time.Time) (float64, bool) {
	if tr.Duration <= 0 {
		return 1, true
	}
	elapsed := now.Sub(tr.Start)
	if elapsed <= 0 {
		return 0, false
	}
	if elapsed >= tr.Duration {
		return 1, true
	}

	t := float64(elapsed) / float64(tr.Duration)
	if tr.Curve == nil {
		return Linear.Ease(t), false
	}
	return tr.Curve.Ease(t), false
}

// At returns the interpolated scene at now. Once finished it returns To
// exactly.
func (tr *Transition) At(now time.Time) scene.Snapshot {
	p, done := tr.Progress(now)
	if done {
		return tr.To.Clone()
	}
	return tr.From.Lerp(tr.To, p)
}

// Done reports whether the transition has finished at now.
func (tr *Transition) Done(now time.Time) bool {
	_, done := tr.Progress(now)
	return done
}
