package loader

import "time"

// Start arms the tick schedule used by AdvanceTo. Both timers first fire one
// period after start.
func (l *Loader) Start(start time.Time) {
	l.nextRotation = start.Add(l.cfg.RotationTick)
	l.nextAnimation = start.Add(l.cfg.AnimationTick)
	l.log.Debug().Time("start", start).Msg("schedule armed")
}

// AdvanceTo fires every rotation and animation tick due at or before now, in
// time order. When both timers are due at the same instant the animation tick
// fires first. Hosts with real timers call the tick methods directly instead.
// It returns the number of ticks fired.
func (l *Loader) AdvanceTo(now time.Time) int {
	if l.nextRotation.IsZero() {
		return 0
	}

	fired := 0
	for {
		rotDue := !l.nextRotation.After(now)
		animDue := !l.nextAnimation.After(now)

		switch {
		case animDue && !l.nextAnimation.After(l.nextRotation):
			at := l.nextAnimation
			l.nextAnimation = at.Add(l.cfg.AnimationTick)
			l.AnimationTick(at)
		case rotDue:
			at := l.nextRotation
			l.nextRotation = at.Add(l.cfg.RotationTick)
			l.RotationTick(at)
		default:
			return fired
		}
		fired++
	}
}
