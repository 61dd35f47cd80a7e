package loader

import (
	"math/rand"
	"time"

	"dotloader.klederson.com/internal/anim"
	"dotloader.klederson.com/internal/config"
	"dotloader.klederson.com/internal/layout"
	"dotloader.klederson.com/internal/render"
	"dotloader.klederson.com/internal/scene"
	"github.com/rs/zerolog"
)

// Phase is the visible state of the animation.
type Phase int

const (
	PhaseReassembled Phase = iota
	PhaseScattered
)

func (p Phase) String() string {
	if p == PhaseScattered {
		return "scattered"
	}
	return "reassembled"
}

// Stats is a read-only summary for status displays.
type Stats struct {
	Phase          Phase
	Heading        float64 // Displayed rotation in [0, 360)
	Accumulated    float64 // Unbounded rotation target
	RotationTicks  int
	AnimationTicks int
	Transitioning  bool
}

// Loader drives the loading indicator: a flag toggled by the slow timer,
// a rotation advanced by the fast timer and the scene transitions between
// scattered and reassembled layouts.
type Loader struct {
	cfg   config.Config
	store *scene.Store
	log   zerolog.Logger

	animating  bool
	rotation   *anim.Rotation
	transition *anim.Transition
	resetCurve anim.Curve
	resetDur   time.Duration

	clock          time.Time // Time of the operation in flight, read by onChange
	animationTicks int

	nextRotation  time.Time
	nextAnimation time.Time

	unsubscribe func()
}

// Option customizes a Loader.
type Option func(*Loader)

// WithLogger sets the logger; the loader tags its lines with module=loader.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = log.With().Str("module", "loader").Logger()
	}
}

// WithRand replaces the random source used for scatter positions and colors.
func WithRand(rng *rand.Rand) Option {
	return func(l *Loader) {
		l.store = newStore(l.cfg, rng)
	}
}

// New creates a loader in the reassembled phase. cfg must be valid.
func New(cfg config.Config, opts ...Option) *Loader {
	l := &Loader{
		cfg:      cfg,
		log:      zerolog.Nop(),
		rotation: anim.NewRotation(cfg.RotationTick),
	}

	for _, opt := range opts {
		opt(l)
	}
	if l.store == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		l.store = newStore(cfg, rand.New(rand.NewSource(seed)))
	}

	switch cfg.ResetCurve {
	case config.CurveSpring:
		l.resetCurve = anim.Spring(config.TargetFPS*2, config.SpringFrequency, config.SpringDamping, config.SpringDuration)
		l.resetDur = config.SpringDuration
	default:
		l.resetCurve = anim.Ease
		l.resetDur = config.EaseDuration
	}

	snap := l.store.Snapshot()
	l.transition = &anim.Transition{From: snap, To: snap}
	l.unsubscribe = l.store.Subscribe(l.onChange)
	return l
}

func newStore(cfg config.Config, rng *rand.Rand) *scene.Store {
	return scene.NewStore(cfg.GroupCount, cfg.ChildCount, scene.Ranges{
		ChildOffset: cfg.ChildOffsetRange,
		GroupOffset: cfg.GroupOffsetRange,
		GroupScale:  cfg.GroupScaleActive,
	}, scene.DefaultPalette, rng)
}

// Close detaches the loader from its store.
func (l *Loader) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

// Store exposes the scene model.
func (l *Loader) Store() *scene.Store {
	return l.store
}

// Config returns the settings the loader was built with.
func (l *Loader) Config() config.Config {
	return l.cfg
}

// Animating reports whether the scene is in (or heading to) the scattered phase.
func (l *Loader) Animating() bool {
	return l.animating
}

// Rotation returns the accumulated rotation in degrees.
func (l *Loader) Rotation() float64 {
	return l.rotation.Target()
}

// AnimationTick handles one firing of the slow timer: it flips the phase and
// moves the scene toward the new layout.
func (l *Loader) AnimationTick(now time.Time) {
	l.clock = now
	l.animating = !l.animating
	l.animationTicks++

	if l.animating {
		l.store.RandomizeAll()
	} else {
		l.store.ResetAll()
	}
}

// RotationTick handles one firing of the fast timer.
func (l *Loader) RotationTick(now time.Time) {
	delta := l.cfg.FastRotationDeg
	if l.animating {
		delta = l.cfg.SlowRotationDeg
	}
	l.rotation.Advance(delta, now)
}

// Reset returns to the reassembled phase and restarts the slow timer
// schedule from now.
func (l *Loader) Reset(now time.Time) {
	l.clock = now
	l.animating = false
	l.store.ResetAll()
	if !l.nextAnimation.IsZero() {
		l.nextAnimation = now.Add(l.cfg.AnimationTick)
	}
	l.log.Debug().Msg("reset")
}

// ScatterGroup scatters the children of group g on their own, leaving the
// rest of the scene where it is headed. It reports false for an unknown group.
func (l *Loader) ScatterGroup(g int, now time.Time) bool {
	l.clock = now
	return l.store.RandomizeChildren(g)
}

// GatherGroup pulls the children of group g back onto their group.
func (l *Loader) GatherGroup(g int, now time.Time) bool {
	l.clock = now
	return l.store.ResetChildren(g)
}

// onChange starts a transition from whatever is on screen to the store's
// new state.
func (l *Loader) onChange(c scene.Change) {
	from := l.transition.At(l.clock)
	to := l.store.Snapshot()

	var curve anim.Curve = anim.Ease
	dur := config.EaseDuration
	switch c.Kind {
	case scene.ChangeRandomizeAll:
		curve, dur = anim.Smooth, l.cfg.AnimationTick
	case scene.ChangeResetAll:
		curve, dur = l.resetCurve, l.resetDur
	case scene.ChangeRandomizeChildren, scene.ChangeResetChildren:
		curve, dur = anim.SmoothShort, config.SmoothDefaultDuration
	}

	l.transition = &anim.Transition{
		Start:    l.clock,
		Duration: dur,
		Curve:    curve,
		From:     from,
		To:       to,
	}
	l.log.Debug().Str("change", c.Kind.String()).Dur("duration", dur).Bool("animating", l.animating).Msg("transition")
}

// Displayed returns the scene as it looks at now, mid-transition included.
func (l *Loader) Displayed(now time.Time) scene.Snapshot {
	return l.transition.At(now)
}

// Frame computes the on-screen discs at now. Groups sit on the radial
// layout inside the padded canvas and children are offset from their
// group's layout point, not from the group's own offset. The whole
// composition is then turned about the canvas center.
func (l *Loader) Frame(now time.Time) render.Frame {
	snap := l.transition.At(now)
	canvas := layout.Rect{W: config.CanvasSize, H: config.CanvasSize}
	center := canvas.Center()
	points := layout.Place(len(snap.Groups), canvas.Inset(config.CanvasPadding))
	rot := l.rotation.Degrees(now)

	circles := make([]render.Circle, 0, len(snap.Groups)+len(snap.Children))
	for g, grp := range snap.Groups {
		p := points[g]
		circles = append(circles, render.Circle{
			ID:     grp.ID,
			Center: layout.RotateAround(p.Add(grp.Offset), center, rot),
			Radius: config.DotRadius * grp.Scale,
			Color:  grp.Color,
		})
		for _, c := range snap.ChildrenOf(g) {
			circles = append(circles, render.Circle{
				ID:     c.ID,
				Center: layout.RotateAround(p.Add(c.Offset), center, rot),
				Radius: config.ChildRadius * c.Scale,
				Color:  c.Color,
			})
		}
	}

	return render.Frame{Size: config.CanvasSize, Rotation: rot, Circles: circles}
}

// Stats summarizes the loader at now.
func (l *Loader) Stats(now time.Time) Stats {
	phase := PhaseReassembled
	if l.animating {
		phase = PhaseScattered
	}
	return Stats{
		Phase:          phase,
		Heading:        l.rotation.Heading(now),
		Accumulated:    l.rotation.Target(),
		RotationTicks:  l.rotation.Ticks(),
		AnimationTicks: l.animationTicks,
		Transitioning:  !l.transition.Done(now),
	}
}
