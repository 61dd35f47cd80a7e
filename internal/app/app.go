package app

import (
	"time"

	"dotloader.klederson.com/internal/config"
	"dotloader.klederson.com/internal/loader"
	"dotloader.klederson.com/internal/render"
	"dotloader.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	loader *loader.Loader
	frames *FrameRing
	clock  func() time.Time

	// Pausing shifts the animation clock back by the time spent paused, so
	// transitions resume where they stopped.
	pausedAt  time.Time
	pausedFor time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	paused    bool
	inspector bool
	cursor    int
	now       time.Time // Animation clock at the last frame

	shared *shared
	log    zerolog.Logger
}

// New creates a new AppModel driving l.
func New(l *loader.Loader, log zerolog.Logger) AppModel {
	s := &shared{
		loader: l,
		frames: NewFrameRing(config.FrameRing),
		clock:  time.Now,
	}
	return AppModel{
		shared: s,
		now:    s.clock(),
		log:    log.With().Str("module", "app").Logger(),
	}
}

func (m AppModel) Init() tea.Cmd {
	cfg := m.shared.loader.Config()
	return tea.Batch(
		frameCmd(),
		rotationCmd(cfg.RotationTick),
		animationCmd(cfg.AnimationTick),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cfg := m.shared.loader.Config()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		if !m.paused {
			m.now = m.animationTime(time.Time(msg))
			m.shared.frames.Push(time.Time(msg))
		}
		return m, frameCmd()

	case RotationTickMsg:
		if !m.paused {
			m.shared.loader.RotationTick(m.animationTime(time.Time(msg)))
		}
		return m, rotationCmd(cfg.RotationTick)

	case AnimationTickMsg:
		if !m.paused {
			m.shared.loader.AnimationTick(m.animationTime(time.Time(msg)))
			m.log.Debug().Bool("animating", m.shared.loader.Animating()).Msg("animation tick")
		}
		return m, animationCmd(cfg.AnimationTick)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.log.Info().Msg("quit")
		return m, tea.Quit

	case " ", "space", "p", "P":
		now := m.shared.clock()
		if m.paused {
			m.shared.pausedFor += now.Sub(m.shared.pausedAt)
		} else {
			m.shared.pausedAt = now
		}
		m.paused = !m.paused
		m.log.Debug().Bool("paused", m.paused).Msg("toggle pause")

	case "r", "R":
		m.now = m.animationTime(m.shared.clock())
		m.shared.loader.Reset(m.now)

	case "s":
		m.now = m.animationTime(m.shared.clock())
		m.shared.loader.ScatterGroup(m.cursor, m.now)

	case "g":
		m.now = m.animationTime(m.shared.clock())
		m.shared.loader.GatherGroup(m.cursor, m.now)

	case "i", "I":
		m.inspector = !m.inspector

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.shared.loader.Store().GroupCount()-1 {
			m.cursor++
		}
	}

	return m, nil
}

// animationTime maps wall time onto the animation clock. While paused the
// clock stays at the instant the pause began.
func (m AppModel) animationTime(wall time.Time) time.Time {
	if m.paused {
		return m.shared.pausedAt.Add(-m.shared.pausedFor)
	}
	return wall.Add(-m.shared.pausedFor)
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	panelW := m.width
	inspW := 0
	if m.inspector {
		inspW = m.width / 3
		if inspW < 30 {
			inspW = 30
		}
		panelW = m.width - inspW
		if panelW < 20 {
			panelW = 20
			inspW = m.width - panelW
		}
	}

	l := m.shared.loader
	stats := l.Stats(m.now)
	menuBar := ui.RenderMenuBar(m.width, m.paused, m.inspector)

	innerW := panelW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	content := render.Terminal(l.Frame(m.now), innerW, innerH)
	legend := render.Legend(innerW, l.Store().Palette())
	panel := ui.RenderLoaderPanel(panelW, bodyH, content, legend)

	inspector := ""
	if m.inspector {
		inspector = ui.RenderInspector(l.Displayed(m.now), stats, inspW, bodyH, m.cursor)
	}

	statusBar := ui.RenderStatusBar(m.width, m.paused, stats, m.shared.frames.FPS())

	return ui.ComposeLayout(menuBar, panel, inspector, statusBar)
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func rotationCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return RotationTickMsg(t)
	})
}

func animationCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}
