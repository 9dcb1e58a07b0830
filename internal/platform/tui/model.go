package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retropix/internal/engine"
	"github.com/vovakirdan/retropix/internal/input"
)

// Model is the Bubble Tea model driving one engine instance.
type Model struct {
	eng      *engine.Engine
	tracker  *keyTracker
	tickRate int
	logger   *log.Logger

	frame    engine.Frame
	width    int
	height   int
	lastTick time.Time
	quitting bool
}

// NewModel creates a model that ticks eng at tickRate ticks per second.
// The engine must already be loaded.
func NewModel(eng *engine.Engine, tickRate int, logger *log.Logger) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	cfg := eng.Config()
	return Model{
		eng:      eng,
		tracker:  newKeyTracker(defaultHoldTimeout),
		tickRate: tickRate,
		logger:   logger,
		width:    cfg.CanvasW,
		height:   (cfg.CanvasH + 1) / 2,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles terminal messages: keys become engine key signals, size
// changes update the display dimensions, focus messages become engine
// focus signals, and ticks advance the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
		k := input.Key(msg.String())
		m.eng.KeyDown(k)
		m.tracker.press(k, time.Now())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Half-block cells hold two pixels vertically.
		m.eng.SetDisplaySize(msg.Width, msg.Height*2)
		return m, nil

	case tea.FocusMsg:
		m.eng.SetFocus(true)
		return m, nil

	case tea.BlurMsg:
		m.eng.SetFocus(false)
		m.tracker.reset()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Synthesize key releases for keys whose auto-repeat went quiet.
	for _, k := range m.tracker.expired(now) {
		m.eng.KeyUp(k)
	}

	dt := 1.0 / float64(m.tickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.frame = m.eng.Tick(dt)
	if m.frame.Dropped > 0 && m.logger != nil {
		m.logger.Warn("simulation stalled, dropping time",
			"scene", m.eng.Scene().ID(),
			"dropped_sec", m.frame.Dropped)
	}

	return m, tickCmd(m.tickRate)
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}
	if m.frame.Canvas == nil {
		return "Starting..."
	}
	return RenderFrame(m.frame, m.width, m.height)
}

// Run drives the engine inside a Bubble Tea program until the user quits.
// Focus reporting is enabled so the engine hears blur/focus transitions.
func Run(eng *engine.Engine, tickRate int, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(eng, tickRate, logger),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
