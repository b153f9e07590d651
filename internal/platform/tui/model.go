package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/racer"
)

// helpLines is the number of terminal rows reserved below the field.
const helpLines = 1

// Options configures a terminal session.
type Options struct {
	Config  config.RacerConfig
	Runtime core.RuntimeConfig
	Clock   core.Clock  // Defaults to a system clock
	Logger  *log.Logger // Defaults to discarding output

	ScreenshotDir string // Defaults to ~/.racer/screenshots
}

// Model is the Bubble Tea model running one Lane Racer session.
type Model struct {
	game     *racer.Game
	clock    core.Clock
	queue    *core.EventQueue
	holds    *holdTracker
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	logger   *log.Logger
	delay    time.Duration
	shotDir  string
	quitting bool
}

// NewModel creates a model with a fresh game in the waiting state.
func NewModel(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	h.Width = opts.Runtime.ScreenW

	logger.Debug("new session", "seed", seed, "width", opts.Runtime.ScreenW, "height", opts.Runtime.ScreenH)

	return Model{
		game:    racer.New(opts.Config, seed, clock.Millis()),
		clock:   clock,
		queue:   &core.EventQueue{},
		holds:   newHoldTracker(keyHoldMs),
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-helpLines, 0)),
		logger:  logger,
		delay:   time.Duration(opts.Config.Screen.FrameDelayMs) * time.Millisecond,
		shotDir: screenshotDir(opts.ScreenshotDir),
	}
}

func screenshotDir(dir string) string {
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the event for a bound key. Nothing is applied until
// the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	ev, ok := m.keys.Resolve(msg)
	if !ok {
		return m, nil
	}

	if ev.Kind != core.EventKeyDown {
		m.queue.Push(ev)
		return m, nil
	}
	for _, e := range m.holds.Press(ev.Key, m.clock.Millis()) {
		m.queue.Push(e)
	}
	return m, nil
}

// handleResize rescales the field to the new terminal size. Game state is
// kept since the logical field never changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpLines, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Millis()
	for _, e := range m.holds.Expire(now) {
		m.queue.Push(e)
	}

	res := m.game.Step(m.queue.Drain(now))
	m.logStep(res)

	if res.Session == racer.Exited {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.delay)
}

func (m Model) logStep(res racer.StepResult) {
	for _, tr := range res.Transitions {
		m.logger.Debug("session", "from", tr.From, "to", tr.To, "trigger", tr.Trigger)
		if tr.To == racer.GameOver {
			m.logger.Info("game over", "score", res.Score, "speed", res.Speed)
		}
	}
	if res.SpeedUp {
		m.logger.Debug("speed up", "speed", res.Speed)
	}
}

// saveScreenshot writes the current frame as plain text into the
// screenshot directory and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("racer_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.HelpFor(m.game.Session()))
}

// Run starts the Bubble Tea program and blocks until the session exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}
