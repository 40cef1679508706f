package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/registry"
	"github.com/vovakirdan/bricker/internal/storage"
)

// helpRows is the number of rows reserved below the game for the help bar.
const helpRows = 1

// steerTicks is how long one steering key press keeps the paddle moving.
// Terminals report key repeats, not key releases.
const steerTicks = 8

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Resizer is implemented by games that adapt to a new screen size
// without being reset.
type Resizer interface {
	Resize(width, height int)
}

// Options configure a game model.
type Options struct {
	Store         *storage.Store // Optional; runs are not saved when nil
	Logger        *log.Logger    // Optional; discarded when nil
	Debug         bool           // Enables the force-win key
	ScreenshotDir string         // Defaults to ~/.bricker/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	log       *log.Logger
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	input     core.InputFrame
	gameState core.GameState

	steer     core.Action
	steerLeft int

	quitting bool
	runSaved bool // Whether the current finished game was saved
	lastRun  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		opts:   opts,
		log:    logger,
		config: cfg,
		keys:   DefaultGameKeyMap(opts.Debug),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the help bar rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)
	return cfg
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

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.steer = a
		m.steerLeft = steerTicks
	case core.ActionNone:
	default:
		m.input.Set(a)
	}
	return m, nil
}

// handleResize resizes the screen buffer. Games that cannot adapt in
// place are reset unless they are waiting on the play-again prompt.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.steerLeft > 0 {
		m.input.Set(m.steer)
		m.steerLeft--
	}

	result := m.game.Step(m.input)
	m.gameState = result.State
	m.input.Clear()

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if result.Concluded {
		m.runSaved = false
		m.steerLeft = 0
		if m.gameState.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished game. Failures are logged and play goes on.
func (m *Model) saveRun() {
	if m.opts.Store == nil {
		return
	}
	st := m.gameState
	outcome := "lose"
	if st.Won {
		outcome = "win"
	}
	id, err := m.opts.Store.SaveRun(storage.Run{
		GameID:          m.game.ID(),
		Outcome:         outcome,
		BricksDestroyed: st.Score,
		TotalBricks:     st.Total,
		LivesLeft:       st.Lives,
		Ticks:           st.Ticks,
		Seed:            m.config.Seed,
	})
	if err != nil {
		m.log.Error("save run", "err", err)
		return
	}
	m.lastRun = id
	m.log.Info("run saved", "id", id, "outcome", outcome, "bricks", st.Score)
}

// LastRun returns the ID of the most recently saved run, if any.
func (m Model) LastRun() string {
	return m.lastRun
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".bricker", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
