// Package bricker adapts the rule engine to the platform: it detects
// contacts, steers the paddles from input, draws the playfield and asks
// the restart question in-band.
package bricker

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker/rules"
	"github.com/vovakirdan/bricker/internal/registry"
)

// Game states
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StatePrompt  = "prompt" // Waiting for a play-again answer
	StateClosed  = "closed" // Player declined to play again
)

// Mode selects the strategy weights.
type Mode int

const (
	ModeStandard Mode = iota // Configured weights
	ModeChaos                // Every brick is a composite
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// configOverride is a pre-validated config that bypasses loading.
var configOverride *config.BrickerConfig

// logger receives engine events; discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// UseConfig makes every new game use cfg instead of loading from disk.
func UseConfig(cfg config.BrickerConfig) {
	configOverride = &cfg
}

// SetLogger routes engine logging to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register("bricker", func() registry.Game { return New() })
	registry.Register("bricker_chaos", func() registry.Game { return NewChaos() })
}

// Game implements registry.Game on top of rules.Engine.
type Game struct {
	mode    Mode
	engine  *rules.Engine
	input   *keyInput
	state   string
	verdict rules.Verdict
	runtime core.RuntimeConfig
	cfg     config.BrickerConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with the configured strategy weights.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewChaos creates a game in which every brick holds a composite strategy.
func NewChaos() *Game {
	return &Game{mode: ModeChaos}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeChaos {
		return "bricker_chaos"
	}
	return "bricker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeChaos {
		return "Bricker (Chaos)"
	}
	return "Bricker"
}

// loadConfig resolves the configuration for a new game.
func (g *Game) loadConfig() config.BrickerConfig {
	var cfg config.BrickerConfig
	if configOverride != nil {
		cfg = *configOverride
	} else {
		loaded, err := config.LoadBricker(configPath)
		if err != nil {
			logger.Warn("falling back to default config", "err", err)
			loaded = config.DefaultBrickerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBrickerPreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}

	if g.mode == ModeChaos {
		cfg.Strategies = config.StrategyWeights{Composite: 1}
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.cfg = g.loadConfig()
	g.input = &keyInput{}

	deps := rules.Deps{
		RNG:    rules.NewSimpleRNG(runtime.Seed),
		Assets: Assets,
		Input:  g.input,
		Logger: logger.With("game", g.ID()),
	}
	engine, err := rules.NewEngine(g.cfg, deps)
	if err != nil {
		logger.Error("invalid config, using defaults", "err", err)
		g.cfg = config.DefaultBrickerConfig()
		engine, _ = rules.NewEngine(g.cfg, deps) //nolint:errcheck // defaults are valid
	}
	g.engine = engine
	g.engine.BuildScene()

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.verdict = rules.Verdict{}
	g.state = StatePlaying
}

// Resize adapts to a new screen size. The world is drawn scaled, so only
// the size check changes.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Engine exposes the rule engine, mainly for tests and tooling.
func (g *Game) Engine() *rules.Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.state == StateClosed {
		return core.StepResult{State: g.State()}
	}

	if g.state == StatePrompt {
		var answer bool
		switch {
		case in.Has(core.ActionConfirm):
			answer = true
		case in.Has(core.ActionDecline):
			answer = false
		default:
			return core.StepResult{State: g.State()}
		}
		g.engine.Conclude(g.verdict, &promptWindow{game: g, answer: answer})
		return core.StepResult{State: g.State(), Concluded: true}
	}

	// Handle immediate restart
	if in.Has(core.ActionRestart) {
		g.engine.Restart()
		g.engine.BuildScene()
		g.state = StatePlaying
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	dt := 1.0 / float64(g.runtime.TickRate)
	g.input.forceWin = in.Has(core.ActionForceWin)

	var dir float64
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	g.engine.Steer(dir, dt)

	g.engine.Advance(dt)
	resolveContacts(g.engine)

	v := g.engine.Update(dt)
	if v.Terminal() {
		g.verdict = v
		g.state = StatePrompt
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	m := g.engine.Manager
	return core.GameState{
		Score:    m.BricksDestroyed(),
		Total:    m.TotalBricks(),
		Lives:    m.Lives(),
		Ticks:    g.engine.Ticks(),
		GameOver: g.state == StatePrompt,
		Won:      g.state == StatePrompt && g.verdict.Outcome == rules.Win,
		Paused:   g.state == StatePaused,
		Quit:     g.state == StateClosed,
	}
}

// keyInput carries the force-win key into the engine.
type keyInput struct {
	forceWin bool
}

func (k *keyInput) ForceWin() bool { return k.forceWin }

// promptWindow answers the engine's play-again question with a key the
// player already pressed.
type promptWindow struct {
	game   *Game
	answer bool
}

func (w *promptWindow) AskYesNo(string) bool { return w.answer }

func (w *promptWindow) ResetScene() {
	w.game.engine.BuildScene()
	w.game.verdict = rules.Verdict{}
	w.game.state = StatePlaying
}

func (w *promptWindow) CloseWindow() {
	w.game.state = StateClosed
}
