package rules

import (
	"testing"

	"github.com/vovakirdan/bricker/internal/config"
)

// scriptedSource replays fixed draws. Exhausted queues return zero.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted draw out of range")
	}
	return v
}

type fakeInput struct {
	win bool
}

func (f *fakeInput) ForceWin() bool { return f.win }

type fakeWindow struct {
	answer  bool
	prompts []string
	resets  int
	closed  bool
	onReset func()
}

func (w *fakeWindow) AskYesNo(prompt string) bool {
	w.prompts = append(w.prompts, prompt)
	return w.answer
}

func (w *fakeWindow) ResetScene() {
	w.resets++
	if w.onReset != nil {
		w.onReset()
	}
}

func (w *fakeWindow) CloseWindow() { w.closed = true }

func onlyBehavior(b Behavior) config.StrategyWeights {
	v := make([]float64, numBehaviors)
	v[b] = 1
	return config.StrategyWeights{
		Basic:       v[Basic],
		SpawnPacks:  v[SpawnPacks],
		ExtraPaddle: v[SpawnExtraPaddle],
		Turbo:       v[EnableTurbo],
		GrantLife:   v[GrantLife],
		Composite:   v[Composite],
	}
}

// newTestEngine builds an engine over the default config with a scene.
func newTestEngine(t *testing.T, mutate func(*config.BrickerConfig), deps Deps) *Engine {
	t.Helper()
	cfg := config.DefaultBrickerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if deps.RNG == nil {
		deps.RNG = NewSimpleRNG(42)
	}
	e, err := NewEngine(cfg, deps)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	e.BuildScene()
	return e
}

func firstBrick(t *testing.T, e *Engine) *Entity {
	t.Helper()
	if len(e.Manager.Bricks) == 0 {
		t.Fatal("scene has no bricks")
	}
	return e.Manager.Bricks[0]
}
