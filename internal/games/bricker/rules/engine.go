package rules

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

// AssetProvider resolves logical asset names to opaque handles.
type AssetProvider interface {
	Image(name string) Handle
	Sound(name string) Handle
}

// Input is the key-state collaborator.
type Input interface {
	// ForceWin reports whether the player asked to win immediately.
	ForceWin() bool
}

// Window is the host window collaborator used at terminal states.
type Window interface {
	ResetScene()
	CloseWindow()
	AskYesNo(prompt string) bool
}

// Asset names requested from the AssetProvider.
const (
	AssetBall        = "ball"
	AssetBallTurbo   = "ball_turbo"
	AssetPack        = "pack"
	AssetHeart       = "heart"
	AssetPaddle      = "paddle"
	AssetExtraPaddle = "extra_paddle"
	AssetBrick       = "brick"
	AssetWall        = "wall"
	SoundBlop        = "blop"
)

// Deps are the engine's optional collaborators.
type Deps struct {
	RNG    Source        // Defaults to NewSimpleRNG(1)
	Assets AssetProvider // Defaults to NamedAssets
	Input  Input         // Defaults to never forcing a win
	Logger *log.Logger   // Defaults to discarding output
}

// Engine wires the rule components to one game session.
// It is not safe for concurrent use.
type Engine struct {
	Manager   *EntityManager
	Turbo     *TurboController
	Catalog   *Catalog
	Evaluator GameEndEvaluator

	cfg        config.BrickerConfig
	rng        Source
	assets     AssetProvider
	input      Input
	log        *log.Logger
	difficulty *config.DifficultyManager
	ticks      int
	elapsed    float64
}

// NewEngine validates cfg and builds an engine with an empty scene.
func NewEngine(cfg config.BrickerConfig, deps Deps) (*Engine, error) {
	if deps.RNG == nil {
		deps.RNG = NewSimpleRNG(1)
	}
	if deps.Assets == nil {
		deps.Assets = NamedAssets{}
	}
	if deps.Input == nil {
		deps.Input = noInput{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	catalog, err := NewCatalog(cfg.Strategies.Vector(), deps.RNG)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	e := &Engine{
		Manager:    NewEntityManager(cfg.Lives.Start, cfg.Lives.Max),
		Catalog:    catalog,
		Evaluator:  GameEndEvaluator{Bottom: cfg.Window.Height},
		cfg:        cfg,
		rng:        deps.RNG,
		assets:     deps.Assets,
		input:      deps.Input,
		log:        deps.Logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	e.Turbo = NewTurboController(
		cfg.PowerUps.TurboFactor,
		cfg.PowerUps.TurboThreshold,
		deps.Assets.Image(AssetBall),
		deps.Assets.Image(AssetBallTurbo),
	)
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.BrickerConfig {
	return e.cfg
}

// Ticks returns the number of Update calls since the last restart.
func (e *Engine) Ticks() int {
	return e.ticks
}

// Elapsed returns the simulated seconds since the last restart.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Advance moves every live moving entity by its velocity.
func (e *Engine) Advance(dt float64) {
	for _, ent := range e.Manager.Entities() {
		switch ent.Kind {
		case KindBall, KindPack, KindHeart:
			ent.Move(dt)
		}
	}
}

// Steer moves both paddles horizontally. dir is -1 (left), 0 or 1 (right).
func (e *Engine) Steer(dir float64, dt float64) {
	if dir == 0 {
		return
	}
	dx := dir * e.cfg.Paddle.Speed * dt
	for _, p := range []*Entity{e.Manager.Paddle, e.Manager.ExtraPaddle()} {
		if p == nil {
			continue
		}
		half := p.Size.X / 2
		p.Center.X = core.ClampF(p.Center.X+dx, e.cfg.Window.WallWidth+half, e.cfg.Window.Width-e.cfg.Window.WallWidth-half)
	}
}

// ShouldCollide reports whether a contact between a and b has any effect.
// Hearts only touch the primary paddle; everything else needs a ball or pack.
func (e *Engine) ShouldCollide(a, b *Entity) bool {
	if a == nil || b == nil || a == b || a.removed || b.removed {
		return false
	}
	if a.Kind == KindHeart || b.Kind == KindHeart {
		return (a.Kind == KindHeart && b.Kind == KindPaddle) || (b.Kind == KindHeart && a.Kind == KindPaddle)
	}
	if a.Kind.IsMover() && b.Kind.IsMover() {
		return false
	}
	return a.Kind.IsMover() || b.Kind.IsMover()
}

// OnCollision handles one side of a contact: obj touched other, and normal
// is the unit surface normal pushing obj away from other.
// Collision detection calls it once for each entity of a contact pair.
func (e *Engine) OnCollision(obj, other *Entity, normal core.Vec2) {
	if !e.ShouldCollide(obj, other) {
		return
	}

	switch obj.Kind {
	case KindBall:
		e.bounce(obj, normal)
		obj.Collisions++
	case KindPack:
		e.bounce(obj, normal)
	case KindExtraPaddle:
		if other.Kind.IsMover() {
			obj.Collisions++
		}
	case KindHeart:
		if other.Kind == KindPaddle && e.Manager.RemoveHeart(obj) {
			e.Manager.UpdateLives(true)
			e.log.Info("life granted", "lives", e.Manager.Lives())
		}
	case KindBrick:
		e.log.Debug("brick struck", "id", obj.ID, "strategy", obj.Strategy.Behaviors(), "by", other.Kind)
		obj.Strategy.Execute(e, obj, other)
	}
}

// bounce reflects v off the surface unless it is already moving away.
func (e *Engine) bounce(obj *Entity, normal core.Vec2) {
	if obj.Velocity.Dot(normal) < 0 {
		obj.Velocity = obj.Velocity.Flipped(normal)
	}
}

// Update runs the per-tick rules after physics: sweeps, turbo expiry, then
// end evaluation.
func (e *Engine) Update(dt float64) Verdict {
	e.ticks++
	e.elapsed += dt

	if n := e.Manager.Sweep(e.cfg.Window.Height, e.cfg.PowerUps.ExtraPaddleHits); n > 0 {
		e.log.Debug("swept entities", "count", n)
	}
	if e.Turbo.Check(e.Manager.Ball) {
		e.log.Info("turbo off", "collisions", e.Manager.Ball.Collisions)
	}

	v := e.Evaluator.Evaluate(e.Manager, e.input.ForceWin(), e.loseLife)
	if v.Terminal() {
		e.log.Info("game over", "outcome", v.Outcome, "bricks", e.Manager.BricksDestroyed(), "lives", e.Manager.Lives())
	}
	return v
}

func (e *Engine) loseLife() {
	e.Turbo.ForceOff(e.Manager.Ball)
	e.ResetBall()
	e.Manager.UpdateLives(false)
	e.log.Info("life lost", "lives", e.Manager.Lives())
}

// Conclude asks the window whether to play again after a terminal verdict.
// Yes restarts the counters and resets the scene; no closes the window.
// It reports whether the game restarted.
func (e *Engine) Conclude(v Verdict, w Window) bool {
	if !v.Terminal() {
		return false
	}
	if w.AskYesNo(v.Prompt()) {
		e.Restart()
		w.ResetScene()
		return true
	}
	w.CloseWindow()
	return false
}

// Restart resets lives, destroyed bricks, turbo and the tick clock.
// The scene itself is rebuilt by the window collaborator.
func (e *Engine) Restart() {
	e.Turbo.ForceOff(e.Manager.Ball)
	e.Manager.ResetCounters(e.cfg.Lives.Start)
	e.ticks = 0
	e.elapsed = 0
}

// ResetBall centers the ball with a fresh random diagonal velocity and
// clears its collision counter.
func (e *Engine) ResetBall() {
	ball := e.Manager.Ball
	if ball == nil {
		return
	}
	speed := e.difficulty.Speed(e.cfg.Ball.Speed, e.Manager.BricksDestroyed(), e.ticks)
	vx, vy := speed, speed
	if e.rng.Intn(2) == 1 {
		vx = -vx
	}
	if e.rng.Intn(2) == 1 {
		vy = -vy
	}
	ball.Center = core.V(e.cfg.Window.Width/2, e.cfg.Window.Height/2)
	ball.Velocity = core.V(vx, vy)
	ball.Collisions = 0
	ball.Sprite = e.assets.Image(AssetBall)
}

func (e *Engine) spawnPacks(at core.Vec2) {
	speed := e.cfg.PowerUps.PackSpeed
	if speed <= 0 {
		speed = e.cfg.Ball.Speed
	}
	size := e.cfg.Ball.Radius * e.cfg.PowerUps.PackSizeRatio
	lo, hi := e.cfg.PowerUps.PackAngleMin, e.cfg.PowerUps.PackAngleMax

	for range 2 {
		angle := lo + e.rng.Float64()*(hi-lo)
		e.Manager.AddPack(&Entity{
			Kind:     KindPack,
			Center:   at,
			Size:     core.V(size, size),
			Velocity: core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Sprite:   e.assets.Image(AssetPack),
			Sound:    e.assets.Sound(SoundBlop),
		})
	}
}

func (e *Engine) spawnExtraPaddle() {
	added := e.Manager.AddPaddle(&Entity{
		Kind:   KindExtraPaddle,
		Center: core.V(e.cfg.Window.Width/2, e.cfg.Window.Height/2),
		Size:   core.V(e.cfg.Paddle.Width, e.cfg.Paddle.Height),
		Sprite: e.assets.Image(AssetExtraPaddle),
	})
	if added {
		e.log.Info("extra paddle added")
	}
}

func (e *Engine) spawnHeart(at core.Vec2) {
	size := e.cfg.PowerUps.HeartSize
	e.Manager.AddHeart(&Entity{
		Kind:     KindHeart,
		Center:   at,
		Size:     core.V(size, size),
		Velocity: core.V(0, e.cfg.PowerUps.HeartSpeed),
		Sprite:   e.assets.Image(AssetHeart),
	})
}

// NamedAssets returns each asset name as its own handle.
type NamedAssets struct{}

// Image returns name as a handle.
func (NamedAssets) Image(name string) Handle { return Handle(name) }

// Sound returns name as a handle.
func (NamedAssets) Sound(name string) Handle { return Handle(name) }

type noInput struct{}

func (noInput) ForceWin() bool { return false }
