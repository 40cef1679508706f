package rules

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

var up = core.V(0, -1)

func withWeights(b Behavior) func(*config.BrickerConfig) {
	return func(c *config.BrickerConfig) { c.Strategies = onlyBehavior(b) }
}

func TestNewEngineRejectsBadWeights(t *testing.T) {
	cfg := config.DefaultBrickerConfig()
	cfg.Strategies.Basic = 0.9
	_, err := NewEngine(cfg, Deps{})
	if !errors.Is(err, ErrWeightsSum) {
		t.Errorf("NewEngine() error = %v, expected ErrWeightsSum", err)
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBrickerConfig()
	cfg.Lives.Start = 9
	_, err := NewEngine(cfg, Deps{})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewEngine() error = %v, expected config.ErrInvalid", err)
	}
}

func TestBuildScene(t *testing.T) {
	e := newTestEngine(t, nil, Deps{})
	m := e.Manager

	if m.TotalBricks() != 56 || len(m.Bricks) != 56 {
		t.Errorf("TotalBricks() = %d, expected 56", m.TotalBricks())
	}
	if len(m.Walls) != 3 {
		t.Errorf("walls = %d, expected 3", len(m.Walls))
	}
	if m.Paddle == nil || m.Paddle.Center != core.V(350, 490) {
		t.Errorf("paddle = %+v", m.Paddle)
	}
	if m.Ball.Center != core.V(350, 250) {
		t.Errorf("ball center = %v", m.Ball.Center)
	}
	if math.Abs(m.Ball.Velocity.X) != 250 || math.Abs(m.Ball.Velocity.Y) != 250 {
		t.Errorf("ball velocity = %v, expected diagonal 250", m.Ball.Velocity)
	}

	bw := (700.0 - 20 - 14) / 8
	first := m.Bricks[0]
	if first.Center != core.V(0.5*bw+10, 7.5+10) || first.Size != core.V(bw, 15) {
		t.Errorf("first brick = %v %v", first.Center, first.Size)
	}
	last := m.Bricks[55]
	want := core.V(7*bw+0.5*bw+10+14, 6*15+7.5+10+12)
	if math.Abs(last.Center.X-want.X) > 1e-9 || math.Abs(last.Center.Y-want.Y) > 1e-9 {
		t.Errorf("last brick center = %v, expected %v", last.Center, want)
	}
	if last.Center.X+bw/2 > 690+1e-9 {
		t.Errorf("last brick overlaps the right wall: %v", last.Center.X+bw/2)
	}
}

func TestBasicRemovesBrickOnly(t *testing.T) {
	e := newTestEngine(t, withWeights(Basic), Deps{})
	b := firstBrick(t, e)

	e.OnCollision(b, e.Manager.Ball, up)
	if !b.Removed() || e.Manager.BricksDestroyed() != 1 {
		t.Errorf("brick not removed: destroyed=%d", e.Manager.BricksDestroyed())
	}
	if len(e.Manager.Packs)+len(e.Manager.Hearts) != 0 || e.Manager.ExtraPaddle() != nil || e.Turbo.Active() {
		t.Error("basic strategy had side effects")
	}
}

func TestSpawnPacks(t *testing.T) {
	e := newTestEngine(t, withWeights(SpawnPacks), Deps{})
	b := firstBrick(t, e)

	e.OnCollision(b, e.Manager.Ball, up)
	if len(e.Manager.Packs) != 2 {
		t.Fatalf("packs = %d, expected 2", len(e.Manager.Packs))
	}
	for _, p := range e.Manager.Packs {
		if p.Center != b.Center {
			t.Errorf("pack at %v, expected brick center %v", p.Center, b.Center)
		}
		if math.Abs(p.Velocity.Len()-250) > 1e-9 {
			t.Errorf("pack speed = %v, expected 250", p.Velocity.Len())
		}
		if p.Velocity.Y > 0 {
			t.Errorf("pack launched downward: %v", p.Velocity)
		}
		if p.Size != core.V(15, 15) {
			t.Errorf("pack size = %v", p.Size)
		}
	}
}

func TestSpawnExtraPaddleOnce(t *testing.T) {
	e := newTestEngine(t, withWeights(SpawnExtraPaddle), Deps{})
	ball := e.Manager.Ball

	e.OnCollision(e.Manager.Bricks[0], ball, up)
	extra := e.Manager.ExtraPaddle()
	if extra == nil || extra.Center != core.V(350, 250) {
		t.Fatalf("extra paddle = %+v, expected at window center", extra)
	}

	e.OnCollision(e.Manager.Bricks[1], ball, up)
	if e.Manager.ExtraPaddle() != extra {
		t.Error("second extra paddle replaced the first")
	}
	if e.Manager.BricksDestroyed() != 2 {
		t.Errorf("BricksDestroyed() = %d, expected 2", e.Manager.BricksDestroyed())
	}
}

func TestExtraPaddleRemovedAfterHits(t *testing.T) {
	e := newTestEngine(t, withWeights(SpawnExtraPaddle), Deps{})
	e.OnCollision(e.Manager.Bricks[0], e.Manager.Ball, up)
	extra := e.Manager.ExtraPaddle()

	pack := &Entity{Kind: KindPack}
	e.Manager.AddPack(pack)
	for i := 0; i < 3; i++ {
		e.OnCollision(extra, e.Manager.Ball, core.V(0, 1))
	}
	e.OnCollision(extra, e.Manager.Bricks[1], core.V(0, 1)) // bricks do not count
	e.Update(0)
	if e.Manager.ExtraPaddle() == nil {
		t.Fatal("extra paddle removed after 3 hits")
	}

	e.OnCollision(extra, pack, core.V(0, 1))
	e.Update(0)
	if e.Manager.ExtraPaddle() != nil {
		t.Error("extra paddle should be gone after 4 hits")
	}
}

func TestEnableTurbo(t *testing.T) {
	e := newTestEngine(t, withWeights(EnableTurbo), Deps{})
	ball := e.Manager.Ball
	ball.Collisions = 3
	speed := ball.Velocity.Len()

	e.OnCollision(e.Manager.Bricks[0], ball, up)
	if !e.Turbo.Active() || e.Turbo.ArmedAt() != 3 {
		t.Fatalf("turbo active=%v armedAt=%d", e.Turbo.Active(), e.Turbo.ArmedAt())
	}
	if math.Abs(ball.Velocity.Len()-speed*1.4) > 1e-9 || ball.Sprite != AssetBallTurbo {
		t.Errorf("turbo not applied: %v %q", ball.Velocity, ball.Sprite)
	}

	// A second turbo brick does not stack
	e.OnCollision(e.Manager.Bricks[1], ball, up)
	if math.Abs(ball.Velocity.Len()-speed*1.4) > 1e-9 {
		t.Errorf("turbo stacked: speed %v", ball.Velocity.Len())
	}

	ball.Collisions = 8
	e.Update(0)
	if !e.Turbo.Active() {
		t.Fatal("turbo ended before 9 collisions")
	}
	ball.Collisions = 9
	e.Update(0)
	if e.Turbo.Active() {
		t.Error("turbo should end at 9 collisions")
	}
	if math.Abs(ball.Velocity.Len()-speed) > 1e-9 || ball.Sprite != AssetBall {
		t.Errorf("turbo not reverted: %v %q", ball.Velocity, ball.Sprite)
	}
}

func TestEnableTurboIgnoresPack(t *testing.T) {
	e := newTestEngine(t, withWeights(EnableTurbo), Deps{})
	pack := &Entity{Kind: KindPack}
	e.Manager.AddPack(pack)

	b := firstBrick(t, e)
	e.OnCollision(b, pack, up)
	if e.Turbo.Active() {
		t.Error("a pack must not arm turbo")
	}
	if !b.Removed() {
		t.Error("brick should still be removed")
	}
}

func TestGrantLifeHeart(t *testing.T) {
	e := newTestEngine(t, withWeights(GrantLife), Deps{})
	b := firstBrick(t, e)
	e.OnCollision(b, e.Manager.Ball, up)

	if len(e.Manager.Hearts) != 1 {
		t.Fatalf("hearts = %d, expected 1", len(e.Manager.Hearts))
	}
	heart := e.Manager.Hearts[0]
	if heart.Center != b.Center || heart.Velocity != core.V(0, 100) {
		t.Errorf("heart = %v %v", heart.Center, heart.Velocity)
	}

	// Extra paddles and balls never catch hearts
	extra := &Entity{Kind: KindExtraPaddle}
	e.Manager.AddPaddle(extra)
	e.OnCollision(heart, extra, up)
	e.OnCollision(heart, e.Manager.Ball, up)
	if heart.Removed() || e.Manager.Lives() != 3 {
		t.Fatalf("heart consumed by the wrong entity")
	}

	e.OnCollision(heart, e.Manager.Paddle, up)
	if !heart.Removed() || e.Manager.Lives() != 4 {
		t.Errorf("heart not consumed: removed=%v lives=%d", heart.Removed(), e.Manager.Lives())
	}

	// Already at max: a second heart is consumed without adding a life
	e.OnCollision(e.Manager.Bricks[1], e.Manager.Ball, up)
	second := e.Manager.Hearts[len(e.Manager.Hearts)-1]
	e.OnCollision(second, e.Manager.Paddle, up)
	if e.Manager.Lives() != 4 {
		t.Errorf("Lives() = %d, expected cap 4", e.Manager.Lives())
	}
}

func TestHeartSweptBelowBottom(t *testing.T) {
	e := newTestEngine(t, withWeights(GrantLife), Deps{})
	e.OnCollision(firstBrick(t, e), e.Manager.Ball, up)
	heart := e.Manager.Hearts[0]

	e.Advance(10)
	if heart.Center.Y <= 500 {
		t.Fatalf("heart did not fall: %v", heart.Center)
	}
	e.Update(0)
	if len(e.Manager.Hearts) != 0 {
		t.Error("heart below the bottom should be swept")
	}
}

func TestCompositeRemovesOnce(t *testing.T) {
	e := newTestEngine(t, nil, Deps{})
	b := firstBrick(t, e)
	b.Strategy = NewComposite(SpawnPacks, GrantLife, SpawnExtraPaddle)

	e.OnCollision(b, e.Manager.Ball, up)
	if e.Manager.BricksDestroyed() != 1 {
		t.Errorf("BricksDestroyed() = %d, expected 1", e.Manager.BricksDestroyed())
	}
	if len(e.Manager.Packs) != 2 || len(e.Manager.Hearts) != 1 || e.Manager.ExtraPaddle() == nil {
		t.Errorf("composite effects missing: packs=%d hearts=%d extra=%v",
			len(e.Manager.Packs), len(e.Manager.Hearts), e.Manager.ExtraPaddle() != nil)
	}
}

func TestBallBounceAndCount(t *testing.T) {
	e := newTestEngine(t, withWeights(Basic), Deps{})
	ball := e.Manager.Ball
	ball.Velocity = core.V(100, 200)

	e.OnCollision(ball, e.Manager.Paddle, up)
	if ball.Velocity != core.V(100, -200) || ball.Collisions != 1 {
		t.Errorf("after bounce: %v collisions=%d", ball.Velocity, ball.Collisions)
	}

	// Already moving away: counted, not reflected again
	e.OnCollision(ball, e.Manager.Paddle, up)
	if ball.Velocity != core.V(100, -200) || ball.Collisions != 2 {
		t.Errorf("after second contact: %v collisions=%d", ball.Velocity, ball.Collisions)
	}
}

func TestWinAfterAllBricks(t *testing.T) {
	e := newTestEngine(t, nil, Deps{RNG: NewSimpleRNG(2024)})
	m := e.Manager
	if m.TotalBricks() != 56 {
		t.Fatalf("TotalBricks() = %d", m.TotalBricks())
	}

	bricks := append([]*Entity(nil), m.Bricks...)
	for i, b := range bricks {
		e.OnCollision(b, m.Ball, up)
		e.OnCollision(b, m.Ball, up) // repeated contact must not double count
		if i < len(bricks)-1 {
			m.Ball.Center = core.V(350, 250)
			if v := e.Update(1.0 / 60); v.Outcome != Continue {
				t.Fatalf("brick %d: outcome %v before all bricks cleared", i, v.Outcome)
			}
		}
	}
	if m.BricksDestroyed() != 56 {
		t.Fatalf("BricksDestroyed() = %d, expected 56", m.BricksDestroyed())
	}
	m.Ball.Center = core.V(350, 250)
	v := e.Update(1.0 / 60)
	if v.Outcome != Win {
		t.Errorf("outcome = %v, expected win", v.Outcome)
	}
	if v.Prompt() != "You Win! Play again?" {
		t.Errorf("Prompt() = %q", v.Prompt())
	}
}

func TestThreeBallLossesLose(t *testing.T) {
	e := newTestEngine(t, nil, Deps{})
	m := e.Manager

	for i := 1; i <= 3; i++ {
		m.Ball.Center = core.V(100, 501)
		m.Ball.Collisions = 5
		v := e.Update(1.0 / 60)
		if !v.LifeLost {
			t.Fatalf("loss %d not detected", i)
		}
		if m.Lives() != 3-i {
			t.Errorf("loss %d: lives = %d, expected %d", i, m.Lives(), 3-i)
		}
		if m.Ball.Center != core.V(350, 250) || m.Ball.Collisions != 0 {
			t.Errorf("loss %d: ball not reset: %v collisions=%d", i, m.Ball.Center, m.Ball.Collisions)
		}
		want := Continue
		if i == 3 {
			want = Lose
		}
		if v.Outcome != want {
			t.Errorf("loss %d: outcome = %v, expected %v", i, v.Outcome, want)
		}
	}
}

func TestLoseOverridesWin(t *testing.T) {
	in := &fakeInput{win: true}
	e := newTestEngine(t, func(c *config.BrickerConfig) { c.Lives.Start = 1 }, Deps{Input: in})
	e.Manager.Ball.Center = core.V(100, 600)
	if v := e.Update(0); v.Outcome != Lose {
		t.Errorf("outcome = %v, expected lose", v.Outcome)
	}
}

func TestForceWin(t *testing.T) {
	in := &fakeInput{}
	e := newTestEngine(t, nil, Deps{Input: in})
	if v := e.Update(0); v.Terminal() {
		t.Fatalf("outcome = %v before force win", v.Outcome)
	}
	in.win = true
	if v := e.Update(0); v.Outcome != Win {
		t.Errorf("outcome = %v, expected win", v.Outcome)
	}
}

func TestBallLossForcesTurboOff(t *testing.T) {
	e := newTestEngine(t, withWeights(EnableTurbo), Deps{})
	ball := e.Manager.Ball
	e.OnCollision(e.Manager.Bricks[0], ball, up)
	if !e.Turbo.Active() {
		t.Fatal("turbo not armed")
	}

	ball.Center = core.V(100, 600)
	e.Update(0)
	if e.Turbo.Active() {
		t.Error("turbo should be forced off on ball loss")
	}
	if math.Abs(math.Abs(ball.Velocity.X)-250) > 1e-9 || ball.Sprite != AssetBall {
		t.Errorf("ball not reset to normal: %v %q", ball.Velocity, ball.Sprite)
	}
}

func TestConclude(t *testing.T) {
	t.Run("play again", func(t *testing.T) {
		e := newTestEngine(t, withWeights(EnableTurbo), Deps{})
		e.OnCollision(e.Manager.Bricks[0], e.Manager.Ball, up)
		e.Manager.UpdateLives(false)

		w := &fakeWindow{answer: true}
		w.onReset = e.BuildScene
		if !e.Conclude(Verdict{Outcome: Lose}, w) {
			t.Fatal("Conclude() should report a restart")
		}
		if len(w.prompts) != 1 || w.prompts[0] != "You Lose! Play again?" {
			t.Errorf("prompts = %v", w.prompts)
		}
		if w.resets != 1 || w.closed {
			t.Errorf("resets=%d closed=%v", w.resets, w.closed)
		}
		if e.Manager.Lives() != 3 || e.Manager.BricksDestroyed() != 0 || e.Turbo.Active() {
			t.Errorf("counters not reset: lives=%d destroyed=%d turbo=%v",
				e.Manager.Lives(), e.Manager.BricksDestroyed(), e.Turbo.Active())
		}
		if e.Manager.TotalBricks() != 56 {
			t.Errorf("scene not rebuilt: %d bricks", e.Manager.TotalBricks())
		}
	})

	t.Run("quit", func(t *testing.T) {
		e := newTestEngine(t, nil, Deps{})
		w := &fakeWindow{answer: false}
		if e.Conclude(Verdict{Outcome: Win}, w) {
			t.Error("Conclude() should not restart")
		}
		if !w.closed || w.resets != 0 {
			t.Errorf("closed=%v resets=%d", w.closed, w.resets)
		}
	})

	t.Run("non-terminal", func(t *testing.T) {
		e := newTestEngine(t, nil, Deps{})
		w := &fakeWindow{}
		e.Conclude(Verdict{}, w)
		if len(w.prompts) != 0 {
			t.Error("no prompt expected for a running game")
		}
	})
}

func TestSteerClampsToWalls(t *testing.T) {
	e := newTestEngine(t, nil, Deps{})
	e.Steer(-1, 10)
	if got := e.Manager.Paddle.Center.X; got != 60 {
		t.Errorf("paddle x = %v, expected 60", got)
	}
	e.Steer(1, 0.5)
	if got := e.Manager.Paddle.Center.X; got != 210 {
		t.Errorf("paddle x = %v, expected 210", got)
	}
}

func TestDifficultyScalesServeSpeed(t *testing.T) {
	e := newTestEngine(t, func(c *config.BrickerConfig) {
		c.Difficulty.Enabled = true
		c.Difficulty.InitialLevel = 1
		c.Difficulty.Scaling.SpeedMultiplier = 0.4
	}, Deps{})
	if got := math.Abs(e.Manager.Ball.Velocity.X); math.Abs(got-350) > 1e-9 {
		t.Errorf("serve speed = %v, expected 350", got)
	}
}
