package bricker

import (
	"math"

	"github.com/vovakirdan/bricker/internal/games/bricker/rules"
)

// Snapshot contains the game state needed for replay and determinism checks.
// Uses primitive types only for stable serialization; positions are
// rounded to 1/1000 of a world unit.
type Snapshot struct {
	Tick            uint64
	State           string
	Lives           int
	BricksDestroyed int
	TotalBricks     int
	TurboActive     bool
	TurboArmedAt    int

	// Ball is X, Y, VX, VY, Collisions
	Ball [5]int64

	PaddleX   int64
	HasExtra  bool
	ExtraX    int64
	ExtraHits int

	// Each pack and heart is 4 ints: X, Y, VX, VY
	PackData  []int64
	HeartData []int64

	// Each live brick is 2 ints: ID, Behavior (composite children folded in)
	BrickData []int64
}

func milli(f float64) int64 {
	return int64(math.Round(f * 1000))
}

func moverData(list []*rules.Entity) []int64 {
	out := make([]int64, 0, len(list)*4)
	for _, e := range list {
		if e.Removed() {
			continue
		}
		out = append(out, milli(e.Center.X), milli(e.Center.Y), milli(e.Velocity.X), milli(e.Velocity.Y))
	}
	return out
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	m := g.engine.Manager
	snap := Snapshot{
		Tick:            uint64(g.engine.Ticks()), //#nosec G115 -- tick count is always positive
		State:           g.state,
		Lives:           m.Lives(),
		BricksDestroyed: m.BricksDestroyed(),
		TotalBricks:     m.TotalBricks(),
		TurboActive:     g.engine.Turbo.Active(),
		TurboArmedAt:    g.engine.Turbo.ArmedAt(),
		PackData:        moverData(m.Packs),
		HeartData:       moverData(m.Hearts),
	}

	if b := m.Ball; b != nil {
		snap.Ball = [5]int64{milli(b.Center.X), milli(b.Center.Y), milli(b.Velocity.X), milli(b.Velocity.Y), int64(b.Collisions)}
	}
	if m.Paddle != nil {
		snap.PaddleX = milli(m.Paddle.Center.X)
	}
	if extra := m.ExtraPaddle(); extra != nil {
		snap.HasExtra = true
		snap.ExtraX = milli(extra.Center.X)
		snap.ExtraHits = extra.Collisions
	}

	for _, b := range m.Bricks {
		if b.Removed() {
			continue
		}
		code := int64(0)
		for _, beh := range b.Strategy.Behaviors() {
			code = code*8 + int64(beh) + 1
		}
		snap.BrickData = append(snap.BrickData, int64(b.ID), code)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int64) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(int64(snap.Lives))
	mix(int64(snap.BricksDestroyed))
	mix(int64(snap.TotalBricks))
	mix(boolInt(snap.TurboActive))
	mix(int64(snap.TurboArmedAt))
	for _, v := range snap.Ball {
		mix(v)
	}
	mix(snap.PaddleX)
	mix(boolInt(snap.HasExtra))
	mix(snap.ExtraX)
	mix(int64(snap.ExtraHits))
	for _, r := range snap.State {
		mix(int64(r))
	}
	for _, data := range [][]int64{snap.PackData, snap.HeartData, snap.BrickData} {
		mix(int64(len(data)))
		for _, v := range data {
			mix(v)
		}
	}
	return h
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
