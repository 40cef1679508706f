// Package rules implements the bricker rule engine: brick collision
// strategies, the entity manager, turbo mode and game-end evaluation.
// It has no terminal or rendering dependencies; collision detection and
// input polling are supplied by the caller.
package rules

import "github.com/vovakirdan/bricker/internal/core"

// Kind identifies what an entity is.
type Kind int

const (
	KindBall Kind = iota
	KindPack
	KindBrick
	KindHeart
	KindPaddle      // Primary paddle
	KindExtraPaddle // Temporary, hit-capped paddle
	KindWall
)

var kindNames = [...]string{"ball", "pack", "brick", "heart", "paddle", "extra_paddle", "wall"}

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsMover reports whether the kind bounces off paddles, walls and bricks.
func (k Kind) IsMover() bool {
	return k == KindBall || k == KindPack
}

// IsPaddle reports whether the kind is either paddle.
func (k Kind) IsPaddle() bool {
	return k == KindPaddle || k == KindExtraPaddle
}

// Handle is an opaque asset reference returned by an AssetProvider.
type Handle string

// Entity is the shared shape of every game object.
type Entity struct {
	ID         int
	Kind       Kind
	Center     core.Vec2
	Size       core.Vec2
	Velocity   core.Vec2
	Collisions int      // Ball: contacts this life. Extra paddle: ball/pack hits.
	Strategy   Strategy // Bricks only, fixed at creation
	Sprite     Handle
	Sound      Handle

	removed bool
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.Box{Center: e.Center, Size: e.Size}
}

// Removed reports whether the entity has left the game.
func (e *Entity) Removed() bool {
	return e.removed
}

// Move advances the entity by its velocity over dt seconds.
func (e *Entity) Move(dt float64) {
	e.Center = e.Center.Add(e.Velocity.Mult(dt))
}
