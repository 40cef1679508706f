package rules

import "github.com/vovakirdan/bricker/internal/core"

// BrickGrid is the geometry needed to lay out bricks.
type BrickGrid struct {
	Width  float64
	Wall   float64
	Gap    float64
	Height float64
	PerRow int
	Rows   int
}

// BrickWidth returns the width of one brick so that perRow bricks and their
// gaps fill the space between the side walls.
func BrickWidth(g BrickGrid) float64 {
	return (g.Width - 2*g.Wall - g.Gap*float64(g.PerRow-1)) / float64(g.PerRow)
}

// BrickCenter returns the center of the brick at column col of row row.
func BrickCenter(g BrickGrid, col, row int) core.Vec2 {
	w := BrickWidth(g)
	x := float64(col)*w + 0.5*w + g.Wall + g.Gap*float64(col)
	y := float64(row)*g.Height + 0.5*g.Height + g.Wall + g.Gap*float64(row)
	return core.V(x, y)
}

func (e *Engine) grid() BrickGrid {
	return BrickGrid{
		Width:  e.cfg.Window.Width,
		Wall:   e.cfg.Window.WallWidth,
		Gap:    e.cfg.Bricks.Gap,
		Height: e.cfg.Bricks.Height,
		PerRow: e.cfg.Bricks.PerRow,
		Rows:   e.cfg.Bricks.Rows,
	}
}

// BuildScene replaces every entity with a fresh level: walls, the ball,
// the primary paddle and a full brick grid with newly drawn strategies.
// Counters are not touched; see Restart.
func (e *Engine) BuildScene() {
	m := e.Manager
	m.Clear()
	e.Turbo.ForceOff(nil)

	w, h, wall := e.cfg.Window.Width, e.cfg.Window.Height, e.cfg.Window.WallWidth
	wallSprite := e.assets.Image(AssetWall)
	for _, box := range []core.Box{
		{Center: core.V(wall/2, h/2), Size: core.V(wall, h)},
		{Center: core.V(w-wall/2, h/2), Size: core.V(wall, h)},
		{Center: core.V(w/2, wall/2), Size: core.V(w, wall)},
	} {
		m.AddWall(&Entity{Kind: KindWall, Center: box.Center, Size: box.Size, Sprite: wallSprite})
	}

	m.SetPaddle(&Entity{
		Kind:   KindPaddle,
		Center: core.V(w/2, h-wall),
		Size:   core.V(e.cfg.Paddle.Width, e.cfg.Paddle.Height),
		Sprite: e.assets.Image(AssetPaddle),
	})

	g := e.grid()
	size := core.V(BrickWidth(g), g.Height)
	brickSprite := e.assets.Image(AssetBrick)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.PerRow; col++ {
			m.AddBrick(&Entity{
				Kind:     KindBrick,
				Center:   BrickCenter(g, col, row),
				Size:     size,
				Strategy: e.Catalog.Select(),
				Sprite:   brickSprite,
			})
		}
	}

	r := e.cfg.Ball.Radius
	m.SetBall(&Entity{
		Kind:  KindBall,
		Size:  core.V(r, r),
		Sound: e.assets.Sound(SoundBlop),
	})
	e.ResetBall()

	e.log.Debug("scene built", "bricks", m.TotalBricks(), "lives", m.Lives())
}
