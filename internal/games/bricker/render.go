package bricker

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker/rules"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	w := g.cfg.Window
	return viewport{
		sx:  float64(dst.Width()) / w.Width,
		sy:  float64(dst.Height()-hudRows) / w.Height,
		top: hudRows,
	}
}

// cell returns the screen cell containing a world point.
func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), v.top + int(math.Floor(p.Y*v.sy))
}

// rect returns the cells covered by a world box; it is at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, y0 := v.cell(lo)
	x1 := int(math.Ceil(hi.X * v.sx))
	y1 := v.top + int(math.Ceil(hi.Y*v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	vp := g.viewport(dst)
	m := g.engine.Manager

	g.renderWalls(dst, vp)
	g.renderBricks(dst, vp)
	for _, p := range []*rules.Entity{m.Paddle, m.ExtraPaddle()} {
		if p != nil {
			sp := Assets.Lookup(p.Sprite)
			dst.FillRect(vp.rect(p.Box()), sp.Rune, sp.Color)
		}
	}
	for _, e := range m.Entities() {
		switch e.Kind {
		case rules.KindHeart, rules.KindPack, rules.KindBall:
			sp := Assets.Lookup(e.Sprite)
			x, y := vp.cell(e.Center)
			if y >= vp.top {
				dst.SetColored(x, y, sp.Rune, sp.Color)
			}
		}
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderWalls(dst *core.Screen, vp viewport) {
	for _, w := range g.engine.Manager.Walls {
		r := vp.rect(w.Box())
		sp := Assets.Lookup(w.Sprite)
		if w.Size.X > w.Size.Y {
			sp.Rune = '─'
		}
		dst.FillRect(r, sp.Rune, sp.Color)
	}
}

// renderBricks draws live bricks with a one-cell gap on their right edge
// so neighbours stay distinguishable at low resolutions.
func (g *Game) renderBricks(dst *core.Screen, vp viewport) {
	rowH := g.cfg.Bricks.Height + g.cfg.Bricks.Gap
	for _, b := range g.engine.Manager.Bricks {
		if b.Removed() {
			continue
		}
		r := vp.rect(b.Box())
		if r.W > 1 {
			r.W--
		}
		sp := Assets.Lookup(b.Sprite)
		row := int((b.Center.Y - g.cfg.Window.WallWidth) / rowH)
		sp.Color = brickColors[row%len(brickColors)]
		dst.FillRect(r, sp.Rune, sp.Color)
	}
}

// renderHUD draws bricks, lives and turbo status on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	m := g.engine.Manager
	dst.DrawText(1, 0, fmt.Sprintf("Bricks: %d/%d", m.BricksDestroyed(), m.TotalBricks()))

	lives := fmt.Sprintf("%s %d", strings.Repeat("♥", m.Lives()), m.Lives())
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawTextColored(x, 0, lives, LivesColor(m.Lives()))

	if g.engine.Turbo.Active() {
		text := fmt.Sprintf("TURBO %d", g.engine.Turbo.ExpiresAt()-m.Ball.Collisions)
		dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.ColorOrange)
	}
}

// renderOverlay draws pause and prompt messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	centerY := dst.Height() / 2

	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(centerY, "PAUSED")
		dst.DrawTextCentered(centerY+1, "Press P to resume")
	case StatePrompt:
		dst.DrawTextCentered(centerY-1, g.verdict.Prompt())
		dst.DrawTextCentered(centerY+1, "[Y] yes   [N] no")
	}
}
