package bricker

import (
	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker/rules"
)

// Sprite is how an image handle is drawn in the terminal.
type Sprite struct {
	Rune  rune
	Color core.Color
}

// GlyphSheet maps asset names to terminal sprites. Sounds resolve to
// handles too but are never played.
type GlyphSheet map[string]Sprite

// Assets is the sheet used by every game.
var Assets = GlyphSheet{
	rules.AssetBall:        {Rune: '●', Color: core.ColorWhite},
	rules.AssetBallTurbo:   {Rune: '●', Color: core.ColorBrightRed},
	rules.AssetPack:        {Rune: '•', Color: core.ColorCyan},
	rules.AssetHeart:       {Rune: '♥', Color: core.ColorRed},
	rules.AssetPaddle:      {Rune: '▀', Color: core.ColorDefault},
	rules.AssetExtraPaddle: {Rune: '▀', Color: core.ColorMagenta},
	rules.AssetBrick:       {Rune: '█', Color: core.ColorDefault},
	rules.AssetWall:        {Rune: '│', Color: core.ColorGray},
}

// Image returns a handle for a known sprite, or an empty handle.
func (s GlyphSheet) Image(name string) rules.Handle {
	if _, ok := s[name]; !ok {
		return ""
	}
	return rules.Handle(name)
}

// Sound returns the name as a handle.
func (s GlyphSheet) Sound(name string) rules.Handle {
	return rules.Handle(name)
}

// Lookup returns the sprite for a handle, falling back to '?'.
func (s GlyphSheet) Lookup(h rules.Handle) Sprite {
	if sp, ok := s[string(h)]; ok {
		return sp
	}
	return Sprite{Rune: '?', Color: core.ColorDefault}
}

// brickColors tints brick rows from the top down.
var brickColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorMagenta,
}

// LivesColor returns the HUD color for a life count.
func LivesColor(lives int) core.Color {
	switch lives {
	case 1:
		return core.ColorRed
	case 2:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}
