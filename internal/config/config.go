// Package config provides YAML/TOML game configuration loading, validation
// and difficulty management for the bricker game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// WeightTolerance is how far the strategy weights may drift from 1.0.
const WeightTolerance = 1e-6

// BrickerConfig contains all configuration for the bricker game.
type BrickerConfig struct {
	Window     WindowConfig     `yaml:"window" toml:"window"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks" toml:"bricks"`
	Lives      LivesConfig      `yaml:"lives" toml:"lives"`
	Strategies StrategyWeights  `yaml:"strategies" toml:"strategies"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WindowConfig defines the playfield in world units.
type WindowConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	WallWidth float64 `yaml:"wall_width" toml:"wall_width"`
}

// BallConfig defines the main ball.
type BallConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Per-axis speed in units per second
}

// PaddleConfig defines both the primary and the extra paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	PerRow int     `yaml:"per_row" toml:"per_row"`
	Rows   int     `yaml:"rows" toml:"rows"`
	Height float64 `yaml:"height" toml:"height"`
	Gap    float64 `yaml:"gap" toml:"gap"`
}

// Total returns the number of bricks in a full grid.
func (b BricksConfig) Total() int {
	return b.PerRow * b.Rows
}

// LivesConfig bounds the life counter.
type LivesConfig struct {
	Start int `yaml:"start" toml:"start"`
	Max   int `yaml:"max" toml:"max"`
}

// StrategyWeights are the selection probabilities of the brick behaviors.
// They must sum to 1.
type StrategyWeights struct {
	Basic       float64 `yaml:"basic" toml:"basic"`
	SpawnPacks  float64 `yaml:"spawn_packs" toml:"spawn_packs"`
	ExtraPaddle float64 `yaml:"extra_paddle" toml:"extra_paddle"`
	Turbo       float64 `yaml:"turbo" toml:"turbo"`
	GrantLife   float64 `yaml:"grant_life" toml:"grant_life"`
	Composite   float64 `yaml:"composite" toml:"composite"`
}

// Vector returns the weights in catalog order.
func (w StrategyWeights) Vector() []float64 {
	return []float64{w.Basic, w.SpawnPacks, w.ExtraPaddle, w.Turbo, w.GrantLife, w.Composite}
}

// PowerUpConfig tunes the entities and modes spawned by brick strategies.
type PowerUpConfig struct {
	PackSpeed       float64 `yaml:"pack_speed" toml:"pack_speed"`           // 0 means ball speed
	PackSizeRatio   float64 `yaml:"pack_size_ratio" toml:"pack_size_ratio"` // Relative to ball radius
	PackAngleMin    float64 `yaml:"pack_angle_min" toml:"pack_angle_min"`   // Radians
	PackAngleMax    float64 `yaml:"pack_angle_max" toml:"pack_angle_max"`   // Radians
	HeartSpeed      float64 `yaml:"heart_speed" toml:"heart_speed"`
	HeartSize       float64 `yaml:"heart_size" toml:"heart_size"`
	ExtraPaddleHits int     `yaml:"extra_paddle_hits" toml:"extra_paddle_hits"`
	TurboFactor     float64 `yaml:"turbo_factor" toml:"turbo_factor"`
	TurboThreshold  int     `yaml:"turbo_threshold" toml:"turbo_threshold"`
}

// Validate reports the first problem that makes the config unplayable.
func (c BrickerConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must have positive size", ErrInvalid)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball radius and speed must be positive", ErrInvalid)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalid)
	case c.Bricks.PerRow <= 0 || c.Bricks.Rows <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: brick grid must be non-empty", ErrInvalid)
	case c.Lives.Max <= 0 || c.Lives.Start <= 0 || c.Lives.Start > c.Lives.Max:
		return fmt.Errorf("%w: lives start %d must be within [1, %d]", ErrInvalid, c.Lives.Start, c.Lives.Max)
	case c.PowerUps.TurboFactor <= 0:
		return fmt.Errorf("%w: turbo factor must be positive", ErrInvalid)
	case c.PowerUps.TurboThreshold <= 0 || c.PowerUps.ExtraPaddleHits <= 0:
		return fmt.Errorf("%w: turbo threshold and extra paddle hits must be positive", ErrInvalid)
	case c.PowerUps.PackAngleMax < c.PowerUps.PackAngleMin:
		return fmt.Errorf("%w: pack angle range is inverted", ErrInvalid)
	}

	brickW := (c.Window.Width - 2*c.Window.WallWidth - c.Bricks.Gap*float64(c.Bricks.PerRow-1)) / float64(c.Bricks.PerRow)
	if brickW <= 0 {
		return fmt.Errorf("%w: %d bricks per row do not fit the window", ErrInvalid, c.Bricks.PerRow)
	}

	sum := 0.0
	for _, w := range c.Strategies.Vector() {
		if w < 0 {
			return fmt.Errorf("%w: strategy weights must not be negative", ErrInvalid)
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightTolerance {
		return fmt.Errorf("%w: strategy weights sum to %g, expected 1", ErrInvalid, sum)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "bricks", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Bricks/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to serve speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
