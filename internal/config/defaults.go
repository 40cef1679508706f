package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/bricker.yaml
var defaultBrickerYAML []byte

// DefaultBrickerConfig returns the default bricker configuration.
func DefaultBrickerConfig() BrickerConfig {
	return BrickerConfig{
		Window: WindowConfig{
			Width:     700,
			Height:    500,
			WallWidth: 10,
		},
		Ball: BallConfig{
			Radius: 20,
			Speed:  250,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 15,
			Speed:  300,
		},
		Bricks: BricksConfig{
			PerRow: 8,
			Rows:   7,
			Height: 15,
			Gap:    2,
		},
		Lives: LivesConfig{
			Start: 3,
			Max:   4,
		},
		Strategies: StrategyWeights{
			Basic:       0.5,
			SpawnPacks:  0.1,
			ExtraPaddle: 0.1,
			Turbo:       0.1,
			GrantLife:   0.1,
			Composite:   0.1,
		},
		PowerUps: PowerUpConfig{
			PackSpeed:       0,
			PackSizeRatio:   0.75,
			PackAngleMin:    math.Pi,
			PackAngleMax:    2 * math.Pi,
			HeartSpeed:      100,
			HeartSize:       30,
			ExtraPaddleHits: 4,
			TurboFactor:     1.4,
			TurboThreshold:  6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "bricks",
				MaxAt: 56,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bricker", "bricker_chaos":
		return defaultBrickerYAML
	default:
		return nil
	}
}
