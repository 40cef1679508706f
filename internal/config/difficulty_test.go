package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.7})
	if got := dm.Speed(250, 50, 1000); got != 250 {
		t.Errorf("Speed() = %v, expected 250", got)
	}
}

func TestDifficultyBricksProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "bricks", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		bricks   int
		expected float64
	}{
		{0, 100},
		{5, 125},
		{10, 150},
		{40, 150},
	}
	for _, tc := range tests {
		if got := dm.Speed(100, tc.bricks, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed(bricks=%d) = %v, expected %v", tc.bricks, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(0, 50); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level() = %v, expected 0.75", got)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}})
	dm.SetInitialLevel(2)
	if dm.IsEnabled() {
		t.Error("progression type none should not be enabled")
	}
	if got := dm.Level(100, 100); got != 1 {
		t.Errorf("Level() = %v, expected clamped 1", got)
	}
}
