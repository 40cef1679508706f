package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadBricker loads bricker configuration.
// Search order: customPath -> ~/.bricker/configs/bricker.yaml -> ./configs/bricker.yaml -> embedded default.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Keys missing from a file keep their default values.
func LoadBricker(customPath string) (BrickerConfig, error) {
	cfg := DefaultBrickerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bricker.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(userCfgPath, data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultBrickerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bricker.yaml"); err == nil {
		if err := decode("configs/bricker.yaml", data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultBrickerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBrickerYAML, &cfg); err != nil {
		return DefaultBrickerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadAndValidate loads the configuration, applies a preset and validates the result.
func LoadAndValidate(customPath string, preset DifficultyPreset) (BrickerConfig, error) {
	cfg, err := LoadBricker(customPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		ApplyBrickerPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg BrickerConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(path string, data []byte, cfg *BrickerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricker", "configs", filename)
}

// ApplyBrickerPreset modifies the config based on a difficulty preset.
// Hard also tightens the life budget and lengthens turbo mode.
func ApplyBrickerPreset(cfg *BrickerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Lives.Max = max(cfg.Lives.Max, cfg.Lives.Start+1)
		cfg.Lives.Start++
	case DifficultyHard:
		if cfg.Lives.Start > 1 {
			cfg.Lives.Start--
		}
		cfg.PowerUps.TurboThreshold += 2
	}
}
