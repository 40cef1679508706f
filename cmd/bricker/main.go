// bricker is a brick-breaker for the terminal whose bricks carry random
// power-up strategies.
//
// Usage:
//
//	bricker list              - List game variants
//	bricker play [variant]    - Play (default: bricker)
//	bricker serve             - Start SSH server for remote play
//	bricker scores [variant]  - Show stored runs
//	bricker config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.bricker/runs.db)
//	--config <path>     - Custom YAML or TOML config
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/games/bricker"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagPerRow     int
	flagRows       int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricker",
	Short: "Bricker - break bricks, catch power-ups",
	Long: `Bricker is a terminal brick-breaker. Every brick hides a strategy:
some just break, others spawn ball packs, an extra paddle, a turbo ball
or an extra life.

Available commands:
  list     - Show game variants
  play     - Play a variant
  serve    - Start SSH server for remote play
  scores   - View stored runs
  config   - Print the effective configuration

Examples:
  bricker play
  bricker play bricker_chaos --seed 42
  bricker serve --ssh :2222
  bricker scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bricker/runs.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.IntVar(&flagPerRow, "bricks-per-row", 0, "Override bricks per row")
	pf.IntVar(&flagRows, "rows", 0, "Override brick rows")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a debug logger writing to --log-file, or a discarding
// logger. The returned closer is never nil.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "bricker",
	})
	return logger, f, nil
}

// loadConfig resolves, overrides and validates the game configuration,
// then hands it to every new game.
func loadConfig() (config.BrickerConfig, error) {
	cfg, err := config.LoadBricker(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyBrickerPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	if flagPerRow > 0 {
		cfg.Bricks.PerRow = flagPerRow
	}
	if flagRows > 0 {
		cfg.Bricks.Rows = flagRows
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	bricker.UseConfig(cfg)
	return cfg, nil
}
