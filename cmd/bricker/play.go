package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker"
	"github.com/vovakirdan/bricker/internal/platform/tui"
	"github.com/vovakirdan/bricker/internal/registry"
	"github.com/vovakirdan/bricker/internal/storage"
)

var flagDebug bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The default variant is "bricker".

Controls:
  Left/A, Right/D  - Move paddles
  Y/Enter, N       - Answer the play-again prompt
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One more life, faster serves as bricks fall
  normal - Configured lives, faster serves as bricks fall
  hard   - One less life, longer turbo
  fixed  - Constant serve speed

Examples:
  bricker play
  bricker play bricker_chaos
  bricker play --difficulty hard --rows 4
  bricker play --config ./my-bricker.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable the W key to force a win")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "bricker"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bricker list' to see variants", gameID)
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	bricker.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Debug:  flagDebug,
	})
}
