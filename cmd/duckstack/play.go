package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duck-stack/internal/core"
	"github.com/vovakirdan/duck-stack/internal/platform/tui"
	"github.com/vovakirdan/duck-stack/internal/registry"
	"github.com/vovakirdan/duck-stack/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Duck Stack.

Controls:
  Left/Right, A/D  - Move the duck
  Space/Down       - Drop
  Mouse drag       - Move the duck, release to drop
  Enter            - Start / continue after level up
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 0
  normal - Start at level 2
  hard   - Start at level 5

Examples:
  duckstack play
  duckstack play --difficulty hard
  duckstack play --seed misty-lagoon
  duckstack play --config ./my-duckstack.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		ViewportW: width * core.CellPixels,
		TickRate:  flagFPS,
		Seed:      seed(),
	}

	store, closeStore := openHighScoreStore()
	defer closeStore()

	if err := tui.Run(game, store, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openHighScoreStore opens the score database, falling back to the per-user
// data directory. The game still runs when both fail.
func openHighScoreStore() (storage.HighScoreStore, func()) {
	db, err := storage.Open(flagDBPath)
	if err == nil {
		return db, func() { db.Close() }
	}
	logger.Warn("could not open scores database", "error", err)

	fs, err := storage.OpenFileStore(gameID)
	if err == nil {
		return fs, func() {}
	}
	logger.Warn("could not open high score file, scores will not be saved", "error", err)

	return nil, func() {}
}
