// duckstack is a duck-stacking game for the terminal.
//
// Usage:
//
//	duckstack play          - Play the game
//	duckstack sim           - Run a headless game with the autoplayer
//	duckstack levels        - Print the generated level configs for a seed
//	duckstack scores        - Show high scores
//	duckstack board         - Browse high scores in a table
//	duckstack list          - List registered games
//	duckstack serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set the level seed (default: a random readable seed)
//	--db <path>           - Set database path (default: ~/.duckstack/scores.db)
//	--config <path>       - Use a custom tuning YAML
//	--difficulty <preset> - Start level preset: easy, normal, hard
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-stack/internal/config"
	"github.com/vovakirdan/duck-stack/internal/games/duckstack"
	"github.com/vovakirdan/duck-stack/internal/rng"
)

const gameID = "duckstack"

var (
	// Global flags
	flagFPS        int
	flagSeed       string
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "duckstack",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duckstack",
	Short: "Duck Stack - stack ducks in your terminal",
	Long: `Duck Stack is a terminal stacking game. Drop ducks on the tower,
land them close to center, merge them into the base and climb the levels.

Available commands:
  play     - Play the game
  sim      - Headless deterministic run with the autoplayer
  levels   - Show the level configs a seed generates
  scores   - View high scores
  board    - Browse high scores interactively
  list     - Show registered games
  serve    - Start SSH server for remote play

Examples:
  duckstack play
  duckstack play --seed brave-pond-4821 --difficulty hard
  duckstack sim --seed test-001 --ticks 5000
  duckstack levels --seed test-001 -n 8
  duckstack serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		// Games fall back to defaults on a bad file, so report it here.
		if flagConfig != "" {
			if _, err := config.Load(flagConfig); err != nil {
				return err
			}
		}
		duckstack.SetConfigPath(flagConfig)
		duckstack.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Level seed (empty = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duckstack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// seed returns the --seed flag, or a fresh readable seed.
func seed() string {
	if flagSeed != "" {
		return flagSeed
	}
	return rng.NewSeed(time.Now().UnixNano())
}
