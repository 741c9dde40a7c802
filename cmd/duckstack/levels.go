package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-stack/internal/games/duckstack"
)

var flagLevelCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level configs a seed generates",
	Long: `Print the first N level configs generated for a seed, together with
the difficulty curve of each level.

Examples:
  duckstack levels --seed test-001
  duckstack levels --seed misty-lagoon -n 12`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVarP(&flagLevelCount, "count", "n", 5, "Number of levels to print")
}

func runLevels(cmd *cobra.Command, _ []string) {
	gen := duckstack.NewLevelGenerator(seed())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Levels for seed %q\n\n", gen.Seed())
	fmt.Fprintf(out, "  %-5s  %-22s  %-7s  %-7s  %-8s  %-9s  %-6s  %s\n",
		"Level", "Name", "Primary", "Second", "Spawn", "AutoDrop", "Wobble", "Merges")
	fmt.Fprintf(out, "  %-5s  %-22s  %-7s  %-7s  %-8s  %-9s  %-6s  %s\n",
		"-----", "----", "-------", "------", "-----", "--------", "------", "------")

	for _, lvl := range gen.Levels(flagLevelCount) {
		fmt.Fprintf(out, "  %-5d  %-22s  %-7s  %-7s  %-8s  %-9s  %-6.2f  %d\n",
			lvl.Index,
			lvl.Name,
			lvl.Primary,
			lvl.Secondary,
			fmt.Sprintf("%.0fms", lvl.SpawnIntervalMs),
			fmt.Sprintf("%.0fms", duckstack.AutoDropMs(lvl.Index)),
			lvl.WobbleMultiplier,
			duckstack.MergesNeeded(lvl.Index),
		)
	}
}
