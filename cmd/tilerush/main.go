// tilerush is a lane-tapping reflex game for the terminal.
//
// Usage:
//
//	tilerush play [mode]     - Play a round (endless or classic)
//	tilerush menu            - Start the interactive mode picker
//	tilerush types           - List the tile types in the sprite pack
//	tilerush scores [mode]   - Show the best runs
//	tilerush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.tilerush/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilerush",
	Short: "Tilerush - tap the right tiles before they cross the line",
	Long: `Tilerush is a terminal rhythm-reflex game: tiles fall down lanes,
one of each row is the one you are hunting, and you tap its lane key
before it crosses the hit line.

Available commands:
  play     - Play a round directly
  menu     - Interactive mode picker
  types    - List the tile types in the sprite pack
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  tilerush play endless
  tilerush play classic --difficulty hard
  tilerush menu
  tilerush serve --ssh :2222
  tilerush scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilerush/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
