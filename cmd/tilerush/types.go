package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilerush/tilerush/internal/catalog"
)

var flagTypesSprites string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the tile types in the sprite pack",
	Long: `Shows every tile type the sprite pack provides, with its variant
count. Any of these can be the target or appear in other_types in the
game config.`,
	Run: runTypes,
}

func init() {
	typesCmd.Flags().StringVar(&flagTypesSprites, "sprites", "", "Path to custom sprite pack YAML")
}

func runTypes(cmd *cobra.Command, args []string) {
	cat, err := catalog.Load(flagTypesSprites, time.Now().UnixNano())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprite pack: %v\n", err)
		os.Exit(1)
	}

	names := cat.Types()
	if len(names) == 0 {
		fmt.Println("No tile types available.")
		return
	}

	fmt.Println("Available tile types:")
	fmt.Println()

	maxNameLen := 4 // "Type" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Type", "Variants")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "--------")

	for _, name := range names {
		fmt.Printf("  %-*s  %d\n", maxNameLen, name, cat.VariantCount(name))
	}

	fmt.Println()
	fmt.Println("Set 'target' in the config to the type you want to hunt.")
}
