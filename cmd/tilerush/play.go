package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tilerush/tilerush/internal/catalog"
	"github.com/tilerush/tilerush/internal/config"
	"github.com/tilerush/tilerush/internal/core"
	"github.com/tilerush/tilerush/internal/platform/tui"
	"github.com/tilerush/tilerush/internal/storage"
)

var (
	flagConfig     string
	flagSprites    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round in the given mode (endless or classic). With no
argument the mode comes from the config file.

Controls:
  Lane keys  - Tap a lane (default: d f j k)
  P          - Pause
  R          - Restart (after the round ends)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentler ramp
  normal - The configured speeds as-is
  hard   - Faster start, steeper ramp
  fixed  - No ramp, constant speed

Examples:
  tilerush play
  tilerush play endless --difficulty easy
  tilerush play classic
  tilerush play endless --config ./my-tilerush.yaml
  tilerush play endless --sprites ./my-pack.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite pack YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGame resolves config, difficulty, and catalog for a round. Shared
// by play and menu.
func loadGame() (config.GameConfig, *catalog.Catalog, error) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.KnownPreset(preset) {
			return config.GameConfig{}, nil, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
		}
		gameCfg = config.ApplyPreset(gameCfg, preset)
	}

	if err := config.Validate(gameCfg); err != nil {
		return config.GameConfig{}, nil, fmt.Errorf("invalid config: %w", err)
	}

	spritePath := flagSprites
	if spritePath == "" {
		spritePath = gameCfg.SpritePack
	}
	cat, err := catalog.Load(spritePath, time.Now().UnixNano())
	if err != nil {
		return config.GameConfig{}, nil, fmt.Errorf("loading sprite pack: %w", err)
	}
	if err := cat.Preload(gameCfg.TileTypes()); err != nil {
		return config.GameConfig{}, nil, err
	}

	return gameCfg, cat, nil
}

// terminalRuntime builds a runtime config from the current terminal size.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, cat, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 {
		mode := config.Mode(args[0])
		if mode != config.ModeEndless && mode != config.ModeClassic {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q (endless, classic)\n", args[0])
			os.Exit(1)
		}
		gameCfg.Mode = mode
		// The mode switch may leave the other mode's block unvalidated
		if err := config.Validate(gameCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid config for mode %s: %v\n", mode, err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the round still works
		store = nil
	}

	runErr := tui.Run(gameCfg, cat, store, terminalRuntime())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running round: %v\n", runErr)
		os.Exit(1)
	}
}
