package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Open the start menu and play.

Controls:
  Arrows/WASD/hjkl - Steer (or move between buttons)
  Enter/Space      - Press the focused button
  Mouse            - Click a button
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 6 moves per second
  normal - 10 moves per second
  hard   - 15 moves per second

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml
  snake play --seed 42 --log snake.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, "snake")

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound tui.Sound = tui.Silent{}
	if !flagMute {
		sound = tui.Bell{}
	}

	return tui.Run(tui.AppOptions{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:  store,
		Logger: logger,
		Sound:  sound,
		Player: localPlayer(),
	})
}

// localPlayer names the local player after the OS user.
func localPlayer() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
