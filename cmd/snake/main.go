// snake is a terminal snake game on a wrapping grid.
//
// Usage:
//
//	snake                    - Start the menu (same as play)
//	snake play               - Start the menu
//	snake scores             - Show high scores
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Write logs to a file
//	--debug               - Log debug events
//	--mute                - Disable the terminal bell
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal snake game",
	Long: `Snake is a terminal snake game. The field wraps around at the edges;
the game ends when the snake runs into itself.

Available commands:
  play     - Start the menu (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the --log file, or returns io.Discard when unset.
// The TUI owns the terminal, so local play never logs to stderr.
func openLogFile() (io.Writer, func(), error) {
	if flagLogPath == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
