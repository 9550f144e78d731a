// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping, screens and timers;
// the gameplay model itself lives in internal/games/snake.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer messages carry the session generation they were scheduled for,
// so timers left over from an abandoned session are ignored.

// TickMsg is sent to trigger a session tick.
type TickMsg struct {
	Gen int
}

// DebounceDoneMsg ends the pause after a button press.
type DebounceDoneMsg struct {
	Gen int
}

// SettleDoneMsg ends the pause between collision and the game-over screen.
type SettleDoneMsg struct {
	Gen int
}

// tickCmd schedules the next session tick.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// debounceCmd schedules the end of a button debounce.
func debounceCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DebounceDoneMsg{Gen: gen}
	})
}

// settleCmd schedules the game-over screen.
func settleCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SettleDoneMsg{Gen: gen}
	})
}
