// Package core provides the fundamental types shared by the snake model and
// the terminal front end: grid geometry, input frames and a screen buffer.
// It has no external dependencies (especially no Bubble Tea) so that game
// logic stays pure and testable.
package core
