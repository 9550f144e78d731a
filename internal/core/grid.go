package core

import "fmt"

// Cell is a single discrete grid position.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four movement directions. Y grows downwards.
var (
	Right = Direction{DX: 1, DY: 0}
	Left  = Direction{DX: -1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Up    = Direction{DX: 0, DY: -1}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Grid is the play field. It is a torus: stepping off one edge re-enters on
// the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions in cells.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// GridFromWindow derives a grid from a window size and a cell size in pixels,
// e.g. 800x530 with 20px cells gives 40x26.
func GridFromWindow(windowW, windowH, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{Width: windowW / cellSize, Height: windowH / cellSize}
}

// Wrap returns the cell reached by moving one step from c in direction d.
func (g Grid) Wrap(c Cell, d Direction) Cell {
	return Cell{
		X: mod(c.X+d.DX, g.Width),
		Y: mod(c.Y+d.DY, g.Height),
	}
}

// Center returns the middle cell (rounded down).
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether c lies on the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// mod is a modulo whose result is always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
