package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single pickup on the grid.
type Food struct {
	grid     core.Grid
	rng      *rand.Rand
	position core.Cell
}

// NewFood creates food and places it on a cell not in occupied.
func NewFood(grid core.Grid, rng *rand.Rand, occupied []core.Cell) *Food {
	f := &Food{grid: grid, rng: rng}
	f.RandomizePosition(occupied)
	return f
}

// RandomizePosition moves the food to a uniformly chosen free cell.
// If every cell is occupied the position is kept and false is returned.
func (f *Food) RandomizePosition(occupied []core.Cell) bool {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	free := make([]core.Cell, 0, max(0, f.grid.Area()-len(taken)))
	for x := 0; x < f.grid.Width; x++ {
		for y := 0; y < f.grid.Height; y++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return false
	}
	f.position = free[f.rng.Intn(len(free))]
	return true
}

// Position returns the food cell.
func (f *Food) Position() core.Cell {
	return f.position
}
