package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board layout constants. Each grid cell is two terminal columns wide so
// cells look roughly square.
const (
	cellCols  = 2
	hudHeight = 1
)

// BoardSize returns the terminal size needed to draw a grid with its HUD
// and border.
func BoardSize(grid core.Grid) (w, h int) {
	return grid.Width*cellCols + 2, grid.Height + 2 + hudHeight
}

// DrawBoard draws the score line, the border, the food and the snake.
func DrawBoard(dst *core.Screen, grid core.Grid, frame snake.Frame) {
	needW, needH := BoardSize(grid)
	if dst.Width() < needW || dst.Height() < needH {
		drawTooSmall(dst, needW, needH)
		return
	}

	left := (dst.Width() - needW) / 2
	top := (dst.Height() - needH) / 2

	dst.DrawTextColored(left, top, fmt.Sprintf("Score: %d", frame.Score), core.ColorText)

	border := core.NewRect(left, top+hudHeight, needW, grid.Height+2)
	dst.DrawBox(border, core.ColorFrame)

	originX, originY := border.X+1, border.Y+1
	drawCell := func(c core.Cell, r rune, color core.Color) {
		x := originX + c.X*cellCols
		for i := 0; i < cellCols; i++ {
			dst.SetColored(x+i, originY+c.Y, r, color)
		}
	}

	drawCell(frame.Food, '█', core.ColorFood)

	// Body first so the head stays visible on top.
	for i := len(frame.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(frame.Snake[i], '█', core.ColorSnakeHead)
		} else {
			drawCell(frame.Snake[i], '▓', core.ColorSnakeBody)
		}
	}
}

// drawTooSmall tells the player to enlarge the terminal.
func drawTooSmall(dst *core.Screen, needW, needH int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorDim)
}
