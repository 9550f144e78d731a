package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(core.NewGrid(40, 26))
	if w != 82 || h != 29 {
		t.Errorf("BoardSize = %dx%d, want 82x29", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	screen := core.NewScreen(20, 10)
	frame := snake.Frame{
		Snake: []core.Cell{{X: 1, Y: 1}, {X: 0, Y: 1}},
		Food:  core.Cell{X: 2, Y: 2},
		Score: 30,
	}
	DrawBoard(screen, core.NewGrid(3, 3), frame)

	if !strings.Contains(screen.String(), "Score: 30") {
		t.Errorf("missing score line:\n%s", screen.String())
	}

	// Board is 8x6 centered on 20x10: cells start at column 7, row 4.
	tests := []struct {
		name  string
		x, y  int
		r     rune
		color core.Color
	}{
		{"head", 9, 5, '█', core.ColorSnakeHead},
		{"head right half", 10, 5, '█', core.ColorSnakeHead},
		{"body", 7, 5, '▓', core.ColorSnakeBody},
		{"food", 11, 6, '█', core.ColorFood},
		{"empty", 7, 4, ' ', core.ColorDefault},
		{"corner", 6, 3, '╭', core.ColorFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := screen.GetCell(tt.x, tt.y)
			if g.Rune != tt.r || g.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, g.Rune, g.Color, tt.r, tt.color)
			}
		})
	}
}

func TestDrawBoardTooSmall(t *testing.T) {
	screen := core.NewScreen(40, 10)
	DrawBoard(screen, core.NewGrid(40, 26), snake.Frame{})
	out := screen.String()
	if !strings.Contains(out, "Window too small") {
		t.Errorf("expected too-small notice:\n%s", out)
	}
	if !strings.Contains(out, "Need 82x29") {
		t.Errorf("expected required size:\n%s", out)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(20, 2)
	screen.DrawTextColored(0, 0, "Score: 5", core.ColorText)
	out := RenderScreen(screen)
	if !strings.Contains(out, "Score: 5") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestSoundCues(t *testing.T) {
	if got := (Bell{}).Cue(core.EventPickup); got != "\a" {
		t.Errorf("bell cue = %q, want BEL", got)
	}
	if got := (Silent{}).Cue(core.EventGameOver); got != "" {
		t.Errorf("silent cue = %q, want empty", got)
	}
}
