package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testButtons() ButtonSet {
	b := NewButtonSet(
		Button{ID: ButtonPlay, Label: "Play"},
		Button{ID: ButtonQuit, Label: "Quit"},
	)
	b.Layout(40, 5)
	return b
}

func TestButtonLayout(t *testing.T) {
	b := testButtons()
	first, second := b.Buttons()[0].Rect, b.Buttons()[1].Rect
	if first.Y != 5 {
		t.Errorf("first.Y = %d, want 5", first.Y)
	}
	if second.Y != 5+buttonHeight+buttonSpacing {
		t.Errorf("second.Y = %d, want %d", second.Y, 5+buttonHeight+buttonSpacing)
	}
	if first.X != 40-buttonWidth/2 || first.W != buttonWidth {
		t.Errorf("first = %+v", first)
	}
}

func TestButtonMouseEdgeTriggered(t *testing.T) {
	b := testButtons()
	cx, cy := b.Buttons()[1].Rect.Center()

	tests := []struct {
		name    string
		msg     tea.MouseMsg
		clicked bool
	}{
		{"motion", tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionMotion}, false},
		{"release", tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"press outside", tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, false},
		{"press inside", tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, clicked := b.HandleMouse(tt.msg)
			if clicked != tt.clicked {
				t.Errorf("clicked = %v, want %v", clicked, tt.clicked)
			}
			if clicked && id != ButtonQuit {
				t.Errorf("id = %v, want ButtonQuit", id)
			}
		})
	}

	if b.Focused().ID != ButtonQuit {
		t.Error("click should move focus to the clicked button")
	}
}

func TestButtonHover(t *testing.T) {
	b := testButtons()
	cx, cy := b.Buttons()[0].Rect.Center()
	b.HandleMouse(tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionMotion})
	if b.hover != 0 {
		t.Errorf("hover = %d, want 0", b.hover)
	}
	b.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if b.hover != -1 {
		t.Errorf("hover = %d, want -1", b.hover)
	}
}

func TestButtonMoveFocusClamps(t *testing.T) {
	b := testButtons()
	b.MoveFocus(-1)
	if b.Focused().ID != ButtonPlay {
		t.Error("focus should stay on first button")
	}
	b.MoveFocus(5)
	if b.Focused().ID != ButtonQuit {
		t.Error("focus should stop at last button")
	}
}
