package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Button sizes in terminal cells.
const (
	buttonWidth   = 22
	buttonHeight  = 3
	buttonSpacing = 1
)

// ButtonID identifies what a button does.
type ButtonID int

const (
	ButtonPlay ButtonID = iota
	ButtonScores
	ButtonMenu
	ButtonQuit
)

// Button is a clickable, focusable label.
type Button struct {
	ID    ButtonID
	Label string
	Rect  core.Rect
}

// ButtonSet is a vertical stack of buttons with one keyboard focus and an
// optional mouse hover.
type ButtonSet struct {
	buttons []Button
	focus   int
	hover   int // -1 when the pointer is over no button
}

// NewButtonSet creates a stack of buttons; layout is set by Layout.
func NewButtonSet(buttons ...Button) ButtonSet {
	return ButtonSet{buttons: buttons, hover: -1}
}

// Layout stacks the buttons centered horizontally on cx, starting at top.
func (b *ButtonSet) Layout(cx, top int) {
	for i := range b.buttons {
		y := top + i*(buttonHeight+buttonSpacing)
		b.buttons[i].Rect = core.NewRect(cx-buttonWidth/2, y, buttonWidth, buttonHeight)
	}
}

// Buttons returns the buttons in display order.
func (b ButtonSet) Buttons() []Button {
	return b.buttons
}

// Focused returns the button under keyboard focus.
func (b ButtonSet) Focused() Button {
	return b.buttons[b.focus]
}

// MoveFocus shifts keyboard focus by delta, clamped to the stack.
func (b *ButtonSet) MoveFocus(delta int) {
	b.focus = core.Clamp(b.focus+delta, 0, len(b.buttons)-1)
}

// HandleMouse updates hover state and reports a click.
// Only the press edge of the left button counts; holding or releasing does
// not click again.
func (b *ButtonSet) HandleMouse(msg tea.MouseMsg) (ButtonID, bool) {
	b.hover = b.hit(msg.X, msg.Y)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	if b.hover < 0 {
		return 0, false
	}
	b.focus = b.hover
	return b.buttons[b.hover].ID, true
}

// hit returns the index of the button at (x, y), or -1.
func (b ButtonSet) hit(x, y int) int {
	for i, btn := range b.buttons {
		if btn.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Draw renders the buttons; the focused or hovered one is highlighted.
func (b ButtonSet) Draw(dst *core.Screen) {
	for i, btn := range b.buttons {
		color := core.ColorText
		if i == b.hover || (b.hover < 0 && i == b.focus) {
			color = core.ColorHover
		}
		dst.DrawBox(btn.Rect, color)

		cx, cy := btn.Rect.Center()
		label := btn.Label
		if i == b.focus {
			label = "> " + label + " <"
		}
		dst.DrawTextColored(cx-len(label)/2, cy, label, color)
	}
}
