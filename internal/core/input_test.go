package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if len(f.Actions) != 3 {
		t.Fatalf("expected 3 recorded actions, got %d", len(f.Actions))
	}

	dirs := f.Directions()
	if len(dirs) != 2 || dirs[0] != Up || dirs[1] != Left {
		t.Errorf("Directions() = %v, expected [up left]", dirs)
	}

	if !f.Has(ActionConfirm) {
		t.Error("Has(ActionConfirm) should be true")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(ActionQuit) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionDown) {
		t.Error("clone should keep its actions after the original is cleared")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, Up, true},
		{ActionDown, Down, true},
		{ActionLeft, Left, true},
		{ActionRight, Right, true},
		{ActionConfirm, Direction{}, false},
		{ActionQuit, Direction{}, false},
	}

	for _, tc := range tests {
		dir, ok := tc.action.Direction()
		if dir != tc.dir || ok != tc.ok {
			t.Errorf("%v.Direction() = (%v, %v), expected (%v, %v)", tc.action, dir, ok, tc.dir, tc.ok)
		}
	}
}
