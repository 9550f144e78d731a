package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func cells(pairs ...[2]int) []core.Cell {
	out := make([]core.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = core.Cell{X: p[0], Y: p[1]}
	}
	return out
}

// placed returns a snake with a fixed body and direction.
func placed(grid core.Grid, dir core.Direction, growTo int, body []core.Cell) *Snake {
	s := NewSnake(grid, DefaultInitialGrowth, DefaultTickRate)
	s.positions = body
	s.direction = dir
	s.nextDir = dir
	s.growTo = growTo
	return s
}

func TestResetState(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 26), 3, 10)

	if s.Len() != 1 || s.Head() != (core.Cell{X: 20, Y: 13}) {
		t.Errorf("expected single segment at (20,13), got %v", s.Positions())
	}
	if s.Direction() != core.Right || s.NextDirection() != core.Right {
		t.Errorf("expected right/right, got %v/%v", s.Direction(), s.NextDirection())
	}
	if s.Score() != 0 || s.GrowTo() != 3 || s.Speed() != 10 {
		t.Errorf("unexpected score/growTo/speed: %d/%d/%d", s.Score(), s.GrowTo(), s.Speed())
	}
}

func TestThreeTicksOnSmallGrid(t *testing.T) {
	s := NewSnake(core.NewGrid(5, 5), 3, 10)

	expected := [][]core.Cell{
		cells([2]int{3, 2}, [2]int{2, 2}),
		cells([2]int{4, 2}, [2]int{3, 2}, [2]int{2, 2}),
		cells([2]int{0, 2}, [2]int{4, 2}, [2]int{3, 2}),
	}

	for i, want := range expected {
		if !s.Advance() {
			t.Fatalf("tick %d: unexpected collision", i+1)
		}
		if got := s.Positions(); !reflect.DeepEqual(got, want) {
			t.Errorf("tick %d: positions = %v, expected %v", i+1, got, want)
		}
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	all := []core.Direction{core.Right, core.Left, core.Down, core.Up}

	for _, current := range all {
		for _, d := range all {
			s := placed(core.NewGrid(10, 10), current, 3, cells([2]int{5, 5}))
			s.SetDirection(d)

			reversal := d == (core.Direction{DX: -current.DX, DY: -current.DY})
			if reversal && s.NextDirection() != current {
				t.Errorf("current %v: reversal to %v should be ignored", current, d)
			}
			if !reversal && s.NextDirection() != d {
				t.Errorf("current %v: %v should be buffered, got %v", current, d, s.NextDirection())
			}
		}
	}
}

func TestReversalKeepsMovingRight(t *testing.T) {
	s := placed(core.NewGrid(5, 5), core.Right, 3, cells([2]int{2, 2}, [2]int{1, 2}, [2]int{0, 2}))

	s.SetDirection(core.Left)
	if s.NextDirection() != core.Right {
		t.Fatalf("buffered direction changed to %v", s.NextDirection())
	}

	if !s.Advance() {
		t.Fatal("unexpected collision")
	}
	want := cells([2]int{3, 2}, [2]int{2, 2}, [2]int{1, 2})
	if got := s.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("positions = %v, expected %v", got, want)
	}
}

func TestBufferedDirectionChecksCommittedDirection(t *testing.T) {
	s := placed(core.NewGrid(10, 10), core.Right, 3, cells([2]int{5, 5}, [2]int{4, 5}, [2]int{3, 5}))

	// Up then Left in the same tick: Left is checked against Right and dropped.
	s.SetDirection(core.Up)
	s.SetDirection(core.Left)
	if s.NextDirection() != core.Up {
		t.Errorf("NextDirection() = %v, expected up", s.NextDirection())
	}
}

func TestSingleSegmentNeverCollides(t *testing.T) {
	// A 1x1 grid maps every move back onto the head itself.
	s := NewSnake(core.NewGrid(1, 1), 1, 10)
	for i := 0; i < 5; i++ {
		if !s.Advance() {
			t.Fatalf("length-1 snake collided on tick %d", i+1)
		}
	}
}

func TestLengthRule(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 26), 3, 10)
	turns := map[int]core.Direction{5: core.Down, 9: core.Left, 14: core.Up, 30: core.Right}

	for tick := 0; tick < 60; tick++ {
		if d, ok := turns[tick]; ok {
			s.SetDirection(d)
		}
		if tick == 20 || tick == 40 {
			s.Eat(DefaultPickupReward)
		}

		oldLen, oldTail := s.Len(), s.Positions()[s.Len()-1]
		if !s.Advance() {
			t.Fatalf("tick %d: unexpected collision", tick)
		}

		want := min(oldLen+1, s.GrowTo())
		if s.Len() != want {
			t.Fatalf("tick %d: length = %d, expected %d", tick, s.Len(), want)
		}
		if oldLen >= s.GrowTo() && s.Occupies(oldTail) {
			t.Fatalf("tick %d: tail %v should have been trimmed", tick, oldTail)
		}
	}
}

func TestCollisionWithBody(t *testing.T) {
	body := cells([2]int{1, 1}, [2]int{2, 1}, [2]int{2, 2}, [2]int{1, 2}, [2]int{0, 2})
	s := placed(core.NewGrid(5, 5), core.Left, 5, body)

	s.SetDirection(core.Down)
	if s.Advance() {
		t.Fatal("moving into the body should collide")
	}
	if !reflect.DeepEqual(s.Positions(), body) {
		t.Errorf("body changed on collision: %v", s.Positions())
	}
}

func TestCollisionWithVacatingTail(t *testing.T) {
	// Square loop: the head's next cell is the tail that would move away.
	body := cells([2]int{1, 1}, [2]int{2, 1}, [2]int{2, 2}, [2]int{1, 2})
	s := placed(core.NewGrid(5, 5), core.Left, 4, body)

	s.SetDirection(core.Down)
	if s.Advance() {
		t.Error("moving into the tail cell should still collide")
	}
}

func TestEatRaisesTarget(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10), 3, 10)
	s.Eat(10)
	s.Eat(10)

	if s.Score() != 20 || s.GrowTo() != 5 {
		t.Errorf("score/growTo = %d/%d, expected 20/5", s.Score(), s.GrowTo())
	}
}
