package interact

import (
	"testing"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/scene"
)

type recorder struct {
	touches int
	moves   [][2]float64
}

func (r *recorder) props() scene.Props {
	return scene.Props{
		X: 10, Y: 20, Suit: card.Spades, Rank: card.Ace, Width: 100, Height: 140,
		OnTouch: func() { r.touches++ },
		OnMove:  func(x, y float64) { r.moves = append(r.moves, [2]float64{x, y}) },
	}
}

func TestPress(t *testing.T) {
	tests := []struct {
		name string
		ev   PressEvent
		want int
	}{
		{"primary", PressEvent{Button: ButtonPrimary}, 1},
		{"secondary", PressEvent{Button: ButtonSecondary}, 0},
		{"auxiliary", PressEvent{Button: ButtonAuxiliary}, 0},
		{"touch", PressEvent{Touch: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			a := NewAdapter(rec.props())

			fired := a.Press(tt.ev)
			if rec.touches != tt.want {
				t.Errorf("OnTouch called %d times, want %d", rec.touches, tt.want)
			}
			if fired != (tt.want == 1) {
				t.Errorf("Press returned %v", fired)
			}
		})
	}
}

func TestDragEndReportsAnyButton(t *testing.T) {
	for _, b := range []Button{ButtonPrimary, ButtonAuxiliary, ButtonSecondary} {
		t.Run(b.String(), func(t *testing.T) {
			rec := &recorder{}
			a := NewAdapter(rec.props())

			a.DragEnd(DragEndEvent{X: 42, Y: 17, Button: b})
			if len(rec.moves) != 1 || rec.moves[0] != [2]float64{42, 17} {
				t.Errorf("OnMove calls = %v, want [(42, 17)]", rec.moves)
			}
			if rec.touches != 0 {
				t.Error("DragEnd fired OnTouch")
			}
		})
	}
}

func TestNilCallbacks(t *testing.T) {
	a := NewAdapter(scene.Props{Suit: card.Hearts, Rank: card.Two})
	a.Press(PressEvent{Button: ButtonPrimary})
	a.DragEnd(DragEndEvent{X: 1, Y: 2})
}

func TestGestureDrag(t *testing.T) {
	g := &Gesture{Distance: 3}
	g.Begin(PressEvent{Button: ButtonPrimary}, 30, 40, 10, 20)
	if g.State() != StatePressed {
		t.Fatalf("state = %v, want pressed", g.State())
	}

	// within the drag distance the element stays put
	if x, y := g.Move(31, 41); x != 10 || y != 20 || g.State() != StatePressed {
		t.Errorf("small move: (%v, %v) %v", x, y, g.State())
	}

	// keeps the grab offset once dragging
	if x, y := g.Move(80, 60); x != 60 || y != 40 || g.State() != StateDragging {
		t.Errorf("drag move: (%v, %v) %v", x, y, g.State())
	}

	ev, ok := g.End()
	if !ok || ev.X != 60 || ev.Y != 40 || ev.Button != ButtonPrimary {
		t.Errorf("End() = %+v, %v", ev, ok)
	}
	if g.Active() {
		t.Error("gesture still active after End")
	}
}

func TestGestureClickWithoutDrag(t *testing.T) {
	g := &Gesture{Distance: 3}
	g.Begin(PressEvent{Button: ButtonSecondary}, 30, 40, 10, 20)
	g.Move(32, 40)
	if _, ok := g.End(); ok {
		t.Error("press without drag reported a drag end")
	}
}

func TestGestureEndsIntoAdapter(t *testing.T) {
	rec := &recorder{}
	p := rec.props()
	a := NewAdapter(p)
	g := &Gesture{}

	ev := PressEvent{Button: ButtonSecondary}
	a.Press(ev)
	g.Begin(ev, 50, 50, p.X, p.Y)
	g.Move(82, 47)
	if end, ok := g.End(); ok {
		a.DragEnd(end)
	}

	if rec.touches != 0 {
		t.Errorf("secondary press fired OnTouch %d times", rec.touches)
	}
	if len(rec.moves) != 1 || rec.moves[0] != [2]float64{42, 17} {
		t.Errorf("OnMove calls = %v, want [(42, 17)]", rec.moves)
	}
}

func TestHit(t *testing.T) {
	p := scene.Props{X: 10, Y: 20, Width: 100, Height: 140}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{109, 159, true},
		{110, 100, false},
		{50, 19, false},
		{9, 50, false},
	}
	for _, tt := range tests {
		if got := Hit(p, tt.x, tt.y); got != tt.want {
			t.Errorf("Hit(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
