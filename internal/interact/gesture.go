package interact

import (
	"math"

	"github.com/arcanaland/cardface/internal/scene"
)

// State is the phase of a drag gesture
type State int

const (
	// StateIdle no pointer is held on the card
	StateIdle State = iota
	// StatePressed the pointer is down but has not moved past the drag distance
	StatePressed
	// StateDragging the card follows the pointer
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// Gesture tracks one pointer dragging one element. It belongs to the host,
// which feeds it pointer positions every frame; the card itself only hears
// about the press and the release.
type Gesture struct {
	// Distance the pointer must travel before a press becomes a drag
	Distance float64

	state  State
	button Button
	touch  bool

	startX, startY float64
	grabX, grabY   float64
	x, y           float64
}

// Begin starts tracking a press at pointer (px, py) on an element whose
// origin is (elemX, elemY).
func (g *Gesture) Begin(ev PressEvent, px, py, elemX, elemY float64) {
	g.state = StatePressed
	g.button = ev.Button
	g.touch = ev.Touch
	g.startX, g.startY = px, py
	g.grabX, g.grabY = px-elemX, py-elemY
	g.x, g.y = elemX, elemY
}

// Move updates the pointer position and returns where the element should
// be drawn.
func (g *Gesture) Move(px, py float64) (x, y float64) {
	switch g.state {
	case StatePressed:
		if math.Hypot(px-g.startX, py-g.startY) <= g.Distance {
			return g.x, g.y
		}
		g.state = StateDragging
		fallthrough
	case StateDragging:
		g.x, g.y = px-g.grabX, py-g.grabY
	}
	return g.x, g.y
}

// End finishes the gesture. The event is reported only when the press
// turned into a drag.
func (g *Gesture) End() (DragEndEvent, bool) {
	dragged := g.state == StateDragging
	ev := DragEndEvent{X: g.x, Y: g.y, Button: g.button}
	g.Cancel()
	return ev, dragged
}

// Cancel drops the gesture without reporting it
func (g *Gesture) Cancel() {
	g.state = StateIdle
}

// State returns the current phase
func (g *Gesture) State() State {
	return g.state
}

// Active reports whether a pointer is held
func (g *Gesture) Active() bool {
	return g.state != StateIdle
}

// Touch reports whether the gesture was started by a touch
func (g *Gesture) Touch() bool {
	return g.touch
}

// Position returns the element position the gesture last computed
func (g *Gesture) Position() (x, y float64) {
	return g.x, g.y
}

// Hit reports whether (px, py), in the parent's space, lies on the card
func Hit(p scene.Props, px, py float64) bool {
	return px >= p.X && px < p.X+p.Width && py >= p.Y && py < p.Y+p.Height
}
