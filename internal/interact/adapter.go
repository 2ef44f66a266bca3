// Package interact turns pointer gestures on a card into the owner's
// OnTouch and OnMove callbacks.
package interact

import "github.com/arcanaland/cardface/internal/scene"

// Button is a mouse button, numbered like DOM MouseEvent.button
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonSecondary:
		return "secondary"
	}
	return "other"
}

// PressEvent is a touch start or a mouse button press on the card
type PressEvent struct {
	Touch  bool
	Button Button
}

// DragEndEvent carries the card's position, in its parent's coordinate
// space, once a drag gesture is released.
type DragEndEvent struct {
	X, Y   float64
	Button Button
}

// Adapter forwards the two edge events of a gesture to a card's props
type Adapter struct {
	props scene.Props
}

// NewAdapter binds an adapter to the callbacks in p
func NewAdapter(p scene.Props) *Adapter {
	return &Adapter{props: p}
}

// Press fires OnTouch for a touch or a primary-button press. Other buttons
// are ignored.
func (a *Adapter) Press(ev PressEvent) bool {
	if !ev.Touch && ev.Button != ButtonPrimary {
		return false
	}
	if a.props.OnTouch != nil {
		a.props.OnTouch()
	}
	return true
}

// DragEnd fires OnMove with the released position whichever button started
// the drag. The position is passed through untouched.
func (a *Adapter) DragEnd(ev DragEndEvent) {
	if a.props.OnMove != nil {
		a.props.OnMove(ev.X, ev.Y)
	}
}
