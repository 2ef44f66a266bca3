// Package scene composes a playing card into a tree of drawing primitives.
//
// Render is a pure function of its inputs: the host redraws by calling it
// again whenever the card's props change. The tree holds no callbacks, so
// two renders of the same props compare equal with reflect.DeepEqual.
package scene

import (
	"fmt"
	"math"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/face"
	"github.com/arcanaland/cardface/internal/theme"
)

// Kind identifies the primitive a Node draws
type Kind string

const (
	KindGroup Kind = "group"
	KindRect  Kind = "rect"
	KindPath  Kind = "path"
	KindText  Kind = "text"
)

// Node is one primitive of the visual tree. Coordinates of children are
// relative to their parent group.
type Node struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`

	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// rect
	Width        float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height       float64 `json:"height,omitempty" yaml:"height,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty"`

	// path
	Data   string  `json:"data,omitempty" yaml:"data,omitempty"`
	Scale  float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Stroke string  `json:"stroke,omitempty" yaml:"stroke,omitempty"`

	// text
	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontStyle  string  `json:"fontStyle,omitempty" yaml:"fontStyle,omitempty"`
	Rotation   float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`

	Fill string `json:"fill,omitempty" yaml:"fill,omitempty"`

	// group
	Draggable bool   `json:"draggable,omitempty" yaml:"draggable,omitempty"`
	Children  []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Props is everything the owner of a card supplies to draw it and to hear
// about interaction with it.
type Props struct {
	X, Y          float64
	Suit          card.Suit
	Rank          card.Rank
	Width, Height float64

	// OnTouch fires when the card is touched or pressed with the primary button
	OnTouch func()
	// OnMove fires after a drag with the card's new position in the
	// parent's coordinate space
	OnMove func(x, y float64)
}

// Card returns the suit and rank as a card value
func (p Props) Card() card.Card {
	return card.Card{Suit: p.Suit, Rank: p.Rank}
}

// CheckSize reports a card size that cannot be drawn: zero, negative,
// infinite or NaN.
func (p Props) CheckSize() error {
	for _, v := range []float64{p.Width, p.Height} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid card size %vx%v: width and height must be positive", p.Width, p.Height)
		}
	}
	return nil
}

// Render builds the visual tree for one card. Unknown suits or ranks panic
// with a *face.ConfigError.
func Render(p Props, th *theme.Theme) Node {
	if th == nil {
		th = theme.Default()
	}

	color := face.SuitColor(p.Suit)
	label := face.RankLabel(p.Rank)
	bw := th.Card.BorderWidth
	offset := th.Label.Offset

	children := []Node{
		{
			Kind:         KindRect,
			Key:          "border",
			Width:        p.Width,
			Height:       p.Height,
			Fill:         th.Card.BorderColor,
			CornerRadius: th.Card.CornerRadius,
		},
		{
			Kind:         KindRect,
			Key:          "face",
			X:            bw,
			Y:            bw,
			Width:        p.Width - 2*bw,
			Height:       p.Height - 2*bw,
			Fill:         th.Card.FaceColor,
			CornerRadius: th.Card.InnerCornerRadius,
		},
	}

	children = append(children, pips(p)...)

	children = append(children,
		labelNode(th, "label-top", label, color, offset, offset, 0),
		labelNode(th, "label-bottom", label, color, p.Width-offset, p.Height-offset, 180),
	)

	return Node{
		Kind:      KindGroup,
		Key:       p.Card().Code(),
		X:         p.X,
		Y:         p.Y,
		Draggable: true,
		Children:  children,
	}
}

func pips(p Props) []Node {
	color := face.SuitColor(p.Suit)
	data := face.SuitGlyph(p.Suit)
	scale := face.GlyphScale(p.Width, p.Rank)

	layout := face.Layout(p.Rank)
	nodes := make([]Node, 0, len(layout))
	for i, pos := range layout {
		x, y := face.Place(pos, p.Width, p.Height)
		nodes = append(nodes, Node{
			Kind:   KindPath,
			Key:    fmt.Sprintf("pip-%d", i),
			X:      x,
			Y:      y,
			Scale:  scale,
			Fill:   color,
			Stroke: color,
			Data:   data,
		})
	}
	return nodes
}

func labelNode(th *theme.Theme, key, text, color string, x, y, rotation float64) Node {
	return Node{
		Kind:       KindText,
		Key:        key,
		X:          x,
		Y:          y,
		Rotation:   rotation,
		Text:       text,
		FontFamily: th.Label.FontFamily,
		FontSize:   th.Label.FontSize,
		FontStyle:  th.Label.FontStyle,
		Fill:       color,
	}
}

// Extent returns the far corner of the node's box in its parent's space.
// Only groups and rects have an extent; other nodes return their origin.
func (n Node) Extent() (x, y float64) {
	x, y = n.X+n.Width, n.Y+n.Height
	for _, c := range n.Children {
		cx, cy := c.Extent()
		if n.X+cx > x {
			x = n.X + cx
		}
		if n.Y+cy > y {
			y = n.Y + cy
		}
	}
	return x, y
}

// Walk visits the node and its descendants depth first. The origin passed
// with each node is the absolute position its X and Y are relative to.
func (n Node) Walk(fn func(n Node, originX, originY float64)) {
	n.walk(0, 0, fn)
}

func (n Node) walk(ox, oy float64, fn func(Node, float64, float64)) {
	fn(n, ox, oy)
	if n.Kind != KindGroup {
		return
	}
	for _, c := range n.Children {
		c.walk(ox+n.X, oy+n.Y, fn)
	}
}
