// Package viewer hosts cards in an ebiten window. It plays the owner role:
// it keeps each card's position, hands the card its props every frame and
// reacts to OnTouch (raise the card) and OnMove (store the new position).
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/glyph"
	"github.com/arcanaland/cardface/internal/interact"
	"github.com/arcanaland/cardface/internal/paint"
	"github.com/arcanaland/cardface/internal/scene"
	"github.com/arcanaland/cardface/internal/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// debug font cell size
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	feltColor     = color.RGBA{0x1d, 0x5c, 0x36, 0xff}
)

func init() {
	whiteImage.Fill(color.White)
}

// Options configures the window
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	CardWidth    float64
	CardHeight   float64
	DragDistance float64
	Theme        *theme.Theme
	Logger       *zap.Logger
}

type placed struct {
	card card.Card
	x, y float64
}

// Game implements ebiten.Game
type Game struct {
	opts  Options
	cards []*placed // back to front

	gesture interact.Gesture
	active  *placed
	button  ebiten.MouseButton
	touchID ebiten.TouchID

	paths  map[string]glyph.Outline
	labels map[string]*ebiten.Image
}

// New lays the cards out in rows across the window
func New(cards []card.Card, opts Options) *Game {
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CardWidth <= 0 {
		opts.CardWidth = opts.Theme.Card.Width
	}
	if opts.CardHeight <= 0 {
		opts.CardHeight = opts.Theme.Card.Height
	}

	g := &Game{
		opts:    opts,
		gesture: interact.Gesture{Distance: opts.DragDistance},
		paths:   make(map[string]glyph.Outline),
		labels:  make(map[string]*ebiten.Image),
	}

	const margin = 20.0
	x, y := margin, margin
	for _, c := range cards {
		if x+opts.CardWidth > float64(opts.ScreenWidth) && x > margin {
			x, y = margin, y+opts.CardHeight+margin
		}
		g.cards = append(g.cards, &placed{card: c, x: x, y: y})
		x += opts.CardWidth + margin
	}

	return g
}

// Run opens the window and blocks until it is closed
func Run(g *Game) error {
	ebiten.SetWindowSize(g.opts.ScreenWidth, g.opts.ScreenHeight)
	ebiten.SetWindowTitle("cardface")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// props hands a card its render input and the owner's callbacks
func (g *Game) props(p *placed) scene.Props {
	return scene.Props{
		X:      p.x,
		Y:      p.y,
		Suit:   p.card.Suit,
		Rank:   p.card.Rank,
		Width:  g.opts.CardWidth,
		Height: g.opts.CardHeight,
		OnTouch: func() {
			g.raise(p)
			g.opts.Logger.Debug("card touched", zap.String("card", p.card.Code()))
		},
		OnMove: func(x, y float64) {
			p.x, p.y = x, y
			g.opts.Logger.Info("card moved",
				zap.String("card", p.card.Code()),
				zap.Float64("x", x),
				zap.Float64("y", y))
		},
	}
}

func (g *Game) raise(p *placed) {
	for i, c := range g.cards {
		if c == p {
			g.cards = append(append(g.cards[:i:i], g.cards[i+1:]...), p)
			return
		}
	}
}

func (g *Game) topmostAt(x, y float64) *placed {
	for i := len(g.cards) - 1; i >= 0; i-- {
		if interact.Hit(g.props(g.cards[i]), x, y) {
			return g.cards[i]
		}
	}
	return nil
}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button interact.Button
}{
	{ebiten.MouseButtonLeft, interact.ButtonPrimary},
	{ebiten.MouseButtonMiddle, interact.ButtonAuxiliary},
	{ebiten.MouseButtonRight, interact.ButtonSecondary},
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if g.gesture.Active() {
		g.track()
		return nil
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		if g.press(interact.PressEvent{Touch: true}, float64(x), float64(y)) {
			g.touchID = ids[0]
		}
		return nil
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.ebiten) {
			x, y := ebiten.CursorPosition()
			if g.press(interact.PressEvent{Button: mb.button}, float64(x), float64(y)) {
				g.button = mb.ebiten
			}
			return nil
		}
	}

	return nil
}

func (g *Game) press(ev interact.PressEvent, x, y float64) bool {
	p := g.topmostAt(x, y)
	if p == nil {
		return false
	}

	g.opts.Logger.Debug("press",
		zap.String("card", p.card.Code()),
		zap.Bool("touch", ev.Touch),
		zap.Stringer("button", ev.Button))

	interact.NewAdapter(g.props(p)).Press(ev)
	g.gesture.Begin(ev, x, y, p.x, p.y)
	g.active = p
	return true
}

// track follows the held pointer and finishes the gesture on release
func (g *Game) track() {
	var x, y int
	released := false

	if g.gesture.Touch() {
		if inpututil.IsTouchJustReleased(g.touchID) {
			released = true
			x, y = inpututil.TouchPositionInPreviousTick(g.touchID)
		} else {
			x, y = ebiten.TouchPosition(g.touchID)
		}
	} else {
		x, y = ebiten.CursorPosition()
		released = !ebiten.IsMouseButtonPressed(g.button)
	}

	if !released {
		g.gesture.Move(float64(x), float64(y))
		return
	}

	p := g.active
	g.active = nil
	if ev, ok := g.gesture.End(); ok {
		interact.NewAdapter(g.props(p)).DragEnd(ev)
	}
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(feltColor)

	for _, p := range g.cards {
		props := g.props(p)
		if p == g.active && g.gesture.State() == interact.StateDragging {
			props.X, props.Y = g.gesture.Position()
		}

		if err := g.drawNode(screen, scene.Render(props, g.opts.Theme)); err != nil {
			g.opts.Logger.Error("draw failed", zap.String("card", p.card.Code()), zap.Error(err))
		}
	}
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) drawNode(dst *ebiten.Image, root scene.Node) error {
	var err error
	root.Walk(func(n scene.Node, ox, oy float64) {
		if err != nil {
			return
		}

		switch n.Kind {
		case scene.KindRect:
			var c color.RGBA
			if c, err = paint.Parse(n.Fill); err == nil {
				drawOutline(dst, glyph.RoundedRect(ox+n.X, oy+n.Y, n.Width, n.Height, n.CornerRadius), 0, 0, 1, 0, c, c)
			}

		case scene.KindPath:
			var c color.RGBA
			if c, err = paint.Parse(n.Fill); err != nil {
				return
			}
			p, ok := g.paths[n.Data]
			if !ok {
				if p, err = glyph.Parse(n.Data); err != nil {
					return
				}
				g.paths[n.Data] = p
			}
			// a stroke is one path unit wide
			stroke, strokeWidth := c, 0.0
			if n.Stroke != "" {
				if stroke, err = paint.Parse(n.Stroke); err != nil {
					return
				}
				strokeWidth = n.Scale
			}
			drawOutline(dst, p, ox+n.X, oy+n.Y, n.Scale, strokeWidth, c, stroke)

		case scene.KindText:
			var c color.RGBA
			if c, err = paint.Parse(n.Fill); err == nil {
				g.drawLabel(dst, n, ox, oy, c)
			}

		case scene.KindGroup:

		default:
			err = fmt.Errorf("cannot draw node kind %q", n.Kind)
		}
	})
	return err
}

// drawOutline fills o, scaled and placed at (tx, ty), and strokes it
// strokeWidth wide when that is positive.
func drawOutline(dst *ebiten.Image, o glyph.Outline, tx, ty, scale, strokeWidth float64, fill, stroke color.RGBA) {
	var vp vector.Path
	o.Trace(&vp, tx, ty, scale)

	vs, is := vp.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, fill)

	if strokeWidth > 0 {
		vs, is = vp.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(strokeWidth),
			LineJoin: vector.LineJoinRound,
		})
		drawVertices(dst, vs, is, stroke)
	}
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// drawLabel draws corner text with the debug font, scaled to the font size
// and tinted with the suit colour.
func (g *Game) drawLabel(dst *ebiten.Image, n scene.Node, ox, oy float64, c color.RGBA) {
	img, ok := g.labels[n.Text]
	if !ok {
		img = ebiten.NewImage(len(n.Text)*debugGlyphW+1, debugGlyphH)
		ebitenutil.DebugPrintAt(img, n.Text, 0, 0)
		g.labels[n.Text] = img
	}

	k := n.FontSize / debugGlyphH
	if k <= 0 {
		k = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Rotate(n.Rotation * math.Pi / 180)
	op.GeoM.Translate(ox+n.X, oy+n.Y)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear

	dst.DrawImage(img, op)
	if n.FontStyle == "bold" {
		op.GeoM.Translate(math.Cos(n.Rotation*math.Pi/180), math.Sin(n.Rotation*math.Pi/180))
		dst.DrawImage(img, op)
	}
}
