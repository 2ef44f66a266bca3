// Package glyph turns suit glyph path data and card frames into outlines
// that the rasterizer and the on-screen viewer can replay.
package glyph

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
)

// Pen receives an outline in absolute coordinates. ebiten's vector.Path
// satisfies it directly.
type Pen interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(x1, y1, x2, y2 float32)
	CubicTo(x1, y1, x2, y2, x3, y3 float32)
	Close()
}

// Outline is a parsed path in its own coordinate space
type Outline struct {
	path ppath.Path
}

// Parse reads SVG path data. Elliptical arcs are rejected: no suit glyph
// uses them and neither pen can draw them.
func Parse(data string) (Outline, error) {
	p, err := ppath.ParseSVGPath(data)
	if err != nil {
		return Outline{}, fmt.Errorf("invalid path data: %w", err)
	}

	for sc := p.Scanner(); sc.Scan(); {
		if sc.Cmd() == ppath.ArcTo {
			return Outline{}, fmt.Errorf("invalid path data: unsupported arc command")
		}
	}
	return Outline{path: p}, nil
}

// RoundedRect outlines a w x h rectangle at (x, y) with corner radius r
func RoundedRect(x, y, w, h, r float64) Outline {
	return Outline{path: ppath.RoundedRectangle(float32(x), float32(y), float32(w), float32(h), float32(r))}
}

// Trace replays the outline into pen, scaling every point by scale and
// then translating it by (tx, ty).
func (o Outline) Trace(pen Pen, tx, ty, scale float64) {
	at := func(v math32.Vector2) (float32, float32) {
		return float32(tx + float64(v.X)*scale), float32(ty + float64(v.Y)*scale)
	}

	for sc := o.path.Scanner(); sc.Scan(); {
		switch sc.Cmd() {
		case ppath.MoveTo:
			pen.MoveTo(at(sc.End()))
		case ppath.LineTo:
			pen.LineTo(at(sc.End()))
		case ppath.QuadTo:
			cx, cy := at(sc.CP1())
			x, y := at(sc.End())
			pen.QuadTo(cx, cy, x, y)
		case ppath.CubeTo:
			c1x, c1y := at(sc.CP1())
			c2x, c2y := at(sc.CP2())
			x, y := at(sc.End())
			pen.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case ppath.Close:
			pen.Close()
		}
	}
}
