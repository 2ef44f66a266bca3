// Package raster draws a scene tree into an RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/arcanaland/cardface/internal/glyph"
	"github.com/arcanaland/cardface/internal/paint"
	"github.com/arcanaland/cardface/internal/scene"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var labelFace = basicfont.Face7x13

// Render draws root into a transparent image sized to its extent times
// scale. Scale 1 maps one scene unit to one pixel.
func Render(root scene.Node, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v", scale)
	}

	ex, ey := root.Extent()
	w, h := int(math.Ceil(ex*scale)), int(math.Ceil(ey*scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scene has empty extent %vx%v", ex, ey)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	r := &renderer{dst: dst, scale: scale}

	root.Walk(func(n scene.Node, ox, oy float64) {
		if r.err == nil {
			r.err = r.draw(n, ox, oy)
		}
	})
	if r.err != nil {
		return nil, r.err
	}

	return dst, nil
}

type renderer struct {
	dst   *image.RGBA
	scale float64
	err   error
}

func (r *renderer) draw(n scene.Node, ox, oy float64) error {
	switch n.Kind {
	case scene.KindGroup:
		return nil

	case scene.KindRect:
		c, err := paint.Parse(n.Fill)
		if err != nil {
			return err
		}
		outline := glyph.RoundedRect(ox+n.X, oy+n.Y, n.Width, n.Height, n.CornerRadius)
		r.fill(outline, 0, 0, 1, 0, c)

	case scene.KindPath:
		c, err := paint.Parse(n.Fill)
		if err != nil {
			return err
		}
		p, err := glyph.Parse(n.Data)
		if err != nil {
			return fmt.Errorf("pip %s: %w", n.Key, err)
		}
		// A stroke is one path unit wide, so it reaches half a unit past
		// the outline. The fill then covers its inner half.
		if n.Stroke != "" {
			sc, err := paint.Parse(n.Stroke)
			if err != nil {
				return err
			}
			r.fill(p, ox+n.X, oy+n.Y, n.Scale, n.Scale/2, sc)
		}
		r.fill(p, ox+n.X, oy+n.Y, n.Scale, 0, c)

	case scene.KindText:
		c, err := paint.Parse(n.Fill)
		if err != nil {
			return err
		}
		r.text(n, ox, oy, c)

	default:
		return fmt.Errorf("cannot rasterize node kind %q", n.Kind)
	}

	return nil
}

// rasterPen adapts vector.Rasterizer to glyph.Pen
type rasterPen struct {
	*vector.Rasterizer
}

func (p rasterPen) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	p.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (p rasterPen) Close() {
	p.ClosePath()
}

// outlineOffsets approximates a round dilation with the unit circle's
// eight compass points.
var outlineOffsets = [][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2}, {-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// fill draws the outline scaled by scale and placed at (tx, ty), both in
// scene units. A positive grow also fills copies shifted by that distance,
// which the rasterizer's coverage clamp merges into one dilated shape.
func (r *renderer) fill(o glyph.Outline, tx, ty, scale, grow float64, c color.RGBA) {
	b := r.dst.Bounds()
	pen := rasterPen{vector.NewRasterizer(b.Dx(), b.Dy())}

	k := r.scale
	o.Trace(pen, tx*k, ty*k, scale*k)
	if grow > 0 {
		for _, d := range outlineOffsets {
			o.Trace(pen, (tx+d[0]*grow)*k, (ty+d[1]*grow)*k, scale*k)
		}
	}

	pen.Draw(r.dst, b, image.NewUniform(c), image.Point{})
}

// text draws a label with the fixed bitmap face, resized to the font size.
// A label rotated by 180 degrees hangs up and to the left of its anchor.
func (r *renderer) text(n scene.Node, ox, oy float64, c color.RGBA) {
	advance := font.MeasureString(labelFace, n.Text).Ceil()
	if advance == 0 {
		return
	}

	tmp := image.NewRGBA(image.Rect(0, 0, advance+1, labelFace.Height))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(c),
		Face: labelFace,
		Dot:  fixed.P(0, labelFace.Ascent),
	}
	d.DrawString(n.Text)
	if n.FontStyle == "bold" {
		d.Dot = fixed.P(1, labelFace.Ascent)
		d.DrawString(n.Text)
	}

	size := n.FontSize
	if size <= 0 {
		size = float64(labelFace.Height)
	}
	k := size / float64(labelFace.Height) * r.scale
	tw := int(math.Round(float64(tmp.Bounds().Dx()) * k))
	th := int(math.Round(float64(tmp.Bounds().Dy()) * k))

	ax := int(math.Round((ox + n.X) * r.scale))
	ay := int(math.Round((oy + n.Y) * r.scale))

	var src image.Image = tmp
	rect := image.Rect(ax, ay, ax+tw, ay+th)
	if math.Mod(n.Rotation, 360) == 180 {
		src = rotate180(tmp)
		rect = image.Rect(ax-tw, ay-th, ax, ay)
	}

	draw.NearestNeighbor.Scale(r.dst, rect, src, src.Bounds(), draw.Over, nil)
}

func rotate180(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetRGBA(b.Max.X-1-(x-b.Min.X), b.Max.Y-1-(y-b.Min.Y), src.RGBAAt(x, y))
		}
	}
	return out
}
