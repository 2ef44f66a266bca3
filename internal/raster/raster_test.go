package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/scene"
)

func render(t *testing.T, s card.Suit, r card.Rank, scale float64) (img *image.RGBA, w, h int) {
	t.Helper()
	root := scene.Render(scene.Props{Suit: s, Rank: r, Width: 100, Height: 140}, nil)
	out, err := Render(root, scale)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	return out, out.Bounds().Dx(), out.Bounds().Dy()
}

func TestRenderSize(t *testing.T) {
	_, w, h := render(t, card.Spades, card.Five, 2)
	if w != 200 || h != 280 {
		t.Errorf("size = %dx%d, want 200x280", w, h)
	}
}

func TestRenderPixels(t *testing.T) {
	img, _, _ := render(t, card.Diamonds, card.Ace, 1)

	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("rounded corner pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(0, 70); got != (color.RGBA{169, 169, 169, 255}) {
		t.Errorf("border pixel = %v, want darkgray", got)
	}
	if got := img.RGBAAt(50, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("face pixel = %v, want white", got)
	}
	if got := img.RGBAAt(50, 70); got.R < 200 || got.G > 60 || got.B > 60 {
		t.Errorf("centre pip pixel = %v, want red", got)
	}
}

func TestRenderLabels(t *testing.T) {
	img, _, _ := render(t, card.Spades, card.King, 1)

	dark := func(x0, y0, x1, y1 int) int {
		n := 0
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if c := img.RGBAAt(x, y); c.A == 255 && c.R < 80 {
					n++
				}
			}
		}
		return n
	}

	if dark(4, 4, 16, 20) == 0 {
		t.Error("no ink in the top-left label box")
	}
	if dark(84, 120, 96, 136) == 0 {
		t.Error("no ink in the bottom-right label box")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(scene.Node{Kind: scene.KindRect, Width: 10, Height: 10, Fill: "black"}, 0); err == nil {
		t.Error("scale 0 accepted")
	}
	if _, err := Render(scene.Node{Kind: scene.KindRect, Width: 10, Height: 10, Fill: "plaid"}, 1); err == nil {
		t.Error("unknown colour accepted")
	}
	bad := scene.Node{Kind: scene.KindGroup, Children: []scene.Node{
		{Kind: scene.KindRect, Width: 10, Height: 10, Fill: "white"},
		{Kind: scene.KindPath, Data: "M0 0 X 1 1", Fill: "black", Scale: 1},
	}}
	if _, err := Render(bad, 1); err == nil {
		t.Error("malformed path accepted")
	}
}

func TestRenderStrokeGrowsPath(t *testing.T) {
	square := func(stroke string) *image.RGBA {
		root := scene.Node{Kind: scene.KindGroup, Width: 40, Height: 40, Children: []scene.Node{{
			Kind:   scene.KindPath,
			X:      10,
			Y:      10,
			Scale:  4,
			Data:   "M0 0 L5 0 L5 5 L0 5 Z",
			Fill:   "black",
			Stroke: stroke,
		}}}
		img, err := Render(root, 1)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		return img
	}

	// the square covers 10..30; a 4px stroke reaches 2px further out
	if got := square("").RGBAAt(8, 20); got.A != 0 {
		t.Errorf("unstroked edge pixel = %v, want transparent", got)
	}
	if got := square("black").RGBAAt(8, 20); got.A == 0 {
		t.Error("stroked edge pixel is transparent")
	}
	if got := square("black").RGBAAt(5, 20); got.A != 0 {
		t.Errorf("pixel beyond the stroke = %v, want transparent", got)
	}
}
