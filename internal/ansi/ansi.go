// Package ansi converts images into truecolor half-block terminal art.
package ansi

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// FromImage converts img to ANSI art cols characters wide and rows lines
// tall. Each character cell shows two pixel rows using the upper half
// block. Transparent pixels are composited over bg.
func FromImage(img image.Image, cols, rows int, bg color.Color) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	// Resize to two pixels per cell in each direction
	resized := resize.Resize(uint(cols*2), uint(rows*2), img, resize.Lanczos3)
	back, _ := colorful.MakeColor(bg)

	var buffer strings.Builder
	for y := 0; y < rows*2; y += 2 {
		for x := 0; x < cols*2; x += 2 {
			upper := averageColor(
				colorAt(resized, x, y, back),
				colorAt(resized, x+1, y, back),
			)
			lower := averageColor(
				colorAt(resized, x, y+1, back),
				colorAt(resized, x+1, y+1, back),
			)
			buffer.WriteString(cell('▀', upper, lower))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the pixel at (x, y) blended over back
func colorAt(img image.Image, x, y int, back colorful.Color) colorful.Color {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return back
	}

	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return back
	}

	// RGBA() is alpha-premultiplied; un-premultiply before blending
	c := colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
	return back.BlendRgb(c, float64(a)/0xffff).Clamped()
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// cell formats a character with truecolor foreground and background codes
func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, char)
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Width returns the number of visible runes in a line
func Width(s string) int {
	return len([]rune(Strip(s)))
}
