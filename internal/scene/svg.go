package scene

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// EncodeSVG writes n as a standalone SVG document sized to its extent
func EncodeSVG(w io.Writer, n Node) error {
	var bad error
	n.Walk(func(c Node, _, _ float64) {
		switch c.Kind {
		case KindGroup, KindRect, KindPath, KindText:
		default:
			if bad == nil {
				bad = fmt.Errorf("cannot encode node kind %q", c.Kind)
			}
		}
	})
	if bad != nil {
		return bad
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	width, height := n.Extent()
	canvas.Start(width, height, attr("viewBox", fmt.Sprintf("0 0 %s %s", num(width), num(height))))
	encodeNode(canvas, n)
	canvas.End()

	return bw.Flush()
}

func encodeNode(canvas *svg.SVG, n Node) {
	switch n.Kind {
	case KindGroup:
		attrs := []string{
			attr("id", n.Key),
			attr("transform", fmt.Sprintf("translate(%s %s)", num(n.X), num(n.Y))),
		}
		if n.Draggable {
			attrs = append(attrs, attr("data-draggable", "true"))
		}
		canvas.Group(attrs...)
		for _, c := range n.Children {
			encodeNode(canvas, c)
		}
		canvas.Gend()

	case KindRect:
		canvas.Roundrect(n.X, n.Y, n.Width, n.Height, n.CornerRadius, n.CornerRadius, attr("fill", n.Fill))

	case KindPath:
		canvas.Path(html.EscapeString(n.Data),
			attr("transform", fmt.Sprintf("translate(%s %s) scale(%s)", num(n.X), num(n.Y), num(n.Scale))),
			attr("fill", n.Fill),
			attr("stroke", n.Stroke))

	case KindText:
		weight := "normal"
		if strings.Contains(n.FontStyle, "bold") {
			weight = "bold"
		}
		style := "normal"
		if strings.Contains(n.FontStyle, "italic") {
			style = "italic"
		}
		canvas.Text(0, 0, n.Text,
			attr("transform", fmt.Sprintf("translate(%s %s) rotate(%s)", num(n.X), num(n.Y), num(n.Rotation))),
			attr("font-family", n.FontFamily),
			attr("font-size", num(n.FontSize)),
			attr("font-weight", weight),
			attr("font-style", style),
			attr("fill", n.Fill),
			attr("dominant-baseline", "hanging"))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// attr formats one escaped name="value" attribute for the svgo writers
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}
