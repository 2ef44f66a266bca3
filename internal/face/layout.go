package face

import "github.com/arcanaland/cardface/internal/card"

// Position is a point expressed as fractions of card width and height
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Anchor coordinates shared by every layout
const (
	Center = 0.5

	Left  = 0.25
	Right = 1 - Left

	Top    = 0.22
	Bottom = 1 - Top
)

// between interpolates vertically between the top and bottom pip rows
func between(p float64) float64 {
	return (Bottom-Top)*p + Top
}

var (
	tl = Position{Left, Top}
	tc = Position{Center, Top}
	tr = Position{Right, Top}

	ml = Position{Left, Center}
	mc = Position{Center, Center}
	mr = Position{Right, Center}

	bl = Position{Left, Bottom}
	bc = Position{Center, Bottom}
	br = Position{Right, Bottom}

	tmc = Position{Center, between(0.25)}
	bmc = Position{Center, between(0.75)}

	tmmc = Position{Center, between(1.0 / 6)}
	bmmc = Position{Center, between(5.0 / 6)}

	tmml = Position{Left, between(1.0 / 3)}
	bmml = Position{Left, between(2.0 / 3)}

	tmmr = Position{Right, between(1.0 / 3)}
	bmmr = Position{Right, between(2.0 / 3)}
)

var rankLayouts = NewTable[card.Rank, []Position]("rank", "layout", map[card.Rank][]Position{
	card.Ace:   {mc},
	card.Two:   {tc, bc},
	card.Three: {tc, mc, bc},
	card.Four:  {tl, bl, tr, br},
	card.Five:  {mc, tl, bl, tr, br},
	card.Six:   {tl, bl, tr, br, ml, mr},
	card.Seven: {tl, bl, tr, br, ml, mr, tmc},
	card.Eight: {tl, bl, tr, br, ml, mr, tmc, bmc},
	card.Nine:  {tl, bl, tr, br, mc, tmml, bmml, tmmr, bmmr},
	card.Ten:   {tl, bl, tr, br, tmml, bmml, tmmr, bmmr, tmmc, bmmc},
	card.Jack:  {mc},
	card.Queen: {mc},
	card.King:  {mc},
})

// Layout returns the pip positions for the rank. The slice is a copy.
func Layout(r card.Rank) []Position {
	layout := rankLayouts.MustLookup(r)
	out := make([]Position, len(layout))
	copy(out, layout)
	return out
}

// Place converts a normalized position to card-local coordinates
func Place(p Position, width, height float64) (x, y float64) {
	return p.X * width, p.Y * height
}
