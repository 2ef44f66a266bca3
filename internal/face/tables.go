package face

import "github.com/arcanaland/cardface/internal/card"

// GlyphUnit is the glyph scale per unit of card width. Glyph outlines are
// drawn in a local space roughly 100 units across, centred on the origin.
const GlyphUnit = 0.0025

// BigScale is the pip multiplier for the ace and the court cards
const BigScale = 3.0

var suitColors = NewTable[card.Suit, string]("suit", "color", map[card.Suit]string{
	card.Spades:   "black",
	card.Clubs:    "black",
	card.Diamonds: "red",
	card.Hearts:   "red",
})

var suitGlyphs = NewTable[card.Suit, string]("suit", "path", map[card.Suit]string{
	card.Spades:   "m-26 -14c-31 31-1 53 23 39-4 16-7 17-10 21l26 0c-3-4-6-5-10-21 25 14 51-11 23-39-18-16-25-30-26-32-1 1-10 16-26 32z",
	card.Clubs:    "m-8 -6c-15-7-36 1-31 20 5 18 26 14 34 3-3 21-9 25-12 29l35 0c-4-5-10-8-14-29 8 11 30 15 35-3 5-18-17-28-31-20 14-10 19-40-8-40-26 0-22 31-8 40z",
	card.Diamonds: "m0 -48.07c-10.45 16.72-21.945 32.395-33.44 48.07 12.54 15.675 24.035 31.35 33.44 48.07 9.405-16.72 20.9-33.44 33.44-48.07-12.54-15.675-24.035-32.395-33.44-48.07z",
	card.Hearts:   "m2 46c-1 0-1-1-1-2-3-8-7-16-14-25-3-4-5-7-12-15-8-10-10-13-13-17-1-3-3-7-3-9 0-3 0-7 0-9 2-8 9-15 18-15 11-1 19 4 24 14l1 2 1-2c1-2 2-4 4-6 5-6 10-8 17-8 3 0 5 0 8 1 3 1 6 3 9 6 7 8 6 19-2 32-2 3-6 7-11 13-5 7-8 10-11 14-7 8-11 16-13 24-1 1-1 2-1 2-1 1-1 1-1 0z",
})

var rankLabels = NewTable[card.Rank, string]("rank", "text", map[card.Rank]string{
	card.Ace:   "A",
	card.Two:   "2",
	card.Three: "3",
	card.Four:  "4",
	card.Five:  "5",
	card.Six:   "6",
	card.Seven: "7",
	card.Eight: "8",
	card.Nine:  "9",
	card.Ten:   "10",
	card.Jack:  "J",
	card.Queen: "Q",
	card.King:  "K",
})

var rankScales = NewTable[card.Rank, float64]("rank", "scale", map[card.Rank]float64{
	card.Ace:   BigScale,
	card.Two:   1,
	card.Three: 1,
	card.Four:  1,
	card.Five:  1,
	card.Six:   1,
	card.Seven: 1,
	card.Eight: 1,
	card.Nine:  1,
	card.Ten:   1,
	card.Jack:  BigScale,
	card.Queen: BigScale,
	card.King:  BigScale,
})

// SuitColor returns the fill colour name for the suit
func SuitColor(s card.Suit) string {
	return suitColors.MustLookup(s)
}

// SuitGlyph returns the SVG path data outlining the suit symbol
func SuitGlyph(s card.Suit) string {
	return suitGlyphs.MustLookup(s)
}

// RankLabel returns the corner label text for the rank
func RankLabel(r card.Rank) string {
	return rankLabels.MustLookup(r)
}

// RankScale returns the pip size multiplier for the rank
func RankScale(r card.Rank) float64 {
	return rankScales.MustLookup(r)
}

// GlyphScale returns the scale factor applied to a suit glyph on a card
// of the given width.
func GlyphScale(width float64, r card.Rank) float64 {
	return width * GlyphUnit * RankScale(r)
}

// every suit and rank must resolve in every table
func init() {
	for _, s := range card.Suits() {
		suitColors.MustLookup(s)
		suitGlyphs.MustLookup(s)
	}
	for _, r := range card.Ranks() {
		rankLabels.MustLookup(r)
		rankScales.MustLookup(r)
		rankLayouts.MustLookup(r)
	}
}
