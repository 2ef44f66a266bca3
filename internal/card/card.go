package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits. The zero value is not a valid suit.
type Suit int

const (
	Spades Suit = iota + 1
	Clubs
	Diamonds
	Hearts
)

var suitNames = map[Suit]string{
	Spades:   "spades",
	Clubs:    "clubs",
	Diamonds: "diamonds",
	Hearts:   "hearts",
}

var suitCodes = map[Suit]string{
	Spades:   "S",
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
}

// Suits returns the closed set of suits in canonical order
func Suits() []Suit {
	return []Suit{Spades, Clubs, Diamonds, Hearts}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

// String returns the lower-case suit name (e.g., "spades")
func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

// Rank is a card value from Ace to King. The zero value is not a valid rank.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{
	"", "ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"jack", "queen", "king",
}

var rankCodes = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ranks returns the closed set of ranks from Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the lower-case rank name (e.g., "queen")
func (r Rank) String() string {
	if r.Valid() {
		return rankNames[r]
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Card is a single playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// All returns the 52 suit/rank pairs, suit-major in canonical order
func All() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Valid reports whether both suit and rank belong to their enumerations
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Code returns the short code, rank first (e.g., "QH", "10S")
func (c Card) Code() string {
	if !c.Valid() {
		return "??"
	}
	return rankCodes[c.Rank] + suitCodes[c.Suit]
}

// ID returns the canonical ID (e.g., hearts.queen)
func (c Card) ID() string {
	return c.Suit.String() + "." + c.Rank.String()
}

// Name returns the display name (e.g., "Queen of Hearts")
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", title(c.Rank.String()), title(c.Suit.String()))
}

func (c Card) String() string {
	return c.Code()
}

// Parse accepts either a short code ("QH", "10s", "Td") or a canonical
// ID ("hearts.queen").
func Parse(s string) (Card, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	if strings.Contains(in, ".") {
		return parseID(in)
	}
	return parseCode(in)
}

func parseID(id string) (Card, error) {
	parts := strings.Split(strings.ToLower(id), ".")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card ID format: %s", id)
	}

	suit, ok := lookupSuitName(parts[0])
	if !ok {
		return Card{}, fmt.Errorf("unknown suit %q in card ID %s", parts[0], id)
	}

	for r := Ace; r <= King; r++ {
		if rankNames[r] == parts[1] {
			return Card{Suit: suit, Rank: r}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown rank %q in card ID %s", parts[1], id)
}

func parseCode(code string) (Card, error) {
	up := strings.ToUpper(code)
	if len(up) < 2 || len(up) > 3 {
		return Card{}, fmt.Errorf("invalid card code: %s", code)
	}

	rankPart, suitPart := up[:len(up)-1], up[len(up)-1:]
	if rankPart == "T" {
		rankPart = "10"
	}

	var suit Suit
	for s, c := range suitCodes {
		if c == suitPart {
			suit = s
		}
	}
	if suit == 0 {
		return Card{}, fmt.Errorf("unknown suit %q in card code %s", suitPart, code)
	}

	for r := Ace; r <= King; r++ {
		if rankCodes[r] == rankPart {
			return Card{Suit: suit, Rank: r}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown rank %q in card code %s", rankPart, code)
}

func lookupSuitName(name string) (Suit, bool) {
	for s, n := range suitNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
