package card

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"AS", Card{Suit: Spades, Rank: Ace}},
		{"qh", Card{Suit: Hearts, Rank: Queen}},
		{"10d", Card{Suit: Diamonds, Rank: Ten}},
		{"TC", Card{Suit: Clubs, Rank: Ten}},
		{"hearts.queen", Card{Suit: Hearts, Rank: Queen}},
		{" Clubs.Seven ", Card{Suit: Clubs, Rank: Seven}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "1S", "11H", "AX", "stars.ace", "hearts.prince", "a.b.c"} {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", in)
			}
		})
	}
}

func TestCardNames(t *testing.T) {
	c := Card{Suit: Hearts, Rank: Queen}
	if got := c.Code(); got != "QH" {
		t.Errorf("Code() = %s, want QH", got)
	}
	if got := c.ID(); got != "hearts.queen" {
		t.Errorf("ID() = %s, want hearts.queen", got)
	}
	if got := c.Name(); got != "Queen of Hearts" {
		t.Errorf("Name() = %s, want Queen of Hearts", got)
	}
	if got := (Card{Suit: Spades, Rank: Ten}).Code(); got != "10S" {
		t.Errorf("Code() = %s, want 10S", got)
	}
}

func TestAll(t *testing.T) {
	cards := All()
	if len(cards) != 52 {
		t.Fatalf("All() returned %d cards, want 52", len(cards))
	}

	seen := make(map[string]bool)
	for _, c := range cards {
		if !c.Valid() {
			t.Errorf("invalid card in All(): %v", c)
		}
		if seen[c.Code()] {
			t.Errorf("duplicate card: %s", c.Code())
		}
		seen[c.Code()] = true

		back, err := Parse(c.ID())
		if err != nil || back != c {
			t.Errorf("Parse(%s) = %v, %v", c.ID(), back, err)
		}
	}
}

func TestZeroValuesInvalid(t *testing.T) {
	if Suit(0).Valid() || Rank(0).Valid() || Suit(5).Valid() || Rank(14).Valid() {
		t.Error("out-of-range enumerants reported as valid")
	}
	if got := Suit(9).String(); got != "suit(9)" {
		t.Errorf("Suit(9).String() = %s", got)
	}
}
