package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits, ordered as the foundations are laid out
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits, and so the number of foundation piles
const NumSuits = 4

// Suits lists every suit in foundation order
var Suits = [NumSuits]Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = [NumSuits]string{"clubs", "diamonds", "hearts", "spades"}

var suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}

// String returns the lower-case suit name used in the reference data
func (s Suit) String() string {
	if s.Valid() {
		return suitNames[s]
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

// Symbol returns the unicode glyph for the suit
func (s Suit) Symbol() string {
	if s.Valid() {
		return suitSymbols[s]
	}
	return "?"
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Color returns the color of cards of this suit
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Foundation returns the index of the foundation pile that collects this suit
func (s Suit) Foundation() int {
	return int(s)
}

// ParseSuit parses a suit name as written in the reference data
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(n, name) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %q", name)
}

// Color is the color of a card, derived from its suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// ParseColor parses a color name as written in the reference data
func ParseColor(name string) (Color, error) {
	switch strings.ToLower(name) {
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	}
	return 0, fmt.Errorf("unknown color: %q", name)
}

// Rank is the face value of a card, Ace low
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card is a single playing card. Identity is fixed at construction,
// only the face-up flag changes during play.
type Card struct {
	id      int
	rank    Rank
	suit    Suit
	label   string
	glyph   rune
	visible bool
}

// New builds a face-down card from a reference table entry
func New(info Info) (*Card, error) {
	suit, err := ParseSuit(info.Suit)
	if err != nil {
		return nil, fmt.Errorf("card %d: %w", info.ID, err)
	}
	rank := Rank(info.Rank)
	if !rank.Valid() {
		return nil, fmt.Errorf("card %d: rank %d out of range", info.ID, info.Rank)
	}
	if info.ID < 0 || info.ID >= DeckSize {
		return nil, fmt.Errorf("card %d: id out of range", info.ID)
	}

	label := info.RankLabel
	if label == "" {
		label = fmt.Sprint(info.Rank)
	}
	glyph := rune(info.Glyph)
	if glyph == 0 {
		glyph = []rune(suit.Symbol())[0]
	}

	return &Card{
		id:    info.ID,
		rank:  rank,
		suit:  suit,
		label: label,
		glyph: glyph,
	}, nil
}

func (c *Card) ID() int      { return c.id }
func (c *Card) Rank() Rank   { return c.rank }
func (c *Card) Suit() Suit   { return c.suit }
func (c *Card) Color() Color { return c.suit.Color() }

// Visible reports whether the card is face up
func (c *Card) Visible() bool { return c.visible }

// Flip turns the card over
func (c *Card) Flip() {
	c.visible = !c.visible
}

// SetVisible turns the card face up or face down
func (c *Card) SetVisible(v bool) {
	c.visible = v
}

// Face returns the rank label and suit glyph, e.g. "10♥", regardless of visibility
func (c *Card) Face() string {
	return c.label + string(c.glyph)
}

// String renders the card as a player sees it: "##" when face down
func (c *Card) String() string {
	if !c.visible {
		return "##"
	}
	return c.Face()
}
