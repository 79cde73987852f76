// Package pile holds the four kinds of solitaire pile and the rules each one
// applies to an incoming card. Accept methods never change a pile when they
// reject a card.
package pile

import (
	"strings"

	"github.com/arcanaland/canfield/internal/card"
)

// Stack is an ordered run of cards with the top card last
type Stack struct {
	cards []*card.Card
}

// Len returns the number of cards in the pile
func (s *Stack) Len() int {
	return len(s.cards)
}

// Empty reports whether the pile holds no cards
func (s *Stack) Empty() bool {
	return len(s.cards) == 0
}

// Top returns the top card without removing it, or nil
func (s *Stack) Top() *card.Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// At returns the card at position i counted from the bottom
func (s *Stack) At(i int) *card.Card {
	if i < 0 || i >= len(s.cards) {
		return nil
	}
	return s.cards[i]
}

// FromTop returns the card n positions down from the top, 1 being the top card
func (s *Stack) FromTop(n int) *card.Card {
	return s.At(len(s.cards) - n)
}

// Cards returns a copy of the pile, bottom first
func (s *Stack) Cards() []*card.Card {
	out := make([]*card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Pop removes and returns the top card, or nil when empty. The caller owns
// the returned card and must place it on another pile.
func (s *Stack) Pop() *card.Card {
	if len(s.cards) == 0 {
		return nil
	}
	c := s.cards[len(s.cards)-1]
	s.cards[len(s.cards)-1] = nil
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

// RevealTop turns the top card face up, if there is one
func (s *Stack) RevealTop() {
	if top := s.Top(); top != nil {
		top.SetVisible(true)
	}
}

func (s *Stack) push(c *card.Card) {
	s.cards = append(s.cards, c)
}

// String lists the cards bottom first as a player sees them
func (s *Stack) String() string {
	parts := make([]string, len(s.cards))
	for i, c := range s.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Stock is the face-down draw pile
type Stock struct {
	Stack
}

// Accept always takes the card and turns it face down
func (s *Stock) Accept(c *card.Card) bool {
	if c == nil {
		return false
	}
	c.SetVisible(false)
	s.push(c)
	return true
}

// Waste is the face-up pile fed from the stock
type Waste struct {
	Stack
}

// Accept always takes the card and turns it face up
func (w *Waste) Accept(c *card.Card) bool {
	if c == nil {
		return false
	}
	c.SetVisible(true)
	w.push(c)
	return true
}

// Foundation builds one suit up from Ace to King
type Foundation struct {
	Stack
	suit card.Suit
}

// NewFoundation returns an empty foundation for suit
func NewFoundation(suit card.Suit) *Foundation {
	return &Foundation{suit: suit}
}

// Suit returns the suit this foundation collects
func (f *Foundation) Suit() card.Suit {
	return f.suit
}

// CanAccept reports whether c may be placed on the foundation
func (f *Foundation) CanAccept(c *card.Card) bool {
	if c == nil || c.Suit() != f.suit {
		return false
	}
	top := f.Top()
	if top == nil {
		return c.Rank() == card.Ace
	}
	return top.Rank() != card.King && top.Rank() == c.Rank()-1
}

// Accept places c on the foundation if the rules allow it
func (f *Foundation) Accept(c *card.Card) bool {
	if !f.CanAccept(c) {
		return false
	}
	f.push(c)
	return true
}

// Complete reports whether the foundation holds its whole suit
func (f *Foundation) Complete() bool {
	top := f.Top()
	return top != nil && top.Rank() == card.King
}

// Tableau is a working pile built down in alternating colors
type Tableau struct {
	Stack
}

// CanAccept reports whether c may be placed on the tableau
func (t *Tableau) CanAccept(c *card.Card) bool {
	if c == nil {
		return false
	}
	top := t.Top()
	if top == nil {
		return c.Rank() == card.King
	}
	return c.Color() != top.Color() && top.Rank() == c.Rank()+1
}

// Accept places c on the tableau if the rules allow it
func (t *Tableau) Accept(c *card.Card) bool {
	if !t.CanAccept(c) {
		return false
	}
	t.push(c)
	return true
}

// AddSetUpCard places a card during the deal without checking the rules
func (t *Tableau) AddSetUpCard(c *card.Card) {
	t.push(c)
}

// TakeRun removes the top n cards and returns them bottom first.
// It returns nil and leaves the pile alone when n is out of range.
func (t *Tableau) TakeRun(n int) []*card.Card {
	if n < 1 || n > len(t.cards) {
		return nil
	}
	cut := len(t.cards) - n
	run := make([]*card.Card, n)
	copy(run, t.cards[cut:])
	for i := cut; i < len(t.cards); i++ {
		t.cards[i] = nil
	}
	t.cards = t.cards[:cut]
	return run
}

// PlaceRun appends a run taken from another tableau, keeping its order.
// Legality of the run is checked by the caller before it is taken.
func (t *Tableau) PlaceRun(run []*card.Card) {
	t.cards = append(t.cards, run...)
}

// VisibleCount returns how many cards in the pile are face up
func (t *Tableau) VisibleCount() int {
	n := 0
	for _, c := range t.cards {
		if c.Visible() {
			n++
		}
	}
	return n
}
