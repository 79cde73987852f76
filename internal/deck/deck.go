package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/canfield/internal/card"
)

// Deck is an ordered sequence of the 52 cards, used only while setting up a game.
// The last card is the top of the deck.
type Deck struct {
	cards []*card.Card
}

// New builds a deck from the reference table. When rng is non-nil the deck
// is shuffled, otherwise cards stay in id order.
func New(table *card.Table, rng *rand.Rand) (*Deck, error) {
	if table == nil {
		return nil, fmt.Errorf("card table is required")
	}
	if table.Len() != card.DeckSize {
		return nil, fmt.Errorf("card table has %d entries, want %d", table.Len(), card.DeckSize)
	}

	d := &Deck{cards: table.NewCards()}
	if rng != nil {
		d.Shuffle(rng)
	}
	return d, nil
}

// NewSeeded builds a deck shuffled by a PCG source seeded with seed
func NewSeeded(table *card.Table, seed uint64) (*Deck, error) {
	return New(table, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Shuffle applies a uniform random permutation
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw removes and returns the top card, or nil when the deck is empty
func (d *Deck) Draw() *card.Card {
	if len(d.cards) == 0 {
		return nil
	}
	c := d.cards[len(d.cards)-1]
	d.cards[len(d.cards)-1] = nil
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []*card.Card {
	out := make([]*card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
