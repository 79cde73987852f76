// Package board holds the full state of a solitaire game and the transfers
// between its piles. Every transfer either completes and returns true, or
// returns false and leaves every pile and every card exactly as it was.
package board

import (
	"fmt"

	"github.com/arcanaland/canfield/internal/card"
	"github.com/arcanaland/canfield/internal/deck"
	"github.com/arcanaland/canfield/internal/move"
	"github.com/arcanaland/canfield/internal/pile"
)

const (
	NumFoundations = move.NumFoundations
	NumTableaus    = move.NumTableaus

	// DrawCount is how many cards one deal turns from stock to waste
	DrawCount = 3
)

// Board is the aggregate game state: one stock, one waste, a foundation per
// suit and seven tableau piles. It is not safe for concurrent use.
type Board struct {
	stock       pile.Stock
	waste       pile.Waste
	foundations [NumFoundations]*pile.Foundation
	tableaus    [NumTableaus]*pile.Tableau

	moves *move.Table
}

// New returns an empty board. moves translates enumeration indices for
// ApplyIndex and may be nil when only raw codes are used.
func New(moves *move.Table) *Board {
	b := &Board{moves: moves}
	b.reset()
	return b
}

func (b *Board) reset() {
	b.stock = pile.Stock{}
	b.waste = pile.Waste{}
	for _, s := range card.Suits {
		b.foundations[s.Foundation()] = pile.NewFoundation(s)
	}
	for i := range b.tableaus {
		b.tableaus[i] = &pile.Tableau{}
	}
}

// Setup clears the board and deals a full deck: tableau i receives i+1
// cards with only the last one face up, the rest go face down to the stock.
func (b *Board) Setup(d *deck.Deck) error {
	if d == nil || d.Len() != card.DeckSize {
		return fmt.Errorf("setup needs a full deck of %d cards", card.DeckSize)
	}

	b.reset()
	for i, t := range b.tableaus {
		for j := 0; j <= i; j++ {
			c := d.Draw()
			c.SetVisible(false)
			t.AddSetUpCard(c)
		}
		t.RevealTop()
	}
	for d.Len() > 0 {
		b.stock.Accept(d.Draw())
	}
	return nil
}

// Moves returns the enumeration table the board was built with
func (b *Board) Moves() *move.Table {
	return b.moves
}

func (b *Board) Stock() *pile.Stock { return &b.stock }
func (b *Board) Waste() *pile.Waste { return &b.waste }

// Foundation returns foundation i, or nil when i is out of range
func (b *Board) Foundation(i int) *pile.Foundation {
	if i < 0 || i >= NumFoundations {
		return nil
	}
	return b.foundations[i]
}

// Tableau returns tableau i, or nil when i is out of range
func (b *Board) Tableau(i int) *pile.Tableau {
	if i < 0 || i >= NumTableaus {
		return nil
	}
	return b.tableaus[i]
}

// acceptor is a pile that can judge a card before taking it
type acceptor interface {
	CanAccept(*card.Card) bool
	Accept(*card.Card) bool
}

// transfer moves the top card of src to dst when dst allows it. The card is
// only popped once dst has agreed to take it.
func transfer(src *pile.Stack, dst acceptor) bool {
	if !dst.CanAccept(src.Top()) {
		return false
	}
	return dst.Accept(src.Pop())
}

// DealStock turns up to three cards from the stock onto the waste. With an
// empty stock it turns the waste back over into the stock instead, so the
// bottom waste card becomes the top stock card.
func (b *Board) DealStock() bool {
	if b.stock.Empty() {
		if b.waste.Empty() {
			return false
		}
		for !b.waste.Empty() {
			b.stock.Accept(b.waste.Pop())
		}
		return true
	}

	for n := 0; n < DrawCount && !b.stock.Empty(); n++ {
		b.waste.Accept(b.stock.Pop())
	}
	return true
}

// WasteToFoundation plays the top waste card to its suit's foundation
func (b *Board) WasteToFoundation() bool {
	top := b.waste.Top()
	if top == nil {
		return false
	}
	return transfer(&b.waste.Stack, b.foundations[top.Suit().Foundation()])
}

// TableauToFoundation plays the top card of tableau i to its suit's
// foundation and turns up the card beneath it
func (b *Board) TableauToFoundation(i int) bool {
	t := b.Tableau(i)
	if t == nil || t.Empty() {
		return false
	}
	if !transfer(&t.Stack, b.foundations[t.Top().Suit().Foundation()]) {
		return false
	}
	t.RevealTop()
	return true
}

// FoundationToTableau moves the top card of foundation i onto tableau j
func (b *Board) FoundationToTableau(i, j int) bool {
	f, t := b.Foundation(i), b.Tableau(j)
	if f == nil || t == nil {
		return false
	}
	return transfer(&f.Stack, t)
}

// WasteToTableau moves the top waste card onto tableau j
func (b *Board) WasteToTableau(j int) bool {
	t := b.Tableau(j)
	if t == nil {
		return false
	}
	return transfer(&b.waste.Stack, t)
}

// TableauToTableau moves the top k cards of tableau i onto tableau j as one
// run. The whole move is checked before any card leaves tableau i: the
// run's bottom card must be face up and must be playable on tableau j.
func (b *Board) TableauToTableau(i, j, k int) bool {
	src, dst := b.Tableau(i), b.Tableau(j)
	if src == nil || dst == nil || i == j {
		return false
	}
	if k < 1 || k > src.Len() {
		return false
	}

	bottom := src.FromTop(k)
	if !bottom.Visible() || !dst.CanAccept(bottom) {
		return false
	}

	dst.PlaceRun(src.TakeRun(k))
	src.RevealTop()
	return true
}

// Apply performs a decoded move
func (b *Board) Apply(m move.Move) bool {
	switch m.Kind {
	case move.Deal:
		return b.DealStock()
	case move.WasteToFoundation:
		return b.WasteToFoundation()
	case move.TableauToFoundation:
		return b.TableauToFoundation(m.From)
	case move.WasteToTableau:
		return b.WasteToTableau(m.To)
	case move.FoundationToTableau:
		return b.FoundationToTableau(m.From, m.To)
	case move.TableauToTableau:
		return b.TableauToTableau(m.From, m.To, m.Count)
	}
	return false
}

// ApplyCode decodes a move code and performs it. Unknown codes fail
// without touching the board.
func (b *Board) ApplyCode(code int) bool {
	m, err := move.Decode(code)
	if err != nil {
		return false
	}
	return b.Apply(m)
}

// ApplyIndex translates an enumeration index through the move table and
// performs the move it names
func (b *Board) ApplyIndex(index int) bool {
	if b.moves == nil {
		return false
	}
	code, ok := b.moves.Code(index)
	if !ok {
		return false
	}
	return b.ApplyCode(code)
}

// FoundationCount returns the number of cards on all foundations
func (b *Board) FoundationCount() int {
	n := 0
	for _, f := range b.foundations {
		n += f.Len()
	}
	return n
}

// Won reports whether every card has reached a foundation
func (b *Board) Won() bool {
	return b.FoundationCount() == card.DeckSize
}

// stacks returns every pile in observation row order
func (b *Board) stacks() []*pile.Stack {
	out := make([]*pile.Stack, 0, Rows)
	for _, f := range b.foundations {
		out = append(out, &f.Stack)
	}
	out = append(out, &b.stock.Stack, &b.waste.Stack)
	for _, t := range b.tableaus {
		out = append(out, &t.Stack)
	}
	return out
}

// Check verifies that the piles hold each of the 52 cards exactly once and
// that face-up and face-down cards sit where the rules put them
func (b *Board) Check() error {
	seen := make(map[int]string, card.DeckSize)
	names := rowNames()
	for row, s := range b.stacks() {
		for _, c := range s.Cards() {
			if prev, ok := seen[c.ID()]; ok {
				return fmt.Errorf("card %d is in both %s and %s", c.ID(), prev, names[row])
			}
			seen[c.ID()] = names[row]
		}
	}
	if len(seen) != card.DeckSize {
		return fmt.Errorf("board holds %d distinct cards, want %d", len(seen), card.DeckSize)
	}
	for id := 0; id < card.DeckSize; id++ {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("card %d is missing", id)
		}
	}

	for _, c := range b.stock.Cards() {
		if c.Visible() {
			return fmt.Errorf("stock card %d is face up", c.ID())
		}
	}
	for _, c := range b.waste.Cards() {
		if !c.Visible() {
			return fmt.Errorf("waste card %d is face down", c.ID())
		}
	}
	for i, f := range b.foundations {
		for _, c := range f.Cards() {
			if !c.Visible() {
				return fmt.Errorf("foundation %d card %d is face down", i, c.ID())
			}
		}
	}
	for i, t := range b.tableaus {
		faceUp := false
		for _, c := range t.Cards() {
			if faceUp && !c.Visible() {
				return fmt.Errorf("tableau %d has face-down card %d above a face-up card", i, c.ID())
			}
			faceUp = faceUp || c.Visible()
		}
		if top := t.Top(); top != nil && !top.Visible() {
			return fmt.Errorf("tableau %d top card %d is face down", i, top.ID())
		}
	}
	return nil
}
