package board

import "github.com/arcanaland/canfield/internal/card"

// Observation shape. Rows are foundations 0-3, stock, waste, then the seven
// tableaus. No pile can ever hold more than Cols cards.
const (
	Rows = NumFoundations + 2 + NumTableaus
	Cols = 24

	RowStock        = NumFoundations
	RowWaste        = NumFoundations + 1
	RowFirstTableau = NumFoundations + 2
)

// Cell values for slots that do not show a card id
const (
	CellFaceDown = -1
	CellEmpty    = -2
)

// Reward values
const (
	RewardWin            = 1000
	RewardFoundationCard = 5
	RewardVisibleTableau = 1
)

// Observation is the fixed-shape numeric view of a board: a card id for a
// face-up card, CellFaceDown for a face-down one and CellEmpty past the end
// of a pile
type Observation [Rows][Cols]int

// Flat returns the observation in row-major order
func (o *Observation) Flat() []int {
	out := make([]int, 0, Rows*Cols)
	for _, row := range o {
		out = append(out, row[:]...)
	}
	return out
}

// Observe renders the board as an Observation
func (b *Board) Observe() Observation {
	var o Observation
	for row, s := range b.stacks() {
		for col := range o[row] {
			c := s.At(col)
			switch {
			case c == nil:
				o[row][col] = CellEmpty
			case c.Visible():
				o[row][col] = c.ID()
			default:
				o[row][col] = CellFaceDown
			}
		}
	}
	return o
}

// Reward scores the board: one point per face-up tableau card and five per
// foundation card, or exactly RewardWin once all cards are on foundations
func (b *Board) Reward() int {
	foundation := b.FoundationCount()
	if foundation == card.DeckSize {
		return RewardWin
	}

	visible := 0
	for _, t := range b.tableaus {
		visible += t.VisibleCount()
	}
	return visible*RewardVisibleTableau + foundation*RewardFoundationCard
}
