// Package move maps integer move codes to structured solitaire moves.
//
// Codes carry their parameters in decimal digit positions:
//
//	1          deal from stock to waste, or recycle the waste
//	2          waste to foundation
//	1t         tableau t to foundation          (10-16)
//	2t         waste to tableau t               (20-26)
//	1ft        foundation f to tableau t        (100-136)
//	1ijkk      kk cards from tableau i to j     (10000-16613)
//
// The five digit form is decoded as code = 10000 + i*1000 + j*100 + k,
// so k is always the last two digits and may be written with a leading zero.
package move

import (
	"errors"
	"fmt"
)

const (
	NumTableaus    = 7
	NumFoundations = 4

	// MaxRun is the largest card count the five digit form can express
	MaxRun = 99
)

// ErrInvalidCode is returned for codes outside the documented ranges or
// naming a pile that does not exist
var ErrInvalidCode = errors.New("invalid move code")

// Kind identifies which transfer a move performs
type Kind int

const (
	Invalid Kind = iota
	Deal
	WasteToFoundation
	TableauToFoundation
	WasteToTableau
	FoundationToTableau
	TableauToTableau
)

var kindNames = map[Kind]string{
	Invalid:             "invalid",
	Deal:                "deal",
	WasteToFoundation:   "waste-to-foundation",
	TableauToFoundation: "tableau-to-foundation",
	WasteToTableau:      "waste-to-tableau",
	FoundationToTableau: "foundation-to-tableau",
	TableauToTableau:    "tableau-to-tableau",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Move is a decoded move. From and To are pile indices within the pile
// family the Kind names; Count is only used by TableauToTableau.
type Move struct {
	Kind  Kind
	From  int
	To    int
	Count int
}

// String describes the move in words
func (m Move) String() string {
	switch m.Kind {
	case Deal:
		return "deal stock to waste"
	case WasteToFoundation:
		return "waste to foundation"
	case TableauToFoundation:
		return fmt.Sprintf("tableau %d to foundation", m.From)
	case WasteToTableau:
		return fmt.Sprintf("waste to tableau %d", m.To)
	case FoundationToTableau:
		return fmt.Sprintf("foundation %d to tableau %d", m.From, m.To)
	case TableauToTableau:
		if m.Count == 1 {
			return fmt.Sprintf("move 1 card from tableau %d to tableau %d", m.From, m.To)
		}
		return fmt.Sprintf("move %d cards from tableau %d to tableau %d", m.Count, m.From, m.To)
	}
	return "invalid move"
}

// Decode turns a move code into a Move. Pile indices are range checked;
// whether the move is legal on a given board is not.
func Decode(code int) (Move, error) {
	var m Move
	switch {
	case code == 1:
		m = Move{Kind: Deal}
	case code == 2:
		m = Move{Kind: WasteToFoundation}
	case code >= 10 && code <= 16:
		m = Move{Kind: TableauToFoundation, From: code % 10}
	case code >= 20 && code <= 26:
		m = Move{Kind: WasteToTableau, To: code % 10}
	case code >= 100 && code <= 136:
		m = Move{Kind: FoundationToTableau, From: (code / 10) % 10, To: code % 10}
	case code >= 10000 && code <= 16613:
		m = Move{
			Kind:  TableauToTableau,
			From:  (code / 1000) % 10,
			To:    (code / 100) % 10,
			Count: code % 100,
		}
	default:
		return Move{}, fmt.Errorf("%w: %d", ErrInvalidCode, code)
	}

	if !m.Valid() {
		return Move{}, fmt.Errorf("%w: %d names a pile that does not exist", ErrInvalidCode, code)
	}
	return m, nil
}

// Valid reports whether the move's pile indices and count are in range
func (m Move) Valid() bool {
	switch m.Kind {
	case Deal, WasteToFoundation:
		return true
	case TableauToFoundation:
		return tableau(m.From)
	case WasteToTableau:
		return tableau(m.To)
	case FoundationToTableau:
		return m.From >= 0 && m.From < NumFoundations && tableau(m.To)
	case TableauToTableau:
		return tableau(m.From) && tableau(m.To) && m.Count >= 0 && m.Count <= MaxRun
	}
	return false
}

// Encode returns the code for a move, the inverse of Decode
func Encode(m Move) (int, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCode, m)
	}
	switch m.Kind {
	case Deal:
		return 1, nil
	case WasteToFoundation:
		return 2, nil
	case TableauToFoundation:
		return 10 + m.From, nil
	case WasteToTableau:
		return 20 + m.To, nil
	case FoundationToTableau:
		return 100 + m.From*10 + m.To, nil
	default:
		return 10000 + m.From*1000 + m.To*100 + m.Count, nil
	}
}

func tableau(i int) bool {
	return i >= 0 && i < NumTableaus
}
