package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/canfield/internal/card"
	"github.com/arcanaland/canfield/internal/move"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks reference data files. An empty path means the
// corresponding table is not checked.
type Validator struct {
	CardsPath string
	MovesPath string
	Results   ValidationResults
}

func NewValidator(cardsPath, movesPath string) *Validator {
	return &Validator{
		CardsPath: cardsPath,
		MovesPath: movesPath,
		Results:   ValidationResults{},
	}
}

// Validate runs every check. It returns an error only when a file cannot be
// read at all; problems with the content are collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if v.CardsPath != "" {
		if err := v.validateCards(); err != nil {
			return v.Results, err
		}
	}
	if v.MovesPath != "" {
		if err := v.validateMoves(); err != nil {
			return v.Results, err
		}
	}
	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCards checks the card table row by row
func (v *Validator) validateCards() error {
	if _, err := os.Stat(v.CardsPath); os.IsNotExist(err) {
		return fmt.Errorf("card table not found: %s", v.CardsPath)
	}

	var f struct {
		Cards []card.Info `toml:"card"`
	}
	if _, err := toml.DecodeFile(v.CardsPath, &f); err != nil {
		return fmt.Errorf("error parsing %s: %v", v.CardsPath, err)
	}

	if len(f.Cards) != card.DeckSize {
		v.errorf("card table has %d entries, expected %d", len(f.Cards), card.DeckSize)
	}

	ids := make(map[int]bool)
	faces := make(map[string]int)
	for n, info := range f.Cards {
		where := fmt.Sprintf("card entry %d (id %d)", n+1, info.ID)

		if ids[info.ID] {
			v.errorf("%s: duplicate id", where)
		}
		ids[info.ID] = true
		if info.ID < 0 || info.ID >= card.DeckSize {
			v.errorf("%s: id must be between 0 and %d", where, card.DeckSize-1)
		}

		if !card.Rank(info.Rank).Valid() {
			v.errorf("%s: rank %d out of range 1-13", where, info.Rank)
		}
		suit, err := card.ParseSuit(info.Suit)
		if err != nil {
			v.errorf("%s: %v", where, err)
			continue
		}
		color, err := card.ParseColor(info.Color)
		if err != nil {
			v.errorf("%s: %v", where, err)
		} else if color != suit.Color() {
			v.errorf("%s: color %s does not match suit %s", where, color, suit)
		}

		face := fmt.Sprintf("%d of %s", info.Rank, suit)
		if prev, ok := faces[face]; ok {
			v.errorf("%s: %s already defined by id %d", where, face, prev)
		} else {
			faces[face] = info.ID
		}

		if info.RankLabel == "" {
			v.warnf("%s: rank_label is empty, the rank number will be shown", where)
		}
		if info.Glyph == 0 {
			v.warnf("%s: glyph is missing, the default %s symbol will be shown", where, suit)
		} else if string(rune(info.Glyph)) != suit.Symbol() {
			v.warnf("%s: glyph %q is not the usual %s symbol", where, rune(info.Glyph), suit)
		}
	}

	for id := 0; id < card.DeckSize; id++ {
		if !ids[id] {
			v.errorf("card id %d is missing", id)
		}
	}
	return nil
}

// validateMoves checks the move enumeration table
func (v *Validator) validateMoves() error {
	file, err := os.Open(v.MovesPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("move table not found: %s", v.MovesPath)
	}
	if err != nil {
		return fmt.Errorf("error opening %s: %v", v.MovesPath, err)
	}
	defer file.Close()

	rows, err := move.ReadRows(file)
	if err != nil {
		// a bad header or broken CSV is a content problem, not an I/O one
		v.errorf("%v", err)
		return nil
	}
	if len(rows) == 0 {
		v.errorf("move table has no rows")
		return nil
	}

	codes := make(map[int]int)
	kinds := make(map[move.Kind]int)
	for n, row := range rows {
		if row.Index != n {
			v.errorf("line %d: index %d, expected %d (indices must be contiguous from 0)", row.Line, row.Index, n)
		}
		if row.Err != nil {
			v.errorf("line %d: %v", row.Line, row.Err)
			continue
		}
		if prev, ok := codes[row.Code]; ok {
			v.warnf("line %d: code %d repeats index %d", row.Line, row.Code, prev)
		} else {
			codes[row.Code] = row.Index
		}
		m, _ := move.Decode(row.Code)
		kinds[m.Kind]++
		if m.Kind == move.TableauToTableau && (m.From == m.To || m.Count == 0) {
			v.warnf("line %d: code %d can never succeed", row.Line, row.Code)
		}
	}

	var missing []string
	for _, k := range []move.Kind{move.Deal, move.WasteToFoundation, move.TableauToFoundation,
		move.WasteToTableau, move.FoundationToTableau, move.TableauToTableau} {
		if kinds[k] == 0 {
			missing = append(missing, k.String())
		}
	}
	if len(missing) > 0 {
		v.warnf("move table has no %s moves", strings.Join(missing, ", "))
	}
	return nil
}
