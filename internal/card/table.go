package card

import (
	_ "embed"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// DeckSize is the number of cards in a single standard deck
const DeckSize = 52

//go:embed data/cards.toml
var defaultCards string

// Info is one row of the card reference table
type Info struct {
	ID        int    `toml:"id"`
	RankLabel string `toml:"rank_label"`
	Rank      int    `toml:"rank"`
	Suit      string `toml:"suit"`
	Glyph     int    `toml:"glyph"`
	Color     string `toml:"color"`
}

// Table is the static card reference data. It is read-only once loaded
// and may be shared by any number of games.
type Table struct {
	entries []Info
}

type tableFile struct {
	Cards []Info `toml:"card"`
}

// DefaultTable returns the reference table compiled into the binary
func DefaultTable() (*Table, error) {
	var f tableFile
	if _, err := toml.Decode(defaultCards, &f); err != nil {
		return nil, fmt.Errorf("error decoding built-in card table: %v", err)
	}
	return newTable(f.Cards)
}

// LoadTable decodes a card table from TOML
func LoadTable(r io.Reader) (*Table, error) {
	var f tableFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("error decoding card table: %v", err)
	}
	return newTable(f.Cards)
}

// LoadTableFile decodes a card table from a TOML file
func LoadTableFile(path string) (*Table, error) {
	var f tableFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error decoding card table %s: %v", path, err)
	}
	return newTable(f.Cards)
}

// newTable checks that entries describe exactly one standard deck
func newTable(entries []Info) (*Table, error) {
	if len(entries) != DeckSize {
		return nil, fmt.Errorf("card table has %d entries, want %d", len(entries), DeckSize)
	}

	sorted := make([]Info, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	seen := make(map[[2]int]int, DeckSize)
	for i, info := range sorted {
		if info.ID != i {
			return nil, fmt.Errorf("card table ids must be 0-%d without gaps, found %d at position %d", DeckSize-1, info.ID, i)
		}
		c, err := New(info)
		if err != nil {
			return nil, err
		}
		color, err := ParseColor(info.Color)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", info.ID, err)
		}
		if color != c.Color() {
			return nil, fmt.Errorf("card %d: color %s does not match suit %s", info.ID, color, c.Suit())
		}
		key := [2]int{int(c.Suit()), int(c.Rank())}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("cards %d and %d are both %s of %s", prev, info.ID, info.RankLabel, c.Suit())
		}
		seen[key] = info.ID
	}

	return &Table{entries: sorted}, nil
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Info returns the reference row for a card id
func (t *Table) Info(id int) (Info, bool) {
	if id < 0 || id >= len(t.entries) {
		return Info{}, false
	}
	return t.entries[id], true
}

// NewCards builds a fresh set of face-down cards in id order
func (t *Table) NewCards() []*Card {
	cards := make([]*Card, 0, len(t.entries))
	for _, info := range t.entries {
		// entries were validated by newTable
		c, _ := New(info)
		cards = append(cards, c)
	}
	return cards
}
