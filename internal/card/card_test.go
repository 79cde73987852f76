package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitColorAndFoundation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		suit       Suit
		color      Color
		foundation int
		symbol     string
	}{
		{Clubs, Black, 0, "♣"},
		{Diamonds, Red, 1, "♦"},
		{Hearts, Red, 2, "♥"},
		{Spades, Black, 3, "♠"},
	}

	for _, tt := range tests {
		t.Run(tt.suit.String(), func(t *testing.T) {
			assert.Equal(t, tt.color, tt.suit.Color())
			assert.Equal(t, tt.foundation, tt.suit.Foundation())
			assert.Equal(t, tt.symbol, tt.suit.Symbol())
		})
	}
}

func TestRankValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Rank(1), Ace)
	assert.Equal(t, Rank(11), Jack)
	assert.Equal(t, Rank(12), Queen)
	assert.Equal(t, Rank(13), King)
	assert.True(t, King.Valid())
	assert.False(t, Rank(0).Valid())
	assert.False(t, Rank(14).Valid())
}

func TestParseSuit(t *testing.T) {
	t.Parallel()

	s, err := ParseSuit("Hearts")
	require.NoError(t, err)
	assert.Equal(t, Hearts, s)

	_, err = ParseSuit("stars")
	assert.Error(t, err)
}

func TestNewCard(t *testing.T) {
	t.Parallel()

	c, err := New(Info{ID: 26, RankLabel: "A", Rank: 1, Suit: "hearts", Glyph: 9829, Color: "red"})
	require.NoError(t, err)
	assert.Equal(t, 26, c.ID())
	assert.Equal(t, Ace, c.Rank())
	assert.Equal(t, Hearts, c.Suit())
	assert.Equal(t, Red, c.Color())
	assert.False(t, c.Visible())
	assert.Equal(t, "##", c.String())
	assert.Equal(t, "A♥", c.Face())

	c.Flip()
	assert.True(t, c.Visible())
	assert.Equal(t, "A♥", c.String())
	c.Flip()
	assert.False(t, c.Visible())

	_, err = New(Info{ID: 3, Rank: 14, Suit: "clubs"})
	assert.Error(t, err)
	_, err = New(Info{ID: 52, Rank: 1, Suit: "clubs"})
	assert.Error(t, err)
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table, err := DefaultTable()
	require.NoError(t, err)
	require.Equal(t, DeckSize, table.Len())

	cards := table.NewCards()
	require.Len(t, cards, DeckSize)
	for i, c := range cards {
		assert.Equal(t, i, c.ID())
		assert.False(t, c.Visible())
	}

	// ids are grouped by suit, Ace first
	assert.Equal(t, Spades, cards[39].Suit())
	assert.Equal(t, Ace, cards[39].Rank())
	assert.Equal(t, King, cards[12].Rank())
	assert.Equal(t, Clubs, cards[12].Suit())

	info, ok := table.Info(26)
	require.True(t, ok)
	assert.Equal(t, "hearts", info.Suit)
	_, ok = table.Info(52)
	assert.False(t, ok)
}

func TestLoadTableRejectsBrokenData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"not toml", "[[card]\nid ="},
		{"too few", "[[card]]\nid = 0\nrank = 1\nsuit = \"clubs\"\ncolor = \"black\"\n"},
		{"wrong color", strings.Replace(defaultCards, "suit = \"clubs\"\nglyph = 9827\ncolor = \"black\"", "suit = \"clubs\"\nglyph = 9827\ncolor = \"red\"", 1)},
		{"duplicate card", strings.Replace(defaultCards, "id = 1\nrank_label = \"2\"\nrank = 2", "id = 1\nrank_label = \"A\"\nrank = 1", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTableFromReader(t *testing.T) {
	t.Parallel()

	table, err := LoadTable(strings.NewReader(defaultCards))
	require.NoError(t, err)
	assert.Equal(t, DeckSize, table.Len())
}
