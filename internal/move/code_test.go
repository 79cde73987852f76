package move

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want Move
	}{
		{1, Move{Kind: Deal}},
		{2, Move{Kind: WasteToFoundation}},
		{10, Move{Kind: TableauToFoundation, From: 0}},
		{13, Move{Kind: TableauToFoundation, From: 3}},
		{16, Move{Kind: TableauToFoundation, From: 6}},
		{20, Move{Kind: WasteToTableau, To: 0}},
		{26, Move{Kind: WasteToTableau, To: 6}},
		{100, Move{Kind: FoundationToTableau, From: 0, To: 0}},
		{121, Move{Kind: FoundationToTableau, From: 2, To: 1}},
		{136, Move{Kind: FoundationToTableau, From: 3, To: 6}},
		{10203, Move{Kind: TableauToTableau, From: 0, To: 2, Count: 3}},
		{12001, Move{Kind: TableauToTableau, From: 2, To: 0, Count: 1}},
		{16512, Move{Kind: TableauToTableau, From: 6, To: 5, Count: 12}},
		{16613, Move{Kind: TableauToTableau, From: 6, To: 6, Count: 13}},
	}

	for _, tt := range tests {
		got, err := Decode(tt.code)
		require.NoError(t, err, "code %d", tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)

		back, err := Encode(got)
		require.NoError(t, err)
		assert.Equal(t, tt.code, back)
	}
}

func TestEveryDecodableCodeRoundTrips(t *testing.T) {
	t.Parallel()

	decoded := 0
	for code := -5; code < 20000; code++ {
		m, err := Decode(code)
		if err != nil {
			require.ErrorIs(t, err, ErrInvalidCode)
			continue
		}
		decoded++
		back, err := Encode(m)
		require.NoError(t, err, "code %d", code)
		require.Equal(t, code, back)
	}
	// tableau runs stop at 16613, so 6->6 only reaches a count of 13
	assert.Equal(t, 2+7+7+28+7*7*100-86, decoded)
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	for _, code := range []int{-1, 0, 3, 9, 17, 19, 27, 99, 107, 109, 137, 999, 9999, 10700, 10799, 17000, 16614, 100000} {
		_, err := Decode(code)
		assert.True(t, errors.Is(err, ErrInvalidCode), "code %d should be invalid", code)
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Encode(Move{Kind: WasteToTableau, To: 7})
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = Encode(Move{Kind: FoundationToTableau, From: 4})
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = Encode(Move{})
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestMoveString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foundation 2 to tableau 1", Move{Kind: FoundationToTableau, From: 2, To: 1}.String())
	assert.Equal(t, "move 1 card from tableau 3 to tableau 4", Move{Kind: TableauToTableau, From: 3, To: 4, Count: 1}.String())
	assert.Equal(t, "tableau-to-foundation", TableauToFoundation.String())
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table, err := DefaultTable()
	require.NoError(t, err)
	assert.Equal(t, 548, table.Len())

	// every row decodes into the documented range for its kind
	for i, e := range table.Entries() {
		assert.Equal(t, i, e.Index)
		m, err := Decode(e.Code)
		require.NoError(t, err)
		assert.Equal(t, e.Move, m)

		switch m.Kind {
		case Deal:
			assert.Equal(t, 1, e.Code)
		case WasteToFoundation:
			assert.Equal(t, 2, e.Code)
		case TableauToFoundation:
			assert.True(t, e.Code >= 10 && e.Code <= 16)
			assert.Equal(t, e.Code-10, m.From)
		case WasteToTableau:
			assert.True(t, e.Code >= 20 && e.Code <= 26)
			assert.Equal(t, e.Code-20, m.To)
		case FoundationToTableau:
			assert.True(t, e.Code >= 100 && e.Code <= 136)
			assert.Equal(t, e.Code, 100+m.From*10+m.To)
		case TableauToTableau:
			assert.True(t, e.Code >= 10000 && e.Code <= 16613)
			assert.NotEqual(t, m.From, m.To)
			assert.True(t, m.Count >= 1 && m.Count <= 12)
		default:
			t.Fatalf("row %d has kind %s", i, m.Kind)
		}
	}

	code, ok := table.Code(0)
	require.True(t, ok)
	assert.Equal(t, 1, code)
	_, ok = table.Code(548)
	assert.False(t, ok)
	_, ok = table.Code(-1)
	assert.False(t, ok)

	idx, ok := table.Index(121)
	require.True(t, ok)
	e, _ := table.Entry(idx)
	assert.Equal(t, Move{Kind: FoundationToTableau, From: 2, To: 1}, e.Move)
}

func TestLoadTableRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no rows", "index,code\n"},
		{"bad header", "id,move\n0,1\n"},
		{"gap", "index,code\n0,1\n2,2\n"},
		{"starts at one", "index,code\n1,1\n"},
		{"undecodable code", "index,code\n0,1\n1,107\n"},
		{"not a number", "index,code\n0,one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTableDescriptions(t *testing.T) {
	t.Parallel()

	table, err := LoadTable(strings.NewReader("index,code,description\n0,1,\n1,10203,shift three\n"))
	require.NoError(t, err)
	e, ok := table.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "deal stock to waste", e.Description)
	e, _ = table.Entry(1)
	assert.Equal(t, "shift three", e.Description)
}

func TestReadRowsKeepsBadRows(t *testing.T) {
	t.Parallel()

	rows, err := ReadRows(strings.NewReader("index,code\n0,1\n1,999\n2,x\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.NoError(t, rows[0].Err)
	assert.ErrorIs(t, rows[1].Err, ErrInvalidCode)
	assert.Equal(t, 3, rows[1].Line)
	assert.Error(t, rows[2].Err)
}
