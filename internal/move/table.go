package move

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed data/moves.csv
var defaultMoves string

// Entry is one row of the move enumeration table
type Entry struct {
	Index       int
	Code        int
	Move        Move
	Description string
}

// Table maps a dense enumeration index to a move code. It is read-only
// once loaded and may be shared by any number of games.
type Table struct {
	entries []Entry
	byCode  map[int]int
}

// DefaultTable returns the enumeration table compiled into the binary
func DefaultTable() (*Table, error) {
	t, err := LoadTable(strings.NewReader(defaultMoves))
	if err != nil {
		return nil, fmt.Errorf("error loading built-in move table: %v", err)
	}
	return t, nil
}

// LoadTableFile reads an enumeration table from a CSV file
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening move table: %v", err)
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadTable reads an enumeration table from CSV with an
// "index,code[,description]" header. Indices must start at 0 and be
// contiguous, and every code must decode.
func LoadTable(r io.Reader) (*Table, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("move table is empty")
	}

	t := &Table{
		entries: make([]Entry, 0, len(rows)),
		byCode:  make(map[int]int, len(rows)),
	}
	for i, row := range rows {
		if row.Index != i {
			return nil, fmt.Errorf("move table row %d has index %d, indices must be contiguous from 0", i+1, row.Index)
		}
		if _, ok := t.byCode[row.Code]; !ok {
			t.byCode[row.Code] = row.Index
		}
		t.entries = append(t.entries, row)
	}
	return t, nil
}

// Row is a raw table row that failed to decode, kept for validation reports
type Row struct {
	Line  int
	Index int
	Code  int
	Err   error
}

// ReadRows parses every row of a table without rejecting the first bad one
func ReadRows(r io.Reader) ([]Row, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		e, err := parseRecord(rec)
		rows = append(rows, Row{Line: i + 2, Index: e.Index, Code: e.Code, Err: err})
	}
	return rows, nil
}

func readRows(r io.Reader) ([]Entry, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		e, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("move table line %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading move table: %v", err)
	}
	if len(records) == 0 {
		return nil, errors.New("move table is empty")
	}
	header := records[0]
	if len(header) < 2 || !strings.EqualFold(header[0], "index") || !strings.EqualFold(header[1], "code") {
		return nil, fmt.Errorf("move table header must start with index,code, got %q", strings.Join(header, ","))
	}
	return records[1:], nil
}

func parseRecord(rec []string) (Entry, error) {
	if len(rec) < 2 {
		return Entry{}, fmt.Errorf("expected at least 2 fields, got %d", len(rec))
	}
	index, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return Entry{}, fmt.Errorf("bad index %q", rec[0])
	}
	code, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return Entry{Index: index}, fmt.Errorf("bad code %q", rec[1])
	}
	m, err := Decode(code)
	if err != nil {
		return Entry{Index: index, Code: code}, err
	}

	e := Entry{Index: index, Code: code, Move: m}
	if len(rec) > 2 {
		e.Description = strings.TrimSpace(rec[2])
	}
	if e.Description == "" {
		e.Description = m.String()
	}
	return e, nil
}

// Len returns the number of enumerated moves
func (t *Table) Len() int {
	return len(t.entries)
}

// Code translates an enumeration index to a move code
func (t *Table) Code(index int) (int, bool) {
	if index < 0 || index >= len(t.entries) {
		return 0, false
	}
	return t.entries[index].Code, true
}

// Entry returns the full row for an enumeration index
func (t *Table) Entry(index int) (Entry, bool) {
	if index < 0 || index >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[index], true
}

// Index returns the first enumeration index for a move code
func (t *Table) Index(code int) (int, bool) {
	i, ok := t.byCode[code]
	return i, ok
}

// Entries returns a copy of every row in index order
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
