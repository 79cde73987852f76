package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoFile returns the path of an embedded data file in the source tree
func repoFile(parts ...string) string {
	return filepath.Join(append([]string{"..", ".."}, parts...)...)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuiltInDataIsValid(t *testing.T) {
	t.Parallel()

	v := NewValidator(repoFile("internal", "card", "data", "cards.toml"), repoFile("internal", "move", "data", "moves.csv"))
	results, err := v.Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestCardProblems(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(repoFile("internal", "card", "data", "cards.toml"))
	require.NoError(t, err)
	text := string(data)

	// make the two of clubs a second ace and paint it red
	broken := strings.Replace(text,
		"id = 1\nrank_label = \"2\"\nrank = 2\nsuit = \"clubs\"\nglyph = 9827\ncolor = \"black\"",
		"id = 1\nrank_label = \"\"\nrank = 1\nsuit = \"clubs\"\nglyph = 0\ncolor = \"red\"", 1)
	require.NotEqual(t, text, broken)

	results, err := NewValidator(writeTemp(t, "cards.toml", broken), "").Validate()
	require.NoError(t, err)
	joined := strings.Join(results.Errors, "\n")
	assert.Contains(t, joined, "does not match suit clubs")
	assert.Contains(t, joined, "already defined by id 0")
	assert.Len(t, results.Warnings, 2)
}

func TestCardCountAndIds(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "cards.toml", "[[card]]\nid = 60\nrank = 14\nsuit = \"stars\"\n")
	results, err := NewValidator(path, "").Validate()
	require.NoError(t, err)
	joined := strings.Join(results.Errors, "\n")
	assert.Contains(t, joined, "expected 52")
	assert.Contains(t, joined, "id must be between")
	assert.Contains(t, joined, "rank 14")
	assert.Contains(t, joined, "unknown suit")
	assert.Contains(t, joined, "card id 0 is missing")
}

func TestMoveProblems(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "moves.csv", "index,code,description\n0,1,deal\n2,2,gap\n2,10000,zero cards\n3,107,no such tableau\n4,1,again\n")
	results, err := NewValidator("", path).Validate()
	require.NoError(t, err)

	joined := strings.Join(results.Errors, "\n")
	assert.Contains(t, joined, "line 3: index 2, expected 1")
	assert.Contains(t, joined, "line 5: invalid move code")

	warnings := strings.Join(results.Warnings, "\n")
	assert.Contains(t, warnings, "code 10000 can never succeed")
	assert.Contains(t, warnings, "code 1 repeats index 0")
	assert.Contains(t, warnings, "has no tableau-to-foundation")
}

func TestMoveHeader(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "moves.csv", "a,b\n0,1\n")
	results, err := NewValidator("", path).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "header")
}

func TestMissingFiles(t *testing.T) {
	t.Parallel()

	_, err := NewValidator(filepath.Join(t.TempDir(), "none.toml"), "").Validate()
	assert.Error(t, err)
	_, err = NewValidator("", filepath.Join(t.TempDir(), "none.csv")).Validate()
	assert.Error(t, err)
}
