package agent

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/canfield/internal/board"
	"github.com/arcanaland/canfield/internal/card"
	"github.com/arcanaland/canfield/internal/env"
	"github.com/arcanaland/canfield/internal/logger"
	"github.com/arcanaland/canfield/internal/move"
)

func newEnv(t *testing.T, seed uint64, maxSteps int) *env.Env {
	t.Helper()
	cards, err := card.DefaultTable()
	require.NoError(t, err)
	moves, err := move.DefaultTable()
	require.NoError(t, err)
	e, err := env.New(cards, moves, rand.New(rand.NewPCG(seed, seed)), maxSteps, logger.Discard())
	require.NoError(t, err)
	return e
}

func TestStateKey(t *testing.T) {
	t.Parallel()

	var a, b board.Observation
	for r := range a {
		for c := range a[r] {
			a[r][c] = board.CellEmpty
			b[r][c] = board.CellEmpty
		}
	}
	assert.Equal(t, StateKey(&a), StateKey(&b))

	b[board.RowWaste][0] = 17
	assert.NotEqual(t, StateKey(&a), StateKey(&b))

	a[board.RowWaste][0] = board.CellFaceDown
	assert.NotEqual(t, StateKey(&a), StateKey(&b))
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	a := New(3, Params{LearningRate: 0.5, Discount: 0.9}, rand.New(rand.NewPCG(1, 1)))

	a.Update(1, 2, 10, 2, false)
	assert.InDelta(t, 5.0, a.Value(1, 2), 1e-9)
	assert.Equal(t, 2, a.Greedy(1))

	// next state now carries value through the discount
	a.Update(2, 0, 4, 1, false)
	assert.InDelta(t, 0.5*(4+0.9*5.0), a.Value(2, 0), 1e-9)

	// terminal transitions ignore the next state
	a.Update(3, 1, -1000, 1, true)
	assert.InDelta(t, -500.0, a.Value(3, 1), 1e-9)

	a.Update(3, 7, 1, 1, true)
	assert.Equal(t, 0.0, a.Value(3, 7))
	assert.Equal(t, 3, a.States())
}

func TestGreedyTiesPickLowestIndex(t *testing.T) {
	t.Parallel()

	a := New(4, Params{LearningRate: 1}, nil)
	assert.Equal(t, 0, a.Greedy(42))
	a.Update(42, 3, 1, 0, true)
	a.Update(42, 1, 1, 0, true)
	assert.Equal(t, 1, a.Greedy(42))
}

func TestActExplores(t *testing.T) {
	t.Parallel()

	a := New(5, Params{LearningRate: 1, Epsilon: 1}, rand.New(rand.NewPCG(3, 4)))
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		act := a.Act(9)
		require.True(t, act >= 0 && act < 5)
		seen[act] = true
	}
	assert.Len(t, seen, 5)

	a.SetEpsilon(0)
	a.Update(9, 4, 1, 0, true)
	assert.Equal(t, 4, a.Act(9))
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "policy.toml")
	a := New(3, Params{LearningRate: 0.2, Discount: 0.8, Epsilon: 0.05}, nil)
	a.Update(0xdeadbeef, 1, 3, 0, true)
	a.Update(7, 2, -4, 0, true)
	require.NoError(t, a.Save(path))

	b, err := Load(path, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Params(), b.Params())
	assert.Equal(t, 2, b.States())
	assert.InDelta(t, a.Value(0xdeadbeef, 1), b.Value(0xdeadbeef, 1), 1e-12)
	assert.InDelta(t, a.Value(7, 2), b.Value(7, 2), 1e-12)

	_, err = Load(path, 4, nil)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), 3, nil)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("actions = 3\n[states]\nzz = [1.0, 2.0, 3.0]\n"), 0644))
	_, err = Load(bad, 3, nil)
	assert.Error(t, err)
}

func TestPlayRandom(t *testing.T) {
	t.Parallel()

	e := newEnv(t, 21, 50)
	sum, err := Play(e, RandomChooser(e), 10, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, 10, sum.Episodes)
	assert.True(t, sum.Steps >= 10)
	assert.LessOrEqual(t, sum.MaxReward, board.RewardWin*50)
	assert.InDelta(t, float64(sum.TotalReward)/10, sum.AverageReward, 1e-9)
}

func TestTrainThenEvaluate(t *testing.T) {
	t.Parallel()

	e := newEnv(t, 8, 30)
	a := New(e.ActionCount(), Params{LearningRate: 0.1, Discount: 0.95, Epsilon: 0.3}, rand.New(rand.NewPCG(5, 6)))

	sum, err := a.Train(e, 25, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, 25, sum.Episodes)
	assert.Greater(t, a.States(), 0)

	eval, err := Play(e, a.GreedyChooser(), 5, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, 5, eval.Episodes)
}
