// Package agent is a tabular Q-learning player for the solitaire environment
package agent

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/arcanaland/canfield/internal/board"
)

// Params are the learning hyper-parameters
type Params struct {
	LearningRate float64
	Discount     float64
	Epsilon      float64
}

// StateKey hashes an observation. Cell values fit in a signed byte, so the
// observation is packed one byte per cell before hashing.
func StateKey(o *board.Observation) uint64 {
	var buf [board.Rows * board.Cols]byte
	i := 0
	for _, row := range o {
		for _, v := range row {
			buf[i] = byte(int8(v))
			i++
		}
	}
	return xxhash.Sum64(buf[:])
}

// Agent holds a value per (state, action) pair
type Agent struct {
	params  Params
	actions int
	q       map[uint64][]float64
	rng     *rand.Rand
}

// New returns an agent with an empty table over actions moves
func New(actions int, params Params, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Agent{
		params:  params,
		actions: actions,
		q:       make(map[uint64][]float64),
		rng:     rng,
	}
}

// Actions returns the size of the action space
func (a *Agent) Actions() int { return a.actions }

// States returns how many states have been visited
func (a *Agent) States() int { return len(a.q) }

// Params returns the learning parameters
func (a *Agent) Params() Params { return a.params }

// SetEpsilon changes the exploration rate
func (a *Agent) SetEpsilon(eps float64) { a.params.Epsilon = eps }

func (a *Agent) values(key uint64) []float64 {
	v, ok := a.q[key]
	if !ok {
		v = make([]float64, a.actions)
		a.q[key] = v
	}
	return v
}

// Value returns the learned value of an action in a state
func (a *Agent) Value(key uint64, action int) float64 {
	v, ok := a.q[key]
	if !ok || action < 0 || action >= len(v) {
		return 0
	}
	return v[action]
}

// Act picks a random action with probability epsilon, otherwise the best known one
func (a *Agent) Act(key uint64) int {
	if a.rng.Float64() < a.params.Epsilon {
		return a.rng.IntN(a.actions)
	}
	return a.Greedy(key)
}

// Greedy returns the highest valued action, lowest index on ties
func (a *Agent) Greedy(key uint64) int {
	v, ok := a.q[key]
	if !ok {
		return 0
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// Update applies one Q-learning step. A terminal next state contributes no
// future value.
func (a *Agent) Update(state uint64, action int, reward float64, next uint64, terminal bool) {
	if action < 0 || action >= a.actions {
		return
	}
	future := 0.0
	if !terminal {
		future = maxOf(a.values(next))
	}
	v := a.values(state)
	v[action] += a.params.LearningRate * (reward + a.params.Discount*future - v[action])
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
