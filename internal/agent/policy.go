package agent

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// policyFile is the on-disk form of a learned table
type policyFile struct {
	Actions      int                  `toml:"actions"`
	LearningRate float64              `toml:"learning_rate"`
	Discount     float64              `toml:"discount"`
	Epsilon      float64              `toml:"epsilon"`
	States       map[string][]float64 `toml:"states"`
}

// Save writes the learned table to path as TOML
func (a *Agent) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating policy directory: %v", err)
	}

	pf := policyFile{
		Actions:      a.actions,
		LearningRate: a.params.LearningRate,
		Discount:     a.params.Discount,
		Epsilon:      a.params.Epsilon,
		States:       make(map[string][]float64, len(a.q)),
	}
	for key, v := range a.q {
		pf.States[fmt.Sprintf("%016x", key)] = v
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating policy file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(pf); err != nil {
		return fmt.Errorf("error encoding policy: %v", err)
	}
	return nil
}

// Load reads a table written by Save. The stored action count must match actions.
func Load(path string, actions int, rng *rand.Rand) (*Agent, error) {
	var pf policyFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("error decoding policy file: %v", err)
	}
	if pf.Actions != actions {
		return nil, fmt.Errorf("policy was trained on %d actions, the move table has %d", pf.Actions, actions)
	}

	a := New(actions, Params{
		LearningRate: pf.LearningRate,
		Discount:     pf.Discount,
		Epsilon:      pf.Epsilon,
	}, rng)
	for hexKey, v := range pf.States {
		key, err := strconv.ParseUint(hexKey, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad state key %q: %v", hexKey, err)
		}
		if len(v) != actions {
			return nil, fmt.Errorf("state %s has %d values, want %d", hexKey, len(v), actions)
		}
		a.q[key] = v
	}
	return a, nil
}
