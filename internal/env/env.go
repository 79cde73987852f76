// Package env wraps a board as an episodic environment for a learning agent:
// each step takes one enumerated move and reports the observation, reward
// and whether the episode ended.
package env

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arcanaland/canfield/internal/board"
	"github.com/arcanaland/canfield/internal/card"
	"github.com/arcanaland/canfield/internal/deck"
	"github.com/arcanaland/canfield/internal/logger"
	"github.com/arcanaland/canfield/internal/move"
)

// PenaltyInvalid is the reward for a move that fails. It also ends the episode.
const PenaltyInvalid = -1000

// StepResult is what the agent sees after one move
type StepResult struct {
	Observation board.Observation
	Reward      int
	Terminated  bool
	Truncated   bool
	// Moved is false when the move was rejected
	Moved bool
}

// Env runs one game at a time. It is not safe for concurrent use.
type Env struct {
	cards    *card.Table
	moves    *move.Table
	rng      *rand.Rand
	maxSteps int
	log      logrus.FieldLogger

	board   *board.Board
	episode string
	steps   int
	done    bool
}

// New builds an environment and deals the first game. maxSteps of zero or
// less never truncates an episode. A nil log discards output.
func New(cards *card.Table, moves *move.Table, rng *rand.Rand, maxSteps int, log logrus.FieldLogger) (*Env, error) {
	if cards == nil || moves == nil {
		return nil, fmt.Errorf("card and move tables are required")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = logger.Discard()
	}
	e := &Env{
		cards:    cards,
		moves:    moves,
		rng:      rng,
		maxSteps: maxSteps,
		log:      log,
	}
	if _, err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset deals a new game and returns its first observation
func (e *Env) Reset() (board.Observation, error) {
	d, err := deck.New(e.cards, e.rng)
	if err != nil {
		return board.Observation{}, err
	}
	b := board.New(e.moves)
	if err := b.Setup(d); err != nil {
		return board.Observation{}, err
	}

	e.board = b
	e.episode = uuid.NewString()
	e.steps = 0
	e.done = false
	e.log.WithField("episode", e.episode).Debug("dealt new game")
	return b.Observe(), nil
}

// Step applies the move at enumeration index action. A rejected move scores
// PenaltyInvalid and terminates; a win scores board.RewardWin and terminates.
// Stepping a finished episode returns it terminated again without change.
func (e *Env) Step(action int) StepResult {
	if e.done {
		return StepResult{Observation: e.board.Observe(), Terminated: true}
	}
	e.steps++

	res := StepResult{Moved: e.board.ApplyIndex(action)}
	res.Observation = e.board.Observe()

	switch {
	case !res.Moved:
		res.Reward = PenaltyInvalid
		res.Terminated = true
	case e.board.Won():
		res.Reward = board.RewardWin
		res.Terminated = true
	default:
		res.Reward = e.board.Reward()
		res.Truncated = e.maxSteps > 0 && e.steps >= e.maxSteps
	}

	if res.Terminated || res.Truncated {
		e.done = true
		e.log.WithFields(logrus.Fields{
			"episode":    e.episode,
			"steps":      e.steps,
			"reward":     res.Reward,
			"won":        e.board.Won(),
			"truncated":  res.Truncated,
			"foundation": e.board.FoundationCount(),
		}).Debug("episode finished")
	}
	return res
}

// Board returns the current game
func (e *Env) Board() *board.Board { return e.board }

// ActionCount returns the number of enumerated moves an agent can choose from
func (e *Env) ActionCount() int { return e.moves.Len() }

// Episode returns the id of the current episode
func (e *Env) Episode() string { return e.episode }

// Steps returns how many moves the current episode has taken
func (e *Env) Steps() int { return e.steps }

// Done reports whether the current episode has ended
func (e *Env) Done() bool { return e.done }

// Rand returns the environment's random source, shared with samplers so a
// seeded run is reproducible end to end
func (e *Env) Rand() *rand.Rand { return e.rng }
