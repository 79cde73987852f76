package agent

import (
	"github.com/sirupsen/logrus"

	"github.com/arcanaland/canfield/internal/board"
	"github.com/arcanaland/canfield/internal/env"
)

// progressEvery is how often training logs a progress line
const progressEvery = 100

// Summary aggregates a batch of episodes
type Summary struct {
	Episodes      int     `yaml:"episodes"`
	Wins          int     `yaml:"wins"`
	Truncated     int     `yaml:"truncated"`
	Steps         int     `yaml:"steps"`
	TotalReward   int     `yaml:"total_reward"`
	MaxReward     int     `yaml:"max_reward"`
	AverageReward float64 `yaml:"average_reward"`
}

func (s *Summary) add(reward, steps int, won, truncated bool) {
	if s.Episodes == 0 || reward > s.MaxReward {
		s.MaxReward = reward
	}
	s.Episodes++
	s.TotalReward += reward
	s.Steps += steps
	if won {
		s.Wins++
	}
	if truncated {
		s.Truncated++
	}
	s.AverageReward = float64(s.TotalReward) / float64(s.Episodes)
}

// Chooser picks an action for the current observation
type Chooser func(obs *board.Observation) int

// RandomChooser samples uniformly from the whole action space
func RandomChooser(e *env.Env) Chooser {
	rng := e.Rand()
	n := e.ActionCount()
	return func(*board.Observation) int {
		return rng.IntN(n)
	}
}

// GreedyChooser always plays the agent's best known action
func (a *Agent) GreedyChooser() Chooser {
	return func(obs *board.Observation) int {
		return a.Greedy(StateKey(obs))
	}
}

// Play runs episodes with choose picking every move, without learning.
// The environment is reset before each episode.
func Play(e *env.Env, choose Chooser, episodes int, log logrus.FieldLogger) (Summary, error) {
	var sum Summary
	for ep := 0; ep < episodes; ep++ {
		obs, err := e.Reset()
		if err != nil {
			return sum, err
		}
		total := 0
		for {
			res := e.Step(choose(&obs))
			total += res.Reward
			obs = res.Observation
			if res.Terminated || res.Truncated {
				sum.add(total, e.Steps(), e.Board().Won(), res.Truncated)
				break
			}
		}
		log.WithFields(logrus.Fields{
			"episode": e.Episode(),
			"reward":  total,
			"steps":   e.Steps(),
		}).Debug("game completed")
	}
	return sum, nil
}

// Train runs episodes with epsilon-greedy exploration, updating the table
// after every step
func (a *Agent) Train(e *env.Env, episodes int, log logrus.FieldLogger) (Summary, error) {
	var sum Summary
	for ep := 0; ep < episodes; ep++ {
		obs, err := e.Reset()
		if err != nil {
			return sum, err
		}
		state := StateKey(&obs)
		total := 0
		for {
			action := a.Act(state)
			res := e.Step(action)
			next := StateKey(&res.Observation)
			a.Update(state, action, float64(res.Reward), next, res.Terminated)
			total += res.Reward
			state = next
			if res.Terminated || res.Truncated {
				sum.add(total, e.Steps(), e.Board().Won(), res.Truncated)
				break
			}
		}

		if ep%progressEvery == 0 {
			log.WithFields(logrus.Fields{
				"episode": ep,
				"reward":  total,
				"states":  a.States(),
			}).Info("training progress")
		}
	}
	return sum, nil
}
