package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/agent"
	"github.com/arcanaland/canfield/internal/env"
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a Q-learning agent and save its policy",
	Long: `Train runs epsilon-greedy Q-learning over the move table using the
[agent] settings from the config, then saves the learned table to the
configured policy file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, _ := cmd.Flags().GetInt("episodes")
		resume, _ := cmd.Flags().GetBool("resume")
		if episodes < 1 {
			return fmt.Errorf("episodes must be at least 1")
		}

		cards, moves, err := loadTables()
		if err != nil {
			return err
		}
		rng, seed := newRand(seedFlag(cmd))
		e, err := env.New(cards, moves, rng, cfg.Agent.MaxSteps, log)
		if err != nil {
			return err
		}

		params := agent.Params{
			LearningRate: cfg.Agent.LearningRate,
			Discount:     cfg.Agent.Discount,
			Epsilon:      cfg.Agent.Epsilon,
		}
		a := agent.New(e.ActionCount(), params, rng)
		switch {
		case resume && policyExists():
			loaded, err := agent.Load(cfg.PolicyFile, e.ActionCount(), rng)
			if err != nil {
				return err
			}
			loaded.SetEpsilon(params.Epsilon)
			a = loaded
			log.WithField("states", a.States()).Info("resuming from saved policy")
		case resume:
			log.Warn("no saved policy, starting fresh")
		}

		log.WithFields(logrus.Fields{
			"seed":     seed,
			"episodes": episodes,
			"lr":       params.LearningRate,
			"discount": params.Discount,
			"epsilon":  params.Epsilon,
		}).Info("training started")

		sum, err := a.Train(e, episodes, log)
		if err != nil {
			return fmt.Errorf("training failed: %v", err)
		}
		if err := a.Save(cfg.PolicyFile); err != nil {
			return err
		}

		printSummary(seed, sum)
		fmt.Printf("States learned: %d\n", a.States())
		fmt.Println("Policy saved to:", cfg.PolicyFile)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(trainCmd)
	trainCmd.Flags().IntP("episodes", "n", 1000, "Number of training games")
	trainCmd.Flags().Uint64("seed", 0, "Seed for deals and exploration, 0 for random")
	trainCmd.Flags().Bool("resume", false, "Continue from the saved policy when one exists")
}

// policyExists reports whether a trained policy is on disk
func policyExists() bool {
	_, err := os.Stat(cfg.PolicyFile)
	return err == nil
}
