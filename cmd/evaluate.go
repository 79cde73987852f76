package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/agent"
	"github.com/arcanaland/canfield/internal/env"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Play games greedily with the saved policy",
	Long: `Evaluate loads the policy written by train and plays games choosing the
best known move every time, without exploring or learning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		games, _ := cmd.Flags().GetInt("games")
		if games < 1 {
			return fmt.Errorf("games must be at least 1")
		}
		if !policyExists() {
			return fmt.Errorf("no policy at %s, run 'canfield train' first", cfg.PolicyFile)
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

		a, err := agent.Load(cfg.PolicyFile, e.ActionCount(), rng)
		if err != nil {
			return err
		}
		a.SetEpsilon(0)
		log.WithField("states", a.States()).Info("policy loaded")

		sum, err := agent.Play(e, a.GreedyChooser(), games, log)
		if err != nil {
			return fmt.Errorf("evaluation failed: %v", err)
		}
		printSummary(seed, sum)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().IntP("games", "n", 100, "Number of games to play")
	evaluateCmd.Flags().Uint64("seed", 0, "Seed for deals, 0 for random")
}
