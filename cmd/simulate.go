package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/canfield/internal/agent"
	"github.com/arcanaland/canfield/internal/env"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play games with uniformly random moves",
	Long: `Simulate plays games by sampling uniformly from the move table until a
move fails, the game is won or the step limit is reached, and reports the
rewards collected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, _ := cmd.Flags().GetInt("episodes")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		format, _ := cmd.Flags().GetString("format")
		if episodes < 1 {
			return fmt.Errorf("episodes must be at least 1")
		}
		if format != "text" && format != "yaml" {
			return fmt.Errorf("unknown format %q, use text or yaml", format)
		}
		if !cmd.Flags().Changed("max-steps") {
			maxSteps = cfg.Agent.MaxSteps
		}

		cards, moves, err := loadTables()
		if err != nil {
			return err
		}
		rng, seed := newRand(seedFlag(cmd))
		e, err := env.New(cards, moves, rng, maxSteps, log)
		if err != nil {
			return err
		}

		log.WithField("seed", seed).Info("starting simulation")
		sum, err := agent.Play(e, agent.RandomChooser(e), episodes, log)
		if err != nil {
			return fmt.Errorf("simulation failed: %v", err)
		}

		if format == "yaml" {
			out, err := yaml.Marshal(struct {
				Seed    uint64        `yaml:"seed"`
				Summary agent.Summary `yaml:"summary"`
			}{seed, sum})
			if err != nil {
				return fmt.Errorf("error encoding report: %v", err)
			}
			fmt.Print(string(out))
			return nil
		}

		printSummary(seed, sum)
		return nil
	},
}

// printSummary writes a plain text report for a batch of games
func printSummary(seed uint64, sum agent.Summary) {
	fmt.Printf("Seed:           %d\n", seed)
	fmt.Printf("Games:          %d\n", sum.Episodes)
	fmt.Printf("Wins:           %d\n", sum.Wins)
	fmt.Printf("Truncated:      %d\n", sum.Truncated)
	fmt.Printf("Moves:          %d\n", sum.Steps)
	fmt.Printf("Max reward:     %d\n", sum.MaxReward)
	fmt.Printf("Average reward: %.2f\n", sum.AverageReward)
}

func init() {
	RootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntP("episodes", "n", 100, "Number of games to play")
	simulateCmd.Flags().Uint64("seed", 0, "Seed for deals and move sampling, 0 for random")
	simulateCmd.Flags().Int("max-steps", 0, "Step limit per game (defaults to agent.max_steps)")
	simulateCmd.Flags().StringP("format", "f", "text", "Report format: text or yaml")
}
