package cmd

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/card"
	"github.com/arcanaland/canfield/internal/config"
	"github.com/arcanaland/canfield/internal/logger"
	"github.com/arcanaland/canfield/internal/move"
)

var (
	// cfg and log are set up before any subcommand runs
	cfg *config.Config
	log *logrus.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "canfield",
	Short: "Klondike solitaire rule engine with a numeric move protocol",
	Long: `Canfield deals and plays Klondike solitaire. Every move is a single
integer code, so games can be driven by hand, by a random sampler or by a
learning agent. It can also train and evaluate a tabular Q-learning agent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = c
		log = logger.Stderr(cfg.LogLevel)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadTables loads the card and move reference data, from the configured
// files when set and from the built-in copies otherwise
func loadTables() (*card.Table, *move.Table, error) {
	var (
		cards *card.Table
		moves *move.Table
		err   error
	)
	if cfg.CardsFile != "" {
		cards, err = card.LoadTableFile(cfg.CardsFile)
	} else {
		cards, err = card.DefaultTable()
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.MovesFile != "" {
		moves, err = move.LoadTableFile(cfg.MovesFile)
	} else {
		moves, err = move.DefaultTable()
	}
	if err != nil {
		return nil, nil, err
	}
	return cards, moves, nil
}

// seedFlag returns the --seed flag when given, otherwise the configured seed
func seedFlag(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	return cfg.Seed
}

// newRand returns a generator for seed. Seed zero draws a random seed.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
