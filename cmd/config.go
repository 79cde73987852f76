package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the canfield configuration",
	Long:  `Commands for inspecting and changing the canfield config file.`,
}

// configInitCmd writes the config file if it does not exist yet
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		// LoadConfig in the root command already created it if missing
		configPath := config.GetConfigFilePath()
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("config file was not created: %v", err)
		}
		fmt.Println("Config file initialized at:", configPath)
		fmt.Println("Learned policies are saved to:", cfg.PolicyFile)
		return nil
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

// configSetSeedCmd represents the config set-seed command
var configSetSeedCmd = &cobra.Command{
	Use:   "set-seed [seed]",
	Short: "Fix the deal seed, 0 for a new random deal every game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be a non-negative integer: %v", err)
		}
		if err := config.SetSeed(seed); err != nil {
			return fmt.Errorf("error setting seed: %v", err)
		}

		if seed == 0 {
			fmt.Println("Every game will now use a fresh random deal.")
		} else {
			fmt.Printf("Deal seed set to: %d\n", seed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSeedCmd)
}
