package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate card and move reference data files",
	Long: `Validate checks a card table (TOML) and a move enumeration table (CSV)
before they are used in place of the built-in data. With no flags it checks
the files named in the config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cardsPath, _ := cmd.Flags().GetString("cards")
		movesPath, _ := cmd.Flags().GetString("moves")
		if cardsPath == "" && movesPath == "" {
			cardsPath, movesPath = cfg.CardsFile, cfg.MovesFile
		}
		if cardsPath == "" && movesPath == "" {
			fmt.Println("No reference data files configured, the built-in tables are in use.")
			return nil
		}

		// Create validator and run validation
		v := validator.NewValidator(cardsPath, movesPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Println("✅ Reference data is valid.")
		} else {
			fmt.Printf("❌ Reference data has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().String("cards", "", "Card table to check (TOML)")
	validateCmd.Flags().String("moves", "", "Move enumeration table to check (CSV)")
}
