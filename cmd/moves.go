package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/move"
)

// movesCmd represents the moves command
var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the move enumeration table",
	Long: `Moves prints every entry of the move table: the index an agent chooses,
the move code it stands for and what the move does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFilter, _ := cmd.Flags().GetString("kind")

		_, moves, err := loadTables()
		if err != nil {
			return err
		}

		shown := 0
		for _, entry := range moves.Entries() {
			if kindFilter != "" && entry.Move.Kind.String() != kindFilter {
				continue
			}
			fmt.Printf("%s %6d  %s\n", colorize.CyanString("%4d", entry.Index), entry.Code, entry.Description)
			shown++
		}
		if shown == 0 {
			return fmt.Errorf("no moves of kind %q, kinds are: %s", kindFilter, kindList())
		}
		fmt.Printf("\n%d of %d moves\n", shown, moves.Len())
		return nil
	},
}

func kindList() string {
	kinds := []move.Kind{
		move.Deal,
		move.WasteToFoundation,
		move.TableauToFoundation,
		move.WasteToTableau,
		move.FoundationToTableau,
		move.TableauToTableau,
	}
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += ", "
		}
		s += k.String()
	}
	return s
}

func init() {
	RootCmd.AddCommand(movesCmd)
	movesCmd.Flags().StringP("kind", "k", "", "Only list moves of this kind, e.g. tableau-to-tableau")
}
