package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/canfield/internal/board"
	"github.com/arcanaland/canfield/internal/deck"
)

const playHelp = `Moves:
  1          deal three cards from the stock (recycles the waste when empty)
  2          waste to foundation
  1i         tableau i to foundation             (10-16)
  2j         waste to tableau j                  (20-26)
  1ij        foundation i to tableau j           (i 0-3 clubs, diamonds, hearts, spades)
  1ijkk      move kk cards from tableau i to j   (10203 moves 3 cards from 0 to 2)
Commands:
  h          show this help
  b          show the board
  q          quit`

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game interactively by typing move codes",
	Long: `Play deals a game and reads one move per line from standard input.
A move is a numeric move code, or an index into the move table with --index.
Type h for the list of codes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		byIndex, _ := cmd.Flags().GetBool("index")

		cards, moves, err := loadTables()
		if err != nil {
			return err
		}
		rng, seed := newRand(seedFlag(cmd))
		d, err := deck.New(cards, rng)
		if err != nil {
			return err
		}
		b := board.New(moves)
		if err := b.Setup(d); err != nil {
			return err
		}
		log.WithField("seed", seed).Info("dealt new game")

		th := newTheme(cfg.Theme)
		fmt.Print(renderBoard(b, th))
		fmt.Println(colorize.HiBlackString("Type h for help, q to quit."))

		scanner := bufio.NewScanner(os.Stdin)
		played := 0
		for {
			fmt.Print(colorize.GreenString("move> "))
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			switch input {
			case "":
				continue
			case "q", "quit":
				fmt.Printf("Game over after %d moves, reward %d.\n", played, b.Reward())
				return nil
			case "h", "help":
				fmt.Println(playHelp)
				continue
			case "b", "board":
				fmt.Print(renderBoard(b, th))
				continue
			}

			n, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("Move not recognised")
				continue
			}

			var ok bool
			if byIndex {
				ok = b.ApplyIndex(n)
			} else {
				ok = b.ApplyCode(n)
			}
			if !ok {
				fmt.Println("Move not recognised")
				continue
			}
			played++
			log.WithFields(logrus.Fields{"input": n, "moves": played}).Debug("move applied")

			fmt.Print(renderBoard(b, th))
			if b.Won() {
				fmt.Println(colorize.HiYellowString("All 52 cards are on the foundations. You win!"))
				return nil
			}
		}
		return scanner.Err()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	playCmd.Flags().Uint64("seed", 0, "Deal seed, 0 for a random deal (defaults to the configured seed)")
	playCmd.Flags().Bool("index", false, "Read move table indexes instead of move codes")
}
