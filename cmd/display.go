package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/canfield/internal/board"
	"github.com/arcanaland/canfield/internal/card"
	"github.com/arcanaland/canfield/internal/config"
)

// cellWidth is the visible width of one tableau column
const cellWidth = 5

// theme colors cards for terminal output
type theme struct {
	red     colorful.Color
	black   colorful.Color
	hidden  colorful.Color
	enabled bool
}

func newTheme(tc config.ThemeConfig) theme {
	d := config.Default().Theme
	return theme{
		red:     parseHex(tc.Red, d.Red),
		black:   parseHex(tc.Black, d.Black),
		hidden:  parseHex(tc.Hidden, d.Hidden),
		enabled: term.IsTerminal(int(os.Stdout.Fd())) && !colorize.NoColor,
	}
}

// parseHex parses a theme color, falling back to the default on a bad value
func parseHex(value, fallback string) colorful.Color {
	c, err := colorful.Hex(value)
	if err != nil {
		log.WithField("color", value).Warn("invalid theme color, using default")
		c, _ = colorful.Hex(fallback)
	}
	return c
}

// ansiColorString formats text with a 24-bit foreground color
func ansiColorString(text string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// card renders c padded to width visible characters
func (th theme) card(c *card.Card, width int) string {
	text := c.String()
	pad := ""
	if n := utf8.RuneCountInString(text); n < width {
		pad = strings.Repeat(" ", width-n)
	}
	if !th.enabled {
		return text + pad
	}

	col := th.black
	switch {
	case !c.Visible():
		col = th.hidden
	case c.Color() == card.Red:
		col = th.red
	}
	return ansiColorString(text, col) + pad
}

// renderBoard draws the board for a person. Tableaus are shown as columns
// when the terminal is wide enough and as rows otherwise.
func renderBoard(b *board.Board, th theme) string {
	var sb strings.Builder

	sb.WriteString(colorize.CyanString("Foundations: "))
	for i := 0; i < board.NumFoundations; i++ {
		f := b.Foundation(i)
		if top := f.Top(); top != nil {
			sb.WriteString(th.card(top, cellWidth))
		} else {
			sb.WriteString(fmt.Sprintf("%-*s", cellWidth, "-"+f.Suit().Symbol()))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(colorize.CyanString("Stock:       "))
	sb.WriteString(fmt.Sprintf("%d cards\n", b.Stock().Len()))
	sb.WriteString(colorize.CyanString("Waste:       "))
	waste := b.Waste().Cards()
	if len(waste) > board.DrawCount {
		sb.WriteString(fmt.Sprintf("(+%d) ", len(waste)-board.DrawCount))
		waste = waste[len(waste)-board.DrawCount:]
	}
	for _, c := range waste {
		sb.WriteString(th.card(c, 0) + " ")
	}
	sb.WriteString("\n\n")

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	if width >= board.NumTableaus*cellWidth+4 {
		renderColumns(&sb, b, th)
	} else {
		for i := 0; i < board.NumTableaus; i++ {
			sb.WriteString(colorize.CyanString("%d: ", i))
			for _, c := range b.Tableau(i).Cards() {
				sb.WriteString(th.card(c, 0) + " ")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(colorize.CyanString("Reward: "))
	sb.WriteString(colorize.HiWhiteString("%d", b.Reward()))
	sb.WriteString("\n")
	return sb.String()
}

func renderColumns(sb *strings.Builder, b *board.Board, th theme) {
	depth := 0
	for i := 0; i < board.NumTableaus; i++ {
		sb.WriteString(colorize.CyanString("%-*d", cellWidth, i))
		depth = max(depth, b.Tableau(i).Len())
	}
	sb.WriteString("\n")

	for row := 0; row < depth; row++ {
		for i := 0; i < board.NumTableaus; i++ {
			if c := b.Tableau(i).At(row); c != nil {
				sb.WriteString(th.card(c, cellWidth))
			} else {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
