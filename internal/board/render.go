package board

import (
	"fmt"
	"strings"

	"github.com/arcanaland/canfield/internal/card"
)

// rowNames labels each observation row
func rowNames() []string {
	names := make([]string, 0, Rows)
	for _, s := range card.Suits {
		names = append(names, "foundation "+s.String())
	}
	names = append(names, "stock", "waste")
	for i := 0; i < NumTableaus; i++ {
		names = append(names, fmt.Sprintf("tableau %d", i))
	}
	return names
}

// String dumps the board pile by pile. Face-down cards print as "##".
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("Position:\n")
	for _, f := range b.foundations {
		title := strings.ToUpper(f.Suit().String()[:1]) + f.Suit().String()[1:]
		if f.Empty() {
			fmt.Fprintf(&sb, "Foundation %s: empty\n", title)
			continue
		}
		fmt.Fprintf(&sb, "Foundation %s: %s\n", title, f.String())
	}
	fmt.Fprintf(&sb, "Stock: %s\n", b.stock.String())
	fmt.Fprintf(&sb, "Waste: %s\n", b.waste.String())
	sb.WriteString("Tableau:\n")
	for i, t := range b.tableaus {
		fmt.Fprintf(&sb, "Pile %d: %s\n", i, t.String())
	}
	return sb.String()
}
