// Package render formats CLI summary output.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one label/value pair in a summary table.
type Row struct {
	Label string
	Value string
}

// Table renders rows as two aligned columns. Label alignment uses
// display width, so wide runes in labels do not skew the value column.
func Table(rows []Row) string {
	maxWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Label); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(row.Label)
		b.WriteString(strings.Repeat(" ", maxWidth-runewidth.StringWidth(row.Label)))
		b.WriteString("  ")
		b.WriteString(row.Value)
		b.WriteString("\n")
	}
	return b.String()
}
