// Package meshtrace provides an optional, colorized trace of a dlx.Mesh's
// cover/uncover/step activity, in the same spirit as the teacher's
// fatih/color-based status output elsewhere in this module.
package meshtrace

import (
	"fmt"

	"github.com/fatih/color"
)

// Color implements dlx.Tracer by printing one colored line per event.
// A zero-value Color writes to stdout through the fatih/color package's
// default writer.
type Color struct {
	// Columns, if non-nil, names each column index for the printed
	// messages (e.g. Sudoku's "R0C0" style). Nil means print the raw
	// column index.
	Columns []string
}

func (c Color) name(col int) string {
	if c.Columns != nil && col >= 0 && col < len(c.Columns) {
		return c.Columns[col]
	}
	return fmt.Sprintf("col %d", col)
}

func (c Color) Cover(col int) {
	color.Yellow("cover   %s", c.name(col))
}

func (c Color) Uncover(col int) {
	color.Blue("uncover %s", c.name(col))
}

func (c Color) Step(forward bool, row int) {
	if forward {
		color.HiGreen("step    try row %d", row)
	} else {
		color.HiRed("step    backtrack from row %d", row)
	}
}
