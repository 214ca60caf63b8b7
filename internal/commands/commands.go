// Package commands implements the vizu command line interface.
package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/arloliu/vizu/table"
)

// CLI is the root kong command tree.
type CLI struct {
	BarRace  BarRaceCmd  `cmd:"" name:"barrace" help:"Render a bar chart race from a wide-format CSV."`
	Scatter  ScatterCmd  `cmd:"" name:"scatter" help:"Render an animated scatter plot from a long-format CSV."`
	LineRace LineRaceCmd `cmd:"" name:"linerace" help:"Render a line chart race (not yet available)."`
	Preview  PreviewCmd  `cmd:"" name:"preview" help:"Inspect prepared bar-race data in an interactive table."`
}

// loadTable reads a CSV file into a table.
func loadTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	return table.FromCSV(f)
}

// chartWidth returns the terminal width, falling back to a fixed width
// when stdout is not a terminal.
func chartWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}

	return width
}
