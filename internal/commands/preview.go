package commands

import (
	"github.com/arloliu/vizu"
	"github.com/arloliu/vizu/internal/preview"
)

// PreviewCmd prepares bar-race data and shows the resulting dense table in
// an interactive, filterable terminal table.
type PreviewCmd struct {
	Input      string `arg:"" help:"Wide-format CSV input file." type:"existingfile"`
	NameField  string `help:"Entity name column." required:""`
	GroupField string `help:"Grouping/coloring column." required:""`
	Start      int    `help:"First time period." required:""`
	End        int    `help:"Last time period (inclusive)." required:""`
	Raw        bool   `help:"Show the raw input table instead of the prepared one."`
}

// Run executes the preview command.
func (c *PreviewCmd) Run() error {
	t, err := loadTable(c.Input)
	if err != nil {
		return err
	}

	if c.Raw {
		return preview.Show(t)
	}

	session, err := vizu.New(t)
	if err != nil {
		return err
	}

	prepared, err := session.PrepareBarRace(c.NameField, c.GroupField, c.Start, c.End)
	if err != nil {
		return err
	}

	return preview.Show(prepared)
}
