package commands

import (
	"github.com/arloliu/vizu"
)

// LineRaceCmd is the placeholder command for the future line chart race.
// Running it always reports that the feature is not yet available.
type LineRaceCmd struct {
	Input      string `arg:"" help:"CSV input file." type:"existingfile"`
	NameField  string `help:"Entity name column." required:""`
	GroupField string `help:"Grouping/coloring column." required:""`
	Start      int    `help:"First time period." required:""`
	End        int    `help:"Last time period (inclusive)." required:""`
}

// Run executes the linerace command.
func (c *LineRaceCmd) Run() error {
	t, err := loadTable(c.Input)
	if err != nil {
		return err
	}

	session, err := vizu.New(t)
	if err != nil {
		return err
	}

	return session.LineChartRace(c.NameField, c.GroupField, c.Start, c.End)
}
