package commands

import (
	"fmt"
	"time"

	"github.com/arloliu/vizu"
	"github.com/arloliu/vizu/compress"
	"github.com/arloliu/vizu/prepare"
	"github.com/arloliu/vizu/render"
)

// BarRaceCmd renders a bar chart race from a wide-format CSV file.
type BarRaceCmd struct {
	Input       string        `arg:"" help:"Wide-format CSV input file." type:"existingfile"`
	NameField   string        `help:"Entity name column (e.g. city)." required:""`
	GroupField  string        `help:"Grouping/coloring column (e.g. continent)." required:""`
	Start       int           `help:"First time period of the race." required:""`
	End         int           `help:"Last time period of the race (inclusive)." required:""`
	Title       string        `help:"Chart title." default:"Bar Chart Race"`
	TopN        int           `name:"top-n" help:"Number of bars shown per frame." default:"10"`
	Interval    time.Duration `help:"Interval between frames." default:"200ms"`
	FPS         int           `name:"fps" help:"Output frames per second." default:"5"`
	Output      string        `short:"o" help:"Frame artifact path." default:"bar_chart_race.frames"`
	Compression string        `help:"Artifact compression." default:"none" enum:"none,zstd,s2,lz4"`
	Play        bool          `help:"Loop the animation in the terminal instead of writing the artifact."`
}

// Run executes the barrace command.
func (c *BarRaceCmd) Run() error {
	t, err := loadTable(c.Input)
	if err != nil {
		return err
	}

	session, err := vizu.New(t)
	if err != nil {
		return err
	}

	if c.Play {
		return c.play(session)
	}

	compression, err := compress.ParseType(c.Compression)
	if err != nil {
		return err
	}

	err = session.BarChartRace(c.NameField, c.GroupField, c.Start, c.End,
		vizu.WithTitle(c.Title),
		vizu.WithTopN(c.TopN),
		vizu.WithChartWidth(chartWidth()),
		vizu.WithFrameInterval(c.Interval),
		vizu.WithFPS(c.FPS),
		vizu.WithOutputPath(c.Output),
		vizu.WithCompression(compression),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Success! Animation saved to %q\n", c.Output)

	return nil
}

// play renders the frames and loops them in the terminal.
func (c *BarRaceCmd) play(session *vizu.Session) error {
	prepared, err := session.PrepareBarRace(c.NameField, c.GroupField, c.Start, c.End)
	if err != nil {
		return err
	}

	renderer := render.NewBarChart(c.NameField, chartWidth(), c.TopN)
	driver, err := render.NewDriver(renderer,
		render.WithTitle(c.Title),
		render.WithFrameInterval(c.Interval),
	)
	if err != nil {
		return err
	}

	frames, err := driver.Frames(prepared, prepare.TimeColumn, c.Start, c.End)
	if err != nil {
		return err
	}

	return render.Play(frames, c.Interval)
}
