package commands

import (
	"fmt"
	"time"

	"github.com/arloliu/vizu"
	"github.com/arloliu/vizu/compress"
	"github.com/arloliu/vizu/prepare"
	"github.com/arloliu/vizu/render"
)

// ScatterCmd renders an animated scatter plot from a long-format CSV file.
type ScatterCmd struct {
	Input       string        `arg:"" help:"Long-format CSV input file." type:"existingfile"`
	TimeField   string        `help:"Observation time column (e.g. year)." required:""`
	EntityField string        `help:"Entity name column (e.g. company)." required:""`
	GroupField  string        `help:"Grouping/coloring column (e.g. sector)." required:""`
	XField      string        `name:"x-field" help:"X measure column." required:""`
	YField      string        `name:"y-field" help:"Y measure column." required:""`
	SizeField   string        `help:"Point size measure column." required:""`
	XLabel      string        `name:"x-label" help:"X axis caption (defaults to the x field name)."`
	YLabel      string        `name:"y-label" help:"Y axis caption (defaults to the y field name)."`
	SizeScale   float64       `help:"Scale factor applied to the size measure." default:"1.0"`
	Title       string        `help:"Chart title." default:"Animated Scatter"`
	Interval    time.Duration `help:"Interval between frames." default:"200ms"`
	FPS         int           `name:"fps" help:"Output frames per second." default:"5"`
	Output      string        `short:"o" help:"Frame artifact path." default:"animated_scatter.frames"`
	Compression string        `help:"Artifact compression." default:"none" enum:"none,zstd,s2,lz4"`
	Play        bool          `help:"Loop the animation in the terminal instead of writing the artifact."`
}

func (c *ScatterCmd) spec() prepare.ScatterSpec {
	return prepare.ScatterSpec{
		TimeField:   c.TimeField,
		EntityField: c.EntityField,
		GroupField:  c.GroupField,
		XField:      c.XField,
		YField:      c.YField,
		SizeField:   c.SizeField,
	}
}

// Run executes the scatter command.
func (c *ScatterCmd) Run() error {
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

	err = session.AnimatedScatter(c.spec(),
		vizu.WithTitle(c.Title),
		vizu.WithXLabel(c.XLabel),
		vizu.WithYLabel(c.YLabel),
		vizu.WithSizeScale(c.SizeScale),
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
func (c *ScatterCmd) play(session *vizu.Session) error {
	spec := c.spec()
	prepared, err := session.PrepareScatter(spec)
	if err != nil {
		return err
	}

	renderer := render.NewScatterList(spec.EntityField, spec.XField, spec.YField, spec.SizeField)
	renderer.XLabel = c.XLabel
	renderer.YLabel = c.YLabel
	renderer.SizeScale = c.SizeScale

	driver, err := render.NewDriver(renderer,
		render.WithTitle(c.Title),
		render.WithFrameInterval(c.Interval),
	)
	if err != nil {
		return err
	}

	start, end, err := vizu.TimeSpan(prepared, spec.TimeField)
	if err != nil {
		return err
	}

	frames, err := driver.Frames(prepared, spec.TimeField, start, end)
	if err != nil {
		return err
	}

	return render.Play(frames, c.Interval)
}
