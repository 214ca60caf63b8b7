package vizu

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/vizu/compress"
	"github.com/arloliu/vizu/errs"
	"github.com/arloliu/vizu/internal/options"
	"github.com/arloliu/vizu/prepare"
	"github.com/arloliu/vizu/render"
	"github.com/arloliu/vizu/table"
)

// ChartConfig holds the display parameters forwarded to the frame
// renderer and animation driver. All fields have working defaults; use
// the With* options to override them.
type ChartConfig struct {
	Title       string
	XLabel      string
	YLabel      string
	TopN        int
	SizeScale   float64
	Width       int
	Interval    time.Duration
	FPS         int
	Output      string
	Renderer    render.FrameRenderer
	Compression compress.Type
}

// ChartOption is a functional option for configuring a chart call.
type ChartOption = options.Option[*ChartConfig]

// WithTitle sets the chart title.
func WithTitle(title string) ChartOption {
	return options.NoError(func(c *ChartConfig) {
		c.Title = title
	})
}

// WithXLabel sets the x-axis caption (scatter charts).
func WithXLabel(label string) ChartOption {
	return options.NoError(func(c *ChartConfig) {
		c.XLabel = label
	})
}

// WithYLabel sets the y-axis caption (scatter charts).
func WithYLabel(label string) ChartOption {
	return options.NoError(func(c *ChartConfig) {
		c.YLabel = label
	})
}

// WithTopN limits a bar-race frame to the N largest bars.
func WithTopN(n int) ChartOption {
	return options.New(func(c *ChartConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: top N must be positive, got %d", errs.ErrInvalidInput, n)
		}
		c.TopN = n

		return nil
	})
}

// WithSizeScale scales the size measure of scatter points before display.
func WithSizeScale(scale float64) ChartOption {
	return options.New(func(c *ChartConfig) error {
		if scale <= 0 || math.IsNaN(scale) {
			return fmt.Errorf("%w: size scale must be positive, got %v", errs.ErrInvalidInput, scale)
		}
		c.SizeScale = scale

		return nil
	})
}

// WithChartWidth sets the rendered chart width in terminal cells.
func WithChartWidth(width int) ChartOption {
	return options.New(func(c *ChartConfig) error {
		if width <= 0 {
			return fmt.Errorf("%w: chart width must be positive, got %d", errs.ErrInvalidInput, width)
		}
		c.Width = width

		return nil
	})
}

// WithFrameInterval sets the per-frame interval.
func WithFrameInterval(interval time.Duration) ChartOption {
	return options.New(func(c *ChartConfig) error {
		if interval <= 0 {
			return fmt.Errorf("%w: frame interval must be positive, got %v", errs.ErrInvalidInput, interval)
		}
		c.Interval = interval

		return nil
	})
}

// WithFPS sets the output frames-per-second.
func WithFPS(fps int) ChartOption {
	return options.New(func(c *ChartConfig) error {
		if fps <= 0 {
			return fmt.Errorf("%w: fps must be positive, got %d", errs.ErrInvalidInput, fps)
		}
		c.FPS = fps

		return nil
	})
}

// WithOutputPath sets the artifact file path.
func WithOutputPath(path string) ChartOption {
	return options.NoError(func(c *ChartConfig) {
		c.Output = path
	})
}

// WithRenderer injects a custom frame renderer in place of the default
// terminal one.
func WithRenderer(r render.FrameRenderer) ChartOption {
	return options.NoError(func(c *ChartConfig) {
		c.Renderer = r
	})
}

// WithCompression compresses the frame artifact with the given codec.
func WithCompression(t compress.Type) ChartOption {
	return options.NoError(func(c *ChartConfig) {
		c.Compression = t
	})
}

// barRaceDefaults are the original bar-chart-race display parameters.
func barRaceDefaults() *ChartConfig {
	return &ChartConfig{
		Title:     "Bar Chart Race",
		TopN:      10,
		SizeScale: 1.0,
		Width:     100,
		Interval:  200 * time.Millisecond,
		FPS:       5,
		Output:    "bar_chart_race.frames",
	}
}

func scatterDefaults() *ChartConfig {
	cfg := barRaceDefaults()
	cfg.Title = "Animated Scatter"
	cfg.Output = "animated_scatter.frames"

	return cfg
}

// BarChartRace prepares the session's table for a bar chart race and runs
// the full animation: one frame per integer time step in
// [timeStart, timeEnd], written as a single frame artifact.
func (s *Session) BarChartRace(nameField, groupField string, timeStart, timeEnd int, opts ...ChartOption) error {
	cfg := barRaceDefaults()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	prepared, err := s.PrepareBarRace(nameField, groupField, timeStart, timeEnd)
	if err != nil {
		return err
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = render.NewBarChart(nameField, cfg.Width, cfg.TopN)
	}

	driver, err := newDriver(renderer, cfg)
	if err != nil {
		return err
	}

	return driver.Run(prepared, prepare.TimeColumn, timeStart, timeEnd)
}

// AnimatedScatter prepares the session's table for an animated scatter
// plot and runs the full animation over the observed time span.
func (s *Session) AnimatedScatter(spec prepare.ScatterSpec, opts ...ChartOption) error {
	cfg := scatterDefaults()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	prepared, err := s.PrepareScatter(spec)
	if err != nil {
		return err
	}

	renderer := cfg.Renderer
	if renderer == nil {
		sl := render.NewScatterList(spec.EntityField, spec.XField, spec.YField, spec.SizeField)
		sl.XLabel = cfg.XLabel
		sl.YLabel = cfg.YLabel
		sl.SizeScale = cfg.SizeScale
		renderer = sl
	}

	driver, err := newDriver(renderer, cfg)
	if err != nil {
		return err
	}

	start, end, err := TimeSpan(prepared, spec.TimeField)
	if err != nil {
		return err
	}

	return driver.Run(prepared, spec.TimeField, start, end)
}

// TimeSpan returns the smallest and largest integer time steps present in
// a prepared table.
func TimeSpan(t *table.Table, timeField string) (int, int, error) {
	idx, ok := t.ColumnIndex(timeField)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errs.ErrMissingColumn, timeField)
	}
	if t.NumRows() == 0 {
		return 0, 0, errs.ErrEmptyTable
	}

	start, end := math.MaxInt, math.MinInt
	for row := 0; row < t.NumRows(); row++ {
		v, ok := t.Float(row, idx)
		if !ok || math.IsNaN(v) {
			continue
		}
		step := int(v)
		if step < start {
			start = step
		}
		if step > end {
			end = step
		}
	}
	if start > end {
		return 0, 0, errs.ErrEmptyTable
	}

	return start, end, nil
}

func newDriver(renderer render.FrameRenderer, cfg *ChartConfig) (*render.Driver, error) {
	return render.NewDriver(renderer,
		render.WithTitle(cfg.Title),
		render.WithFrameInterval(cfg.Interval),
		render.WithFPS(cfg.FPS),
		render.WithCompression(cfg.Compression),
		render.WithOutputPath(cfg.Output),
	)
}
