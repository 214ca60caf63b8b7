package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arloliu/vizu/compress"
	"github.com/arloliu/vizu/errs"
	"github.com/arloliu/vizu/internal/options"
	"github.com/arloliu/vizu/table"
)

// frameSeparator joins rendered frames inside the artifact. Form feed is
// the traditional page break and never appears in rendered chart text.
const frameSeparator = "\f\n"

// Driver runs the animation loop: one renderer call per integer time step,
// frames assembled in order, artifact written once at the end.
type Driver struct {
	renderer FrameRenderer
	title    string
	interval time.Duration
	fps      int
	codec    compress.Codec
	codecTyp compress.Type
	output   string
}

// DriverOption is a functional option for configuring the Driver.
type DriverOption = options.Option[*Driver]

// WithTitle sets the title forwarded to every frame.
func WithTitle(title string) DriverOption {
	return options.NoError(func(d *Driver) {
		d.title = title
	})
}

// WithFrameInterval sets the per-frame display interval recorded in the
// artifact and used by terminal playback.
func WithFrameInterval(interval time.Duration) DriverOption {
	return options.New(func(d *Driver) error {
		if interval <= 0 {
			return fmt.Errorf("%w: frame interval must be positive, got %v", errs.ErrInvalidInput, interval)
		}
		d.interval = interval

		return nil
	})
}

// WithFPS sets the frames-per-second recorded in the artifact.
func WithFPS(fps int) DriverOption {
	return options.New(func(d *Driver) error {
		if fps <= 0 {
			return fmt.Errorf("%w: fps must be positive, got %d", errs.ErrInvalidInput, fps)
		}
		d.fps = fps

		return nil
	})
}

// WithCompression selects the artifact compression codec.
func WithCompression(t compress.Type) DriverOption {
	return options.New(func(d *Driver) error {
		codec, err := compress.CreateCodec(t)
		if err != nil {
			return err
		}
		d.codec = codec
		d.codecTyp = t

		return nil
	})
}

// WithOutputPath sets the artifact file path.
func WithOutputPath(path string) DriverOption {
	return options.NoError(func(d *Driver) {
		d.output = path
	})
}

// NewDriver creates a driver around the given frame renderer.
//
// Defaults follow the original chart parameters: a 200ms frame interval,
// 5 fps, no compression, and an "animation.frames" output path.
func NewDriver(renderer FrameRenderer, opts ...DriverOption) (*Driver, error) {
	if renderer == nil {
		return nil, errs.ErrNoRenderer
	}

	d := &Driver{
		renderer: renderer,
		interval: 200 * time.Millisecond,
		fps:      5,
		codec:    compress.NewNoOpCompressor(),
		codecTyp: compress.TypeNone,
		output:   "animation.frames",
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Interval returns the configured per-frame interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Frames renders one frame per integer time step in [start, end] from the
// prepared table, slicing it by the named time column. A renderer error
// stops the loop immediately; there is no partial output.
func (d *Driver) Frames(prepared *table.Table, timeField string, start, end int) ([]string, error) {
	if err := prepared.RequireColumns(timeField); err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("%w: [%d, %d]", errs.ErrInvalidTimeRange, start, end)
	}

	timeIdx, _ := prepared.ColumnIndex(timeField)
	frames := make([]string, 0, end-start+1)
	for step := start; step <= end; step++ {
		slice := prepared.Filter(func(row int) bool {
			v, ok := prepared.Float(row, timeIdx)
			return ok && int(v) == step
		})

		text, err := d.renderer.RenderFrame(Frame{Time: step, Data: slice, Title: d.title})
		if err != nil {
			return nil, fmt.Errorf("rendering frame %d: %w", step, err)
		}
		frames = append(frames, text)
	}

	return frames, nil
}

// Run renders the full sequence and writes the artifact to the configured
// output path in a single write. The file handle is held only for that
// write and released unconditionally.
func (d *Driver) Run(prepared *table.Table, timeField string, start, end int) error {
	frames, err := d.Frames(prepared, timeField, start, end)
	if err != nil {
		return err
	}

	artifact, err := d.assemble(frames)
	if err != nil {
		return err
	}

	f, err := os.Create(d.output)
	if err != nil {
		return fmt.Errorf("creating artifact %q: %w", d.output, err)
	}
	defer f.Close()

	if _, err := f.Write(artifact); err != nil {
		return fmt.Errorf("writing artifact %q: %w", d.output, err)
	}

	return nil
}

// assemble joins the frames under a metadata header and applies the
// configured compression.
func (d *Driver) assemble(frames []string) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "vizu frames=%d interval=%s fps=%d compression=%s\n",
		len(frames), d.interval, d.fps, d.codecTyp)
	b.WriteString(strings.Join(frames, frameSeparator))

	return d.codec.Compress([]byte(b.String()))
}
