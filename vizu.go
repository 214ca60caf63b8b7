// Package vizu prepares time-indexed tabular data for animated
// visualizations such as bar chart races and animated scatter plots.
//
// The core of the package is a pure data-preparation pipeline: a sparse,
// wide-format or irregularly sampled table goes in, and a dense, gap-free
// long-format table comes out, one row per entity per integer time step,
// with a deterministic per-group color column. Drawing a frame is
// delegated to a render.FrameRenderer collaborator, which the animation
// driver calls once per time step.
//
// # Basic Usage
//
//	t := table.New("city", "continent", "1980", "2000")
//	t.AppendRow("Tokyo", "Asia", 28557.0, 34450.0)
//	t.AppendRow("Cairo", "Africa", 8820.0, 12431.0)
//
//	session, _ := vizu.New(t)
//	err := session.BarChartRace("city", "continent", 1980, 2000,
//	    vizu.WithTitle("Most Populous Cities"),
//	    vizu.WithTopN(10),
//	    vizu.WithOutputPath("cities.frames"),
//	)
//
// For preparation without rendering, use PrepareBarRace or PrepareScatter
// directly; both return the dense long-format table.
package vizu

import (
	"fmt"

	"github.com/arloliu/vizu/colors"
	"github.com/arloliu/vizu/errs"
	"github.com/arloliu/vizu/prepare"
	"github.com/arloliu/vizu/table"
)

// Session binds a copy of one input table to a color registry and exposes
// the preparation and animation operations over it.
//
// The session never mutates the caller's table. Its color registry is
// created empty at construction and grows monotonically: once a group is
// assigned a color, that color stays constant across every subsequent call
// on the session, for any chart type.
//
// Note: a Session is NOT safe for concurrent use.
type Session struct {
	table    *table.Table
	registry *colors.Registry
}

// New creates a session over a copy of the given table.
//
// Returns errs.ErrInvalidInput if the value is not a usable structured
// table (nil, or without columns); the check runs before any preparation.
func New(t *table.Table) (*Session, error) {
	if t == nil || t.NumCols() == 0 {
		return nil, errs.ErrInvalidInput
	}

	return &Session{
		table:    t.Clone(),
		registry: colors.New(),
	}, nil
}

// Colors returns the session's color registry.
func (s *Session) Colors() *colors.Registry {
	return s.registry
}

// PrepareBarRace converts the session's wide-format table into a dense
// long-format table over the closed range [timeStart, timeEnd], with
// linear interpolation across the time axis and a per-group color column.
// The preparation is recomputed on every call; it is deterministic, so
// repeated calls on an unmodified session yield identical output.
func (s *Session) PrepareBarRace(nameField, groupField string, timeStart, timeEnd int) (*table.Table, error) {
	return prepare.BarRace(s.table, s.registry, prepare.BarRaceSpec{
		NameField:  nameField,
		GroupField: groupField,
		TimeStart:  timeStart,
		TimeEnd:    timeEnd,
	})
}

// PrepareScatter converts the session's long-format table into a dense
// per-entity, per-integer-time-step table with boundary carry, plus a
// per-group color column.
func (s *Session) PrepareScatter(spec prepare.ScatterSpec) (*table.Table, error) {
	return prepare.Scatter(s.table, s.registry, spec)
}

// LineChartRace is a placeholder for a future chart type. It always
// returns errs.ErrUnsupportedFeature.
func (s *Session) LineChartRace(nameField, groupField string, timeStart, timeEnd int, opts ...ChartOption) error {
	return fmt.Errorf("%w: line chart race", errs.ErrUnsupportedFeature)
}
