// Package prepare transforms sparse or wide-format input tables into the
// dense long-format sequences that animated charts consume frame by frame.
//
// Two preparers are provided. BarRace reshapes a wide table (one column
// per time period) into one row per entity per time step, interpolating
// across the time axis to close gaps. Scatter densifies an already-long
// table to one row per entity per integer time step, carrying boundary
// values so every frame has a complete set of points. Both attach a
// deterministic per-group color column.
package prepare

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/vizu/colors"
	"github.com/arloliu/vizu/errs"
	"github.com/arloliu/vizu/table"
)

// Output column names shared by both preparers.
const (
	// TimeColumn is the integer time-step column in prepared output.
	TimeColumn = "time"

	// ValueColumn is the measure column in bar-race output.
	ValueColumn = "value"

	// ColorColumn is the per-group display color column, formatted
	// "#RRGGBB".
	ColorColumn = "color"
)

// BarRaceSpec names the input fields and the inclusive time range for
// bar-chart-race preparation.
type BarRaceSpec struct {
	// NameField is the entity name column (e.g. "city").
	NameField string

	// GroupField is the grouping/coloring column (e.g. "continent").
	GroupField string

	// TimeStart and TimeEnd bound the closed integer time range; every
	// integer in [TimeStart, TimeEnd] appears in the output for every
	// entity.
	TimeStart int
	TimeEnd   int
}

// raceKey is the composite (entity, group) index of a wide-format row.
type raceKey struct {
	name  string
	group string
}

// BarRace converts a wide-format table into a dense long-format table with
// one row per (entity, group) key per integer time step in the requested
// closed range.
//
// Only input columns whose header parses as a plain integer literal are
// treated as time periods; any other column is ignored and never appears
// in the output. Gaps inside a row's known span are filled by linear
// interpolation along the time axis; positions outside the span stay
// unset (NaN), with no extrapolation.
//
// Duplicate composite keys follow a keep-last policy: a later row with the
// same (entity, group) replaces the earlier row's period values wholesale.
//
// The output columns are, in order: NameField, GroupField, "time",
// "value", "color".
func BarRace(t *table.Table, reg *colors.Registry, spec BarRaceSpec) (*table.Table, error) {
	if err := t.RequireColumns(spec.NameField, spec.GroupField); err != nil {
		return nil, err
	}
	if spec.TimeEnd < spec.TimeStart {
		return nil, fmt.Errorf("%w: [%d, %d]", errs.ErrInvalidTimeRange, spec.TimeStart, spec.TimeEnd)
	}
	if t.NumRows() == 0 {
		return nil, errs.ErrEmptyTable
	}

	// Map each period inside the range to its source column, if any.
	// Columns whose header is not an integer literal are silently excluded.
	periodCols := make(map[int]int)
	numericSeen := false
	for i, name := range t.Columns() {
		period, err := strconv.Atoi(name)
		if err != nil {
			continue
		}
		numericSeen = true
		if period >= spec.TimeStart && period <= spec.TimeEnd {
			periodCols[period] = i
		}
	}
	if !numericSeen {
		return nil, fmt.Errorf("%w: no column header parses as an integer period", errs.ErrNoNumericColumns)
	}

	nameIdx, _ := t.ColumnIndex(spec.NameField)
	groupIdx, _ := t.ColumnIndex(spec.GroupField)
	rangeLen := spec.TimeEnd - spec.TimeStart + 1

	// Reindex onto the full range, keyed by (entity, group). Keys keep
	// first-appearance order; a duplicate key keeps the last row's values.
	keys := make([]raceKey, 0, t.NumRows())
	series := make(map[raceKey][]float64, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		key := raceKey{name: t.String(row, nameIdx), group: t.String(row, groupIdx)}
		if _, seen := series[key]; !seen {
			keys = append(keys, key)
		}

		vals := make([]float64, rangeLen)
		for i := range vals {
			vals[i] = math.NaN()
		}
		for period, col := range periodCols {
			if v, ok := t.Float(row, col); ok {
				vals[period-spec.TimeStart] = v
			}
		}
		series[key] = vals
	}

	for _, key := range keys {
		fillLinear(series[key])
	}

	// Melt to long form and attach the per-group color.
	out := table.New(spec.NameField, spec.GroupField, TimeColumn, ValueColumn, ColorColumn)
	for _, key := range keys {
		color := reg.Get(key.group)
		vals := series[key]
		for step := 0; step < rangeLen; step++ {
			if err := out.AppendRow(key.name, key.group, spec.TimeStart+step, vals[step], color); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
