package prepare

import (
	"fmt"
	"math"

	"github.com/arloliu/vizu/colors"
	"github.com/arloliu/vizu/errs"
	"github.com/arloliu/vizu/table"
)

// ScatterSpec names the input fields for animated-scatter preparation.
type ScatterSpec struct {
	// TimeField is the observation time column; values are coerced to the
	// integer time axis.
	TimeField string

	// EntityField is the column the table is partitioned by; every entity
	// appears at every integer time step in the output.
	EntityField string

	// GroupField is the coloring column. It is distinct from EntityField:
	// partitioning is per entity, colors are per group.
	GroupField string

	// XField, YField and SizeField are the numeric measures of each
	// observation.
	XField    string
	YField    string
	SizeField string
}

// scatterSeries holds one entity's measures reindexed onto the full range.
type scatterSeries struct {
	entity string
	group  string
	x      []float64
	y      []float64
	size   []float64
}

// Scatter converts a long-format table (one row per entity per observed
// time) into a dense table with one row per entity per integer time step
// in [floor(min observed), ceil(max observed)].
//
// Each entity's measures are filled by linear interpolation between known
// neighboring times, then any remaining leading gap is filled backward and
// any trailing gap forward from the nearest known value. An entity with at
// least one observation therefore has no unset measure anywhere in the
// range. A row whose time cell is not numeric is skipped.
//
// The output columns are, in order: EntityField, GroupField, TimeField,
// XField, YField, SizeField, "color".
func Scatter(t *table.Table, reg *colors.Registry, spec ScatterSpec) (*table.Table, error) {
	if err := t.RequireColumns(spec.TimeField, spec.EntityField, spec.GroupField,
		spec.XField, spec.YField, spec.SizeField); err != nil {
		return nil, err
	}
	if t.NumRows() == 0 {
		return nil, errs.ErrEmptyTable
	}

	timeIdx, _ := t.ColumnIndex(spec.TimeField)
	entityIdx, _ := t.ColumnIndex(spec.EntityField)
	groupIdx, _ := t.ColumnIndex(spec.GroupField)
	xIdx, _ := t.ColumnIndex(spec.XField)
	yIdx, _ := t.ColumnIndex(spec.YField)
	sizeIdx, _ := t.ColumnIndex(spec.SizeField)

	// The range spans the whole table: integer floor of the earliest
	// observation through integer ceiling of the latest.
	minTime, maxTime := math.Inf(1), math.Inf(-1)
	for row := 0; row < t.NumRows(); row++ {
		tv, ok := t.Float(row, timeIdx)
		if !ok || math.IsNaN(tv) {
			continue
		}
		minTime = math.Min(minTime, tv)
		maxTime = math.Max(maxTime, tv)
	}
	if math.IsInf(minTime, 1) {
		return nil, fmt.Errorf("%w: no row has a numeric %q", errs.ErrEmptyTable, spec.TimeField)
	}

	start := int(math.Floor(minTime))
	end := int(math.Ceil(maxTime))
	rangeLen := end - start + 1

	// Partition by entity in first-appearance order and reindex each
	// partition onto the full range.
	order := make([]string, 0)
	parts := make(map[string]*scatterSeries)
	for row := 0; row < t.NumRows(); row++ {
		tv, ok := t.Float(row, timeIdx)
		if !ok || math.IsNaN(tv) {
			continue
		}

		entity := t.String(row, entityIdx)
		s, seen := parts[entity]
		if !seen {
			s = &scatterSeries{
				entity: entity,
				group:  t.String(row, groupIdx),
				x:      nanSlice(rangeLen),
				y:      nanSlice(rangeLen),
				size:   nanSlice(rangeLen),
			}
			parts[entity] = s
			order = append(order, entity)
		}

		slot := int(math.Round(tv)) - start
		if slot < 0 {
			slot = 0
		} else if slot >= rangeLen {
			slot = rangeLen - 1
		}
		setMeasure(s.x, slot, t, row, xIdx)
		setMeasure(s.y, slot, t, row, yIdx)
		setMeasure(s.size, slot, t, row, sizeIdx)
	}

	for _, entity := range order {
		s := parts[entity]
		for _, vals := range [][]float64{s.x, s.y, s.size} {
			fillLinear(vals)
			fillForward(vals)
			fillBackward(vals)
		}
	}

	// Concatenate the filled partitions, restoring the time field as an
	// explicit column and attaching the per-group color.
	out := table.New(spec.EntityField, spec.GroupField, spec.TimeField,
		spec.XField, spec.YField, spec.SizeField, ColorColumn)
	for _, entity := range order {
		s := parts[entity]
		color := reg.Get(s.group)
		for step := 0; step < rangeLen; step++ {
			err := out.AppendRow(s.entity, s.group, start+step,
				s.x[step], s.y[step], s.size[step], color)
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func nanSlice(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.NaN()
	}

	return vals
}

func setMeasure(vals []float64, slot int, t *table.Table, row, col int) {
	if v, ok := t.Float(row, col); ok {
		vals[slot] = v
	}
}
