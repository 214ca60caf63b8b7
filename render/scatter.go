package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/vizu/prepare"
)

// ScatterList renders one animated-scatter frame as a colored text
// listing, one entity per line with its x/y position and scaled size.
// It is the default collaborator for scatter animations in environments
// without a plotting surface.
type ScatterList struct {
	entityField string
	xField      string
	yField      string
	sizeField   string

	// XLabel and YLabel are the axis captions shown in the frame header.
	XLabel string
	YLabel string

	// SizeScale multiplies the size measure before display.
	SizeScale float64
}

// NewScatterList creates a scatter frame renderer over the named measure
// columns of the prepared table.
func NewScatterList(entityField, xField, yField, sizeField string) *ScatterList {
	return &ScatterList{
		entityField: entityField,
		xField:      xField,
		yField:      yField,
		sizeField:   sizeField,
		SizeScale:   1.0,
	}
}

// RenderFrame implements the FrameRenderer interface.
func (s *ScatterList) RenderFrame(f Frame) (string, error) {
	entityIdx, ok := f.Data.ColumnIndex(s.entityField)
	if !ok {
		return "", fmt.Errorf("scatter: entity field %q missing from frame data", s.entityField)
	}
	xIdx, _ := f.Data.ColumnIndex(s.xField)
	yIdx, _ := f.Data.ColumnIndex(s.yField)
	sizeIdx, _ := f.Data.ColumnIndex(s.sizeField)
	colorIdx, _ := f.Data.ColumnIndex(prepare.ColorColumn)

	xLabel := s.XLabel
	if xLabel == "" {
		xLabel = s.xField
	}
	yLabel := s.YLabel
	if yLabel == "" {
		yLabel = s.yField
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(f.Title), timeStyle.Render(fmt.Sprintf("[%d]", f.Time)))
	fmt.Fprintf(&b, "%s / %s\n", xLabel, yLabel)

	for row := 0; row < f.Data.NumRows(); row++ {
		x, okX := f.Data.Float(row, xIdx)
		y, okY := f.Data.Float(row, yIdx)
		if !okX || !okY || math.IsNaN(x) || math.IsNaN(y) {
			continue
		}

		size := 0.0
		if v, ok := f.Data.Float(row, sizeIdx); ok && !math.IsNaN(v) {
			size = v * s.SizeScale
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Data.String(row, colorIdx)))
		fmt.Fprintf(&b, "%s  (%.1f, %.1f) size=%.1f\n",
			style.Render(f.Data.String(row, entityIdx)), x, y, size)
	}

	return b.String(), nil
}
