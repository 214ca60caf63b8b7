package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/vizu/prepare"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

var timeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#777777")).
	Bold(true)

// BarChart renders one bar-chart-race frame as horizontal terminal bars,
// longest at the bottom, colored per group. Only the top N entities by
// value appear in a frame.
type BarChart struct {
	nameField string
	width     int
	topN      int
}

// NewBarChart creates a bar chart frame renderer. The name field selects
// the bar label column of the prepared table; width is the chart width in
// terminal cells.
func NewBarChart(nameField string, width, topN int) *BarChart {
	if width <= 0 {
		width = 80
	}
	if topN <= 0 {
		topN = 10
	}

	return &BarChart{nameField: nameField, width: width, topN: topN}
}

type bar struct {
	name  string
	value float64
	color string
}

// RenderFrame implements the FrameRenderer interface.
func (b *BarChart) RenderFrame(f Frame) (string, error) {
	nameIdx, ok := f.Data.ColumnIndex(b.nameField)
	if !ok {
		return "", fmt.Errorf("bar chart: name field %q missing from frame data", b.nameField)
	}
	valueIdx, _ := f.Data.ColumnIndex(prepare.ValueColumn)
	colorIdx, _ := f.Data.ColumnIndex(prepare.ColorColumn)

	bars := make([]bar, 0, f.Data.NumRows())
	for row := 0; row < f.Data.NumRows(); row++ {
		v, ok := f.Data.Float(row, valueIdx)
		if !ok || math.IsNaN(v) {
			// Entity has no value at this time step.
			continue
		}
		bars = append(bars, bar{
			name:  f.Data.String(row, nameIdx),
			value: v,
			color: f.Data.String(row, colorIdx),
		})
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].value < bars[j].value })
	if len(bars) > b.topN {
		bars = bars[len(bars)-b.topN:]
	}

	header := fmt.Sprintf("%s %s\n", titleStyle.Render(f.Title), timeStyle.Render(fmt.Sprintf("[%d]", f.Time)))
	if len(bars) == 0 {
		return header + "(no data)\n", nil
	}

	barData := make([]barchart.BarData, 0, len(bars))
	for _, bb := range bars {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", bb.name, int(bb.value)),
			Values: []barchart.BarValue{
				{Name: bb.name, Value: bb.value, Style: lipgloss.NewStyle().Foreground(lipgloss.Color(bb.color))},
			},
		})
	}

	bc := barchart.New(b.width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return header + bc.View(), nil
}
