// Package preview shows a prepared dense table in an interactive,
// filterable terminal table so the output of a preparer can be inspected
// before rendering an animation.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/arloliu/vizu/table"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 40
	pageSize       = 15
)

// Model is the Bubble Tea model for the table preview.
type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// NewModel builds a preview over the given table. Column widths track the
// longest cell per column, clamped to a readable range.
func NewModel(t *table.Table) Model {
	cols := t.Columns()

	widths := make([]int, len(cols))
	for i, name := range cols {
		widths[i] = len(name)
	}
	for row := 0; row < t.NumRows(); row++ {
		for col := range cols {
			if n := len(t.String(row, col)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	columns := make([]teatable.Column, 0, len(cols))
	for i, name := range cols {
		width := widths[i] + 1
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		columns = append(columns, teatable.NewColumn(name, name, width).WithFiltered(true))
	}

	rows := make([]teatable.Row, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		rowData := make(teatable.RowData, len(cols))
		for col, name := range cols {
			rowData[name] = t.String(row, col)
		}
		rows = append(rows, teatable.NewRow(rowData))
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(pageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

// Init implements the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}

		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View implements the tea.Model interface.
func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}

// Show runs the preview until the user quits.
func Show(t *table.Table) error {
	p := tea.NewProgram(NewModel(t))
	_, err := p.Run()

	return err
}
