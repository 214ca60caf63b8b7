package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/vizu/errs"
)

// FromCSV reads a CSV document into a table. The first record supplies the
// column names. Cells that parse as numeric literals become float64 values,
// empty cells stay unset (nil), and everything else is kept as a string.
func FromCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty CSV input", errs.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	t := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		cells := make([]any, len(record))
		for i, field := range record {
			cells[i] = parseCell(field)
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func parseCell(field string) any {
	if field == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return f
	}

	return field
}
