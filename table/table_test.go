package table

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vizu/errs"
)

func TestTable(t *testing.T) {
	t.Run("NewAndAppend", func(t *testing.T) {
		tbl := New("name", "group", "1980")
		require.Equal(t, []string{"name", "group", "1980"}, tbl.Columns())
		require.Equal(t, 3, tbl.NumCols())
		require.Equal(t, 0, tbl.NumRows())

		require.NoError(t, tbl.AppendRow("Tokyo", "Asia", 28557.0))
		require.Equal(t, 1, tbl.NumRows())
		require.Equal(t, "Tokyo", tbl.At(0, 0))
		require.Equal(t, 28557.0, tbl.Cell(0, "1980"))
	})

	t.Run("AppendRowArityMismatch", func(t *testing.T) {
		tbl := New("a", "b")
		require.ErrorIs(t, tbl.AppendRow("only one"), errs.ErrInvalidInput)
	})

	t.Run("RequireColumns", func(t *testing.T) {
		tbl := New("name", "group")
		require.NoError(t, tbl.RequireColumns("name", "group"))

		err := tbl.RequireColumns("name", "value")
		require.ErrorIs(t, err, errs.ErrMissingColumn)
		require.Contains(t, err.Error(), "value")
	})

	t.Run("FloatCoercion", func(t *testing.T) {
		tbl := New("a")
		require.NoError(t, tbl.AppendRow(1.5))
		require.NoError(t, tbl.AppendRow(7))
		require.NoError(t, tbl.AppendRow(int64(9)))
		require.NoError(t, tbl.AppendRow("2.5"))
		require.NoError(t, tbl.AppendRow("abc"))
		require.NoError(t, tbl.AppendRow(nil))

		cases := []struct {
			row  int
			want float64
			ok   bool
		}{
			{0, 1.5, true},
			{1, 7, true},
			{2, 9, true},
			{3, 2.5, true},
			{4, 0, false},
			{5, 0, false},
		}
		for _, tc := range cases {
			v, ok := tbl.Float(tc.row, 0)
			require.Equal(t, tc.ok, ok, "row %d", tc.row)
			if tc.ok {
				require.InDelta(t, tc.want, v, 1e-9, "row %d", tc.row)
			}
		}
	})

	t.Run("StringFormatting", func(t *testing.T) {
		tbl := New("a")
		require.NoError(t, tbl.AppendRow("text"))
		require.NoError(t, tbl.AppendRow(nil))
		require.NoError(t, tbl.AppendRow(1990.0))
		require.NoError(t, tbl.AppendRow(1.25))
		require.NoError(t, tbl.AppendRow(math.NaN()))
		require.NoError(t, tbl.AppendRow(42))

		require.Equal(t, "text", tbl.String(0, 0))
		require.Equal(t, "", tbl.String(1, 0))
		require.Equal(t, "1990", tbl.String(2, 0))
		require.Equal(t, "1.25", tbl.String(3, 0))
		require.Equal(t, "", tbl.String(4, 0))
		require.Equal(t, "42", tbl.String(5, 0))
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		tbl := New("a", "b")
		require.NoError(t, tbl.AppendRow("x", 1.0))

		clone := tbl.Clone()
		require.NoError(t, clone.AppendRow("y", 2.0))
		clone.rows[0][0] = "mutated"

		require.Equal(t, 1, tbl.NumRows())
		require.Equal(t, "x", tbl.At(0, 0))
		require.Equal(t, 2, clone.NumRows())
	})

	t.Run("Filter", func(t *testing.T) {
		tbl := New("time", "v")
		require.NoError(t, tbl.AppendRow(1, "a"))
		require.NoError(t, tbl.AppendRow(2, "b"))
		require.NoError(t, tbl.AppendRow(1, "c"))

		timeIdx, _ := tbl.ColumnIndex("time")
		got := tbl.Filter(func(row int) bool {
			v, _ := tbl.Float(row, timeIdx)
			return int(v) == 1
		})
		require.Equal(t, 2, got.NumRows())
		require.Equal(t, "a", got.At(0, 1))
		require.Equal(t, "c", got.At(1, 1))
	})
}

func TestFromCSV(t *testing.T) {
	t.Run("TypedCells", func(t *testing.T) {
		csv := "city,continent,1980,Notes\nTokyo,Asia,28557,densest\nCairo,Africa,,old\n"
		tbl, err := FromCSV(strings.NewReader(csv))
		require.NoError(t, err)

		require.Equal(t, []string{"city", "continent", "1980", "Notes"}, tbl.Columns())
		require.Equal(t, 2, tbl.NumRows())
		require.Equal(t, "Tokyo", tbl.Cell(0, "city"))
		require.Equal(t, 28557.0, tbl.Cell(0, "1980"))
		require.Nil(t, tbl.Cell(1, "1980"))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := FromCSV(strings.NewReader(""))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		tbl, err := FromCSV(strings.NewReader("a,b\n"))
		require.NoError(t, err)
		require.Equal(t, 0, tbl.NumRows())
	})
}
