package vizu

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vizu/errs"
	"github.com/arloliu/vizu/prepare"
	"github.com/arloliu/vizu/render"
	"github.com/arloliu/vizu/table"
)

func wideFixture(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New("city", "continent", "1980", "2000")
	require.NoError(t, tbl.AppendRow("Tokyo", "Asia", 28557.0, 34450.0))
	require.NoError(t, tbl.AppendRow("Cairo", "Africa", 8820.0, 12431.0))

	return tbl
}

func longFixture(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New("year", "company", "sector", "x", "y", "size")
	require.NoError(t, tbl.AppendRow(2010.0, "Alpha", "Software", 10.0, 70.0, 500.0))
	require.NoError(t, tbl.AppendRow(2020.0, "Alpha", "Software", 25.0, 85.0, 3000.0))
	require.NoError(t, tbl.AppendRow(2010.0, "Beta", "Hardware", 30.0, 90.0, 4000.0))
	require.NoError(t, tbl.AppendRow(2020.0, "Beta", "Hardware", 22.0, 80.0, 3200.0))

	return tbl
}

func scatterFixtureSpec() prepare.ScatterSpec {
	return prepare.ScatterSpec{
		TimeField:   "year",
		EntityField: "company",
		GroupField:  "sector",
		XField:      "x",
		YField:      "y",
		SizeField:   "size",
	}
}

func TestNew(t *testing.T) {
	t.Run("ValidTable", func(t *testing.T) {
		session, err := New(wideFixture(t))
		require.NoError(t, err)
		require.NotNil(t, session)
		require.Equal(t, 0, session.Colors().Len())
	})

	t.Run("NilTable", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("ColumnlessTable", func(t *testing.T) {
		_, err := New(table.New())
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("InputTableIsCopied", func(t *testing.T) {
		in := wideFixture(t)
		session, err := New(in)
		require.NoError(t, err)

		// Mutating the caller's table after construction must not affect
		// the session.
		require.NoError(t, in.AppendRow("Lagos", "Africa", 2572.0, 7281.0))

		prepared, err := session.PrepareBarRace("city", "continent", 1980, 2000)
		require.NoError(t, err)
		require.Equal(t, 2*21, prepared.NumRows())
	})
}

func TestSessionColorStability(t *testing.T) {
	session, err := New(wideFixture(t))
	require.NoError(t, err)

	first, err := session.PrepareBarRace("city", "continent", 1980, 2000)
	require.NoError(t, err)

	asia := session.Colors().Get("Asia")

	// New groups appearing later must not disturb earlier assignments.
	session.Colors().Get("Oceania")
	session.Colors().Get("Europe")

	second, err := session.PrepareBarRace("city", "continent", 1980, 2000)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, asia, session.Colors().Get("Asia"))
}

func TestSessionPrepareIdempotence(t *testing.T) {
	session, err := New(longFixture(t))
	require.NoError(t, err)

	first, err := session.PrepareScatter(scatterFixtureSpec())
	require.NoError(t, err)
	second, err := session.PrepareScatter(scatterFixtureSpec())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBarChartRace(t *testing.T) {
	t.Run("WritesArtifact", func(t *testing.T) {
		session, err := New(wideFixture(t))
		require.NoError(t, err)

		output := filepath.Join(t.TempDir(), "race.frames")
		frames := 0
		renderer := render.FrameRendererFunc(func(f render.Frame) (string, error) {
			frames++
			return fmt.Sprintf("%s %d", f.Title, f.Time), nil
		})

		err = session.BarChartRace("city", "continent", 1980, 2000,
			WithTitle("Cities"),
			WithOutputPath(output),
			WithRenderer(renderer),
		)
		require.NoError(t, err)
		require.Equal(t, 21, frames)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		require.Contains(t, string(data), "Cities 1990")
	})

	t.Run("MissingColumn", func(t *testing.T) {
		session, err := New(wideFixture(t))
		require.NoError(t, err)

		err = session.BarChartRace("country", "continent", 1980, 2000)
		require.ErrorIs(t, err, errs.ErrMissingColumn)
	})

	t.Run("RejectsInvalidOption", func(t *testing.T) {
		session, err := New(wideFixture(t))
		require.NoError(t, err)

		err = session.BarChartRace("city", "continent", 1980, 2000, WithTopN(0))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestAnimatedScatter(t *testing.T) {
	session, err := New(longFixture(t))
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "scatter.frames")
	frames := 0
	renderer := render.FrameRendererFunc(func(f render.Frame) (string, error) {
		frames++
		return fmt.Sprintf("%d", f.Time), nil
	})

	err = session.AnimatedScatter(scatterFixtureSpec(),
		WithOutputPath(output),
		WithRenderer(renderer),
	)
	require.NoError(t, err)

	// One frame per year from 2010 through 2020.
	require.Equal(t, 11, frames)
}

func TestLineChartRace(t *testing.T) {
	session, err := New(wideFixture(t))
	require.NoError(t, err)

	err = session.LineChartRace("city", "continent", 1980, 2000)
	require.ErrorIs(t, err, errs.ErrUnsupportedFeature)
}

func TestTimeSpan(t *testing.T) {
	t.Run("SpansPreparedTable", func(t *testing.T) {
		session, err := New(longFixture(t))
		require.NoError(t, err)

		prepared, err := session.PrepareScatter(scatterFixtureSpec())
		require.NoError(t, err)

		start, end, err := TimeSpan(prepared, "year")
		require.NoError(t, err)
		require.Equal(t, 2010, start)
		require.Equal(t, 2020, end)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		_, _, err := TimeSpan(table.New("a"), "time")
		require.ErrorIs(t, err, errs.ErrMissingColumn)
	})
}
