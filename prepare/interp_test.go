package prepare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func requireValues(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
		} else {
			require.InDelta(t, want[i], got[i], 1e-9, "index %d", i)
		}
	}
}

func TestFillLinear(t *testing.T) {
	t.Run("SingleGap", func(t *testing.T) {
		vals := []float64{100, nan(), 200}
		fillLinear(vals)
		requireValues(t, []float64{100, 150, 200}, vals)
	})

	t.Run("LongGap", func(t *testing.T) {
		vals := []float64{10, nan(), nan(), nan(), 30}
		fillLinear(vals)
		requireValues(t, []float64{10, 15, 20, 25, 30}, vals)
	})

	t.Run("NoExtrapolation", func(t *testing.T) {
		vals := []float64{nan(), 10, nan(), 20, nan()}
		fillLinear(vals)
		requireValues(t, []float64{nan(), 10, 15, 20, nan()}, vals)
	})

	t.Run("AllUnset", func(t *testing.T) {
		vals := []float64{nan(), nan()}
		fillLinear(vals)
		requireValues(t, []float64{nan(), nan()}, vals)
	})

	t.Run("NoGaps", func(t *testing.T) {
		vals := []float64{1, 2, 3}
		fillLinear(vals)
		requireValues(t, []float64{1, 2, 3}, vals)
	})
}

func TestFillForward(t *testing.T) {
	vals := []float64{nan(), 10, nan(), nan(), 20, nan()}
	fillForward(vals)
	requireValues(t, []float64{nan(), 10, 10, 10, 20, 20}, vals)
}

func TestFillBackward(t *testing.T) {
	vals := []float64{nan(), 10, nan(), 20, nan()}
	fillBackward(vals)
	requireValues(t, []float64{10, 10, 20, 20, nan()}, vals)
}

func TestBoundaryCarryComposition(t *testing.T) {
	// Interpolate, then forward fill, then backward fill: the scatter
	// preparer's fill order leaves no gaps when at least one value exists.
	vals := []float64{nan(), nan(), 10, nan(), 30, nan()}
	fillLinear(vals)
	fillForward(vals)
	fillBackward(vals)
	requireValues(t, []float64{10, 10, 10, 20, 30, 30}, vals)
}
