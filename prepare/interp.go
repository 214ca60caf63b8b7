package prepare

import "math"

// fillLinear fills NaN gaps in vals by linear interpolation between the
// nearest known neighbors along the slice. Positions before the first
// known value or after the last one are left NaN: interpolation only, no
// extrapolation.
func fillLinear(vals []float64) {
	prev := -1 // index of the last known value
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			step := (v - vals[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				vals[j] = vals[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
}

// fillForward replaces each NaN with the nearest known value before it.
// Leading NaNs are left untouched.
func fillForward(vals []float64) {
	last := math.NaN()
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = last
		} else {
			last = v
		}
	}
}

// fillBackward replaces each NaN with the nearest known value after it.
// Trailing NaNs are left untouched.
func fillBackward(vals []float64) {
	next := math.NaN()
	for i := len(vals) - 1; i >= 0; i-- {
		if math.IsNaN(vals[i]) {
			vals[i] = next
		} else {
			next = vals[i]
		}
	}
}
