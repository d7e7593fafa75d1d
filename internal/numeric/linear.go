package numeric

// LinearInterp linearly interpolates y at val, given x is ascending
// and hi is the Bisect-style insertion index straddling val (so
// x[hi-1] <= val <= x[hi]). Used where spec.md calls for an
// interp1(...,'linear') resample rather than a spline fit.
func LinearInterp(x, y []float64, val float64, hi int) float64 {
	if hi < 1 {
		hi = 1
	}
	if hi > len(x)-1 {
		hi = len(x) - 1
	}
	lo := hi - 1

	span := x[hi] - x[lo]
	if span == 0 {
		return y[lo]
	}
	t := (val - x[lo]) / span
	return y[lo] + t*(y[hi]-y[lo])
}
