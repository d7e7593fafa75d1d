package numeric

// Bisect returns the smallest index hi in [0, len(a)] such that
// hi == len(a) or a[hi] > x, for an ascending array a — the insertion
// point strictly to the right of any keys equal to x. This is the
// Go/0-based re-expression of the reference implementation's 1-based
// bisect (spec.md §4.1): used directly as a slice bound, Bisect(d, n)
// yields exactly the half-open candidate ranges spec.md §4.4
// describes (e.g. the first ladder step's lo=0, hi=Bisect(d, 2.0)).
// Out-of-range keys are not an error; the result simply clamps to the
// array's ends.
func Bisect(a []float64, x float64) int {
	return BisectFrom(a, x, 0)
}

// BisectFrom behaves like Bisect but starts its scan at lo instead of
// 0, which is faster when x is known to advance monotonically across
// successive calls (e.g. resampling against fERBs row by row).
func BisectFrom(a []float64, x float64, lo int) int {
	n := len(a)
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	hi := lo
	for hi < n && a[hi] <= x {
		hi++
	}
	return hi
}
