package numeric

// clampedSlope is the end-derivative value the reference SWIPE′
// implementation hard-codes for both endpoints of its cubic spline.
// It is not the natural-spline value (0); it is kept verbatim for
// bit-reproducibility with that reference (spec.md §9).
const clampedSlope = 2.0

// CubicSpline is a natural-cubic-style spline fit to ascending x with
// clamped end slopes (see clampedSlope), queried with the reference
// algorithm's closed-form cubic-Hermite expression.
type CubicSpline struct {
	x, y, y2 []float64
}

// FitSpline builds the second-derivative table for (x, y). x must be
// strictly ascending and len(x) == len(y) >= 2.
func FitSpline(x, y []float64) *CubicSpline {
	n := len(x)
	y2 := make([]float64, n)
	u := make([]float64, n)

	// Lower boundary: clamped first derivative clampedSlope.
	y2[0] = -0.5
	u[0] = (3.0 / (x[1] - x[0])) * ((y[1]-y[0])/(x[1]-x[0]) - clampedSlope)

	for i := 1; i < n-1; i++ {
		sig := (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		p := sig*y2[i-1] + 2.0
		y2[i] = (sig - 1.0) / p
		u[i] = (y[i+1]-y[i])/(x[i+1]-x[i]) - (y[i]-y[i-1])/(x[i]-x[i-1])
		u[i] = (6.0*u[i]/(x[i+1]-x[i-1]) - sig*u[i-1]) / p
	}

	// Upper boundary: clamped first derivative clampedSlope.
	qn := 0.5
	un := (3.0 / (x[n-1] - x[n-2])) * (clampedSlope - (y[n-1]-y[n-2])/(x[n-1]-x[n-2]))
	y2[n-1] = (un - qn*u[n-2]) / (qn*y2[n-2] + 1.0)

	for k := n - 2; k >= 0; k-- {
		y2[k] = y2[k]*y2[k+1] + u[k]
	}

	return &CubicSpline{x: x, y: y, y2: y2}
}

// Eval returns the spline's value at val, given hi = Bisect(x, val)
// (the caller supplies hi so that repeated queries over a monotone
// sequence of val can reuse BisectFrom). hi is clamped into
// [1, len(x)-1] so the query always has a surrounding (hi-1, hi) pair;
// a query outside [x[0], x[len(x)-1]] extrapolates the cubic of the
// nearest end interval.
func (s *CubicSpline) Eval(val float64, hi int) float64 {
	if hi < 1 {
		hi = 1
	}
	if hi > len(s.x)-1 {
		hi = len(s.x) - 1
	}
	lo := hi - 1

	h := s.x[hi] - s.x[lo]
	a := (s.x[hi] - val) / h
	b := 1 - a

	return a*s.y[lo] + b*s.y[hi] +
		((a*a*a-a)*s.y2[lo]+(b*b*b-b)*s.y2[hi])*(h*h)/6.0
}
