package numeric

import "testing"

func TestLinearInterpMatchesKnots(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 10, 20, 30}

	for i := 1; i < len(x); i++ {
		got := LinearInterp(x, y, x[i], i)
		if got != y[i] {
			t.Errorf("LinearInterp at knot x[%d]=%v = %v, want %v", i, x[i], got, y[i])
		}
	}
}

func TestLinearInterpMidpoint(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 20}

	got := LinearInterp(x, y, 0.5, Bisect(x, 0.5))
	if got != 5 {
		t.Errorf("LinearInterp(0.5) = %v, want 5", got)
	}
}
