package numeric

import (
	"gonum.org/v1/gonum/mat"
)

// Polyfit returns the least-squares polynomial of degree order through
// (x, y), coefficients in descending-power order. It uses a dense QR
// least-squares solve (gonum.org/v1/gonum/mat), matching spec.md
// §4.1's "dense QR/least-squares back-end" requirement directly rather
// than a hand-rolled normal-equations solver.
func Polyfit(x, y []float64, order int) []float64 {
	n := len(x)
	cols := order + 1

	design := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		p := 1.0
		for j := cols - 1; j >= 0; j-- {
			design.Set(i, j, p)
			p *= x[i]
		}
	}

	target := mat.NewDense(n, 1, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(design)

	var coeffs mat.Dense
	if err := qr.SolveTo(&coeffs, false, target); err != nil {
		// A rank-deficient design (degenerate input, e.g. repeated x)
		// has no unique least-squares solution; return the zero
		// polynomial rather than propagating garbage.
		return make([]float64, cols)
	}

	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = coeffs.At(j, 0)
	}
	return out
}

// Polyeval evaluates coefficients (descending-power order, as returned
// by Polyfit) at x using Horner's method.
func Polyeval(coeffs []float64, x float64) float64 {
	result := 0.0
	for _, c := range coeffs {
		result = result*x + c
	}
	return result
}
