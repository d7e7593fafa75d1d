package pitch

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/austinkregel/swipe/internal/numeric"
)

// extract reduces the strength matrix S to one pitch estimate per
// output frame: argmax over candidates, a strength-threshold check,
// then a parabolic refinement of the peak in normalized-period space
// on a polyv-resolution grid (spec.md §4.5).
//
// Frames whose peak strength is below threshold report math.NaN()
// pitch; frames whose argmax falls at either edge of the candidate
// grid report that edge candidate unrefined. Every frame reports its
// raw peak strength.
func extract(g *Grid, S *mat.Dense, threshold float64) (pitch, strength []float64) {
	rows, cols := S.Dims()
	pitch = make([]float64, cols)
	strength = make([]float64, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, S)

		best := 0
		for i := 1; i < rows; i++ {
			if col[i] > col[best] {
				best = i
			}
		}
		strength[j] = col[best]

		if col[best] < threshold {
			pitch[j] = math.NaN()
			continue
		}

		pitch[j] = refine(g, col, best)
	}

	return pitch, strength
}

// refine fits a local parabola (degree 2) to the strength curve
// around peak index best, in the normalized-period coordinate
// ntc = ((1/pc)/T_mid - 1)*2*pi (T_mid is the period of the peak
// candidate itself, so ntc(best) == 0), then evaluates it on a
// polyv-spaced log2-frequency grid running from the lower to the upper
// neighbor candidate and returns the Hz frequency of its maximum. At
// either edge of the candidate grid it reports the
// edge candidate directly rather than extrapolating past data that
// does not exist (the same treatment for both edges, symmetric by
// construction).
func refine(g *Grid, col []float64, best int) float64 {
	n := len(g.Log2PC)

	if best == 0 {
		return g.PC[0]
	}
	if best == n-1 {
		return g.PC[n-1]
	}

	lo := best - 1
	hi := best + 1

	tMid := 1 / g.PC[best]
	ntc := func(i int) float64 {
		return ((1/g.PC[i])/tMid - 1) * 2 * math.Pi
	}

	x := []float64{ntc(lo), ntc(best), ntc(hi)}
	y := []float64{col[lo], col[best], col[hi]}

	coeffs := numeric.Polyfit(x, y, 2)

	steps := int(math.Round((g.Log2PC[hi] - g.Log2PC[lo]) / polyv))

	bestLF := g.Log2PC[best]
	bestY := math.Inf(-1)
	for s := 0; s <= steps; s++ {
		lf := g.Log2PC[lo] + float64(s)*polyv
		yi := numeric.Polyeval(coeffs, ((1/math.Exp2(lf))/tMid-1)*2*math.Pi)
		if yi > bestY {
			bestY = yi
			bestLF = lf
		}
	}

	return math.Exp2(bestLF)
}
