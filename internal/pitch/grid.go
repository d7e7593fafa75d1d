// Package pitch implements the SWIPE′ prime-harmonic pitch-strength
// engine: loudness analysis, strength-kernel construction, strength
// matrix assembly across a window-size ladder, and parabolic peak
// refinement.
package pitch

import (
	"math"

	"github.com/austinkregel/swipe/internal/numeric"
)

// Constants from spec.md §9 -- compile-time configuration, never
// mutated at runtime.
const (
	dlog2p = 1.0 / 96.0  // candidate grid spacing, octaves
	dERBs  = 0.1         // ERB grid spacing
	polyv  = 1.0 / 768.0 // log-frequency refinement resolution, octaves
	kOpt   = 2.0         // window-size/optimal-pitch constant K
)

// Signal is an immutable, finite sequence of real-valued samples at a
// fixed sample rate.
type Signal struct {
	Samples []float64
	Rate    float64
}

// Nyquist returns half the sample rate.
func (s Signal) Nyquist() float64 {
	return s.Rate / 2
}

// Grid bundles the candidate pitch grid, the window-size ladder, the
// window-assignment map, the ERB frequency grid, and the prime mask --
// all built once per invocation from (rate, pmin, pmax) and never
// mutated afterward (spec.md §3 invariant).
type Grid struct {
	// PC is the candidate pitch grid in Hz, strictly increasing.
	PC []float64
	// Log2PC is log2(PC), parallel to PC.
	Log2PC []float64

	// WS is the window-size ladder, strictly decreasing powers of two.
	WS numeric.IntVector

	// D is the fractional window-size index for each candidate.
	D []float64

	// FERBs is the ERB-spaced frequency grid in Hz, strictly increasing.
	FERBs []float64

	// Primes marks, for harmonic index h (1-based), whether h is in
	// the prime-or-fundamental harmonic set. Primes[0] is the
	// fundamental (h=1), always true.
	Primes []bool
}

// NewGrid builds the candidate grid, window ladder, assignment map,
// ERB grid, and prime mask for a search range [pmin, pmax] at the
// given sample rate.
func NewGrid(rate, pmin, pmax float64) *Grid {
	g := &Grid{}
	g.buildCandidates(pmin, pmax)
	g.buildLadder(rate, pmin, pmax)
	g.buildAssignment(rate)
	g.buildERB(rate, pmin)
	g.buildPrimes(pmax)
	return g
}

func (g *Grid) buildCandidates(pmin, pmax float64) {
	log2min := math.Log2(pmin)
	log2max := math.Log2(pmax)
	n := int(math.Ceil((log2max - log2min) / dlog2p))
	if n < 1 {
		n = 1
	}

	g.PC = make([]float64, n)
	g.Log2PC = make([]float64, n)
	for i := 0; i < n; i++ {
		lg := log2min + float64(i)*dlog2p
		g.Log2PC[i] = lg
		g.PC[i] = math.Exp2(lg)
	}
}

// optimalPitch returns pO(w) = 4*K*rate/w, the candidate pitch a
// window of size w resolves best.
func optimalPitch(rate float64, w int) float64 {
	return 4 * kOpt * rate / float64(w)
}

func (g *Grid) buildLadder(rate, pmin, pmax float64) {
	// Start from the largest window whose optimal pitch is still >= pmax,
	// then double the window (halving the optimal pitch) until it is
	// <= pmin. This builds the ladder ascending by window size; the
	// ladder is strictly decreasing per spec.md §3, so reverse it.
	w := prevPow2(int(4 * kOpt * rate / pmax))
	if w < 2 {
		w = 2
	}

	var ws numeric.IntVector
	for {
		ws = append(ws, w)
		if optimalPitch(rate, w) <= pmin {
			break
		}
		w *= 2
	}
	for i, j := 0, len(ws)-1; i < j; i, j = i+1, j-1 {
		ws[i], ws[j] = ws[j], ws[i]
	}
	g.WS = ws
}

// prevPow2 returns the largest power of two <= n (at least 1).
func prevPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func (g *Grid) buildAssignment(rate float64) {
	g.D = make([]float64, len(g.PC))
	base := math.Log2(4 * kOpt * rate / float64(g.WS[0]))
	for i, lg := range g.Log2PC {
		g.D[i] = 1 + lg - base
	}
}

func (g *Grid) buildERB(rate, pmin float64) {
	lo := erb(pmin / 4)
	hi := erb(rate / 2)
	n := int(math.Ceil((hi - lo) / dERBs))
	if n < 1 {
		n = 1
	}
	g.FERBs = make([]float64, n)
	for i := 0; i < n; i++ {
		g.FERBs[i] = erbInv(lo + float64(i)*dERBs)
	}
}

// erb converts a frequency in Hz to the Equivalent Rectangular
// Bandwidth scale.
func erb(hz float64) float64 {
	return 21.4 * math.Log10(1+hz/229)
}

// erbInv is the inverse of erb.
func erbInv(e float64) float64 {
	return 229 * (math.Pow(10, e/21.4) - 1)
}

func (g *Grid) buildPrimes(pmax float64) {
	pcMin := g.PC[0]
	maxHarmonic := g.FERBs[len(g.FERBs)-1] / pcMin
	n := int(math.Floor(maxHarmonic))
	if n < 1 {
		n = 1
	}
	g.Primes = numeric.Sieve(n)
}
