package pitch

import (
	"context"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/austinkregel/swipe/internal/numeric"
)

// strengthWorkers bounds the candidate-sliced parallelism used while
// assembling a single ladder step's contribution to S. Grounded on
// internal/analysis/worker.go's job-channel/WaitGroup pool, stripped
// of its playback-throttle logic: this pool only ever does CPU-bound
// kernel/dot-product work, so a fixed worker count tied to GOMAXPROCS
// semantics is unnecessary; a small constant keeps contention low
// without importing runtime just for NumCPU.
const strengthWorkers = 4

// assemble builds the strength matrix S (candidates x output frames)
// for grid g over signal x, sampled at output times t (spec.md §4.4).
// ctx is checked once per ladder step, the one admissible coarse-
// grained cancellation point.
func assemble(ctx context.Context, g *Grid, x Signal, t []float64) (*mat.Dense, error) {
	S := mat.NewDense(len(g.PC), len(t), nil)

	for n, w := range g.WS {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		L := loudness(x, g.FERBs, w)
		hop := float64(w) / 2 / x.Rate

		rows, _ := L.Dims()
		frameTimes := make([]float64, rows)
		for r := 0; r < rows; r++ {
			frameTimes[r] = float64(r) * hop
		}

		lo, hi := candidateRange(g.D, n, len(g.WS))

		var wg sync.WaitGroup
		chunk := (hi - lo + strengthWorkers - 1) / strengthWorkers
		if chunk < 1 {
			chunk = 1
		}
		for start := lo; start < hi; start += chunk {
			end := start + chunk
			if end > hi {
				end = hi
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				accumulateRange(S, g, L, frameTimes, t, n, start, end)
			}(start, end)
		}
		wg.Wait()
	}

	return S, nil
}

// candidateRange returns the half-open range of candidate indices
// [lo, hi) that ladder step n (0-based, out of total steps) should
// contribute to, per spec.md §4.4: the first step covers candidates
// with d < 2, the last step covers d > total-1, interior steps cover
// the two-wide band straddling their own index. Written as one
// function with boundary parameters rather than three near-duplicate
// branches (spec.md §9 design note).
func candidateRange(d []float64, n, total int) (lo, hi int) {
	switch {
	case n == 0:
		lo = 0
		hi = numeric.Bisect(d, 2.0)
	case n == total-1:
		lo = numeric.Bisect(d, float64(total-1))
		hi = len(d)
	default:
		lo = numeric.Bisect(d, float64(n))
		hi = numeric.Bisect(d, float64(n+2))
	}
	return lo, hi
}

// accumulateRange computes, for each candidate i in [start,end), its
// kernel against loudness L, resamples the result onto the output
// time grid t, weights it by the candidate's ladder-step membership
// mu_i = 1-|d_i-(n+1)|, and adds it into row i of S.
func accumulateRange(S *mat.Dense, g *Grid, L *mat.Dense, frameTimes, t []float64, n, start, end int) {
	rows, cols := L.Dims()
	col := make([]float64, rows)

	for i := start; i < end; i++ {
		mu := 1 - absf(g.D[i]-float64(n+1))
		if mu <= 0 {
			continue
		}

		k := kernel(g.PC[i], g.FERBs, g.Primes)

		// Dot k against every frame's loudness row to get this
		// candidate's raw strength over time at this window size.
		raw := make([]float64, rows)
		for r := 0; r < rows; r++ {
			mat.Row(col, r, L)
			var sum float64
			for c := 0; c < cols; c++ {
				sum += k[c] * col[c]
			}
			raw[r] = sum
		}

		lo := 0
		for j, tt := range t {
			hi := numeric.BisectFrom(frameTimes, tt, lo)
			v := numeric.LinearInterp(frameTimes, raw, tt, hi)
			S.Set(i, j, S.At(i, j)+mu*v)
			lo = hi - 1
			if lo < 0 {
				lo = 0
			}
		}
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
