package pitch

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/austinkregel/swipe/internal/numeric"
)

// loudness computes the ERB-frequency x time loudness matrix for
// signal x at window size w, following spec.md §4.2: Hann-windowed
// framing at hop w/2 (zero-padded at both ends), magnitude DFT,
// cubic-spline resampling onto fERBs, sqrt, NaN->0, row L2-normalize.
//
// Adapted from internal/audio/analyzer.go's computeFFT: same Hann
// window construction and gonum/dsp/fourier usage, generalized from a
// fixed FFT size and a log-spaced visualization band set to an
// arbitrary power-of-two window size and the ERB-spaced grid the
// pitch-strength kernel operates on.
func loudness(x Signal, fERBs []float64, w int) *mat.Dense {
	hop := w / 2
	n := len(x.Samples)
	frames := int(math.Ceil(float64(n)/float64(hop))) + 1

	hann := make([]float64, w)
	for j := 0; j < w; j++ {
		hann[j] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(j)/float64(w))
	}

	// Linear frequency grid for the first w/2 DFT bins.
	freqPerBin := x.Rate / float64(w)
	f := make([]float64, w/2)
	for k := range f {
		f[k] = float64(k) * freqPerBin
	}

	fft := fourier.NewFFT(w)

	L := mat.NewDense(frames, len(fERBs), nil)

	windowed := make([]float64, w)
	mag := make([]float64, w/2)

	// Frame r is zero-padded on the left by hop samples (spec.md §4.2),
	// so it starts at r*hop - hop in the original signal; sample
	// handles both left padding and right padding of the tail frames.
	sample := func(idx int) float64 {
		if idx < 0 || idx >= n {
			return 0
		}
		return x.Samples[idx]
	}

	for r := 0; r < frames; r++ {
		start := r*hop - hop
		for j := 0; j < w; j++ {
			windowed[j] = sample(start+j) * hann[j]
		}

		coeffs := fft.Coefficients(nil, windowed)
		for k := range mag {
			re := real(coeffs[k])
			im := imag(coeffs[k])
			mag[k] = math.Sqrt(re*re + im*im)
		}

		// An all-zero spectrum leaves the row zero; the spline's
		// non-zero end slopes would otherwise make it ring between knots.
		silent := true
		for _, m := range mag {
			if m != 0 {
				silent = false
				break
			}
		}
		if silent {
			continue
		}

		spline := numeric.FitSpline(f, mag)
		lo := 0
		for k, ef := range fERBs {
			hi := numeric.BisectFrom(f, ef, lo)
			v := spline.Eval(ef, hi)
			v = math.Sqrt(math.Max(v, 0))
			if math.IsNaN(v) {
				v = 0
			}
			L.Set(r, k, v)
			lo = hi - 1
			if lo < 0 {
				lo = 0
			}
		}
	}

	normalizeRows(L)
	return L
}

// normalizeRows scales each row of L to unit L2 norm in place; rows
// that are entirely zero are left unchanged (spec.md §3 invariant).
func normalizeRows(L *mat.Dense) {
	rows, cols := L.Dims()
	row := make(numeric.Vector, cols)
	for r := 0; r < rows; r++ {
		mat.Row(row, r, L)
		row.Normalize()
		for c, v := range row {
			L.Set(r, c, v)
		}
	}
}
