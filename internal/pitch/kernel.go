package pitch

import (
	"math"
)

// kernel builds the prime-harmonic strength template for candidate
// pitch pc over the ERB frequency grid fERBs (spec.md §4.3): for each
// prime-or-fundamental harmonic h, a bin at ratio q=fERBs[k]/pc with
// δ=|q−h|<0.25 gets a cosine peak cos(2π·q); a bin with
// 0.25≤δ<0.75 gets a half-height cosine valley cos(2π·q)/2, added
// rather than overwritten. Peaks are applied after valleys so that
// any bin in both a peak and a valley band ends up with the peak
// value, never a sum of the two. Every bin is then scaled by
// sqrt(1/fERBs[k]) and the whole vector is L2-normalized over its
// positive entries only.
//
// Adapted from internal/analysis/features.go's mel-filterbank
// construction: both accumulate a per-bin weight across a fixed set
// of bands and normalize the resulting vector once fully populated.
func kernel(pc float64, fERBs []float64, primes []bool) []float64 {
	k := make([]float64, len(fERBs))
	maxHarmonic := len(primes)

	for h := 1; h <= maxHarmonic; h++ {
		if !primes[h-1] {
			continue
		}
		addValley(k, fERBs, pc, h)
	}
	for h := 1; h <= maxHarmonic; h++ {
		if !primes[h-1] {
			continue
		}
		addPeak(k, fERBs, pc, h)
	}

	for i, f := range fERBs {
		k[i] *= math.Sqrt(1 / f)
	}

	normalizePositive(k)
	return k
}

// addPeak overwrites k[i] with cos(2π·q) wherever bin i's ratio to pc
// is within 0.25 of harmonic h.
func addPeak(k []float64, fERBs []float64, pc float64, h int) {
	for i, f := range fERBs {
		q := f / pc
		delta := math.Abs(q - float64(h))
		if delta < 0.25 {
			k[i] = math.Cos(2 * math.Pi * q)
		}
	}
}

// addValley adds cos(2π·q)/2 wherever bin i's ratio to pc is between
// 0.25 and 0.75 of harmonic h.
func addValley(k []float64, fERBs []float64, pc float64, h int) {
	for i, f := range fERBs {
		q := f / pc
		delta := math.Abs(q - float64(h))
		if delta >= 0.25 && delta < 0.75 {
			k[i] += math.Cos(2*math.Pi*q) / 2
		}
	}
}

// normalizePositive L2-normalizes k using only its positive entries
// in the norm computation, per spec.md §4.3 -- negative valley
// entries participate in the dot product against loudness later, but
// not in the kernel's own scale.
func normalizePositive(k []float64) {
	var sumSq float64
	for _, v := range k {
		if v > 0 {
			sumSq += v * v
		}
	}
	if sumSq == 0 {
		return
	}
	norm := math.Sqrt(sumSq)
	for i := range k {
		k[i] /= norm
	}
}
