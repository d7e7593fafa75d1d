package pitch

import (
	"context"
	"fmt"
	"math"
)

// DefaultThreshold is the strength below which a frame is reported as
// missing (NaN) rather than as a low-confidence pitch estimate.
const DefaultThreshold = 0.3

// MinHop is the smallest time step Track accepts between estimates
// (spec.md §6); smaller requests are floored to it.
const MinHop = 0.001

// Result is one pitch track: a time grid and a pitch estimate (Hz, or
// NaN where no confident estimate exists) and strength per frame.
type Result struct {
	Time     []float64
	Pitch    []float64
	Strength []float64
}

// Track estimates the fundamental frequency of x over time, searching
// candidate pitches in [pmin, pmax] at dt-second hops, floored to MinHop.
// strengthThreshold selects the minimum pitch-strength required to report
// an estimate; a value outside (0, 1] selects DefaultThreshold (spec.md
// §6: "a caller passing an invalid threshold gets the library default,
// not an error").
//
// ctx is checked once per window-size-ladder step; a canceled context
// aborts Track before completing. Grounded on internal/audio/decoder.go's
// DecodeFrom, which threads a context the same way through a multi-
// stage pipeline rather than a best-effort signal check per sample.
func Track(ctx context.Context, x Signal, pmin, pmax, strengthThreshold, dt float64) (*Result, error) {
	if err := validate(x); err != nil {
		return nil, err
	}

	if pmax > x.Nyquist() {
		pmax = x.Nyquist()
	}
	if pmin < 1 || pmin >= pmax {
		return nil, fmt.Errorf("pitch: invalid search range [%v, %v]", pmin, pmax)
	}
	if strengthThreshold <= 0 || strengthThreshold > 1 {
		strengthThreshold = DefaultThreshold
	}
	if dt < MinHop {
		dt = MinHop
	}
	if dt > x.Rate {
		dt = x.Rate
	}

	g := NewGrid(x.Rate, pmin, pmax)

	duration := float64(len(x.Samples)) / x.Rate
	frames := int(math.Floor(duration/dt)) + 1
	if frames < 1 {
		frames = 1
	}
	t := make([]float64, frames)
	for i := range t {
		t[i] = float64(i) * dt
	}

	S, err := assemble(ctx, g, x, t)
	if err != nil {
		return nil, fmt.Errorf("pitch: %w", err)
	}

	pitchHz, strength := extract(g, S, strengthThreshold)

	return &Result{Time: t, Pitch: pitchHz, Strength: strength}, nil
}

func validate(x Signal) error {
	if len(x.Samples) == 0 {
		return fmt.Errorf("pitch: empty signal")
	}
	if x.Rate <= 0 {
		return fmt.Errorf("pitch: invalid sample rate %v", x.Rate)
	}
	return nil
}
