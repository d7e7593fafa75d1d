// Package output formats a pitch track as text lines, the one
// presentation concern this module owns (decoding, CLI parsing, and
// the track estimation itself all live elsewhere).
package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// HzToMel converts a frequency in Hz to the Mel scale.
func HzToMel(hz float64) float64 {
	return 1127 * math.Log(1+hz/700)
}

// MelToHz converts a Mel value back to Hz.
func MelToHz(mel float64) float64 {
	return 700 * (math.Exp(mel/1127) - 1)
}

// Format controls how WriteTrack renders pitch values.
type Format struct {
	// Mel reports pitch in Mel instead of Hz.
	Mel bool
	// SuppressMissing omits lines for frames with no confident
	// estimate instead of printing a sentinel value.
	SuppressMissing bool
}

// WriteTrack writes one "time pitch" line per frame to w, formatted
// per f. Missing (NaN) pitch is serialized as NaN, distinguishable
// from a genuine 0Hz estimate, unless f.SuppressMissing is set, in
// which case the frame's line is omitted entirely.
func WriteTrack(w io.Writer, time, pitch []float64, f Format) error {
	bw := bufio.NewWriter(w)

	for i := range time {
		p := pitch[i]
		missing := math.IsNaN(p)

		if missing && f.SuppressMissing {
			continue
		}
		if !missing && f.Mel {
			p = HzToMel(p)
		}

		if _, err := fmt.Fprintf(bw, "%4.7f %5.4f\n", time[i], p); err != nil {
			return fmt.Errorf("output: write line %d: %w", i, err)
		}
	}

	return bw.Flush()
}
