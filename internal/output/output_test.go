package output

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestHzMelRoundTrip(t *testing.T) {
	for _, hz := range []float64{50, 220, 440, 4000} {
		mel := HzToMel(hz)
		got := MelToHz(mel)
		if math.Abs(got-hz) > 1e-6 {
			t.Errorf("round trip %v -> %v -> %v", hz, mel, got)
		}
	}
}

func TestWriteTrackMissingAsNaN(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTrack(&buf, []float64{0, 0.1}, []float64{220, math.NaN()}, Format{})
	if err != nil {
		t.Fatalf("WriteTrack: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "NaN") {
		t.Errorf("missing-frame line = %q, want a NaN sentinel", lines[1])
	}
}

func TestWriteTrackSuppressMissing(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTrack(&buf, []float64{0, 0.1}, []float64{220, math.NaN()}, Format{SuppressMissing: true})
	if err != nil {
		t.Fatalf("WriteTrack: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
}
