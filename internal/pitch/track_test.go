package pitch

import (
	"context"
	"math"
	"testing"
)

func TestTrackFindsPureToneNearFrequency(t *testing.T) {
	x := sineSignal(220, 8000, 1.0)

	result, err := Track(context.Background(), x, 80, 500, 0, 0.05)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}

	var found int
	for i, p := range result.Pitch {
		if math.IsNaN(p) {
			continue
		}
		found++
		if math.Abs(p-220) > 220*0.1 {
			t.Errorf("frame %d: pitch %v not within 10%% of 220Hz", i, p)
		}
	}
	if found == 0 {
		t.Fatal("no frames produced a confident pitch estimate")
	}
}

func TestTrackSilenceIsAllMissing(t *testing.T) {
	x := Signal{Samples: make([]float64, 8000), Rate: 8000}

	result, err := Track(context.Background(), x, 80, 500, 0, 0.05)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	for i, p := range result.Pitch {
		if !math.IsNaN(p) {
			t.Errorf("frame %d: pitch = %v on silence, want NaN", i, p)
		}
	}
}

func TestTrackClampsPmaxToNyquist(t *testing.T) {
	x := sineSignal(220, 8000, 0.2)
	_, err := Track(context.Background(), x, 80, 100000, 0, 0.05)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
}

func TestTrackRejectsEmptySignal(t *testing.T) {
	_, err := Track(context.Background(), Signal{Rate: 8000}, 80, 500, 0, 0.05)
	if err == nil {
		t.Fatal("expected error for empty signal")
	}
}

func TestTrackRejectsInvalidRange(t *testing.T) {
	x := sineSignal(220, 8000, 0.2)
	_, err := Track(context.Background(), x, 500, 80, 0, 0.05)
	if err == nil {
		t.Fatal("expected error for pmin >= pmax")
	}
}

func TestTrackFloorsHopAtMinHop(t *testing.T) {
	x := sineSignal(220, 8000, 0.05)
	result, err := Track(context.Background(), x, 80, 500, 0, 0)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	if len(result.Time) < 2 {
		t.Fatal("expected more than one frame")
	}
	if got := result.Time[1] - result.Time[0]; math.Abs(got-MinHop) > 1e-12 {
		t.Errorf("frame hop = %v, want %v", got, MinHop)
	}
}

func TestTrackFallsBackToDefaultThresholdWhenOutOfRange(t *testing.T) {
	x := sineSignal(220, 8000, 0.2)

	low, err := Track(context.Background(), x, 80, 500, -1, 0.05)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	high, err := Track(context.Background(), x, 80, 500, 1.5, 0.05)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	want, err := Track(context.Background(), x, 80, 500, DefaultThreshold, 0.05)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}

	for i := range want.Pitch {
		if math.IsNaN(want.Pitch[i]) != math.IsNaN(low.Pitch[i]) || math.IsNaN(want.Pitch[i]) != math.IsNaN(high.Pitch[i]) {
			t.Fatalf("frame %d: threshold fallback produced a different NaN pattern", i)
		}
	}
}
