package pitch

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestExtractBelowThresholdIsMissing(t *testing.T) {
	g := NewGrid(8000, 100, 400)
	S := mat.NewDense(len(g.PC), 1, nil) // all zero strength

	pitchHz, strength := extract(g, S, 0.3)
	if !math.IsNaN(pitchHz[0]) {
		t.Errorf("pitch = %v, want NaN", pitchHz[0])
	}
	if strength[0] != 0 {
		t.Errorf("strength = %v, want 0", strength[0])
	}
}

func TestExtractFindsInjectedPeak(t *testing.T) {
	g := NewGrid(8000, 100, 400)
	S := mat.NewDense(len(g.PC), 1, nil)

	target := len(g.PC) / 2
	S.Set(target, 0, 0.9)
	S.Set(target-1, 0, 0.5)
	S.Set(target+1, 0, 0.5)

	pitchHz, strength := extract(g, S, 0.3)
	if strength[0] != 0.9 {
		t.Errorf("strength = %v, want 0.9", strength[0])
	}

	lo := g.PC[target-1]
	hi := g.PC[target+1]
	if pitchHz[0] < lo || pitchHz[0] > hi {
		t.Errorf("refined pitch %v outside neighbor bracket [%v, %v]", pitchHz[0], lo, hi)
	}
}

func TestExtractEdgePeaksReportEdgeCandidate(t *testing.T) {
	g := NewGrid(8000, 100, 400)
	S := mat.NewDense(len(g.PC), 1, nil)
	S.Set(0, 0, 0.9)

	pitchHz, _ := extract(g, S, 0.3)
	if pitchHz[0] != g.PC[0] {
		t.Errorf("lower-edge pitch = %v, want %v", pitchHz[0], g.PC[0])
	}

	last := len(g.PC) - 1
	S2 := mat.NewDense(len(g.PC), 1, nil)
	S2.Set(last, 0, 0.9)
	pitchHz2, _ := extract(g, S2, 0.3)
	if pitchHz2[0] != g.PC[last] {
		t.Errorf("upper-edge pitch = %v, want %v", pitchHz2[0], g.PC[last])
	}
}
