package numeric

import "testing"

func TestVectorL2Norm(t *testing.T) {
	v := Vector{3, 4}
	if got := v.L2Norm(); got != 5 {
		t.Errorf("L2Norm() = %v, want 5", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{3, 4}
	v.Normalize()
	if got := v.L2Norm(); got < 0.999999 || got > 1.000001 {
		t.Errorf("norm after Normalize() = %v, want 1", got)
	}
}

func TestVectorNormalizeZeroIsNoop(t *testing.T) {
	v := Vector{0, 0, 0}
	v.Normalize()
	for i, x := range v {
		if x != 0 {
			t.Errorf("v[%d] = %v, want 0", i, x)
		}
	}
}
