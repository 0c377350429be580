package embedding

import (
	"math"
	"testing"
)

func TestNormalizeVectorUnitLength(t *testing.T) {
	out := normalizeVector([]float32{3, 4})

	var magnitude float64
	for _, v := range out {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if math.Abs(magnitude-1.0) > 1e-6 {
		t.Fatalf("expected unit length, got %f", magnitude)
	}
	if math.Abs(float64(out[0])-0.6) > 1e-6 || math.Abs(float64(out[1])-0.8) > 1e-6 {
		t.Fatalf("unexpected components: %v", out)
	}
}

func TestNormalizeVectorZeroUnchanged(t *testing.T) {
	out := normalizeVector([]float32{0, 0, 0})
	for i, v := range out {
		if v != 0 {
			t.Fatalf("component %d changed: %f", i, v)
		}
	}
}
