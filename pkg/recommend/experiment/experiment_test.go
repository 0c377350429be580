package experiment

import (
	"fmt"
	"math"
	"testing"
)

func activeExperiment(variants ...Variant) Experiment {
	return Experiment{
		ID:       "ranking_algorithm_v2",
		Name:     "Ranking Algorithm V2",
		Status:   StatusActive,
		Variants: variants,
	}
}

func TestAssignVariantDeterministic(t *testing.T) {
	r := NewRegistry()
	r.Register(activeExperiment(
		Variant{ID: "a", Weight: 50},
		Variant{ID: "b", Weight: 50},
	))

	first := r.AssignVariant("ranking_algorithm_v2", "user-42")
	for i := 0; i < 100; i++ {
		got := r.AssignVariant("ranking_algorithm_v2", "user-42")
		if got.Variant != first.Variant {
			t.Fatalf("assignment changed between calls: %s vs %s", first.Variant, got.Variant)
		}
	}
}

func TestAssignVariantUnknownOrInactive(t *testing.T) {
	r := NewRegistry()

	got := r.AssignVariant("missing", "user-1")
	if got.Variant != VariantControl {
		t.Errorf("unknown experiment: got %q, want control", got.Variant)
	}

	r.Register(Experiment{
		ID:       "paused",
		Status:   StatusInactive,
		Variants: []Variant{{ID: "a", Weight: 100}},
	})
	got = r.AssignVariant("paused", "user-1")
	if got.Variant != VariantControl {
		t.Errorf("inactive experiment: got %q, want control", got.Variant)
	}
}

func TestAssignVariantUnderweightFallsToLast(t *testing.T) {
	r := NewRegistry()
	// Weights sum to 40, so buckets 40..99 fall past every cumulative
	// bound and must land on the last variant.
	r.Register(activeExperiment(
		Variant{ID: "a", Weight: 20},
		Variant{ID: "b", Weight: 20},
	))

	sawFallthrough := false
	for i := 0; i < 1000; i++ {
		user := fmt.Sprintf("user-%d", i)
		got := r.AssignVariant("ranking_algorithm_v2", user)
		if Bucket("ranking_algorithm_v2", user) >= 40 {
			sawFallthrough = true
			if got.Variant != "b" {
				t.Fatalf("bucket past weights assigned %q, want last variant b", got.Variant)
			}
		}
	}
	if !sawFallthrough {
		t.Fatal("no user hit the fallthrough range")
	}
}

func TestAssignVariantDistribution(t *testing.T) {
	r := NewRegistry()
	r.Register(activeExperiment(
		Variant{ID: "treatment", Weight: 70},
		Variant{ID: "holdout", Weight: 30},
	))

	const users = 10000
	counts := map[string]int{}
	for i := 0; i < users; i++ {
		a := r.AssignVariant("ranking_algorithm_v2", fmt.Sprintf("user-%d", i))
		counts[a.Variant]++
	}

	treatShare := float64(counts["treatment"]) / users
	holdShare := float64(counts["holdout"]) / users
	if math.Abs(treatShare-0.70) > 0.03 {
		t.Errorf("treatment share %.4f outside 0.70 +/- 0.03", treatShare)
	}
	if math.Abs(holdShare-0.30) > 0.03 {
		t.Errorf("holdout share %.4f outside 0.30 +/- 0.03", holdShare)
	}
}

func TestBucketRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		b := Bucket("exp", fmt.Sprintf("u%d", i))
		if b < 0 || b > 99 {
			t.Fatalf("bucket %d out of range", b)
		}
	}
}

func TestExposureStats(t *testing.T) {
	r := NewRegistry()
	r.Register(activeExperiment(
		Variant{ID: "a", Weight: 50},
		Variant{ID: "b", Weight: 50},
	))

	for i := 0; i < 6; i++ {
		r.RecordExposure("ranking_algorithm_v2", "a")
	}
	for i := 0; i < 4; i++ {
		r.RecordExposure("ranking_algorithm_v2", "b")
	}

	stats := r.Stats("ranking_algorithm_v2")
	if stats.Total != 10 {
		t.Fatalf("total = %d, want 10", stats.Total)
	}
	if stats.Variants[0].Exposures != 6 || stats.Variants[0].Share != 0.6 {
		t.Errorf("variant a stats = %+v", stats.Variants[0])
	}
	if stats.Variants[1].Exposures != 4 || stats.Variants[1].Share != 0.4 {
		t.Errorf("variant b stats = %+v", stats.Variants[1])
	}
}

func TestDefaultExperimentsWeightsSum(t *testing.T) {
	for _, exp := range DefaultExperiments() {
		sum := 0
		for _, v := range exp.Variants {
			sum += v.Weight
		}
		if sum != 100 {
			t.Errorf("experiment %s weights sum to %d, want 100", exp.ID, sum)
		}
	}
}
