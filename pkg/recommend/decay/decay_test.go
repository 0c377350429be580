package decay

import (
	"math"
	"testing"
	"time"
)

func TestWeight(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want float64
	}{
		{"today", 0, 1.0},
		{"one half-life", 30 * 24 * time.Hour, 0.5},
		{"two half-lives", 60 * 24 * time.Hour, 0.25},
		{"three half-lives", 90 * 24 * time.Hour, 0.125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Weight(now.Add(-tt.ago), now)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Weight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeightFloor(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()
	// 300 days is ten half-lives, far below the floor uncapped.
	got := cfg.Weight(now.AddDate(0, 0, -300), now)
	if got != Floor {
		t.Errorf("Weight() = %v, want floor %v", got, Floor)
	}
}

func TestWeightFutureTimestamp(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()
	if got := cfg.Weight(now.Add(time.Hour), now); got != 1.0 {
		t.Errorf("future event weight = %v, want 1.0", got)
	}
}
