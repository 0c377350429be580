// Package decay provides the exponential time weighting applied to
// historical purchase and click events.
package decay

import (
	"math"
	"time"
)

const (
	DefaultHalfLifeDays = 30.0
	// Floor keeps very old events contributing a residual signal instead
	// of vanishing entirely.
	Floor = 0.1
	// ClickWeight scales click and view events relative to purchases.
	ClickWeight = 0.3
)

type Config struct {
	HalfLifeDays float64
	Floor        float64
}

func DefaultConfig() Config {
	return Config{
		HalfLifeDays: DefaultHalfLifeDays,
		Floor:        Floor,
	}
}

// Weight returns 0.5^(days/halfLife) clamped to the floor. Events with a
// future timestamp weigh 1.0.
func (c Config) Weight(eventTime, now time.Time) float64 {
	if !eventTime.Before(now) {
		return 1.0
	}
	days := now.Sub(eventTime).Hours() / 24.0
	w := math.Pow(0.5, days/c.HalfLifeDays)
	if w < c.Floor {
		return c.Floor
	}
	return w
}
