package autoclicker

import (
	"math/rand"
	"time"
)

// constantInterval normalizes the h/m/s/ms fields to one duration. Zero is
// legal and means no delay between ticks.
func (c Config) constantInterval() time.Duration {
	seconds := float64(c.Hours)*3600 +
		float64(c.Minutes)*60 +
		float64(c.Seconds) +
		float64(c.Milliseconds)/1000
	return time.Duration(seconds * float64(time.Second))
}

// nextDelay computes the wait before the next tick. Random mode draws
// uniformly from [RandomMin, RandomMax]; the bounds are clamped at
// normalization time so the result is always non-negative and finite.
func (c Config) nextDelay(rng *rand.Rand) time.Duration {
	switch c.IntervalMode {
	case IntervalRandom:
		seconds := c.RandomMin
		if c.RandomMax > c.RandomMin {
			seconds += rng.Float64() * (c.RandomMax - c.RandomMin)
		}
		return time.Duration(seconds * float64(time.Second))
	default:
		return c.constantInterval()
	}
}
