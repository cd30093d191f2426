package autoclicker

import (
	"math/rand"
	"testing"
	"time"
)

func TestConstantIntervalNormalization(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected time.Duration
	}{
		{
			name:     "zero means no delay",
			cfg:      Config{IntervalMode: IntervalConstant},
			expected: 0,
		},
		{
			name:     "milliseconds only",
			cfg:      Config{IntervalMode: IntervalConstant, Milliseconds: 50},
			expected: 50 * time.Millisecond,
		},
		{
			name:     "all fields combine",
			cfg:      Config{IntervalMode: IntervalConstant, Hours: 1, Minutes: 2, Seconds: 3, Milliseconds: 4},
			expected: time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond,
		},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range tests {
		if got := tc.cfg.nextDelay(rng); got != tc.expected {
			t.Fatalf("%s: nextDelay() = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestRandomIntervalStaysWithinBounds(t *testing.T) {
	cfg := Config{
		IntervalMode: IntervalRandom,
		RandomMin:    0.5,
		RandomMax:    1.5,
	}

	rng := rand.New(rand.NewSource(42))
	min := time.Duration(cfg.RandomMin * float64(time.Second))
	max := time.Duration(cfg.RandomMax * float64(time.Second))
	for i := 0; i < 1000; i++ {
		delay := cfg.nextDelay(rng)
		if delay < min || delay > max {
			t.Fatalf("draw %d: delay %v outside [%v, %v]", i, delay, min, max)
		}
	}
}

func TestRandomIntervalDegeneratesToConstantWhenBoundsEqual(t *testing.T) {
	cfg := Config{
		IntervalMode: IntervalRandom,
		RandomMin:    2,
		RandomMax:    2,
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		if delay := cfg.nextDelay(rng); delay != 2*time.Second {
			t.Fatalf("draw %d: delay = %v, want exactly 2s", i, delay)
		}
	}
}
