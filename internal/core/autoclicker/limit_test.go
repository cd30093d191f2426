package autoclicker

import (
	"testing"
	"time"
)

func TestLimitNoneNeverStops(t *testing.T) {
	cfg := Config{LimitMode: LimitNone}
	started := time.Now().Add(-time.Hour)
	if cfg.limitReached(1<<31, started, time.Now()) {
		t.Fatalf("LimitNone must never stop a session")
	}
}

func TestLimitClicksBoundary(t *testing.T) {
	cfg := Config{LimitMode: LimitClicks, LimitClicks: 10}
	now := time.Now()

	if cfg.limitReached(9, now, now) {
		t.Fatalf("9 clicks should not reach a 10 click limit")
	}
	if !cfg.limitReached(10, now, now) {
		t.Fatalf("10 clicks must reach a 10 click limit")
	}
	if !cfg.limitReached(11, now, now) {
		t.Fatalf("limit must hold past the boundary")
	}
}

func TestLimitTimeBoundary(t *testing.T) {
	cfg := Config{LimitMode: LimitTime, LimitSeconds: 2}
	started := time.Now()

	if cfg.limitReached(0, started, started.Add(1999*time.Millisecond)) {
		t.Fatalf("1.999s should not reach a 2s limit")
	}
	if !cfg.limitReached(0, started, started.Add(2*time.Second)) {
		t.Fatalf("2s must reach a 2s limit")
	}
}
