//go:build linux

package main

import (
	"testing"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}
	if cfg.session.IntervalMode != autoclicker.IntervalConstant {
		t.Fatalf("default interval mode = %v, want constant", cfg.session.IntervalMode)
	}
	if cfg.session.Milliseconds != 100 {
		t.Fatalf("default millis = %d, want 100", cfg.session.Milliseconds)
	}
	if cfg.session.Button != autoclicker.ButtonLeft {
		t.Fatalf("default button = %v, want left", cfg.session.Button)
	}
	if cfg.session.ClickMode != autoclicker.ClickSingle {
		t.Fatalf("default click mode = %v, want single", cfg.session.ClickMode)
	}
	if cfg.session.LimitMode != autoclicker.LimitNone {
		t.Fatalf("default limit mode = %v, want none", cfg.session.LimitMode)
	}
	if cfg.session.ColorGate {
		t.Fatal("color gate should be disabled by default")
	}
	if cfg.session.StartEnabled {
		t.Fatal("session should start disabled by default")
	}
	if cfg.toggleRaw != "KEY_F6" {
		t.Fatalf("default toggle = %q, want KEY_F6", cfg.toggleRaw)
	}
	if !cfg.ui {
		t.Fatal("UI should be enabled by default")
	}
}

func TestParseConfigAllowsZeroConstantInterval(t *testing.T) {
	cfg, err := parseConfig([]string{"-millis", "0"})
	if err != nil {
		t.Fatalf("parseConfig(-millis 0) error = %v", err)
	}
	if cfg.session.IntervalMode != autoclicker.IntervalConstant {
		t.Fatalf("IntervalMode = %v, want constant", cfg.session.IntervalMode)
	}
	if cfg.session.Hours != 0 || cfg.session.Minutes != 0 || cfg.session.Seconds != 0 || cfg.session.Milliseconds != 0 {
		t.Fatalf("zero interval components were altered: %+v", cfg.session)
	}
}

func TestParseConfigSessionOptions(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-random", "-random-min", "0.5", "-random-max", "2",
		"-button", "right", "-click-mode", "toggle",
		"-limit-clicks", "25",
		"-color", "#336699", "-color-threshold", "10",
		"-toggle", "KEY_F8",
		"-cli",
	})
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}
	if cfg.session.IntervalMode != autoclicker.IntervalRandom {
		t.Fatalf("interval mode = %v, want random", cfg.session.IntervalMode)
	}
	if cfg.session.RandomMin != 0.5 || cfg.session.RandomMax != 2 {
		t.Fatalf("random bounds = %v..%v, want 0.5..2", cfg.session.RandomMin, cfg.session.RandomMax)
	}
	if cfg.session.Button != autoclicker.ButtonRight {
		t.Fatalf("button = %v, want right", cfg.session.Button)
	}
	if cfg.session.ClickMode != autoclicker.ClickToggle {
		t.Fatalf("click mode = %v, want toggle", cfg.session.ClickMode)
	}
	if cfg.session.LimitMode != autoclicker.LimitClicks || cfg.session.LimitClicks != 25 {
		t.Fatalf("limit = %v/%d, want clicks/25", cfg.session.LimitMode, cfg.session.LimitClicks)
	}
	if !cfg.session.ColorGate {
		t.Fatal("color gate should be enabled")
	}
	if (cfg.session.GateColor != autoclicker.RGB{R: 0x33, G: 0x66, B: 0x99}) {
		t.Fatalf("gate color = %+v, want #336699", cfg.session.GateColor)
	}
	if cfg.session.GateThreshold != 10 {
		t.Fatalf("gate threshold = %d, want 10", cfg.session.GateThreshold)
	}
	if cfg.ui {
		t.Fatal("-cli should disable the UI")
	}
}

func TestParseConfigRejectsConflictingLimits(t *testing.T) {
	_, err := parseConfig([]string{"-limit-clicks", "5", "-limit-time", "2"})
	if err == nil {
		t.Fatal("expected error for conflicting limits")
	}
}

func TestResolveLinuxBackendExplicitChoices(t *testing.T) {
	if got := resolveLinuxBackend("x11"); got != "x11" {
		t.Fatalf("resolveLinuxBackend(x11)=%q", got)
	}
	if got := resolveLinuxBackend("evdev"); got != "wayland" {
		t.Fatalf("resolveLinuxBackend(evdev)=%q, want wayland", got)
	}
}

func TestHotkeySourcePathsListsKeysSorted(t *testing.T) {
	paths := map[string]struct{}{
		"/dev/input/event7": {},
		"/dev/input/event3": {},
	}

	got := hotkeySourcePaths(paths)
	if len(got) != 2 || got[0] != "/dev/input/event3" || got[1] != "/dev/input/event7" {
		t.Fatalf("hotkeySourcePaths() = %v", got)
	}
}
