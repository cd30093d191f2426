package autoclicker

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type pointerAction struct {
	kind   string
	button Button
}

type recordingPointer struct {
	mu      sync.Mutex
	actions []pointerAction
	failAll bool
}

func (r *recordingPointer) record(kind string, button Button) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("injection denied")
	}
	r.actions = append(r.actions, pointerAction{kind: kind, button: button})
	return nil
}

func (r *recordingPointer) Press(button Button) error   { return r.record("press", button) }
func (r *recordingPointer) Release(button Button) error { return r.record("release", button) }
func (r *recordingPointer) Click(button Button) error   { return r.record("click", button) }

func (r *recordingPointer) snapshot() []pointerAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]pointerAction, len(r.actions))
	copy(out, r.actions)
	return out
}

type scriptedSampler struct {
	mu      sync.Mutex
	color   RGB
	fail    bool
	samples int
}

func (s *scriptedSampler) SampleCursorColor() (RGB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples++
	if s.fail {
		return RGB{}, errors.New("cannot read pixel")
	}
	return s.color, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func testConfig() Config {
	return Config{
		IntervalMode: IntervalConstant,
		Milliseconds: 1,
		Button:       ButtonLeft,
		ClickMode:    ClickSingle,
		LimitMode:    LimitNone,
	}
}

func waitForDisabled(t *testing.T, service *Service) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if !service.IsEnabled() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("service did not disable itself in time")
}

func TestClickCountLimitStopsExactly(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.LimitMode = LimitClicks
	cfg.LimitClicks = 5

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	stats := service.Stats()
	if stats.TotalClicks != 5 {
		t.Fatalf("TotalClicks = %d, want 5", stats.TotalClicks)
	}
	if stats.Enabled {
		t.Fatalf("expected enabled to be cleared after limit")
	}
	actions := pointer.snapshot()
	if len(actions) != 5 {
		t.Fatalf("got %d pointer actions, want 5", len(actions))
	}
	for i, action := range actions {
		if action.kind != "click" || action.button != ButtonLeft {
			t.Fatalf("action %d = %+v, want left click", i, action)
		}
	}
}

func TestTimeLimitStopsWithoutLateActions(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.Milliseconds = 5
	cfg.LimitMode = LimitTime
	cfg.LimitSeconds = 0.05

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	started := time.Now()
	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	if elapsed := time.Since(started); elapsed < 50*time.Millisecond {
		t.Fatalf("session ended after %v, want >= 50ms", elapsed)
	}
	if service.Stats().Enabled {
		t.Fatalf("expected enabled cleared after time limit")
	}
}

func TestZeroTimeLimitPerformsNoActions(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.LimitMode = LimitTime
	cfg.LimitSeconds = 0

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	if actions := pointer.snapshot(); len(actions) != 0 {
		t.Fatalf("got %d actions, want 0", len(actions))
	}
}

func TestToggleModeAlternatesAndForceReleasesOnStop(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.ClickMode = ClickToggle
	cfg.LimitMode = LimitClicks
	cfg.LimitClicks = 3

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	stats := service.Stats()
	if stats.TotalClicks != 3 {
		t.Fatalf("TotalClicks = %d, want 3", stats.TotalClicks)
	}
	if stats.ButtonPressed {
		t.Fatalf("expected buttonPressed false after forced release")
	}

	// Odd fire count leaves the button held; the limit stop must append a
	// release that is not counted as a click.
	actions := pointer.snapshot()
	want := []string{"press", "release", "press", "release"}
	if len(actions) != len(want) {
		t.Fatalf("got %d actions %v, want %d", len(actions), actions, len(want))
	}
	for i, kind := range want {
		if actions[i].kind != kind {
			t.Fatalf("action %d = %q, want %q", i, actions[i].kind, kind)
		}
	}
}

func TestUIDisableForceReleasesHeldButton(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.ClickMode = ClickToggle
	cfg.Milliseconds = 0
	cfg.Seconds = 3600 // first fire, then asleep until the test disables

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if service.Stats().ButtonPressed {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}
	if !service.Stats().ButtonPressed {
		t.Fatalf("expected button to be held after first toggle fire")
	}

	service.SetEnabled(false)

	stats := service.Stats()
	if stats.ButtonPressed {
		t.Fatalf("expected buttonPressed cleared by disable")
	}
	actions := pointer.snapshot()
	if len(actions) < 2 || actions[len(actions)-1].kind != "release" {
		t.Fatalf("expected trailing release, got %v", actions)
	}
	if stats.TotalClicks != 1 {
		t.Fatalf("forced release must not count as a click, TotalClicks = %d", stats.TotalClicks)
	}
}

func TestDoubleModeClicksTwicePerFire(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.ClickMode = ClickDouble
	cfg.LimitMode = LimitClicks
	cfg.LimitClicks = 2

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	if actions := pointer.snapshot(); len(actions) != 4 {
		t.Fatalf("got %d clicks, want 4 (2 fires x 2)", len(actions))
	}
	if clicks := service.Stats().TotalClicks; clicks != 2 {
		t.Fatalf("TotalClicks = %d, want 2", clicks)
	}
}

func TestSupersededLoopPerformsNoFurtherActions(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.Milliseconds = 0
	cfg.Hours = 1 // first tick fires, then sleeps far past the test

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if len(pointer.snapshot()) >= 1 {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}

	// Supersede while the first loop is mid-sleep.
	quick := cfg
	quick.Hours = 0
	quick.Milliseconds = 1
	quick.LimitMode = LimitClicks
	quick.LimitClicks = 2

	service.SetEnabled(false)
	if err := service.SetConfig(quick); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}
	service.SetEnabled(true)
	waitForDisabled(t, service)

	if clicks := service.Stats().TotalClicks; clicks != 2 {
		t.Fatalf("new session TotalClicks = %d, want 2", clicks)
	}
}

func TestPointerFailureAbortsSession(t *testing.T) {
	pointer := &recordingPointer{failAll: true}

	service, err := NewService(testConfig(), pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	stats := service.Stats()
	if stats.LastErr == nil {
		t.Fatalf("expected LastErr to surface the injection failure")
	}
	if stats.TotalClicks != 0 {
		t.Fatalf("failed action must not be counted, TotalClicks = %d", stats.TotalClicks)
	}
}

func TestColorGateBlocksFiringButKeepsTicking(t *testing.T) {
	pointer := &recordingPointer{}
	sampler := &scriptedSampler{color: RGB{R: 0, G: 0, B: 1}}
	cfg := testConfig()
	cfg.ColorGate = true
	cfg.GateColor = RGB{}
	cfg.GateThreshold = 0

	service, err := NewService(cfg, pointer, sampler, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	time.Sleep(50 * time.Millisecond)
	service.SetEnabled(false)
	service.Stop()

	if actions := pointer.snapshot(); len(actions) != 0 {
		t.Fatalf("gate should block all fires, got %d actions", len(actions))
	}

	sampler.mu.Lock()
	samples := sampler.samples
	sampler.mu.Unlock()
	if samples < 2 {
		t.Fatalf("expected the loop to keep ticking while gated, got %d samples", samples)
	}
}

func TestColorGateSampleFailureReusesLastColor(t *testing.T) {
	pointer := &recordingPointer{}
	sampler := &scriptedSampler{color: RGB{R: 10, G: 10, B: 10}}
	cfg := testConfig()
	cfg.ColorGate = true
	cfg.GateColor = RGB{R: 10, G: 10, B: 10}
	cfg.GateThreshold = 0
	cfg.LimitMode = LimitClicks
	cfg.LimitClicks = 4

	service, err := NewService(cfg, pointer, sampler, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if service.Stats().TotalClicks >= 1 {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}

	// Every sample fails from here on; the last good sample still matches
	// the target, so the gate must keep allowing fires.
	sampler.mu.Lock()
	sampler.fail = true
	sampler.mu.Unlock()

	waitForDisabled(t, service)
	service.Stop()

	if clicks := service.Stats().TotalClicks; clicks != 4 {
		t.Fatalf("TotalClicks = %d, want 4", clicks)
	}
}

func TestGatePredicateSuspendsFiring(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.GatePredicate = func() bool { return false }

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	time.Sleep(30 * time.Millisecond)
	service.SetEnabled(false)
	service.Stop()

	if actions := pointer.snapshot(); len(actions) != 0 {
		t.Fatalf("predicate should block all fires, got %d actions", len(actions))
	}
}

func TestSetConfigRejectedWhileEnabled(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := testConfig()
	cfg.Milliseconds = 0
	cfg.Seconds = 3600

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	service.SetEnabled(true)
	if err := service.SetConfig(testConfig()); err == nil {
		t.Fatalf("expected SetConfig to fail while enabled")
	}
	service.SetEnabled(false)
	if err := service.SetConfig(testConfig()); err != nil {
		t.Fatalf("SetConfig() after disable error = %v", err)
	}
}

func TestSetConfigClampsRandomBounds(t *testing.T) {
	service, err := NewService(testConfig(), &recordingPointer{}, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	cfg := testConfig()
	cfg.IntervalMode = IntervalRandom
	cfg.RandomMin = 5000
	cfg.RandomMax = 4000
	if err := service.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}

	got := service.Config()
	if got.RandomMax != 3600 {
		t.Fatalf("RandomMax = %v, want 3600", got.RandomMax)
	}
	if got.RandomMin != got.RandomMax {
		t.Fatalf("RandomMin = %v, want clamped to RandomMax", got.RandomMin)
	}
}

func TestNewServiceValidation(t *testing.T) {
	if _, err := NewService(testConfig(), nil, nil, noopLogger{}); err == nil {
		t.Fatalf("expected error for nil pointer capability")
	}
	if _, err := NewService(testConfig(), &recordingPointer{}, nil, nil); err == nil {
		t.Fatalf("expected error for nil logger")
	}

	bad := testConfig()
	bad.ClickMode = ClickMode(99)
	if _, err := NewService(bad, &recordingPointer{}, nil, noopLogger{}); err == nil {
		t.Fatalf("expected error for invalid click mode")
	}
}

func TestScenarioFiftyMillisClickCountFive(t *testing.T) {
	pointer := &recordingPointer{}
	cfg := Config{
		IntervalMode: IntervalConstant,
		Milliseconds: 50,
		Button:       ButtonLeft,
		ClickMode:    ClickSingle,
		LimitMode:    LimitClicks,
		LimitClicks:  5,
	}

	service, err := NewService(cfg, pointer, nil, noopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	started := time.Now()
	service.SetEnabled(true)
	waitForDisabled(t, service)
	service.Stop()

	if elapsed := time.Since(started); elapsed < 200*time.Millisecond {
		t.Fatalf("5 clicks at 50ms finished in %v, want >= 200ms", elapsed)
	}
	stats := service.Stats()
	if stats.TotalClicks != 5 {
		t.Fatalf("TotalClicks = %d, want 5", stats.TotalClicks)
	}
	if stats.Enabled {
		t.Fatalf("enabled must end false")
	}
}

func ExampleService() {
	pointer := &recordingPointer{}
	cfg := Config{
		IntervalMode: IntervalConstant,
		Milliseconds: 1,
		Button:       ButtonLeft,
		ClickMode:    ClickSingle,
		LimitMode:    LimitClicks,
		LimitClicks:  3,
	}

	service, _ := NewService(cfg, pointer, nil, noopLogger{})
	service.SetEnabled(true)
	for service.IsEnabled() {
		time.Sleep(time.Millisecond)
	}
	service.Stop()

	fmt.Println(service.Stats().TotalClicks)
	// Output: 3
}
