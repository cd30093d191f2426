package linuxinput

import (
	"testing"
	"time"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"

	evdev "github.com/holoplot/go-evdev"
)

type nopPointer struct{}

func (nopPointer) Press(autoclicker.Button) error   { return nil }
func (nopPointer) Release(autoclicker.Button) error { return nil }
func (nopPointer) Click(autoclicker.Button) error   { return nil }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func newTestRuntime(t *testing.T, toggleCode uint16) *Runtime {
	t.Helper()
	cfg := autoclicker.Config{
		IntervalMode: autoclicker.IntervalConstant,
		Hours:        1,
		Button:       autoclicker.ButtonLeft,
		ClickMode:    autoclicker.ClickSingle,
		LimitMode:    autoclicker.LimitNone,
	}
	service, err := autoclicker.NewService(cfg, nopPointer{}, nil, nopLogger{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	t.Cleanup(service.Stop)

	return &Runtime{
		service:    service,
		logger:     nopLogger{},
		toggleCode: toggleCode,
		stopCh:     make(chan struct{}),
	}
}

func keyEvent(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func TestHandleEventTogglesOnHotkeyPress(t *testing.T) {
	r := newTestRuntime(t, CodeKEYF6)

	r.handleEvent(keyEvent(evdev.KEY_A, 1))
	if r.service.IsEnabled() {
		t.Fatalf("non-toggle key must not enable the session")
	}

	r.handleEvent(keyEvent(evdev.KEY_F6, 0))
	if r.service.IsEnabled() {
		t.Fatalf("key release must not enable the session")
	}

	r.handleEvent(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_X, Value: 1})
	if r.service.IsEnabled() {
		t.Fatalf("non-key event must not enable the session")
	}

	r.handleEvent(keyEvent(evdev.KEY_F6, 1))
	if !r.service.IsEnabled() {
		t.Fatalf("toggle key press must enable the session")
	}

	r.handleEvent(keyEvent(evdev.KEY_F6, 1))
	if r.service.IsEnabled() {
		t.Fatalf("second toggle key press must disable the session")
	}
}

func TestHandleEventPublishesCapturedCode(t *testing.T) {
	r := newTestRuntime(t, CodeKEYF6)

	waitCh := make(chan uint16, 1)
	r.captureMu.Lock()
	r.captureCh = waitCh
	r.captureMu.Unlock()

	r.handleEvent(keyEvent(evdev.BTN_SIDE, 1))

	select {
	case code := <-waitCh:
		if want := uint16(evdev.BTN_SIDE); code != want {
			t.Fatalf("captured code = %d, want %d", code, want)
		}
	case <-time.After(time.Second):
		t.Fatalf("captured code was not published")
	}
}
