package linuxinput

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"time"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"

	evdev "github.com/holoplot/go-evdev"
)

type RuntimeConfig struct {
	ToggleCode uint16
	ClickDown  time.Duration
	Session    autoclicker.Config
}

// Runtime wires the engine to evdev: a uinput virtual device injects pointer
// actions, and read loops over the source devices watch for the toggle
// hotkey. No screen sampler exists on this backend; Wayland cannot read
// foreign pixels, so the engine's last-color rule applies when the color gate
// is on.
type Runtime struct {
	selection *HotkeySelection
	pointer   *uinputPointer
	service   *autoclicker.Service
	logger    autoclicker.Logger

	mu         sync.Mutex
	toggleCode uint16

	captureMu sync.Mutex
	captureCh chan uint16

	stopCh    chan struct{}
	stopOnce  sync.Once
	readersWG sync.WaitGroup
}

// uinputPointer injects button events through a virtual evdev device.
type uinputPointer struct {
	dev       *evdev.InputDevice
	clickDown time.Duration
}

func (p *uinputPointer) writeKey(code evdev.EvCode, value int32) error {
	events := []evdev.InputEvent{
		{Type: evdev.EV_KEY, Code: code, Value: value},
		{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Value: 0},
	}
	for i := range events {
		if err := p.dev.WriteOne(&events[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *uinputPointer) Press(button autoclicker.Button) error {
	return p.writeKey(buttonCode(button), 1)
}

func (p *uinputPointer) Release(button autoclicker.Button) error {
	return p.writeKey(buttonCode(button), 0)
}

func (p *uinputPointer) Click(button autoclicker.Button) error {
	code := buttonCode(button)
	if err := p.writeKey(code, 1); err != nil {
		return err
	}
	if p.clickDown > 0 {
		time.Sleep(p.clickDown)
	}
	return p.writeKey(code, 0)
}

func (p *uinputPointer) Close() error {
	if p.dev == nil {
		return nil
	}
	return p.dev.Close()
}

func NewRuntime(selection *HotkeySelection, cfg RuntimeConfig, logger autoclicker.Logger) (*Runtime, error) {
	if selection == nil {
		return nil, fmt.Errorf("hotkey selection is nil")
	}
	if len(selection.Devices) == 0 {
		return nil, fmt.Errorf("hotkey selection has no devices")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	id := evdev.InputID{
		BusType: uint16(evdev.BUS_VIRTUAL),
		Vendor:  0x1,
		Product: 0x1,
		Version: 1,
	}
	if sourceID, err := selection.Devices[0].InputID(); err == nil {
		id = sourceID
		id.BusType = uint16(evdev.BUS_VIRTUAL)
	}

	capabilities := map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: {evdev.BTN_LEFT, evdev.BTN_RIGHT, evdev.BTN_MIDDLE},
	}
	injectorDev, err := evdev.CreateDevice("clickr", id, capabilities)
	if err != nil {
		return nil, err
	}
	pointer := &uinputPointer{dev: injectorDev, clickDown: cfg.ClickDown}

	service, err := autoclicker.NewService(cfg.Session, pointer, nil, logger)
	if err != nil {
		_ = pointer.Close()
		return nil, err
	}

	return &Runtime{
		selection:  selection,
		pointer:    pointer,
		service:    service,
		logger:     logger,
		toggleCode: cfg.ToggleCode,
		stopCh:     make(chan struct{}),
	}, nil
}

func (r *Runtime) Start() error {
	for _, dev := range r.selection.Devices {
		if err := dev.NonBlock(); err != nil {
			return fmt.Errorf("failed to set nonblocking mode for %s: %w", dev.Path(), err)
		}
	}

	r.service.Start()
	for _, dev := range r.selection.Devices {
		r.readersWG.Add(1)
		go r.readLoop(dev)
	}
	return nil
}

func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		r.selection.Close()
		r.readersWG.Wait()
		r.service.Stop()
		if err := r.pointer.Close(); err != nil {
			r.logger.Warn("Failed to close virtual pointer device", "err", err)
		}
	})
}

func (r *Runtime) Service() *autoclicker.Service {
	return r.service
}

func (r *Runtime) SetEnabled(enabled bool) {
	r.service.SetEnabled(enabled)
}

func (r *Runtime) IsEnabled() bool {
	return r.service.IsEnabled()
}

func (r *Runtime) ToggleCode() uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.toggleCode
}

// SetToggleCode swaps the hotkey in place; only devices already in the
// selection will see the new code.
func (r *Runtime) SetToggleCode(code uint16) {
	r.mu.Lock()
	r.toggleCode = code
	r.mu.Unlock()
}

// CaptureNextKeyCode resolves with the next key/button pressed on the source
// devices, for rebinding the hotkey from the UI.
func (r *Runtime) CaptureNextKeyCode(timeout time.Duration) (uint16, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	waitCh := make(chan uint16, 1)

	r.captureMu.Lock()
	if r.captureCh != nil {
		r.captureMu.Unlock()
		return 0, fmt.Errorf("key capture already in progress")
	}
	r.captureCh = waitCh
	r.captureMu.Unlock()

	defer func() {
		r.captureMu.Lock()
		if r.captureCh == waitCh {
			r.captureCh = nil
		}
		r.captureMu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case code := <-waitCh:
		return code, nil
	case <-r.stopCh:
		return 0, fmt.Errorf("runtime stopped")
	case <-timer.C:
		return 0, fmt.Errorf("timed out waiting for key/button input")
	}
}

func (r *Runtime) readLoop(dev *evdev.InputDevice) {
	defer r.readersWG.Done()

	path := dev.Path()
	for {
		event, err := dev.ReadOne()
		if err != nil {
			if r.stopped() || isDeviceClosedError(err) {
				return
			}
			if isWouldBlockError(err) {
				if !r.sleepWithStop(10 * time.Millisecond) {
					return
				}
				continue
			}
			r.logger.Warn("Read failed", "path", path, "err", err)
			if !r.sleepWithStop(100 * time.Millisecond) {
				return
			}
			continue
		}
		if event == nil {
			continue
		}
		r.handleEvent(event)
	}
}

func (r *Runtime) handleEvent(event *evdev.InputEvent) {
	if event.Type != evdev.EV_KEY || event.Value != 1 {
		return
	}
	code := uint16(event.Code)

	r.publishCapturedCode(code)

	if code == r.ToggleCode() {
		enabled := r.service.Toggle()
		r.logger.Info("Hotkey toggled", "enabled", enabled)
	}
}

func (r *Runtime) publishCapturedCode(code uint16) {
	r.captureMu.Lock()
	ch := r.captureCh
	r.captureMu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- code:
	default:
	}
}

func (r *Runtime) stopped() bool {
	select {
	case <-r.stopCh:
		return true
	default:
		return false
	}
}

func (r *Runtime) sleepWithStop(duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-r.stopCh:
		return false
	case <-timer.C:
		return true
	}
}

func isDeviceClosedError(err error) bool {
	return errors.Is(err, syscall.EBADF) || errors.Is(err, syscall.ENODEV)
}

func isWouldBlockError(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK)
}
