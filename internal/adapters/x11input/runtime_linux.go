//go:build linux

package x11input

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/xSwezan/Clickr/internal/adapters/linuxinput"
	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

type RuntimeConfig struct {
	ToggleCode uint16
	ClickDown  time.Duration
	Session    autoclicker.Config
}

type DeviceInfo struct {
	Path      string
	Name      string
	IsVirtual bool
	IsPointer bool
}

type toggleBinding struct {
	code     uint16
	keycodes []xproto.Keycode
	buttons  []xproto.Button
}

// Runtime wires the engine to an X11 display: XTEST injects pointer actions,
// GetImage samples the pixel under the cursor, and a root-window grab on the
// toggle key/button provides the global hotkey.
type Runtime struct {
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	rootWin xproto.Window

	service *autoclicker.Service
	logger  autoclicker.Logger

	mu             sync.RWMutex
	binding        toggleBinding
	grabbedKeys    []xproto.Keycode
	grabbedButtons []xproto.Button

	injectMu sync.Mutex

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

type x11Pointer struct {
	r         *Runtime
	clickDown time.Duration
}

func buttonIndex(button autoclicker.Button) byte {
	switch button {
	case autoclicker.ButtonMiddle:
		return byte(xproto.ButtonIndex2)
	case autoclicker.ButtonRight:
		return byte(xproto.ButtonIndex3)
	default:
		return byte(xproto.ButtonIndex1)
	}
}

func (p *x11Pointer) fake(eventType byte, button autoclicker.Button) error {
	p.r.injectMu.Lock()
	defer p.r.injectMu.Unlock()

	if err := xtest.FakeInputChecked(
		p.r.conn,
		eventType,
		buttonIndex(button),
		xproto.TimeCurrentTime,
		p.r.rootWin,
		0,
		0,
		0,
	).Check(); err != nil {
		return err
	}
	p.r.conn.Sync()
	return nil
}

func (p *x11Pointer) Press(button autoclicker.Button) error {
	return p.fake(xproto.ButtonPress, button)
}

func (p *x11Pointer) Release(button autoclicker.Button) error {
	return p.fake(xproto.ButtonRelease, button)
}

func (p *x11Pointer) Click(button autoclicker.Button) error {
	if err := p.fake(xproto.ButtonPress, button); err != nil {
		return err
	}
	if p.clickDown > 0 {
		time.Sleep(p.clickDown)
	}
	return p.fake(xproto.ButtonRelease, button)
}

// x11Sampler reads the 1x1 pixel under the pointer via GetImage.
type x11Sampler struct {
	r *Runtime
}

func (s *x11Sampler) SampleCursorColor() (autoclicker.RGB, error) {
	query, err := xproto.QueryPointer(s.r.conn, s.r.rootWin).Reply()
	if err != nil {
		return autoclicker.RGB{}, err
	}

	image, err := xproto.GetImage(
		s.r.conn,
		xproto.ImageFormatZPixmap,
		xproto.Drawable(s.r.rootWin),
		query.RootX,
		query.RootY,
		1,
		1,
		0xffffffff,
	).Reply()
	if err != nil {
		return autoclicker.RGB{}, err
	}
	if len(image.Data) < 3 {
		return autoclicker.RGB{}, fmt.Errorf("unexpected pixel data length %d", len(image.Data))
	}

	// ZPixmap data for 24/32-bit depths is BGRx.
	return autoclicker.RGB{
		R: image.Data[2],
		G: image.Data[1],
		B: image.Data[0],
	}, nil
}

func NewRuntime(cfg RuntimeConfig, logger autoclicker.Logger) (*Runtime, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	conn := xu.Conn()
	if conn == nil {
		return nil, fmt.Errorf("failed to open X11 connection")
	}

	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, err
	}
	keybind.Initialize(xu)

	r := &Runtime{
		xu:      xu,
		conn:    conn,
		rootWin: xu.RootWin(),
		logger:  logger,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}

	service, err := autoclicker.NewService(
		cfg.Session,
		&x11Pointer{r: r, clickDown: cfg.ClickDown},
		&x11Sampler{r: r},
		logger,
	)
	if err != nil {
		conn.Close()
		return nil, err
	}
	r.service = service

	if err := r.applyToggleBinding(cfg.ToggleCode); err != nil {
		conn.Close()
		return nil, err
	}

	return r, nil
}

func (r *Runtime) Start() error {
	r.service.Start()
	go r.eventLoop()
	return nil
}

func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)

		r.mu.Lock()
		r.ungrabAllLocked()
		if r.conn != nil {
			r.conn.Close()
		}
		r.mu.Unlock()

		<-r.doneCh
		r.service.Stop()
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

func (r *Runtime) SetToggleCode(code uint16) {
	if err := r.applyToggleBinding(code); err != nil {
		r.logger.Warn("Failed to update toggle binding", "err", err)
	}
}

func (r *Runtime) CaptureNextKeyCode(timeout time.Duration) (uint16, error) {
	// An active keyboard grab on a separate connection wins over our
	// passive toggle grab for the duration of the capture.
	return CaptureNextKeyCode(timeout)
}

func (r *Runtime) eventLoop() {
	defer close(r.doneCh)

	for {
		event, xerr := r.conn.WaitForEvent()
		if xerr != nil {
			select {
			case <-r.stopCh:
				return
			default:
			}
			r.logger.Warn("X11 event error", "err", xerr)
			continue
		}
		if event == nil {
			return
		}

		switch ev := event.(type) {
		case xproto.KeyPressEvent:
			if r.isToggleKey(ev.Detail) {
				r.handleToggle()
			}
			_ = xproto.AllowEventsChecked(r.conn, xproto.AllowReplayKeyboard, xproto.TimeCurrentTime).Check()
		case xproto.KeyReleaseEvent:
			_ = xproto.AllowEventsChecked(r.conn, xproto.AllowReplayKeyboard, xproto.TimeCurrentTime).Check()
		case xproto.ButtonPressEvent:
			if r.isToggleButton(ev.Detail) {
				r.handleToggle()
			}
			_ = xproto.AllowEventsChecked(r.conn, xproto.AllowReplayPointer, xproto.TimeCurrentTime).Check()
		case xproto.ButtonReleaseEvent:
			_ = xproto.AllowEventsChecked(r.conn, xproto.AllowReplayPointer, xproto.TimeCurrentTime).Check()
		}
	}
}

func (r *Runtime) handleToggle() {
	enabled := r.service.Toggle()
	r.logger.Info("Hotkey toggled", "enabled", enabled)
}

func (r *Runtime) isToggleKey(key xproto.Keycode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range r.binding.keycodes {
		if candidate == key {
			return true
		}
	}
	return false
}

func (r *Runtime) isToggleButton(button xproto.Button) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range r.binding.buttons {
		if candidate == button {
			return true
		}
	}
	return false
}

func (r *Runtime) applyToggleBinding(code uint16) error {
	binding, err := r.resolveBinding(code)
	if err != nil {
		return fmt.Errorf("toggle binding: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ungrabAllLocked()
	if err := r.grabAllLocked(binding.keycodes, binding.buttons); err != nil {
		r.ungrabAllLocked()
		return err
	}
	r.binding = binding
	return nil
}

func (r *Runtime) grabAllLocked(keys []xproto.Keycode, buttons []xproto.Button) error {
	for _, key := range keys {
		if err := xproto.GrabKeyChecked(
			r.conn,
			false,
			r.rootWin,
			xproto.ModMaskAny,
			key,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
		).Check(); err != nil {
			return err
		}
		r.grabbedKeys = append(r.grabbedKeys, key)
	}

	for _, button := range buttons {
		if err := xproto.GrabButtonChecked(
			r.conn,
			false,
			r.rootWin,
			xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
			xproto.WindowNone,
			xproto.CursorNone,
			byte(button),
			xproto.ModMaskAny,
		).Check(); err != nil {
			return err
		}
		r.grabbedButtons = append(r.grabbedButtons, button)
	}
	return nil
}

func (r *Runtime) ungrabAllLocked() {
	for _, key := range r.grabbedKeys {
		xproto.UngrabKey(r.conn, key, r.rootWin, xproto.ModMaskAny)
	}
	for _, button := range r.grabbedButtons {
		xproto.UngrabButton(r.conn, byte(button), r.rootWin, xproto.ModMaskAny)
	}
	r.grabbedKeys = nil
	r.grabbedButtons = nil
}

func (r *Runtime) resolveBinding(code uint16) (toggleBinding, error) {
	if button, ok := codeToXButton(code); ok {
		return toggleBinding{code: code, buttons: []xproto.Button{button}}, nil
	}

	keyName, ok := linuxCodeToXKeyString(code)
	if !ok {
		return toggleBinding{}, fmt.Errorf("unsupported X11 key code %s", linuxinput.FormatCodeName(code))
	}

	keycodes := keybind.StrToKeycodes(r.xu, keyName)
	if len(keycodes) == 0 {
		return toggleBinding{}, fmt.Errorf("failed to resolve X11 key %q", keyName)
	}

	uniq := make(map[xproto.Keycode]struct{}, len(keycodes))
	for _, keycode := range keycodes {
		uniq[keycode] = struct{}{}
	}
	result := make([]xproto.Keycode, 0, len(uniq))
	for key := range uniq {
		result = append(result, key)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return toggleBinding{code: code, keycodes: result}, nil
}

func ListInputDevices() ([]DeviceInfo, error) {
	return []DeviceInfo{
		{
			Path:      "x11-global",
			Name:      "X11 Global Input",
			IsVirtual: false,
			IsPointer: true,
		},
	}, nil
}

// CaptureNextKeyCode grabs the keyboard and pointer and resolves with the
// first pressed key/button, for rebinding the hotkey.
func CaptureNextKeyCode(timeout time.Duration) (uint16, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return 0, err
	}
	conn := xu.Conn()
	root := xu.RootWin()
	keybind.Initialize(xu)

	defer conn.Close()
	defer xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	defer xproto.UngrabKeyboard(conn, xproto.TimeCurrentTime)

	if reply, err := xproto.GrabKeyboard(
		conn,
		false,
		root,
		xproto.TimeCurrentTime,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
	).Reply(); err != nil {
		return 0, err
	} else if reply.Status != xproto.GrabStatusSuccess {
		return 0, fmt.Errorf("failed to grab keyboard (status=%d)", reply.Status)
	}

	if reply, err := xproto.GrabPointer(
		conn,
		false,
		root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		xproto.TimeCurrentTime,
	).Reply(); err != nil {
		return 0, err
	} else if reply.Status != xproto.GrabStatusSuccess {
		return 0, fmt.Errorf("failed to grab pointer (status=%d)", reply.Status)
	}

	deadline := time.Now().Add(timeout)
	for {
		event, xerr := conn.PollForEvent()
		if xerr != nil {
			return 0, xerr
		}
		if event == nil {
			if time.Now().After(deadline) {
				return 0, fmt.Errorf("timed out waiting for key/button input")
			}
			time.Sleep(2 * time.Millisecond)
			continue
		}

		switch ev := event.(type) {
		case xproto.ButtonPressEvent:
			if code, ok := xButtonToCode(ev.Detail); ok {
				return code, nil
			}
		case xproto.KeyPressEvent:
			lookup := keybind.LookupString(xu, ev.State, ev.Detail)
			if code, ok := xLookupStringToLinuxCode(lookup); ok {
				return code, nil
			}
		}
	}
}
