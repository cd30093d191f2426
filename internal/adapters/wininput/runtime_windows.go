//go:build windows

package wininput

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"unsafe"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmQuit        = 0x0012
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmLButtonDown = 0x0201
	wmRButtonDown = 0x0204
	wmMButtonDown = 0x0207
	wmXButtonDown = 0x020B

	xButton1 = 0x0001
	xButton2 = 0x0002

	llmhfInjected        = 0x00000001
	llkhfInjected        = 0x00000010
	llkhfLowerILInjected = 0x00000002

	inputMouse             = 0
	mouseeventfLeftDown    = 0x0002
	mouseeventfLeftUp      = 0x0004
	mouseeventfRightDown   = 0x0008
	mouseeventfRightUp     = 0x0010
	mouseeventfMiddleDown  = 0x0020
	mouseeventfMiddleUp    = 0x0040
	clrInvalid      uint32 = 0xFFFFFFFF
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
	procSendInput           = user32.NewProc("SendInput")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procGetDC               = user32.NewProc("GetDC")
	procReleaseDC           = user32.NewProc("ReleaseDC")

	gdi32 = syscall.NewLazyDLL("gdi32.dll")

	procGetPixel = gdi32.NewProc("GetPixel")

	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procGetCurrentThreadID = kernel32.NewProc("GetCurrentThreadId")

	mouseHookCallback    = syscall.NewCallback(mouseLLCallback)
	keyboardHookCallback = syscall.NewCallback(keyboardLLCallback)

	activeRuntime atomic.Pointer[Runtime]
)

type point struct {
	X int32
	Y int32
}

type mouseLLHookStruct struct {
	Pt          point
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type keyboardLLHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type message struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

type input struct {
	Type uint32
	Mi   mouseInput
}

func buttonFlags(button autoclicker.Button) (down, up uint32) {
	switch button {
	case autoclicker.ButtonMiddle:
		return mouseeventfMiddleDown, mouseeventfMiddleUp
	case autoclicker.ButtonRight:
		return mouseeventfRightDown, mouseeventfRightUp
	default:
		return mouseeventfLeftDown, mouseeventfLeftUp
	}
}

type windowsPointer struct {
	clickDown time.Duration
}

func (p *windowsPointer) send(flags uint32) error {
	in := input{
		Type: inputMouse,
		Mi:   mouseInput{DwFlags: flags},
	}
	sent, _, callErr := procSendInput.Call(
		1,
		uintptr(unsafe.Pointer(&in)),
		unsafe.Sizeof(in),
	)
	if sent != 1 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return callErr
		}
		return fmt.Errorf("SendInput sent %d of 1 inputs", sent)
	}
	return nil
}

func (p *windowsPointer) Press(button autoclicker.Button) error {
	down, _ := buttonFlags(button)
	return p.send(down)
}

func (p *windowsPointer) Release(button autoclicker.Button) error {
	_, up := buttonFlags(button)
	return p.send(up)
}

func (p *windowsPointer) Click(button autoclicker.Button) error {
	down, up := buttonFlags(button)
	if err := p.send(down); err != nil {
		return err
	}
	if p.clickDown > 0 {
		time.Sleep(p.clickDown)
	}
	return p.send(up)
}

// windowsSampler reads the screen pixel under the cursor with GetPixel on
// the desktop device context.
type windowsSampler struct{}

func (s *windowsSampler) SampleCursorColor() (autoclicker.RGB, error) {
	var pt point
	ok, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		return autoclicker.RGB{}, fmt.Errorf("GetCursorPos failed: %v", callErr)
	}

	dc, _, _ := procGetDC.Call(0)
	if dc == 0 {
		return autoclicker.RGB{}, fmt.Errorf("failed to acquire screen device context")
	}
	defer procReleaseDC.Call(0, dc)

	raw, _, _ := procGetPixel.Call(dc, uintptr(pt.X), uintptr(pt.Y))
	colorref := uint32(raw)
	if colorref == clrInvalid {
		return autoclicker.RGB{}, fmt.Errorf("GetPixel failed at %d,%d", pt.X, pt.Y)
	}

	// COLORREF is 0x00BBGGRR.
	return autoclicker.RGB{
		R: uint8(colorref),
		G: uint8(colorref >> 8),
		B: uint8(colorref >> 16),
	}, nil
}

// Runtime drives the engine on Windows: SendInput injects clicks, GetPixel
// samples colors, and low-level hooks watch for the toggle hotkey. The hooks
// require a message loop pinned to one OS thread, so only one runtime can be
// active per process.
type Runtime struct {
	service *autoclicker.Service
	logger  autoclicker.Logger

	toggleCode atomic.Uint32

	stopOnce sync.Once
	stopCh   chan struct{}

	threadID atomic.Uint32
	loopMu   sync.Mutex
	loopDone chan struct{}

	captureMu sync.Mutex
	captureCh chan uint16
}

func NewRuntime(cfg RuntimeConfig, logger autoclicker.Logger) (*Runtime, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	service, err := autoclicker.NewService(
		cfg.Session,
		&windowsPointer{clickDown: cfg.ClickDown},
		&windowsSampler{},
		logger,
	)
	if err != nil {
		return nil, err
	}

	r := &Runtime{
		service:  service,
		logger:   logger,
		stopCh:   make(chan struct{}),
		loopDone: closedSignalChan(),
	}
	r.toggleCode.Store(uint32(cfg.ToggleCode))
	return r, nil
}

func (r *Runtime) Start() error {
	if !activeRuntime.CompareAndSwap(nil, r) {
		return fmt.Errorf("windows runtime is already active")
	}

	r.loopMu.Lock()
	r.loopDone = make(chan struct{})
	r.loopMu.Unlock()

	r.service.Start()

	ready := make(chan error, 1)
	go r.hookLoop(ready)

	if err := <-ready; err != nil {
		r.Stop()
		return err
	}
	return nil
}

func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		threadID := r.threadID.Load()
		if threadID != 0 {
			_, _, _ = procPostThreadMessageW.Call(uintptr(threadID), uintptr(wmQuit), 0, 0)
		}

		r.loopMu.Lock()
		done := r.loopDone
		r.loopMu.Unlock()
		if done != nil {
			<-done
		}

		r.service.Stop()
		activeRuntime.CompareAndSwap(r, nil)
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
	return uint16(r.toggleCode.Load())
}

func (r *Runtime) SetToggleCode(code uint16) {
	r.toggleCode.Store(uint32(code))
}

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

func (r *Runtime) hookLoop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer func() {
		r.loopMu.Lock()
		done := r.loopDone
		r.loopMu.Unlock()
		if done != nil {
			close(done)
		}
	}()
	defer activeRuntime.CompareAndSwap(r, nil)

	threadID, _, _ := procGetCurrentThreadID.Call()
	r.threadID.Store(uint32(threadID))

	mouseHook, _, mouseErr := procSetWindowsHookExW.Call(uintptr(whMouseLL), mouseHookCallback, 0, 0)
	if mouseHook == 0 {
		ready <- fmt.Errorf("failed to install mouse hook: %w", mouseErr)
		return
	}
	defer func() {
		_, _, _ = procUnhookWindowsHookEx.Call(mouseHook)
	}()

	keyboardHook, _, keyboardErr := procSetWindowsHookExW.Call(uintptr(whKeyboardLL), keyboardHookCallback, 0, 0)
	if keyboardHook == 0 {
		ready <- fmt.Errorf("failed to install keyboard hook: %w", keyboardErr)
		return
	}
	defer func() {
		_, _, _ = procUnhookWindowsHookEx.Call(keyboardHook)
	}()

	ready <- nil

	var msg message
	for {
		ret, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			r.logger.Warn("Windows message loop failed", "err", callErr)
			return
		case 0:
			return
		default:
			_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
			_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
		}
	}
}

func mouseLLCallback(code int, wParam uintptr, lParam uintptr) uintptr {
	if code >= 0 {
		if r := activeRuntime.Load(); r != nil {
			r.handleMouseHook(wParam, lParam)
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

func keyboardLLCallback(code int, wParam uintptr, lParam uintptr) uintptr {
	if code >= 0 {
		if r := activeRuntime.Load(); r != nil {
			r.handleKeyboardHook(wParam, lParam)
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

func (r *Runtime) handleMouseHook(wParam uintptr, lParam uintptr) {
	if lParam == 0 {
		return
	}

	event := (*mouseLLHookStruct)(unsafe.Pointer(lParam))
	if event.Flags&llmhfInjected != 0 {
		return
	}

	var code uint16
	switch uint32(wParam) {
	case wmLButtonDown:
		code = CodeBTNLeft
	case wmRButtonDown:
		code = CodeBTNRight
	case wmMButtonDown:
		code = CodeBTNMiddle
	case wmXButtonDown:
		code = xButtonCode(event.MouseData)
	default:
		return
	}
	if code == 0 {
		return
	}

	r.handleInputCode(code)
}

func (r *Runtime) handleKeyboardHook(wParam uintptr, lParam uintptr) {
	if lParam == 0 {
		return
	}

	event := (*keyboardLLHookStruct)(unsafe.Pointer(lParam))
	if event.Flags&llkhfInjected != 0 || event.Flags&llkhfLowerILInjected != 0 {
		return
	}

	switch uint32(wParam) {
	case wmKeyDown, wmSysKeyDown:
	default:
		return
	}

	code, ok := CodeFromVK(event.VkCode, event.Flags, event.ScanCode)
	if !ok {
		return
	}

	r.handleInputCode(code)
}

func (r *Runtime) handleInputCode(code uint16) {
	r.publishCapturedCode(code)
	if code == r.ToggleCode() {
		enabled := r.service.Toggle()
		r.logger.Info("Hotkey toggled", "enabled", enabled)
	}
}

func xButtonCode(mouseData uint32) uint16 {
	switch uint16(mouseData >> 16) {
	case xButton1:
		return CodeBTNSide
	case xButton2:
		return CodeBTNExtra
	default:
		return 0
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

func ListInputDevices() ([]DeviceInfo, error) {
	return []DeviceInfo{
		{
			Path:      "global",
			Name:      "Windows Global Input",
			IsVirtual: false,
			IsPointer: true,
		},
	}, nil
}

// CaptureNextKeyCode polls GetAsyncKeyState for a fresh key/button press,
// for use before any runtime (and its hooks) exists.
func CaptureNextKeyCode(timeout time.Duration) (uint16, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	codes := CaptureCandidateCodes()
	if len(codes) == 0 {
		return 0, fmt.Errorf("no capturable key/button codes configured")
	}

	state := make(map[uint16]bool, len(codes))
	for _, code := range codes {
		state[code] = isCodeDown(code)
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(2 * time.Millisecond)
	defer ticker.Stop()

	for {
		for _, code := range codes {
			down := isCodeDown(code)
			wasDown := state[code]
			state[code] = down
			if down && !wasDown {
				return code, nil
			}
		}

		if time.Now().After(deadline) {
			return 0, fmt.Errorf("timed out waiting for key/button input")
		}

		<-ticker.C
	}
}

func isCodeDown(code uint16) bool {
	vk, ok := CodeToVK(code)
	if !ok {
		return false
	}
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(state)&0x8000 != 0
}

func closedSignalChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
