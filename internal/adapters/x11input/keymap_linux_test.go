//go:build linux

package x11input

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	evdev "github.com/holoplot/go-evdev"
)

func TestCodeToXButtonMouseCodes(t *testing.T) {
	tests := []struct {
		code   evdev.EvCode
		button xproto.Button
	}{
		{code: evdev.BTN_LEFT, button: xproto.Button(xproto.ButtonIndex1)},
		{code: evdev.BTN_MIDDLE, button: xproto.Button(xproto.ButtonIndex2)},
		{code: evdev.BTN_RIGHT, button: xproto.Button(xproto.ButtonIndex3)},
		{code: evdev.BTN_SIDE, button: xproto.Button(8)},
		{code: evdev.BTN_BACK, button: xproto.Button(8)},
		{code: evdev.BTN_EXTRA, button: xproto.Button(9)},
		{code: evdev.BTN_FORWARD, button: xproto.Button(9)},
	}

	for _, tc := range tests {
		got, ok := codeToXButton(uint16(tc.code))
		if !ok {
			t.Fatalf("codeToXButton(%#x) not recognized", uint16(tc.code))
		}
		if got != tc.button {
			t.Fatalf("codeToXButton(%#x) = %d, want %d", uint16(tc.code), got, tc.button)
		}
	}
}

func TestCodeToXButtonRejectsKeyboardCodes(t *testing.T) {
	if _, ok := codeToXButton(uint16(evdev.KEY_F6)); ok {
		t.Fatalf("keyboard code must not map to an X11 button")
	}
}

func TestXButtonToCodeRoundTrip(t *testing.T) {
	for _, button := range []xproto.Button{
		xproto.Button(xproto.ButtonIndex1),
		xproto.Button(xproto.ButtonIndex2),
		xproto.Button(xproto.ButtonIndex3),
		xproto.Button(8),
		xproto.Button(9),
	} {
		code, ok := xButtonToCode(button)
		if !ok {
			t.Fatalf("xButtonToCode(%d) not recognized", button)
		}
		back, ok := codeToXButton(code)
		if !ok || back != button {
			t.Fatalf("round trip of button %d produced %d (ok=%v)", button, back, ok)
		}
	}
}
