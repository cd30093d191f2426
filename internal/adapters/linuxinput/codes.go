package linuxinput

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"

	evdev "github.com/holoplot/go-evdev"
)

const (
	CodeBTNLeft   uint16 = uint16(evdev.BTN_LEFT)
	CodeBTNMiddle uint16 = uint16(evdev.BTN_MIDDLE)
	CodeBTNRight  uint16 = uint16(evdev.BTN_RIGHT)
	CodeKEYF6     uint16 = uint16(evdev.KEY_F6)
)

func ParseCode(value string) (uint16, error) {
	raw := strings.ToUpper(strings.TrimSpace(value))
	if raw == "" {
		return 0, fmt.Errorf("key code is empty")
	}
	if code, ok := evdev.KEYFromString[raw]; ok {
		return uint16(code), nil
	}

	parsed, err := strconv.ParseInt(raw, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown key %q: use names like KEY_F6/BTN_SIDE or numeric code", value)
	}
	if parsed < 0 || parsed > 0xFFFF {
		return 0, fmt.Errorf("key code out of range: %d", parsed)
	}
	return uint16(parsed), nil
}

func FormatCodeName(code uint16) string {
	name := evdev.CodeName(evdev.EV_KEY, evdev.EvCode(code))
	if name == "" || name == "unknown" {
		return strconv.Itoa(int(code))
	}
	// Aliased codes come back slash-joined, e.g. "BTN_MOUSE/BTN_LEFT"
	// for 0x110. Return a single name; any alias round-trips through
	// ParseCode.
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

func buttonCode(button autoclicker.Button) evdev.EvCode {
	switch button {
	case autoclicker.ButtonMiddle:
		return evdev.BTN_MIDDLE
	case autoclicker.ButtonRight:
		return evdev.BTN_RIGHT
	default:
		return evdev.BTN_LEFT
	}
}
