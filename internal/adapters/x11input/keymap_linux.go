//go:build linux

package x11input

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/xSwezan/Clickr/internal/adapters/linuxinput"

	evdev "github.com/holoplot/go-evdev"
)

func codeToXButton(code uint16) (xproto.Button, bool) {
	// Match on the raw code, not the formatted name. BTN_LEFT aliases
	// BTN_MOUSE in the evdev name tables, so name matching misses it.
	switch evdev.EvCode(code) {
	case evdev.BTN_LEFT:
		return xproto.Button(xproto.ButtonIndex1), true
	case evdev.BTN_MIDDLE:
		return xproto.Button(xproto.ButtonIndex2), true
	case evdev.BTN_RIGHT:
		return xproto.Button(xproto.ButtonIndex3), true
	case evdev.BTN_SIDE, evdev.BTN_BACK:
		return xproto.Button(8), true
	case evdev.BTN_EXTRA, evdev.BTN_FORWARD:
		return xproto.Button(9), true
	default:
		return 0, false
	}
}

func xButtonToCode(button xproto.Button) (uint16, bool) {
	switch byte(button) {
	case xproto.ButtonIndex1:
		return parseLinuxCode("BTN_LEFT")
	case xproto.ButtonIndex2:
		return parseLinuxCode("BTN_MIDDLE")
	case xproto.ButtonIndex3:
		return parseLinuxCode("BTN_RIGHT")
	case 8:
		return parseLinuxCode("BTN_SIDE")
	case 9:
		return parseLinuxCode("BTN_EXTRA")
	default:
		return 0, false
	}
}

func parseLinuxCode(name string) (uint16, bool) {
	code, err := linuxinput.ParseCode(name)
	if err != nil {
		return 0, false
	}
	return code, true
}

var specialKeyNames = map[string]string{
	"ESC":        "Escape",
	"ENTER":      "Return",
	"TAB":        "Tab",
	"SPACE":      "space",
	"BACKSPACE":  "BackSpace",
	"LEFTSHIFT":  "Shift_L",
	"RIGHTSHIFT": "Shift_R",
	"LEFTCTRL":   "Control_L",
	"RIGHTCTRL":  "Control_R",
	"LEFTALT":    "Alt_L",
	"RIGHTALT":   "Alt_R",
	"LEFTMETA":   "Super_L",
	"RIGHTMETA":  "Super_R",
	"CAPSLOCK":   "Caps_Lock",
	"NUMLOCK":    "Num_Lock",
	"SCROLLLOCK": "Scroll_Lock",
	"PAGEUP":     "Page_Up",
	"PAGEDOWN":   "Page_Down",
	"INSERT":     "Insert",
	"DELETE":     "Delete",
	"HOME":       "Home",
	"END":        "End",
	"UP":         "Up",
	"DOWN":       "Down",
	"LEFT":       "Left",
	"RIGHT":      "Right",
	"MENU":       "Menu",
	"PAUSE":      "Pause",
	"MINUS":      "minus",
	"EQUAL":      "equal",
	"LEFTBRACE":  "bracketleft",
	"RIGHTBRACE": "bracketright",
	"SEMICOLON":  "semicolon",
	"APOSTROPHE": "apostrophe",
	"GRAVE":      "grave",
	"BACKSLASH":  "backslash",
	"COMMA":      "comma",
	"DOT":        "period",
	"SLASH":      "slash",
}

// linuxCodeToXKeyString maps an evdev KEY_* code to the X11 keysym string
// understood by xgbutil/keybind.
func linuxCodeToXKeyString(code uint16) (string, bool) {
	name := linuxinput.FormatCodeName(code)
	if !strings.HasPrefix(name, "KEY_") {
		return "", false
	}
	token := strings.TrimPrefix(name, "KEY_")

	if mapped, ok := specialKeyNames[token]; ok {
		return mapped, true
	}
	if len(token) == 1 && token[0] >= 'A' && token[0] <= 'Z' {
		return strings.ToLower(token), true
	}
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		return token, true
	}
	if strings.HasPrefix(token, "F") && len(token) > 1 && isDigits(token[1:]) {
		return token, true
	}
	if strings.HasPrefix(token, "KP") {
		suffix := strings.TrimPrefix(token, "KP")
		switch suffix {
		case "PLUS":
			return "KP_Add", true
		case "MINUS":
			return "KP_Subtract", true
		case "ASTERISK":
			return "KP_Multiply", true
		case "SLASH":
			return "KP_Divide", true
		case "DOT":
			return "KP_Decimal", true
		case "ENTER":
			return "KP_Enter", true
		}
		if len(suffix) == 1 && suffix[0] >= '0' && suffix[0] <= '9' {
			return "KP_" + suffix, true
		}
	}

	return "", false
}

// xLookupStringToLinuxCode inverts linuxCodeToXKeyString for capture.
func xLookupStringToLinuxCode(value string) (uint16, bool) {
	raw := strings.ToLower(strings.TrimSpace(value))
	if raw == "" {
		return 0, false
	}

	if len(raw) == 1 && ((raw[0] >= 'a' && raw[0] <= 'z') || (raw[0] >= '0' && raw[0] <= '9')) {
		return parseLinuxCode("KEY_" + strings.ToUpper(raw))
	}
	if strings.HasPrefix(raw, "f") && len(raw) > 1 && isDigits(raw[1:]) {
		return parseLinuxCode("KEY_" + strings.ToUpper(raw))
	}
	if strings.HasPrefix(raw, "kp_") {
		switch strings.TrimPrefix(raw, "kp_") {
		case "add":
			return parseLinuxCode("KEY_KPPLUS")
		case "subtract":
			return parseLinuxCode("KEY_KPMINUS")
		case "multiply":
			return parseLinuxCode("KEY_KPASTERISK")
		case "divide":
			return parseLinuxCode("KEY_KPSLASH")
		case "decimal":
			return parseLinuxCode("KEY_KPDOT")
		case "enter":
			return parseLinuxCode("KEY_KPENTER")
		}
		suffix := strings.TrimPrefix(raw, "kp_")
		if len(suffix) == 1 && suffix[0] >= '0' && suffix[0] <= '9' {
			return parseLinuxCode("KEY_KP" + suffix)
		}
		return 0, false
	}

	for token, keysym := range specialKeyNames {
		if strings.EqualFold(keysym, raw) {
			return parseLinuxCode("KEY_" + token)
		}
	}
	return 0, false
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
