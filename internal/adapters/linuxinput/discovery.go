//go:build linux

package linuxinput

import (
	"fmt"
	"os"
	"sort"
	"strings"

	evdev "github.com/holoplot/go-evdev"
)

type DeviceInfo struct {
	Path      string
	Name      string
	IsVirtual bool
	IsPointer bool
}

// HotkeySelection is the set of opened source devices the toggle listener
// reads from, keyed by path.
type HotkeySelection struct {
	Devices []*evdev.InputDevice
	Paths   map[string]struct{}
}

func ListInputDevices() ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Path < paths[j].Path
	})

	devices := make([]DeviceInfo, 0, len(paths))
	for _, path := range paths {
		dev, err := openInputDevice(path.Path)
		if err != nil {
			continue
		}

		name := path.Name
		if actualName, err := dev.Name(); err == nil && actualName != "" {
			name = actualName
		}

		devices = append(devices, DeviceInfo{
			Path:      path.Path,
			Name:      name,
			IsVirtual: deviceIsVirtual(dev, name),
			IsPointer: deviceIsPointer(dev),
		})
		_ = dev.Close()
	}

	return devices, nil
}

// OpenHotkeySelection opens the devices the toggle hotkey can arrive on. With
// an explicit devicePath only that device is used; otherwise every physical
// device exposing the toggle code is opened.
func OpenHotkeySelection(devicePath string, toggleCode uint16) (*HotkeySelection, error) {
	if devicePath != "" {
		dev, err := openInputDevice(devicePath)
		if err != nil {
			return nil, err
		}
		if !deviceSupportsCode(dev, toggleCode) {
			_ = dev.Close()
			return nil, fmt.Errorf("%s does not expose toggle %s", devicePath, FormatCodeName(toggleCode))
		}
		return &HotkeySelection{
			Devices: []*evdev.InputDevice{dev},
			Paths:   map[string]struct{}{dev.Path(): {}},
		}, nil
	}

	matches, err := findDevicesByCode(toggleCode)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no input device exposes toggle %s; use --list-devices and choose another --toggle", FormatCodeName(toggleCode))
	}

	selection := &HotkeySelection{Paths: make(map[string]struct{}, len(matches))}
	for _, match := range matches {
		dev, err := openInputDevice(match.Path)
		if err != nil {
			continue
		}
		selection.Devices = append(selection.Devices, dev)
		selection.Paths[dev.Path()] = struct{}{}
	}
	if len(selection.Devices) == 0 {
		return nil, fmt.Errorf("found toggle-capable input devices, but failed to open any of them")
	}
	return selection, nil
}

func (s *HotkeySelection) Close() {
	for _, dev := range s.Devices {
		_ = dev.Close()
	}
}

func openInputDevice(path string) (*evdev.InputDevice, error) {
	return evdev.OpenWithFlags(path, os.O_RDONLY)
}

func deviceSupportsCode(device *evdev.InputDevice, code uint16) bool {
	needle := evdev.EvCode(code)
	for _, c := range device.CapableEvents(evdev.EV_KEY) {
		if c == needle {
			return true
		}
	}
	return false
}

func deviceIsVirtual(device *evdev.InputDevice, name string) bool {
	id, err := device.InputID()
	if err == nil && id.BusType == uint16(evdev.BUS_VIRTUAL) {
		return true
	}
	lower := strings.ToLower(name)
	for _, token := range []string{"virtual", "uinput", "ydotool", "clickr"} {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func deviceIsPointer(device *evdev.InputDevice) bool {
	var hasRelX, hasRelY bool
	for _, code := range device.CapableEvents(evdev.EV_REL) {
		if code == evdev.REL_X {
			hasRelX = true
		}
		if code == evdev.REL_Y {
			hasRelY = true
		}
	}
	if hasRelX && hasRelY {
		return true
	}
	return len(device.CapableEvents(evdev.EV_ABS)) > 0
}

func codeIsMouseButton(code uint16) bool {
	c := evdev.EvCode(code)
	return c >= evdev.BTN_MOUSE && c <= evdev.BTN_TASK
}

// findDevicesByCode prefers physical devices, and pointer devices when the
// code is a mouse button, so the virtual injector never listens to itself.
func findDevicesByCode(code uint16) ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}

	matches := make([]DeviceInfo, 0)
	for _, path := range paths {
		dev, err := openInputDevice(path.Path)
		if err != nil {
			continue
		}

		name := path.Name
		if actualName, err := dev.Name(); err == nil && actualName != "" {
			name = actualName
		}
		if deviceSupportsCode(dev, code) {
			matches = append(matches, DeviceInfo{
				Path:      path.Path,
				Name:      name,
				IsVirtual: deviceIsVirtual(dev, name),
				IsPointer: deviceIsPointer(dev),
			})
		}
		_ = dev.Close()
	}

	if len(matches) == 0 {
		return matches, nil
	}

	pool := make([]DeviceInfo, 0, len(matches))
	for _, match := range matches {
		if !match.IsVirtual {
			pool = append(pool, match)
		}
	}
	if len(pool) == 0 {
		pool = matches
	}

	if codeIsMouseButton(code) {
		pointerPool := make([]DeviceInfo, 0, len(pool))
		for _, match := range pool {
			if match.IsPointer {
				pointerPool = append(pointerPool, match)
			}
		}
		if len(pointerPool) > 0 {
			pool = pointerPool
		}
	}

	sort.Slice(pool, func(i, j int) bool {
		return pool[i].Path < pool[j].Path
	})
	return pool, nil
}
