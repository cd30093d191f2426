//go:build linux

package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/xSwezan/Clickr/internal/adapters/linuxinput"
	"github.com/xSwezan/Clickr/internal/adapters/x11input"
)

func parseToggleCode(value string) (uint16, error) {
	return linuxinput.ParseCode(value)
}

func parseBackendChoice(value string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(value))
	if backend == "" {
		backend = "auto"
	}
	switch backend {
	case "auto", "wayland", "x11", "evdev":
		return backend, nil
	default:
		return "", fmt.Errorf("invalid --backend %q (linux supports auto|wayland|x11)", value)
	}
}

func captureNextCode(backend, devicePath string, timeout time.Duration) (uint16, error) {
	switch resolveLinuxBackend(backend) {
	case "x11":
		return x11input.CaptureNextKeyCode(timeout)
	default:
		return linuxinput.CaptureNextKeyCode(devicePath, timeout)
	}
}

func formatCodeName(code uint16) string {
	return linuxinput.FormatCodeName(code)
}

func listInputDevices(backend string) error {
	switch resolveLinuxBackend(backend) {
	case "x11":
		devices, err := x11input.ListInputDevices()
		if err != nil {
			return err
		}
		for _, dev := range devices {
			printDeviceLine(dev.Path, dev.Name, dev.IsVirtual, dev.IsPointer)
		}
		return nil
	default:
		devices, err := linuxinput.ListInputDevices()
		if err != nil {
			return err
		}
		for _, dev := range devices {
			printDeviceLine(dev.Path, dev.Name, dev.IsVirtual, dev.IsPointer)
		}
		return nil
	}
}

func printDeviceLine(path, name string, isVirtual, isPointer bool) {
	virtualTag := "physical"
	if isVirtual {
		virtualTag = "virtual"
	}
	pointerTag := "non-pointer"
	if isPointer {
		pointerTag = "pointer"
	}
	fmt.Printf("%s: %s [%s, %s]\n", path, name, virtualTag, pointerTag)
}

func permissionDeniedHint() string {
	return "Permission denied opening input backend. On Wayland use root/udev for /dev/input + /dev/uinput. On X11 ensure an active X11 session and DISPLAY is set."
}

func startClickerFromConfig(cfg config, logger *slog.Logger) (clickerRuntime, error) {
	switch resolveLinuxBackend(cfg.backend) {
	case "x11":
		return startX11ClickerFromConfig(cfg, logger)
	default:
		return startWaylandClickerFromConfig(cfg, logger)
	}
}

func hotkeySourcePaths(paths map[string]struct{}) []string {
	out := make([]string, 0, len(paths))
	for path := range paths {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func startWaylandClickerFromConfig(cfg config, logger *slog.Logger) (clickerRuntime, error) {
	selection, err := linuxinput.OpenHotkeySelection(cfg.devicePath, cfg.toggleCode)
	if err != nil {
		return nil, err
	}

	for _, path := range hotkeySourcePaths(selection.Paths) {
		logger.Info("Using hotkey source device", "path", path)
	}

	clickDown := time.Duration(math.Max(0, cfg.downMS) * float64(time.Millisecond))
	runtime, err := linuxinput.NewRuntime(
		selection,
		linuxinput.RuntimeConfig{
			ToggleCode: cfg.toggleCode,
			ClickDown:  clickDown,
			Session:    cfg.session,
		},
		logger,
	)
	if err != nil {
		selection.Close()
		return nil, err
	}

	if err := runtime.Start(); err != nil {
		runtime.Stop()
		return nil, err
	}

	logger.Info("Backend", "name", "wayland")
	logger.Info("Toggle", "name", formatCodeName(cfg.toggleCode), "code", cfg.toggleCode)
	if cfg.session.ColorGate {
		logger.Warn("Pixel sampling is unavailable on the wayland backend; the color gate compares against the last known color only. Use --backend=x11 for live sampling.")
	}
	if cfg.session.StartEnabled {
		logger.Info("Initial state enabled (press toggle to disable/enable)")
	} else {
		logger.Info("Initial state disabled (press toggle to enable/disable)")
	}
	logger.Info("Press the toggle key to start/stop clicking. Press Ctrl+C to quit")
	return runtime, nil
}

func startX11ClickerFromConfig(cfg config, logger *slog.Logger) (clickerRuntime, error) {
	if cfg.devicePath != "" {
		logger.Warn("--device is ignored on X11 backend")
	}

	clickDown := time.Duration(math.Max(0, cfg.downMS) * float64(time.Millisecond))
	runtime, err := x11input.NewRuntime(
		x11input.RuntimeConfig{
			ToggleCode: cfg.toggleCode,
			ClickDown:  clickDown,
			Session:    cfg.session,
		},
		logger,
	)
	if err != nil {
		return nil, err
	}

	if err := runtime.Start(); err != nil {
		runtime.Stop()
		return nil, err
	}

	logger.Info("Backend", "name", "x11")
	logger.Info("Toggle", "name", formatCodeName(cfg.toggleCode), "code", cfg.toggleCode)
	if cfg.session.ColorGate {
		logger.Info("Color gate", "color", formatHexColor(cfg.session.GateColor), "threshold", cfg.session.GateThreshold)
	}
	if cfg.session.StartEnabled {
		logger.Info("Initial state enabled (press toggle to disable/enable)")
	} else {
		logger.Info("Initial state disabled (press toggle to enable/disable)")
	}
	logger.Info("Press the toggle key to start/stop clicking. Press Ctrl+C to quit")
	return runtime, nil
}

func resolveLinuxBackend(configured string) string {
	choice := strings.ToLower(strings.TrimSpace(configured))
	if choice == "" {
		choice = "auto"
	}
	if choice == "evdev" {
		choice = "wayland"
	}
	if choice != "auto" {
		return choice
	}

	sessionType := strings.ToLower(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")))
	switch sessionType {
	case "wayland":
		return "wayland"
	case "x11":
		return "x11"
	}

	if strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) != "" {
		return "wayland"
	}
	if strings.TrimSpace(os.Getenv("DISPLAY")) != "" {
		return "x11"
	}
	return "wayland"
}
