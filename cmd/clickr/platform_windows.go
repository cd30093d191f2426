//go:build windows

package main

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/xSwezan/Clickr/internal/adapters/wininput"
)

func parseToggleCode(value string) (uint16, error) {
	return wininput.ParseCode(value)
}

func parseBackendChoice(value string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(value))
	if backend == "" {
		backend = "auto"
	}
	switch backend {
	case "auto", "windows":
		return backend, nil
	default:
		return "", fmt.Errorf("invalid --backend %q (windows supports auto|windows)", value)
	}
}

func captureNextCode(_ string, _ string, timeout time.Duration) (uint16, error) {
	return wininput.CaptureNextKeyCode(timeout)
}

func formatCodeName(code uint16) string {
	return wininput.FormatCodeName(code)
}

func listInputDevices(_ string) error {
	devices, err := wininput.ListInputDevices()
	if err != nil {
		return err
	}
	for _, dev := range devices {
		virtualTag := "physical"
		if dev.IsVirtual {
			virtualTag = "virtual"
		}
		pointerTag := "non-pointer"
		if dev.IsPointer {
			pointerTag = "pointer"
		}
		fmt.Printf("%s: %s [%s, %s]\n", dev.Path, dev.Name, virtualTag, pointerTag)
	}
	return nil
}

func permissionDeniedHint() string {
	return "Permission denied registering global input hooks. Run as Administrator and ensure input-hooking is allowed."
}

func startClickerFromConfig(cfg config, logger *slog.Logger) (clickerRuntime, error) {
	if cfg.devicePath != "" {
		logger.Warn("--device is ignored on Windows; using global keyboard/mouse hooks")
	}

	clickDown := time.Duration(math.Max(0, cfg.downMS) * float64(time.Millisecond))
	runtime, err := wininput.NewRuntime(
		wininput.RuntimeConfig{
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

	logger.Info("Toggle", "name", formatCodeName(cfg.toggleCode), "code", cfg.toggleCode)
	if cfg.session.ColorGate {
		logger.Info("Color gate", "color", formatHexColor(cfg.session.GateColor), "threshold", cfg.session.GateThreshold)
	}
	logger.Info("Input mode", "mode", "windows-global-hooks")
	if cfg.session.StartEnabled {
		logger.Info("Initial state enabled (press toggle to disable/enable)")
	} else {
		logger.Info("Initial state disabled (press toggle to enable/disable)")
	}
	logger.Info("Press the toggle key to start/stop clicking. Press Ctrl+C to quit")
	return runtime, nil
}
