package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

type config struct {
	toggleCode  uint16
	toggleRaw   string
	backend     string
	devicePath  string
	downMS      float64
	colorRaw    string
	session     autoclicker.Config
	listDevices bool
	ui          bool
	logLevel    slog.Level
}

type lineSinkWriter struct {
	sink  func(line string)
	mu    sync.Mutex
	lines bytes.Buffer
}

func (w *lineSinkWriter) Write(p []byte) (int, error) {
	if w.sink == nil {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(p)
	for len(p) > 0 {
		idx := bytes.IndexByte(p, '\n')
		if idx == -1 {
			_, _ = w.lines.Write(p)
			break
		}
		_, _ = w.lines.Write(p[:idx])
		line := strings.TrimSpace(w.lines.String())
		w.lines.Reset()
		if line != "" {
			w.sink(line)
		}
		p = p[idx+1:]
	}
	return total, nil
}

func newSlogLogger(level slog.Level, sink func(line string)) *slog.Logger {
	if !debugLogsEnabled() {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: level,
		}))
	}

	out := io.Writer(os.Stderr)
	if sink != nil {
		out = io.MultiWriter(os.Stderr, &lineSinkWriter{sink: sink})
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

func debugLogsEnabled() bool {
	return strings.TrimSpace(os.Getenv("DEBUG")) == "1"
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (expected debug|info|warning|error)", value)
	}
}

func parseHexColor(value string) (autoclicker.RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(raw) != 6 {
		return autoclicker.RGB{}, fmt.Errorf("invalid color %q: expected #RRGGBB", value)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(raw, "%02x%02x%02x", &r, &g, &b); err != nil {
		return autoclicker.RGB{}, fmt.Errorf("invalid color %q: expected #RRGGBB", value)
	}
	return autoclicker.RGB{R: r, G: g, B: b}, nil
}

func formatHexColor(c autoclicker.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseConfig(args []string) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("clickr", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	var (
		toggleRaw      string
		backendRaw     string
		logLevelRaw    string
		buttonRaw      string
		clickModeRaw   string
		randomInterval bool
		hours          uint
		minutes        uint
		seconds        uint
		millis         uint
		limitClicks    uint
		limitTime      float64
		threshold      uint
		cliMode        bool
	)

	flags.UintVar(&hours, "hours", 0, "Constant interval: hours between clicks.")
	flags.UintVar(&minutes, "minutes", 0, "Constant interval: minutes between clicks.")
	flags.UintVar(&seconds, "seconds", 0, "Constant interval: seconds between clicks.")
	flags.UintVar(&millis, "millis", 100, "Constant interval: milliseconds between clicks (default: 100).")
	flags.BoolVar(&randomInterval, "random", false, "Use a random interval instead of a constant one.")
	flags.Float64Var(&cfg.session.RandomMin, "random-min", 0, "Random interval: minimum seconds between clicks.")
	flags.Float64Var(&cfg.session.RandomMax, "random-max", 1, "Random interval: maximum seconds between clicks (clamped to 3600).")
	flags.StringVar(&buttonRaw, "button", "left", "Mouse button to click: left|middle|right.")
	flags.StringVar(&clickModeRaw, "click-mode", "single", "Click mode: single|double|toggle.")
	flags.UintVar(&limitClicks, "limit-clicks", 0, "Stop after this many fires (0 disables).")
	flags.Float64Var(&limitTime, "limit-time", 0, "Stop after this many seconds of activity (0 disables).")
	flags.StringVar(&cfg.colorRaw, "color", "", "Only click while the pixel under the cursor is near this #RRGGBB color.")
	flags.UintVar(&threshold, "color-threshold", 32, "Color match tolerance 0-255 (0 requires an exact match).")
	flags.StringVar(&toggleRaw, "toggle", "KEY_F6", "Enable/disable clicking when pressed (default: KEY_F6).")
	flags.StringVar(&backendRaw, "backend", "auto", "Input backend. Linux: auto|wayland|x11. Windows: auto|windows.")
	flags.StringVar(&cfg.devicePath, "device", "", "Input event device path for the hotkey, e.g. /dev/input/event4. Auto-detected if omitted.")
	flags.Float64Var(&cfg.downMS, "down-ms", 10.0, "How long each synthetic click stays down in ms (default: 10).")
	flags.BoolVar(&cfg.session.StartEnabled, "start-enabled", false, "Start clicking immediately instead of waiting for the toggle key.")
	flags.BoolVar(&cfg.listDevices, "list-devices", false, "Print available input devices and exit.")
	flags.BoolVar(&cfg.ui, "ui", true, "Start desktop GUI (Fyne) by default. Use --ui=false or --cli for terminal mode.")
	flags.BoolVar(&cliMode, "cli", false, "Force terminal mode (disables GUI).")
	flags.StringVar(&logLevelRaw, "log-level", "info", "Log verbosity (default: info). Allowed: debug, info, warning, error.")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if flags.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}
	if cliMode {
		cfg.ui = false
	}

	cfg.session.IntervalMode = autoclicker.IntervalConstant
	if randomInterval {
		cfg.session.IntervalMode = autoclicker.IntervalRandom
	}
	cfg.session.Hours = hours
	cfg.session.Minutes = minutes
	cfg.session.Seconds = seconds
	cfg.session.Milliseconds = millis
	if cfg.session.RandomMin < 0 || cfg.session.RandomMax < 0 {
		return cfg, fmt.Errorf("--random-min and --random-max must be >= 0")
	}

	button, err := autoclicker.ParseButton(buttonRaw)
	if err != nil {
		return cfg, err
	}
	cfg.session.Button = button

	clickMode, err := autoclicker.ParseClickMode(clickModeRaw)
	if err != nil {
		return cfg, err
	}
	cfg.session.ClickMode = clickMode

	if limitClicks > 0 && limitTime > 0 {
		return cfg, fmt.Errorf("--limit-clicks and --limit-time are mutually exclusive")
	}
	if limitTime < 0 {
		return cfg, fmt.Errorf("--limit-time must be >= 0")
	}
	switch {
	case limitClicks > 0:
		cfg.session.LimitMode = autoclicker.LimitClicks
		cfg.session.LimitClicks = uint32(limitClicks)
	case limitTime > 0:
		cfg.session.LimitMode = autoclicker.LimitTime
		cfg.session.LimitSeconds = limitTime
	default:
		cfg.session.LimitMode = autoclicker.LimitNone
	}

	if threshold > 255 {
		return cfg, fmt.Errorf("--color-threshold must be 0-255")
	}
	if strings.TrimSpace(cfg.colorRaw) != "" {
		gateColor, err := parseHexColor(cfg.colorRaw)
		if err != nil {
			return cfg, err
		}
		cfg.session.ColorGate = true
		cfg.session.GateColor = gateColor
		cfg.session.GateThreshold = uint8(threshold)
	}

	toggleCode, err := parseToggleCode(toggleRaw)
	if err != nil {
		return cfg, err
	}

	parsedLevel, err := parseLogLevel(logLevelRaw)
	if err != nil {
		return cfg, err
	}
	backendChoice, err := parseBackendChoice(backendRaw)
	if err != nil {
		return cfg, err
	}

	cfg.toggleCode = toggleCode
	cfg.toggleRaw = toggleRaw
	cfg.backend = backendChoice
	cfg.logLevel = parsedLevel
	return cfg, nil
}

func isPermissionError(err error) bool {
	return errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES)
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.listDevices {
		if err := listInputDevices(cfg.backend); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if cfg.ui {
		if err := runUI(cfg); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	logger := newSlogLogger(cfg.logLevel, nil)
	runtime, err := startClickerFromConfig(cfg, logger)
	if err != nil {
		if isPermissionError(err) {
			fmt.Fprintln(stderr, permissionDeniedHint())
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer runtime.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
