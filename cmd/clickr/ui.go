package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

type clickerRuntime interface {
	Service() *autoclicker.Service
	SetEnabled(enabled bool)
	IsEnabled() bool
	SetToggleCode(code uint16)
	CaptureNextKeyCode(timeout time.Duration) (uint16, error)
	Stop()
}

type clickerTheme struct {
	base fyne.Theme
}

func newClickerTheme() fyne.Theme {
	return &clickerTheme{
		base: theme.DarkTheme(),
	}
}

func (t *clickerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x0d, G: 0x10, B: 0x14, A: 0xff}
	case theme.ColorNameHeaderBackground:
		return color.NRGBA{R: 0x12, G: 0x16, B: 0x1c, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x1d, G: 0x23, B: 0x2c, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x16, G: 0x1a, B: 0x20, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x13, G: 0x18, B: 0x1f, A: 0xff}
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return color.NRGBA{R: 0x2b, G: 0x33, B: 0x40, A: 0xff}
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return color.NRGBA{R: 0x66, G: 0xa3, B: 0xff, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0x7a, G: 0xb0, B: 0xff, A: 0x66}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0x7a, G: 0xb0, B: 0xff, A: 0x22}
	case theme.ColorNamePressed:
		return color.NRGBA{R: 0x7a, G: 0xb0, B: 0xff, A: 0x40}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x66, G: 0xa3, B: 0xff, A: 0x44}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 0xff}
	case theme.ColorNamePlaceHolder:
		return color.NRGBA{R: 0xa9, G: 0xb3, B: 0xc2, A: 0xff}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xff, G: 0x82, B: 0x82, A: 0xff}
	case theme.ColorNameWarning:
		return color.NRGBA{R: 0xff, G: 0x9f, B: 0x5a, A: 0xff}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x7f, G: 0xd4, B: 0xa8, A: 0xff}
	}
	return t.base.Color(name, variant)
}

func (t *clickerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *clickerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *clickerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInputRadius:
		return 8
	}
	return t.base.Size(name)
}

func displayCodeName(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return "-"
	}
	// Slash-joined alias lists ("BTN_MOUSE/BTN_LEFT") display as the
	// last alias.
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}

	switch name {
	case "BTN_LEFT", "BTN_MOUSE":
		return "Mouse Left Button"
	case "BTN_RIGHT":
		return "Mouse Right Button"
	case "BTN_MIDDLE":
		return "Mouse Middle Button"
	case "BTN_SIDE", "BTN_EXTRA":
		return "Mouse Side Button"
	case "BTN_FORWARD":
		return "Mouse Forward Button"
	case "BTN_BACK":
		return "Mouse Back Button"
	}

	if strings.HasPrefix(name, "BTN_") {
		return "Mouse " + humanizeInputToken(strings.TrimPrefix(name, "BTN_"))
	}
	if strings.HasPrefix(name, "KEY_") {
		return "Keyboard " + humanizeInputToken(strings.TrimPrefix(name, "KEY_"))
	}
	return name
}

func humanizeInputToken(raw string) string {
	parts := strings.Split(raw, "_")
	words := make([]string, 0, len(parts)*2)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		words = append(words, humanizeInputWord(part)...)
	}
	if len(words) == 0 {
		return raw
	}
	return strings.Join(words, " ")
}

func humanizeInputWord(raw string) []string {
	token := strings.ToUpper(strings.TrimSpace(raw))
	switch token {
	case "ALT":
		return []string{"Alt"}
	case "CTRL":
		return []string{"Ctrl"}
	case "SHIFT":
		return []string{"Shift"}
	case "ESC":
		return []string{"Esc"}
	case "ENTER":
		return []string{"Enter"}
	case "SPACE":
		return []string{"Space"}
	case "TAB":
		return []string{"Tab"}
	case "CAPSLOCK":
		return []string{"Caps", "Lock"}
	case "PAGEUP":
		return []string{"Page", "Up"}
	case "PAGEDOWN":
		return []string{"Page", "Down"}
	case "BACKSPACE":
		return []string{"Backspace"}
	case "DELETE":
		return []string{"Delete"}
	case "INSERT":
		return []string{"Insert"}
	case "HOME":
		return []string{"Home"}
	case "END":
		return []string{"End"}
	case "UP":
		return []string{"Up"}
	case "DOWN":
		return []string{"Down"}
	case "LEFT":
		return []string{"Left"}
	case "RIGHT":
		return []string{"Right"}
	}

	if strings.HasPrefix(token, "LEFT") && len(token) > len("LEFT") {
		return append([]string{"Left"}, humanizeInputWord(token[len("LEFT"):])...)
	}
	if strings.HasPrefix(token, "RIGHT") && len(token) > len("RIGHT") {
		return append([]string{"Right"}, humanizeInputWord(token[len("RIGHT"):])...)
	}
	if strings.HasPrefix(token, "KP") && len(token) > len("KP") {
		return append([]string{"Keypad"}, humanizeInputWord(token[len("KP"):])...)
	}
	if strings.HasPrefix(token, "F") && len(token) > 1 && isAllDigits(token[1:]) {
		return []string{token}
	}
	if len(token) == 1 {
		return []string{token}
	}
	return []string{strings.ToUpper(token[:1]) + strings.ToLower(token[1:])}
}

func isAllDigits(value string) bool {
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

func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

func runUI(baseCfg config) error {
	fApp := app.New()
	fApp.Settings().SetTheme(newClickerTheme())

	window := fApp.NewWindow("Clickr")
	window.Resize(fyne.NewSize(860, 560))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	toggleRaw := strings.TrimSpace(baseCfg.toggleRaw)
	if toggleRaw == "" {
		toggleRaw = "KEY_F6"
	}

	newUintEntry := func(value uint) *widget.Entry {
		entry := widget.NewEntry()
		entry.SetText(strconv.FormatUint(uint64(value), 10))
		return entry
	}

	hoursEntry := newUintEntry(baseCfg.session.Hours)
	minutesEntry := newUintEntry(baseCfg.session.Minutes)
	secondsEntry := newUintEntry(baseCfg.session.Seconds)
	millisEntry := newUintEntry(baseCfg.session.Milliseconds)

	randomMinEntry := widget.NewEntry()
	randomMinEntry.SetText(strconv.FormatFloat(baseCfg.session.RandomMin, 'f', -1, 64))
	randomMaxEntry := widget.NewEntry()
	randomMaxEntry.SetText(strconv.FormatFloat(baseCfg.session.RandomMax, 'f', -1, 64))

	intervalModeRadio := widget.NewRadioGroup([]string{"Constant", "Random"}, nil)
	if baseCfg.session.IntervalMode == autoclicker.IntervalRandom {
		intervalModeRadio.SetSelected("Random")
	} else {
		intervalModeRadio.SetSelected("Constant")
	}

	buttonSelect := widget.NewSelect([]string{"Left", "Middle", "Right"}, nil)
	switch baseCfg.session.Button {
	case autoclicker.ButtonMiddle:
		buttonSelect.SetSelected("Middle")
	case autoclicker.ButtonRight:
		buttonSelect.SetSelected("Right")
	default:
		buttonSelect.SetSelected("Left")
	}

	clickModeSelect := widget.NewSelect([]string{"Single", "Double", "Toggle"}, nil)
	switch baseCfg.session.ClickMode {
	case autoclicker.ClickDouble:
		clickModeSelect.SetSelected("Double")
	case autoclicker.ClickToggle:
		clickModeSelect.SetSelected("Toggle")
	default:
		clickModeSelect.SetSelected("Single")
	}

	limitSelect := widget.NewSelect([]string{"None", "Clicks", "Time (seconds)"}, nil)
	limitValueEntry := widget.NewEntry()
	switch baseCfg.session.LimitMode {
	case autoclicker.LimitClicks:
		limitSelect.SetSelected("Clicks")
		limitValueEntry.SetText(strconv.FormatUint(uint64(baseCfg.session.LimitClicks), 10))
	case autoclicker.LimitTime:
		limitSelect.SetSelected("Time (seconds)")
		limitValueEntry.SetText(strconv.FormatFloat(baseCfg.session.LimitSeconds, 'f', -1, 64))
	default:
		limitSelect.SetSelected("None")
		limitValueEntry.SetText("0")
	}

	colorGateCheck := widget.NewCheck("Only click near a target color", nil)
	colorGateCheck.SetChecked(baseCfg.session.ColorGate)
	colorEntry := widget.NewEntry()
	colorEntry.SetPlaceHolder("#RRGGBB")
	if baseCfg.session.ColorGate {
		colorEntry.SetText(formatHexColor(baseCfg.session.GateColor))
	}
	thresholdSlider := widget.NewSlider(0, 255)
	thresholdSlider.Step = 1
	thresholdSlider.SetValue(float64(baseCfg.session.GateThreshold))
	thresholdValue := widget.NewLabel("")
	thresholdValue.Alignment = fyne.TextAlignTrailing
	thresholdValue.TextStyle = fyne.TextStyle{Bold: true}
	updateThresholdText := func() {
		thresholdValue.SetText(strconv.Itoa(int(thresholdSlider.Value)))
	}
	updateThresholdText()
	thresholdSlider.OnChanged = func(float64) { updateThresholdText() }

	toggleCaptureBtn := widget.NewButton(displayCodeName(toggleRaw), nil)
	toggleCaptureBtn.Importance = widget.MediumImportance

	errorText := canvas.NewText("", nil)
	errorText.Color = theme.Color(theme.ColorNameError)
	statsText := widget.NewLabel("Time: 00:00:00   Clicks: 0")
	statsText.TextStyle = fyne.TextStyle{Bold: true}
	logGrid := widget.NewTextGrid()
	logGrid.SetText("")
	logScroll := container.NewVScroll(logGrid)
	logScroll.SetMinSize(fyne.NewSize(0, 150))

	const maxUILogLines = 50
	var logMu sync.Mutex
	logLines := make([]string, 0, maxUILogLines)
	debugLogs := debugLogsEnabled()
	appendLogLine := func(line string) {
		if !debugLogs {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		logMu.Lock()
		logLines = append(logLines, line)
		if len(logLines) > maxUILogLines {
			logLines = logLines[len(logLines)-maxUILogLines:]
		}
		logText := strings.Join(logLines, "\n")
		logMu.Unlock()

		fyne.Do(func() {
			logGrid.SetText(logText)
			logScroll.ScrollToBottom()
		})
	}

	enableToggleBtn := widget.NewButton("Disabled", nil)
	enableToggleBtn.Importance = widget.HighImportance
	applyBtn := widget.NewButton("Apply Settings", nil)
	initProgress := widget.NewProgressBarInfinite()
	initProgress.Hide()

	setEnabledStateUI := func(enabled bool) {
		if enabled {
			enableToggleBtn.SetText("Enabled")
		} else {
			enableToggleBtn.SetText("Disabled")
		}
	}

	var stateMu sync.Mutex
	currentCfg := baseCfg
	var runningClicker clickerRuntime
	var runtimeStop chan struct{}
	initializing := false

	getState := func() (clickerRuntime, config, bool) {
		stateMu.Lock()
		defer stateMu.Unlock()
		return runningClicker, currentCfg, initializing
	}

	setInitializing := func(v bool) {
		stateMu.Lock()
		initializing = v
		stateMu.Unlock()
	}

	setCurrentCfg := func(cfg config) {
		stateMu.Lock()
		currentCfg = cfg
		stateMu.Unlock()
	}

	setInitializingUI := func(v bool) {
		if v {
			initProgress.Show()
			return
		}
		initProgress.Hide()
	}

	stopRuntime := func() {
		stateMu.Lock()
		clicker := runningClicker
		stop := runtimeStop
		runningClicker = nil
		runtimeStop = nil
		stateMu.Unlock()

		if stop != nil {
			close(stop)
		}
		if clicker != nil {
			clicker.Stop()
		}
	}

	runStatsLoop := func(c clickerRuntime, stopCh <-chan struct{}) {
		stateTicker := time.NewTicker(150 * time.Millisecond)
		defer stateTicker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-stateTicker.C:
				svc := c.Service()
				if svc == nil {
					continue
				}
				stats := svc.Stats()
				line := fmt.Sprintf("Time: 00:00:00   Clicks: %d", stats.TotalClicks)
				if stats.Enabled {
					line = fmt.Sprintf("Time: %s   Clicks: %d", formatElapsed(time.Since(stats.StartTime)), stats.TotalClicks)
				}
				if stats.ButtonPressed {
					line += "   [holding]"
				}
				errLine := ""
				if stats.LastErr != nil {
					errLine = "Clicking stopped: " + stats.LastErr.Error()
				}
				fyne.Do(func() {
					statsText.SetText(line)
					setEnabledStateUI(stats.Enabled)
					if errLine != "" && errorText.Text != errLine {
						errorText.Text = errLine
						errorText.Refresh()
					}
				})
			}
		}
	}

	startRuntime := func(cfg config) error {
		logger := newSlogLogger(cfg.logLevel, appendLogLine)
		clicker, err := startClickerFromConfig(cfg, logger)
		if err != nil {
			return err
		}

		stop := make(chan struct{})
		stateMu.Lock()
		runningClicker = clicker
		runtimeStop = stop
		currentCfg = cfg
		stateMu.Unlock()

		go runStatsLoop(clicker, stop)

		fyne.Do(func() {
			errorText.Text = ""
			errorText.Refresh()
			setEnabledStateUI(clicker.IsEnabled())
			toggleCaptureBtn.SetText(displayCodeName(cfg.toggleRaw))
		})
		return nil
	}

	runRuntimeTaskAsync := func(onDone func() error) {
		_, _, init := getState()
		if init {
			return
		}
		setInitializing(true)
		fyne.Do(func() {
			errorText.Text = ""
			errorText.Refresh()
			setInitializingUI(true)
		})

		go func() {
			err := onDone()
			fyne.Do(func() {
				setInitializing(false)
				setInitializingUI(false)
				if err != nil {
					switch {
					case isPermissionError(err):
						errorText.Text = permissionDeniedHint()
					case errors.Is(err, syscall.EBUSY) || strings.Contains(strings.ToLower(err.Error()), "device or resource busy"):
						errorText.Text = "Input device is in use by another app. Close the other app and try again."
					default:
						errorText.Text = err.Error()
					}
					errorText.Refresh()
					appendLogLine("ERROR " + errorText.Text)
					return
				}

				errorText.Text = ""
				errorText.Refresh()
				if clicker, _, _ := getState(); clicker != nil {
					setEnabledStateUI(clicker.IsEnabled())
				}
			})
		}()
	}

	parseUintField := func(label string, entry *widget.Entry) (uint, error) {
		value, err := strconv.ParseUint(strings.TrimSpace(entry.Text), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%s must be a whole number", label)
		}
		return uint(value), nil
	}

	parseFloatField := func(label string, entry *widget.Entry) (float64, error) {
		value, err := strconv.ParseFloat(strings.TrimSpace(entry.Text), 64)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%s must be a number >= 0", label)
		}
		return value, nil
	}

	buildCfgFromUI := func() (config, error) {
		_, cfg, _ := getState()

		session := cfg.session
		session.IntervalMode = autoclicker.IntervalConstant
		if intervalModeRadio.Selected == "Random" {
			session.IntervalMode = autoclicker.IntervalRandom
		}

		var err error
		if session.Hours, err = parseUintField("Hours", hoursEntry); err != nil {
			return cfg, err
		}
		if session.Minutes, err = parseUintField("Minutes", minutesEntry); err != nil {
			return cfg, err
		}
		if session.Seconds, err = parseUintField("Seconds", secondsEntry); err != nil {
			return cfg, err
		}
		if session.Milliseconds, err = parseUintField("Milliseconds", millisEntry); err != nil {
			return cfg, err
		}
		if session.RandomMin, err = parseFloatField("Random min", randomMinEntry); err != nil {
			return cfg, err
		}
		if session.RandomMax, err = parseFloatField("Random max", randomMaxEntry); err != nil {
			return cfg, err
		}

		switch buttonSelect.Selected {
		case "Middle":
			session.Button = autoclicker.ButtonMiddle
		case "Right":
			session.Button = autoclicker.ButtonRight
		default:
			session.Button = autoclicker.ButtonLeft
		}

		switch clickModeSelect.Selected {
		case "Double":
			session.ClickMode = autoclicker.ClickDouble
		case "Toggle":
			session.ClickMode = autoclicker.ClickToggle
		default:
			session.ClickMode = autoclicker.ClickSingle
		}

		switch limitSelect.Selected {
		case "Clicks":
			limit, err := parseUintField("Click limit", limitValueEntry)
			if err != nil {
				return cfg, err
			}
			session.LimitMode = autoclicker.LimitClicks
			session.LimitClicks = uint32(limit)
		case "Time (seconds)":
			limit, err := parseFloatField("Time limit", limitValueEntry)
			if err != nil {
				return cfg, err
			}
			session.LimitMode = autoclicker.LimitTime
			session.LimitSeconds = limit
		default:
			session.LimitMode = autoclicker.LimitNone
		}

		session.ColorGate = colorGateCheck.Checked
		if session.ColorGate {
			gateColor, err := parseHexColor(colorEntry.Text)
			if err != nil {
				return cfg, err
			}
			session.GateColor = gateColor
			session.GateThreshold = uint8(thresholdSlider.Value)
			cfg.colorRaw = formatHexColor(gateColor)
		}

		toggle := strings.TrimSpace(cfg.toggleRaw)
		if toggle == "" {
			toggle = "KEY_F6"
		}
		toggleCode, err := parseToggleCode(toggle)
		if err != nil {
			return cfg, err
		}

		cfg.toggleRaw = toggle
		cfg.toggleCode = toggleCode
		cfg.session = session
		return cfg, nil
	}

	enableToggleBtn.OnTapped = func() {
		clicker, _, _ := getState()
		if clicker == nil {
			return
		}
		clicker.SetEnabled(!clicker.IsEnabled())
		setEnabledStateUI(clicker.IsEnabled())
	}

	applyBtn.OnTapped = func() {
		cfg, err := buildCfgFromUI()
		if err != nil {
			errorText.Text = err.Error()
			errorText.Refresh()
			appendLogLine("ERROR " + err.Error())
			return
		}

		appendLogLine("INFO Applying settings")
		runRuntimeTaskAsync(func() error {
			clicker, prevCfg, _ := getState()
			if clicker != nil {
				cfg.session.StartEnabled = clicker.IsEnabled()
			}

			stopRuntime()
			if err := startRuntime(cfg); err != nil {
				_ = startRuntime(prevCfg)
				return err
			}
			appendLogLine("INFO Settings applied")
			return nil
		})
	}

	toggleCaptureBtn.OnTapped = func() {
		clicker, _, _ := getState()
		if clicker == nil {
			return
		}

		appendLogLine("INFO Waiting for toggle input")
		runRuntimeTaskAsync(func() error {
			prevClicker, prevCfg, _ := getState()
			if prevClicker == nil {
				return fmt.Errorf("runtime is not initialized")
			}

			prevToggleRaw := prevCfg.toggleRaw
			capturedFromRuntime := true
			code, err := prevClicker.CaptureNextKeyCode(5 * time.Second)
			if err != nil {
				capturedFromRuntime = false
				// Fallback to global capture when the runtime cannot observe
				// the desired key/button.
				stopRuntime()
				code, err = captureNextCode(prevCfg.backend, "", 10*time.Second)
				if err != nil {
					_ = startRuntime(prevCfg)
					return err
				}
			}

			cfg := prevCfg
			cfg.toggleCode = code
			cfg.toggleRaw = formatCodeName(code)

			fyne.DoAndWait(func() {
				toggleCaptureBtn.SetText(displayCodeName(cfg.toggleRaw))
			})

			// Fast path: capture from the live runtime, update in place.
			if capturedFromRuntime {
				prevClicker.SetToggleCode(code)
				setCurrentCfg(cfg)
				appendLogLine("INFO Captured toggle " + cfg.toggleRaw)
				return nil
			}

			cfg.session.StartEnabled = false
			if err := startRuntime(cfg); err != nil {
				_ = startRuntime(prevCfg)
				fyne.DoAndWait(func() {
					toggleCaptureBtn.SetText(displayCodeName(prevToggleRaw))
				})
				return err
			}

			appendLogLine("INFO Captured toggle " + cfg.toggleRaw)
			return nil
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var closeOnce sync.Once
	cleanup := func() {
		closeOnce.Do(func() {
			stopRuntime()
		})
	}

	requestQuit := func() {
		fyne.Do(func() {
			cleanup()
			if currentApp := fyne.CurrentApp(); currentApp != nil {
				currentApp.Quit()
				return
			}
			window.SetCloseIntercept(nil)
			window.Close()
		})
	}

	go func() {
		<-sigCh
		requestQuit()
	}()

	// Some GUI backends can leave Ctrl+C as raw ETX byte instead of SIGINT.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 && buf[0] == 3 {
				requestQuit()
				return
			}
		}
	}()

	window.SetCloseIntercept(func() {
		cleanup()
		if currentApp := fyne.CurrentApp(); currentApp != nil {
			currentApp.Quit()
			return
		}
		window.SetCloseIntercept(nil)
		window.Close()
	})

	titleText := canvas.NewText("CLICKR", color.NRGBA{R: 0x75, G: 0xaa, B: 0xff, A: 0xff})
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.TextSize = 30

	accentLine := canvas.NewRectangle(color.NRGBA{R: 0x66, G: 0xa3, B: 0xff, A: 0xff})
	accentLine.SetMinSize(fyne.NewSize(220, 3))

	constantRow := container.NewGridWithColumns(4,
		container.NewVBox(widget.NewLabel("Hours"), hoursEntry),
		container.NewVBox(widget.NewLabel("Minutes"), minutesEntry),
		container.NewVBox(widget.NewLabel("Seconds"), secondsEntry),
		container.NewVBox(widget.NewLabel("Millis"), millisEntry),
	)
	randomRow := container.NewGridWithColumns(2,
		container.NewVBox(widget.NewLabel("Min (s)"), randomMinEntry),
		container.NewVBox(widget.NewLabel("Max (s)"), randomMaxEntry),
	)
	intervalControls := container.NewVBox(intervalModeRadio, constantRow, randomRow)

	actionControls := widget.NewForm(
		widget.NewFormItem("Button", buttonSelect),
		widget.NewFormItem("Mode", clickModeSelect),
	)
	limitControls := widget.NewForm(
		widget.NewFormItem("Limit", limitSelect),
		widget.NewFormItem("Value", limitValueEntry),
	)
	thresholdHead := container.NewBorder(nil, nil, widget.NewLabel("Tolerance"), thresholdValue, nil)
	colorControls := container.NewVBox(
		colorGateCheck,
		colorEntry,
		thresholdHead,
		thresholdSlider,
	)
	keybindControls := widget.NewForm(
		widget.NewFormItem("Toggle", toggleCaptureBtn),
	)

	intervalCard := widget.NewCard("Interval", "", intervalControls)
	actionCard := widget.NewCard("Action", "", actionControls)
	limitCard := widget.NewCard("Limit", "", limitControls)
	colorCard := widget.NewCard("Color Gate", "", colorControls)
	keybindCard := widget.NewCard("Keybind", "", keybindControls)

	leftColumn := container.NewVBox(intervalCard, actionCard)
	rightColumn := container.NewVBox(limitCard, colorCard, keybindCard)
	controlsRow := container.NewGridWithColumns(2, leftColumn, rightColumn)

	mainContent := container.NewVBox(
		titleText,
		accentLine,
		controlsRow,
		statsText,
		errorText,
		initProgress,
		container.NewGridWithColumns(2, applyBtn, enableToggleBtn),
	)
	mainPanel := container.NewPadded(mainContent)

	var rootContent fyne.CanvasObject = mainPanel
	if debugLogs {
		logsCard := widget.NewCard("Logs", "", logScroll)
		split := container.NewVSplit(mainPanel, logsCard)
		split.SetOffset(0.68)
		rootContent = split
	}

	setInitializingUI(true)
	appendLogLine("INFO Initializing input devices...")
	runRuntimeTaskAsync(func() error {
		if err := startRuntime(baseCfg); err != nil {
			return err
		}
		appendLogLine("INFO Initialization complete")
		return nil
	})

	window.SetContent(rootContent)
	window.ShowAndRun()
	cleanup()
	return nil
}
