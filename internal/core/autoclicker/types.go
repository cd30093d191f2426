package autoclicker

import "fmt"

type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

func ParseButton(value string) (Button, error) {
	switch value {
	case "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown button %q (expected left|middle|right)", value)
	}
}

type ClickMode int

const (
	// ClickSingle performs a full press-and-release per fire.
	ClickSingle ClickMode = iota
	// ClickDouble performs two consecutive press-and-release pairs per fire.
	ClickDouble
	// ClickToggle alternates between holding the button down and releasing it.
	ClickToggle
)

func (m ClickMode) String() string {
	switch m {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	case ClickToggle:
		return "toggle"
	default:
		return fmt.Sprintf("clickmode(%d)", int(m))
	}
}

func ParseClickMode(value string) (ClickMode, error) {
	switch value {
	case "single":
		return ClickSingle, nil
	case "double":
		return ClickDouble, nil
	case "toggle":
		return ClickToggle, nil
	default:
		return 0, fmt.Errorf("unknown click mode %q (expected single|double|toggle)", value)
	}
}

type IntervalMode int

const (
	IntervalConstant IntervalMode = iota
	IntervalRandom
)

func (m IntervalMode) String() string {
	switch m {
	case IntervalConstant:
		return "constant"
	case IntervalRandom:
		return "random"
	default:
		return fmt.Sprintf("intervalmode(%d)", int(m))
	}
}

type LimitMode int

const (
	LimitNone LimitMode = iota
	LimitClicks
	LimitTime
)

func (m LimitMode) String() string {
	switch m {
	case LimitNone:
		return "none"
	case LimitClicks:
		return "clicks"
	case LimitTime:
		return "time"
	default:
		return fmt.Sprintf("limitmode(%d)", int(m))
	}
}

// RGB is a screen color on the 0-255 scale per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

type Config struct {
	IntervalMode IntervalMode
	Hours        uint
	Minutes      uint
	Seconds      uint
	Milliseconds uint

	// Random interval bounds in fractional seconds. Clamped during
	// normalization: RandomMax to [0, 3600], RandomMin to [0, RandomMax].
	RandomMin float64
	RandomMax float64

	Button    Button
	ClickMode ClickMode

	LimitMode    LimitMode
	LimitClicks  uint32
	LimitSeconds float64

	ColorGate     bool
	GateColor     RGB
	GateThreshold uint8

	// GatePredicate is an optional extra firing condition evaluated each
	// tick (window focus, hover exclusion, ...). Nil means always allowed.
	GatePredicate func() bool

	StartEnabled bool
}

// Pointer injects pointer-button actions into the platform.
type Pointer interface {
	Press(button Button) error
	Release(button Button) error
	Click(button Button) error
}

// Sampler reads the screen color under the current pointer position.
type Sampler interface {
	SampleCursorColor() (RGB, error)
}

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
