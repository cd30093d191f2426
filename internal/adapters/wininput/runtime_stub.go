//go:build !windows

package wininput

import (
	"fmt"
	"time"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

type Runtime struct{}

func NewRuntime(cfg RuntimeConfig, logger autoclicker.Logger) (*Runtime, error) {
	return nil, fmt.Errorf("windows input runtime is only available on Windows")
}

func (r *Runtime) Start() error {
	return fmt.Errorf("windows input runtime is only available on Windows")
}

func (r *Runtime) Stop() {}

func (r *Runtime) Service() *autoclicker.Service {
	return nil
}

func (r *Runtime) SetEnabled(enabled bool) {}

func (r *Runtime) IsEnabled() bool {
	return false
}

func (r *Runtime) ToggleCode() uint16 {
	return 0
}

func (r *Runtime) SetToggleCode(code uint16) {}

func (r *Runtime) CaptureNextKeyCode(timeout time.Duration) (uint16, error) {
	return 0, fmt.Errorf("windows input runtime is only available on Windows")
}

func ListInputDevices() ([]DeviceInfo, error) {
	return nil, fmt.Errorf("windows input runtime is only available on Windows")
}

func CaptureNextKeyCode(timeout time.Duration) (uint16, error) {
	return 0, fmt.Errorf("windows input runtime is only available on Windows")
}
