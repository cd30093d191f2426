package wininput

import (
	"time"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

type RuntimeConfig struct {
	ToggleCode uint16
	ClickDown  time.Duration
	Session    autoclicker.Config
}

type DeviceInfo struct {
	Path      string
	Name      string
	IsVirtual bool
	IsPointer bool
}
