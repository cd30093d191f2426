package autoclicker

import "time"

// limitReached reports whether the session must stop before performing the
// next action. Checked strictly before the gate, so an exhausted session
// never fires an extra gated action.
func (c Config) limitReached(clicks uint32, started time.Time, now time.Time) bool {
	switch c.LimitMode {
	case LimitClicks:
		return clicks >= c.LimitClicks
	case LimitTime:
		return now.Sub(started).Seconds() >= c.LimitSeconds
	default:
		return false
	}
}
