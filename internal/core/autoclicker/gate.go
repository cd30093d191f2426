package autoclicker

import "math"

// maxColorDistance is the euclidean distance between black and white in RGB
// space: sqrt(255^2 * 3).
const maxColorDistance = 441.672956

// ColorDistance returns the normalized euclidean distance between two colors,
// in [0, 1]. 0 means identical, 1 means black vs white.
func ColorDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr+dg*dg+db*db) / maxColorDistance
}

// gateAllows decides whether a tick may fire given the most recent screen
// sample. The threshold is configured on the 0-255 UI scale and normalized
// here.
func (c Config) gateAllows(sampled RGB) bool {
	if !c.ColorGate {
		return true
	}
	return ColorDistance(sampled, c.GateColor) <= float64(c.GateThreshold)/255
}
