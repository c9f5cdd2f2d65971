package game

import "github.com/lucasb-eyer/go-colorful"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// vertexColor converts a gradient sample into straight-alpha vertex colour
// components.
func vertexColor(c colorful.Color, alpha float64) (r, g, b, a float32) {
	c = c.Clamped()
	return float32(c.R), float32(c.G), float32(c.B), float32(clamp01(alpha))
}
