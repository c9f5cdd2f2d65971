package field

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/neural-background/internal/config"
)

var (
	teal  = mustHex(config.Teal)
	blue  = mustHex(config.Blue)
	green = mustHex(config.Green)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("field: bad palette colour %q: %v", s, err))
	}
	return c
}

// ColorStop is one stop of a gradient. Alpha may be built outside [0, 1];
// At clamps every stop to [0, 1] before blending between stops.
type ColorStop struct {
	Offset float64
	Color  colorful.Color
	Alpha  float64
}

// Stops is an ordered list of colour stops.
type Stops []ColorStop

// At samples the gradient at t in [0, 1]. Values before the first stop or past
// the last take that stop's colour.
func (s Stops) At(t float64) (colorful.Color, float64) {
	if len(s) == 0 {
		return colorful.Color{}, 0
	}
	if t <= s[0].Offset {
		return s[0].Color, clamp01(s[0].Alpha)
	}
	for i := 1; i < len(s); i++ {
		a, b := s[i-1], s[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		aa, ba := clamp01(a.Alpha), clamp01(b.Alpha)
		if span <= 0 {
			return b.Color, ba
		}
		f := (t - a.Offset) / span
		return a.Color.BlendRgb(b.Color, f), aa + (ba-aa)*f
	}
	last := s[len(s)-1]
	return last.Color, clamp01(last.Alpha)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// RadialGradient runs from the centre (offset 0) to Radius (offset 1).
type RadialGradient struct {
	CX, CY float64
	Radius float64
	Stops  Stops
}

// At returns the paint at distance d from the centre.
func (g RadialGradient) At(d float64) (colorful.Color, float64) {
	if g.Radius <= 0 {
		return g.Stops.At(1)
	}
	return g.Stops.At(d / g.Radius)
}

// LinearGradient runs from (X0, Y0) at offset 0 to (X1, Y1) at offset 1.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  Stops
}

// At projects (x, y) onto the gradient axis and samples there.
func (g LinearGradient) At(x, y float64) (colorful.Color, float64) {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return g.Stops.At(0)
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	return g.Stops.At(t)
}

func particleStops(opacity float64) Stops {
	return Stops{
		{Offset: 0, Color: teal, Alpha: opacity * 1.8},
		{Offset: 0.6, Color: blue, Alpha: opacity * 1.4},
		{Offset: 0.85, Color: green, Alpha: opacity * 0.8},
		{Offset: 1, Color: blue, Alpha: 0},
	}
}

func lineStops(opacity float64) Stops {
	return Stops{
		{Offset: 0, Color: teal, Alpha: opacity * 1.2},
		{Offset: 0.5, Color: blue, Alpha: opacity * 1.4},
		{Offset: 1, Color: green, Alpha: opacity * 1.2},
	}
}
