package field

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/neural-background/internal/config"
)

// Particle is a single point of the field. Pos is pulled around by the pointer
// and relaxes back to Base.
type Particle struct {
	Pos   r2.Vec
	Base  r2.Vec
	Drift r2.Vec // not read by Update

	Size       float64
	Density    float64
	PulsePhase float64
	FloatPhase float64
	Opacity    float64
}

func newParticle(rng *rand.Rand, width, height float64) Particle {
	size := rng.Float64()*config.SizeRange + config.MinSize
	pos := r2.Vec{
		X: rng.Float64()*(width-size*2) + size,
		Y: rng.Float64()*(height-size*2) + size,
	}
	return Particle{
		Pos:  pos,
		Base: pos,
		Drift: r2.Vec{
			X: rng.Float64()*config.DriftRange - config.DriftRange/2,
			Y: rng.Float64()*config.DriftRange - config.DriftRange/2,
		},
		Size:       size,
		Density:    rng.Float64()*config.DensityRange + config.MinDensity,
		PulsePhase: rng.Float64() * 2 * math.Pi,
		FloatPhase: rng.Float64() * 2 * math.Pi,
		Opacity:    rng.Float64()*config.OpacityRange + config.MinOpacity,
	}
}

// ParticleCount is the population for a surface of the given size.
func ParticleCount(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	n := int(math.Floor(width * height / config.AreaPerParticle))
	return min(n, config.MaxParticles)
}

// PointerRadius is the interaction radius for a surface of the given size.
func PointerRadius(width, height float64) float64 {
	return (height / 100) * (width / 100)
}
