// Package field implements the animated particle background: a population of
// particles pushed away by the pointer, joined by fading connection lines and
// redrawn every frame with a slow breathing scale.
package field

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/neural-background/internal/config"
)

// Pointer is the current pointer position and interaction radius.
type Pointer struct {
	X, Y   float64
	Radius float64
}

// Field owns the particle population, pointer state and the frame loop.
// All methods must be called from the thread that runs the scheduler.
type Field struct {
	surface  Surface
	viewport Viewport
	events   EventSource
	frames   FrameScheduler

	rng *rand.Rand
	log *slog.Logger

	width, height float64
	particles     []Particle
	pointer       Pointer

	frame     FrameHandle
	listeners []ListenerID
	stopped   bool
}

type Option func(*Field)

// WithRand sets the random source used for particle generation.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Field) { f.log = l }
}

// New builds a running field: it sizes the surface, generates particles,
// registers its listeners and requests the first frame.
func New(surface Surface, viewport Viewport, events EventSource, frames FrameScheduler, opts ...Option) *Field {
	f := &Field{
		surface:  surface,
		viewport: viewport,
		events:   events,
		frames:   frames,
		pointer: Pointer{
			X:      config.PointerSentinel,
			Y:      config.PointerSentinel,
			Radius: config.DefaultPointerRadius,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		seed := uint64(time.Now().UnixNano())
		f.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if f.log == nil {
		f.log = slog.Default()
	}

	f.Initialize()
	f.bindEvents()
	f.frame = f.frames.RequestFrame(f.Animate)
	return f
}

func (f *Field) bindEvents() {
	f.listeners = append(f.listeners,
		f.events.AddListener(EventResize, func(Event) { f.Resize() }),
		f.events.AddListener(EventPointerMove, func(e Event) {
			f.pointer.X = e.X
			f.pointer.Y = e.Y
		}),
		f.events.AddListener(EventPointerLeave, func(Event) {
			f.pointer.X = config.PointerSentinel
			f.pointer.Y = config.PointerSentinel
		}),
	)
}

// Initialize sizes the surface to the viewport and regenerates the particles.
func (f *Field) Initialize() {
	f.Resize()
}

// Resize re-reads the viewport, recomputes the pointer radius and regenerates
// the particles.
func (f *Field) Resize() {
	w, h := f.viewport.ViewportSize()
	f.surface.SetSize(w, h)
	f.width, f.height = float64(w), float64(h)
	f.pointer.Radius = PointerRadius(f.width, f.height)
	f.RegenerateParticles()
}

// RegenerateParticles replaces the whole population.
func (f *Field) RegenerateParticles() {
	n := ParticleCount(f.width, f.height)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = newParticle(f.rng, f.width, f.height)
	}
	f.particles = particles

	f.log.Debug("particles regenerated",
		"width", f.width,
		"height", f.height,
		"count", n,
		"pointer_radius", f.pointer.Radius,
	)
}

// UpdateParticles pushes particles inside the pointer radius away from the
// pointer and eases the rest back toward their base positions.
func (f *Field) UpdateParticles() {
	mouse := r2.Vec{X: f.pointer.X, Y: f.pointer.Y}
	radius := f.pointer.Radius

	for i := range f.particles {
		p := &f.particles[i]
		d := r2.Sub(mouse, p.Pos)
		dist := r2.Norm(d)

		if dist < radius && dist > 0 {
			force := (radius - dist) / radius
			push := r2.Scale(force*p.Density*config.ForceFactor, r2.Unit(d))
			p.Pos = r2.Sub(p.Pos, push)
			continue
		}

		if p.Pos.X != p.Base.X {
			p.Pos.X -= (p.Pos.X - p.Base.X) * config.ReturnFactor
		}
		if p.Pos.Y != p.Base.Y {
			p.Pos.Y -= (p.Pos.Y - p.Base.Y) * config.ReturnFactor
		}
	}
}

// DrawParticle renders p at time ms. The drawn position floats a few pixels
// around p.Pos; p itself is not modified.
func (f *Field) DrawParticle(p Particle, ms float64) {
	pulse := math.Sin(ms*config.PulseSpeed+p.PulsePhase)*0.3 + 0.7
	size := p.Size * pulse

	x := p.Pos.X + math.Sin(ms*config.FloatSpeedX+p.FloatPhase)*3
	y := p.Pos.Y + math.Cos(ms*config.FloatSpeedY+p.FloatPhase*0.8)*2

	flicker := math.Sin(ms*config.FlickerSpeed+p.PulsePhase*0.5)*0.15 + 0.85
	opacity := p.Opacity * flicker

	f.surface.FillCircle(x, y, size, RadialGradient{
		CX:     x,
		CY:     y,
		Radius: size * 1.5,
		Stops:  particleStops(opacity),
	})
}

// ConnectDistance is the distance below which two particles get a line.
func (f *Field) ConnectDistance() float64 {
	return math.Min(f.width/config.ConnectWidthDivide, config.MaxConnectDistance)
}

// ConnectParticles draws a line between every pair of particles closer than
// ConnectDistance.
func (f *Field) ConnectParticles(ms float64) {
	breathe := math.Sin(ms*config.ConnectSpeed)*0.1 + 0.9
	limit := f.ConnectDistance()

	for a := 0; a < len(f.particles); a++ {
		pa := f.particles[a].Pos
		for b := a + 1; b < len(f.particles); b++ {
			pb := f.particles[b].Pos
			dist := r2.Norm(r2.Sub(pa, pb))
			if dist >= limit {
				continue
			}

			opacity := (1 - dist/config.MaxConnectDistance) * config.LineBaseOpacity * breathe
			flutter := math.Sin(ms*config.LineFlutterRate+dist*0.01)*0.1 + 0.9

			f.surface.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, config.LineWidth, LinearGradient{
				X0:    pa.X,
				Y0:    pa.Y,
				X1:    pb.X,
				Y1:    pb.Y,
				Stops: lineStops(opacity * flutter),
			})
		}
	}
}

// Animate is the per-frame body. It draws one frame and schedules the next
// unless the field has been destroyed.
func (f *Field) Animate(ms float64) {
	if f.stopped {
		return
	}
	f.frame = 0

	f.surface.ClearRect(0, 0, f.width, f.height)

	scale := math.Sin(ms*config.BreatheSpeed)*config.BreatheAmount + 1
	cx, cy := f.width/2, f.height/2
	f.surface.Save()
	f.surface.Translate(cx, cy)
	f.surface.Scale(scale, scale)
	f.surface.Translate(-cx, -cy)

	f.UpdateParticles()
	for _, p := range f.particles {
		f.DrawParticle(p, ms)
	}
	f.ConnectParticles(ms)

	f.surface.Restore()

	f.frame = f.frames.RequestFrame(f.Animate)
}

// Destroy cancels the pending frame and removes the listeners registered by
// New. It is safe to call more than once.
func (f *Field) Destroy() {
	if f.stopped {
		return
	}
	f.stopped = true

	if h := f.frame; h != 0 {
		f.frame = 0
		f.frames.CancelFrame(h)
	}
	for _, id := range f.listeners {
		f.events.RemoveListener(id)
	}
	f.listeners = nil

	f.log.Info("particle field stopped", "particles", len(f.particles))
}

// Running reports whether frames are still being scheduled.
func (f *Field) Running() bool { return !f.stopped }

// Particles returns the current population. The slice is replaced, not
// mutated, by RegenerateParticles.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Pointer() Pointer { return f.pointer }

func (f *Field) Size() (w, h float64) { return f.width, f.height }
