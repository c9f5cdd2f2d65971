package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/neural-background/internal/config"
	"github.com/iburimskiy/neural-background/internal/field"
	"github.com/iburimskiy/neural-background/internal/loop"
)

// Scene is the animation driven by the host.
type Scene interface {
	Destroy()
	Running() bool
	Particles() []field.Particle
}

type Options struct {
	Width  int
	Height int
	Debug  bool
	Logger *slog.Logger
}

// Game hosts a Scene inside ebiten. It turns window and cursor changes into
// field events and runs scheduled frames from Draw.
type Game struct {
	frames *loop.FrameQueue
	bus    *loop.Bus
	tap    *loop.FrameTap
	canvas *canvas
	scene  Scene
	log    *slog.Logger

	width  int
	height int

	// pointer tracking
	cursorX      int
	cursorY      int
	cursorInside bool

	start      time.Time
	lastFrame  time.Time
	lastFPSLog time.Time
	debug      bool
}

func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	return &Game{
		frames:     loop.NewFrameQueue(),
		bus:        loop.NewBus(),
		tap:        loop.NewFrameTap(config.FrameTapSize),
		canvas:     newCanvas(),
		log:        logger,
		width:      opts.Width,
		height:     opts.Height,
		start:      now,
		lastFPSLog: now,
		debug:      opts.Debug,
	}
}

func (g *Game) Surface() field.Surface { return g.canvas }
func (g *Game) Events() field.EventSource { return g.bus }
func (g *Game) Frames() field.FrameScheduler { return g.frames }

func (g *Game) ViewportSize() (int, int) { return g.width, g.height }

// Attach sets the scene the host drives and tears down on quit.
func (g *Game) Attach(s Scene) { g.scene = s }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if g.scene != nil {
			g.scene.Destroy()
		}
	}
	if g.scene == nil || (!g.scene.Running() && g.frames.Pending() == 0) {
		return ebiten.Termination
	}

	g.pollPointer()
	return nil
}

func (g *Game) pollPointer() {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height

	switch {
	case inside && (!g.cursorInside || x != g.cursorX || y != g.cursorY):
		g.bus.Dispatch(field.Event{Kind: field.EventPointerMove, X: float64(x), Y: float64(y)})
	case !inside && g.cursorInside:
		g.bus.Dispatch(field.Event{Kind: field.EventPointerLeave})
	}
	g.cursorX, g.cursorY, g.cursorInside = x, y, inside
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()

	g.canvas.bind(screen)
	g.frames.Run(float64(now.Sub(g.start)) / float64(time.Millisecond))
	g.canvas.bind(nil)

	if !g.lastFrame.IsZero() {
		g.tap.Record(now.Sub(g.lastFrame))
	}
	g.lastFrame = now

	if now.Sub(g.lastFPSLog) >= config.FPSLogInterval*time.Second {
		g.lastFPSLog = now
		g.log.Debug("frame rate",
			"fps", fmt.Sprintf("%.1f", g.tap.FPS()),
			"tps", fmt.Sprintf("%.1f", ebiten.ActualTPS()),
		)
	}

	if g.debug && g.scene != nil {
		status := fmt.Sprintf("FPS: %.1f  particles: %d  %dx%d",
			ebiten.ActualFPS(), len(g.scene.Particles()), g.width, g.height)
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout follows the window size. A change is reported to listeners as a
// resize event.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.bus.Dispatch(field.Event{Kind: field.EventResize})
	}
	return g.width, g.height
}
