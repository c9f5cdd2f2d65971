package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neural-background/internal/field"
)

const circleSegments = 24

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas implements field.Surface on top of the ebiten screen image. The
// target is only valid inside Draw; calls made while unbound are ignored.
type canvas struct {
	target *ebiten.Image

	geo   ebiten.GeoM
	stack []ebiten.GeoM

	vertices []ebiten.Vertex
	indices  []uint16
	radii    []float64
}

func newCanvas() *canvas {
	return &canvas{}
}

func (c *canvas) bind(target *ebiten.Image) {
	c.target = target
	c.geo.Reset()
	c.stack = c.stack[:0]
}

// SetSize does nothing: the screen image is sized by Game.Layout, which
// reports the same viewport the field reads.
func (c *canvas) SetSize(w, h int) {}

func (c *canvas) ClearRect(x, y, w, h float64) {
	if c.target == nil {
		return
	}
	x0, y0 := c.geo.Apply(x, y)
	x1, y1 := c.geo.Apply(x+w, y+h)
	rect := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	)
	bounds := c.target.Bounds()
	if rect.Eq(bounds) || bounds.In(rect) {
		c.target.Clear()
		return
	}
	rect = rect.Intersect(bounds)
	if rect.Empty() {
		return
	}
	c.target.SubImage(rect).(*ebiten.Image).Clear()
}

func (c *canvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate and Scale apply before the current transform, like a 2D canvas
// context.
func (c *canvas) Translate(dx, dy float64) {
	var m ebiten.GeoM
	m.Translate(dx, dy)
	m.Concat(c.geo)
	c.geo = m
}

func (c *canvas) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	m.Concat(c.geo)
	c.geo = m
}

func (c *canvas) vertex(x, y float64, r, g, b, a float32) ebiten.Vertex {
	dx, dy := c.geo.Apply(x, y)
	return ebiten.Vertex{
		DstX:   float32(dx),
		DstY:   float32(dy),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	}
}

// FillCircle draws a disc of radius r as concentric rings so the per-vertex
// colours follow the gradient stops.
func (c *canvas) FillCircle(x, y, r float64, paint field.RadialGradient) {
	if c.target == nil || r <= 0 {
		return
	}

	c.radii = c.radii[:0]
	for _, s := range paint.Stops {
		if d := s.Offset * paint.Radius; d > 0 && d < r {
			c.radii = append(c.radii, d)
		}
	}
	c.radii = append(c.radii, r)

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]

	cr, cg, cb, ca := vertexColor(paint.At(0))
	c.vertices = append(c.vertices, c.vertex(x, y, cr, cg, cb, ca))

	for ring, d := range c.radii {
		rr, rg, rb, ra := vertexColor(paint.At(d))
		for i := 0; i < circleSegments; i++ {
			angle := float64(i) * 2 * math.Pi / circleSegments
			c.vertices = append(c.vertices, c.vertex(x+math.Cos(angle)*d, y+math.Sin(angle)*d, rr, rg, rb, ra))
		}

		base := uint16(1 + ring*circleSegments)
		for i := uint16(0); i < circleSegments; i++ {
			next := (i + 1) % circleSegments
			if ring == 0 {
				c.indices = append(c.indices, 0, base+i, base+next)
				continue
			}
			inner := base - circleSegments
			c.indices = append(c.indices,
				inner+i, base+i, base+next,
				inner+i, base+next, inner+next,
			)
		}
	}

	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokeLine tessellates the stroke in local coordinates, colours every vertex
// by its projection onto the gradient axis and then applies the transform.
func (c *canvas) StrokeLine(x0, y0, x1, y1, width float64, paint field.LinearGradient) {
	if c.target == nil || width <= 0 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))

	op := &vector.StrokeOptions{
		Width:   float32(width),
		LineCap: vector.LineCapRound,
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)

	for i := range c.vertices {
		v := &c.vertices[i]
		lx, ly := float64(v.DstX), float64(v.DstY)
		r, g, b, a := vertexColor(paint.At(lx, ly))
		*v = c.vertex(lx, ly, r, g, b, a)
	}

	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
