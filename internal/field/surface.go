package field

// Surface is the drawing target the field renders into. Coordinates passed to
// the drawing calls are transformed by the current Translate/Scale state.
type Surface interface {
	SetSize(w, h int)
	ClearRect(x, y, w, h float64)
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)
	FillCircle(x, y, r float64, paint RadialGradient)
	// StrokeLine draws a round-capped line.
	StrokeLine(x0, y0, x1, y1, width float64, paint LinearGradient)
}

// Viewport reports the current size of the host area.
type Viewport interface {
	ViewportSize() (w, h int)
}

// FrameHandle identifies a scheduled frame callback. Zero is never issued.
type FrameHandle uint64

// FrameScheduler runs a callback before the next repaint.
type FrameScheduler interface {
	RequestFrame(cb func(ms float64)) FrameHandle
	CancelFrame(h FrameHandle)
}

type EventKind int

const (
	EventResize EventKind = iota
	EventPointerMove
	EventPointerLeave
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventPointerMove:
		return "pointermove"
	case EventPointerLeave:
		return "pointerleave"
	}
	return "unknown"
}

// Event carries the pointer coordinates for EventPointerMove. Other kinds leave
// X and Y at zero.
type Event struct {
	Kind EventKind
	X, Y float64
}

// ListenerID is returned by AddListener and is the only way to remove that
// listener again.
type ListenerID uint64

type EventSource interface {
	AddListener(kind EventKind, h func(Event)) ListenerID
	RemoveListener(id ListenerID)
}
