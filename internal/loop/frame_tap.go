package loop

import "time"

// FrameTap records the last N frame durations into a ring buffer so the host
// can report a rolling frame rate.
type FrameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func NewFrameTap(ringSize int) *FrameTap {
	return &FrameTap{buffer: make([]time.Duration, ringSize)}
}

func (t *FrameTap) Record(d time.Duration) {
	if len(t.buffer) == 0 {
		return
	}
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// Snapshot returns up to the last n durations, oldest first.
func (t *FrameTap) Snapshot(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out = append(out, t.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FPS is the average frame rate over the recorded window, or 0 if empty.
func (t *FrameTap) FPS() float64 {
	if t.filled == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range t.Snapshot(t.filled) {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(t.filled) / total.Seconds()
}
