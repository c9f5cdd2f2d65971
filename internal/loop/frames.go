// Package loop holds the display-independent pieces of the frame loop: a
// cancellable frame queue, an event bus and a frame-time ring buffer.
package loop

import (
	"slices"

	"github.com/iburimskiy/neural-background/internal/field"
)

// FrameQueue collects frame callbacks until the host runs them. Callbacks
// requested while a batch is running wait for the next batch.
type FrameQueue struct {
	next    field.FrameHandle
	pending map[field.FrameHandle]func(ms float64)
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[field.FrameHandle]func(float64){}}
}

func (q *FrameQueue) RequestFrame(cb func(ms float64)) field.FrameHandle {
	q.next++
	q.pending[q.next] = cb
	return q.next
}

// CancelFrame drops h. Cancelling an unknown or already-run handle does
// nothing.
func (q *FrameQueue) CancelFrame(h field.FrameHandle) {
	delete(q.pending, h)
}

// Pending reports how many callbacks are waiting.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Run executes the current batch in request order and returns how many ran.
// A callback cancelled by an earlier one in the same batch is skipped.
func (q *FrameQueue) Run(ms float64) int {
	if len(q.pending) == 0 {
		return 0
	}
	handles := make([]field.FrameHandle, 0, len(q.pending))
	for h := range q.pending {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	ran := 0
	for _, h := range handles {
		cb, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		cb(ms)
		ran++
	}
	return ran
}
