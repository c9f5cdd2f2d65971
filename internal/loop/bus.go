package loop

import (
	"github.com/iburimskiy/neural-background/internal/field"
)

type listener struct {
	id   field.ListenerID
	kind field.EventKind
	h    func(field.Event)
}

// Bus dispatches host events to listeners in registration order.
type Bus struct {
	next      field.ListenerID
	listeners []listener
}

func NewBus() *Bus { return &Bus{} }

func (b *Bus) AddListener(kind field.EventKind, h func(field.Event)) field.ListenerID {
	b.next++
	b.listeners = append(b.listeners, listener{id: b.next, kind: kind, h: h})
	return b.next
}

func (b *Bus) RemoveListener(id field.ListenerID) {
	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int { return len(b.listeners) }

// Dispatch calls every listener registered for e.Kind. Listeners removed
// during dispatch are not called.
func (b *Bus) Dispatch(e field.Event) {
	snapshot := b.listeners
	for _, l := range snapshot {
		if l.kind != e.Kind || !b.has(l.id) {
			continue
		}
		l.h(e)
	}
}

func (b *Bus) has(id field.ListenerID) bool {
	for _, l := range b.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}
