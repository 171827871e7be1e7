package pointer

import "sync"

// Kind identifies a pointer event
type Kind int

const (
	Move Kind = iota
	Down
	Up
	// Leave means pointer capture was lost (e.g. the pointer left the viewport)
	Leave
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Down:
		return "down"
	case Up:
		return "up"
	case Leave:
		return "leave"
	default:
		return "unknown"
	}
}

// Event is a pointer event in viewport pixel coordinates
type Event struct {
	Kind Kind
	X, Y float64
}

// Handler receives events after the tracker has seen them
type Handler func(ev Event, tracker *Tracker)

// Bus fans pointer events out to subscribers. Move events update the tracker
// before any subscriber runs, so handlers always read the ray for the event
// they are handling.
//
// A Bus is driven from the host's event loop and is not safe for concurrent
// dispatch.
type Bus struct {
	tracker  *Tracker
	handlers []*entry
	nextID   int
}

type entry struct {
	id      int
	handler Handler
}

// NewBus creates a bus around tracker
func NewBus(tracker *Tracker) *Bus {
	return &Bus{tracker: tracker}
}

// Tracker returns the bus's ray tracker
func (b *Bus) Tracker() *Tracker {
	return b.tracker
}

// Dispatch delivers ev to every subscriber in subscription order
func (b *Bus) Dispatch(ev Event) {
	if ev.Kind == Move {
		b.tracker.Update(ev.X, ev.Y)
	}
	// Handlers may unsubscribe while we iterate.
	handlers := make([]*entry, len(b.handlers))
	copy(handlers, b.handlers)
	for _, e := range handlers {
		if b.subscribed(e.id) {
			e.handler(ev, b.tracker)
		}
	}
}

// Subscribe registers h until the returned subscription is closed
func (b *Bus) Subscribe(h Handler) *Subscription {
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, &entry{id: id, handler: h})
	return &Subscription{bus: b, id: id}
}

// Len returns the number of live subscriptions
func (b *Bus) Len() int {
	return len(b.handlers)
}

func (b *Bus) subscribed(id int) bool {
	for _, e := range b.handlers {
		if e.id == id {
			return true
		}
	}
	return false
}

func (b *Bus) remove(id int) {
	for i, e := range b.handlers {
		if e.id == id {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			return
		}
	}
}

// Subscription is a registered handler. Close removes it; calling Close
// more than once is harmless.
type Subscription struct {
	bus  *Bus
	id   int
	once sync.Once
}

// Close deregisters the handler
func (s *Subscription) Close() error {
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
	return nil
}
