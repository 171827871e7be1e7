package pose

import (
	"sync"

	"github.com/philipparndt/goarm/pkg/geometry"
)

// Store owns the current pose. Every change replaces the snapshot wholesale
// and notifies subscribers with the new value.
//
// Store is safe for concurrent use; subscribers run on the goroutine that
// made the change.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
	subs    map[int]func(Snapshot)
	nextID  int
}

// NewStore creates a store holding initial
func NewStore(initial Snapshot) *Store {
	return &Store{
		current: initial.Clone(),
		subs:    make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current pose. Callers must not modify the slices.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// EndEffector returns the current end-effector position
func (s *Store) EndEffector() (geometry.Vector3, error) {
	return s.Snapshot().EndEffector()
}

// Replace swaps in a new pose
func (s *Store) Replace(next Snapshot) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.publish(next.Clone())
	return nil
}

// SetEndEffector moves the last vertex to v. The other joints are left
// where they are.
func (s *Store) SetEndEffector(v geometry.Vector3) error {
	next, err := s.Snapshot().WithEndEffector(v)
	if err != nil {
		return err
	}
	s.publish(next)
	return nil
}

// Subscribe registers fn to receive every new snapshot. The returned
// function removes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) publish(next Snapshot) {
	s.mu.Lock()
	s.current = next
	subs := make([]func(Snapshot), 0, len(s.subs))
	for id := 1; id <= s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
