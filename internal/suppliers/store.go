package suppliers

import (
	"context"
	"sync"
)

// Store owns the ordered supplier list. The mutex only protects the slice;
// saves run outside it, so two concurrent appends may reach the persister in
// either order and the later write wins.
type Store struct {
	persister Persister

	mu   sync.RWMutex
	list []Supplier
}

// NewStore constructs an empty Store backed by persister.
func NewStore(persister Persister) *Store {
	return &Store{persister: persister}
}

// Load hydrates the list from the persister. Any failure leaves the store
// empty; the error is returned for logging only.
func (s *Store) Load(ctx context.Context) error {
	list, err := s.persister.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.list = nil
		return err
	}
	s.list = list
	return nil
}

// Append adds sup to the end of the list and synchronously saves the full
// list. A save error is returned but the in-memory append is kept.
func (s *Store) Append(ctx context.Context, sup Supplier) error {
	s.mu.Lock()
	s.list = append(s.list, sup)
	snapshot := make([]Supplier, len(s.list))
	copy(snapshot, s.list)
	s.mu.Unlock()

	return s.persister.Save(ctx, snapshot)
}

// All returns a copy of the list in insertion order.
func (s *Store) All() []Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Supplier, len(s.list))
	copy(out, s.list)
	return out
}

// Count returns the number of stored suppliers.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}
