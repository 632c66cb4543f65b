// Package memory provides the in-process entity stores the freight engine runs on,
// together with a unit of work that serialises commands and stages their writes.
//
// Key Features:
//   - Generic Store[T] with store-owned, never reused identifiers
//   - Reads return independent copies; mutation flows only through Update
//   - Transactional views: writes become visible only on Commit
//   - A single engine lock serialises all commands and snapshots
//
// Usage:
//
//	registry := memory.NewRegistry()
//	factory := memory.NewUnitOfWorkFactory(registry)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	added, err := uow.TruckRepository().Add(ctx, t)
//	if err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"fmt"
	"sync"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Record is implemented by the entities a Store can hold.
type Record[T any] interface {
	Validate() error
	ID() kernel.ID
	AssignID(id kernel.ID) error
	Clone() T
}

// Store holds records keyed by identifier, in insertion order.
// It is safe for concurrent use.
type Store[T Record[T]] struct {
	name   string
	mu     sync.RWMutex
	items  map[kernel.ID]T
	order  []kernel.ID
	nextID kernel.ID
}

// NewStore creates an empty store. name is used in not-found errors ("truck", "driver", ...).
func NewStore[T Record[T]](name string) *Store[T] {
	return &Store[T]{
		name:   name,
		items:  make(map[kernel.ID]T),
		nextID: 1,
	}
}

// Add stores a copy of record. A zero identifier is replaced with the next unused one;
// an explicit identifier must not exist yet and moves the counter past itself.
// The stored copy is returned.
func (s *Store[T]) Add(record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := record.Clone()
	if stored.ID().IsZero() {
		if err := stored.AssignID(s.nextID); err != nil {
			var zero T
			return zero, err
		}
		s.nextID++
	} else {
		if _, ok := s.items[stored.ID()]; ok {
			var zero T
			return zero, s.duplicateError(stored.ID())
		}
		s.observe(stored.ID())
	}

	s.put(stored)
	return stored.Clone(), nil
}

// Update replaces an existing record wholesale.
func (s *Store[T]) Update(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[record.ID()]; !ok {
		return errs.NewObjectNotFoundError(s.name, record.ID())
	}
	s.items[record.ID()] = record.Clone()
	return nil
}

// Delete removes the record if present. Deleting an absent record is a no-op.
func (s *Store[T]) Delete(id kernel.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(id)
}

// GetByID returns a copy of the record and true, or the zero value and false.
func (s *Store[T]) GetByID(id kernel.ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return item.Clone(), true
}

// GetAll returns copies of all records in insertion order.
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id].Clone())
	}
	return result
}

// LoadData replaces the whole content with records and resets the identifier
// counter past both maxID and the largest loaded identifier. Every record must
// carry a distinct non-zero identifier.
func (s *Store[T]) LoadData(records []T, maxID kernel.ID) error {
	items := make(map[kernel.ID]T, len(records))
	order := make([]kernel.ID, 0, len(records))
	for _, r := range records {
		maxID = max(maxID, r.ID())
		if err := r.ID().Validate(); err != nil {
			return err
		}
		if _, ok := items[r.ID()]; ok {
			return s.duplicateError(r.ID())
		}
		items[r.ID()] = r.Clone()
		order = append(order, r.ID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
	s.order = order
	s.nextID = maxID + 1
	return nil
}

// MaxID returns the largest identifier present, or zero for an empty store.
func (s *Store[T]) MaxID() kernel.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var maxID kernel.ID
	for _, id := range s.order {
		maxID = max(maxID, id)
	}
	return maxID
}

// NextID returns the identifier the next Add will assign.
func (s *Store[T]) NextID() kernel.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// reserveID hands out the next identifier without storing anything.
// Identifiers reserved by a rolled back transaction are not reused.
func (s *Store[T]) reserveID() kernel.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id
}

func (s *Store[T]) reserveExplicitID(id kernel.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return s.duplicateError(id)
	}
	s.observe(id)
	return nil
}

// apply commits staged writes: deletions first, then upserts in staging order.
func (s *Store[T]) apply(deletes []kernel.ID, upserts []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range deletes {
		s.remove(id)
	}
	for _, r := range upserts {
		s.put(r)
	}
}

func (s *Store[T]) put(record T) {
	if _, ok := s.items[record.ID()]; !ok {
		s.order = append(s.order, record.ID())
	}
	s.items[record.ID()] = record
}

func (s *Store[T]) remove(id kernel.ID) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store[T]) observe(id kernel.ID) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

func (s *Store[T]) duplicateError(id kernel.ID) error {
	return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%s %s already exists", s.name, id))
}

// replace swaps in the content of other, which must not be used afterwards.
func (s *Store[T]) replace(other *Store[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = other.items
	s.order = other.order
	s.nextID = other.nextID
}
