package memory

import (
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// recordSet is what a repository reads and writes through: a Store directly,
// or a txView staging changes on top of one.
type recordSet[T Record[T]] interface {
	add(record T) (T, error)
	update(record T) error
	delete(id kernel.ID)
	getByID(id kernel.ID) (T, bool)
	getAll() []T
	entityName() string
}

func (s *Store[T]) add(record T) (T, error)        { return s.Add(record) }
func (s *Store[T]) update(record T) error          { return s.Update(record) }
func (s *Store[T]) delete(id kernel.ID)            { s.Delete(id) }
func (s *Store[T]) getByID(id kernel.ID) (T, bool) { return s.GetByID(id) }
func (s *Store[T]) getAll() []T                    { return s.GetAll() }
func (s *Store[T]) entityName() string             { return s.name }

// txView stages writes against a base store until commit.
// It is used by one goroutine at a time while the engine lock is held.
type txView[T Record[T]] struct {
	base    *Store[T]
	staged  map[kernel.ID]T
	written []kernel.ID
	deleted map[kernel.ID]struct{}
}

func newTxView[T Record[T]](base *Store[T]) *txView[T] {
	return &txView[T]{
		base:    base,
		staged:  make(map[kernel.ID]T),
		deleted: make(map[kernel.ID]struct{}),
	}
}

func (v *txView[T]) add(record T) (T, error) {
	stored := record.Clone()
	if stored.ID().IsZero() {
		if err := stored.AssignID(v.base.reserveID()); err != nil {
			var zero T
			return zero, err
		}
	} else {
		if _, ok := v.getByID(stored.ID()); ok {
			var zero T
			return zero, v.base.duplicateError(stored.ID())
		}
		if _, wasDeleted := v.deleted[stored.ID()]; !wasDeleted {
			if err := v.base.reserveExplicitID(stored.ID()); err != nil {
				var zero T
				return zero, err
			}
		}
	}

	v.stage(stored)
	return stored.Clone(), nil
}

func (v *txView[T]) update(record T) error {
	if _, ok := v.getByID(record.ID()); !ok {
		return errs.NewObjectNotFoundError(v.base.name, record.ID())
	}
	v.stage(record.Clone())
	return nil
}

func (v *txView[T]) delete(id kernel.ID) {
	if _, ok := v.staged[id]; ok {
		delete(v.staged, id)
		v.written = slices.DeleteFunc(v.written, func(w kernel.ID) bool { return w == id })
	}
	v.deleted[id] = struct{}{}
}

func (v *txView[T]) getByID(id kernel.ID) (T, bool) {
	if r, ok := v.staged[id]; ok {
		return r.Clone(), true
	}
	if _, ok := v.deleted[id]; ok {
		var zero T
		return zero, false
	}
	return v.base.GetByID(id)
}

func (v *txView[T]) getAll() []T {
	base := v.base.GetAll()
	result := make([]T, 0, len(base)+len(v.written))
	seen := make(map[kernel.ID]struct{}, len(base))

	for _, r := range base {
		seen[r.ID()] = struct{}{}
		if staged, ok := v.staged[r.ID()]; ok {
			result = append(result, staged.Clone())
			continue
		}
		if _, ok := v.deleted[r.ID()]; ok {
			continue
		}
		result = append(result, r)
	}
	for _, id := range v.written {
		if _, ok := seen[id]; !ok {
			result = append(result, v.staged[id].Clone())
		}
	}
	return result
}

func (v *txView[T]) entityName() string {
	return v.base.name
}

func (v *txView[T]) stage(record T) {
	id := record.ID()
	if _, ok := v.staged[id]; !ok {
		v.written = append(v.written, id)
	}
	v.staged[id] = record
}

func (v *txView[T]) commit() {
	deletes := make([]kernel.ID, 0, len(v.deleted))
	for id := range v.deleted {
		if _, restaged := v.staged[id]; !restaged {
			deletes = append(deletes, id)
		}
	}

	upserts := make([]T, 0, len(v.written))
	for _, id := range v.written {
		upserts = append(upserts, v.staged[id])
	}

	v.base.apply(deletes, upserts)
}
