// Package todo is the single writer of the todo collection. Every mutation
// replaces the collection value and persists it in full.
package todo

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/model"
)

// Persister is the durable side of the store, normally a *store.Adapter.
type Persister interface {
	Load() model.Collection
	Save(model.Collection) error
}

// Store holds the current collection. It is not safe for concurrent use;
// callers drive it from one event loop.
type Store struct {
	p       Persister
	c       model.Collection
	saveErr error
	log     *zap.Logger
}

// Open loads the collection once from p.
func Open(p Persister, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{p: p, log: log.Named("todo")}
	s.c = p.Load()
	return s
}

// Collection returns the current value.
func (s *Store) Collection() model.Collection { return s.c }

// Get returns the todo with id.
func (s *Store) Get(id int) (model.Todo, bool) { return s.c.Get(id) }

// Partitions returns the pending and completed views in display order.
func (s *Store) Partitions() (active, completed []model.Todo) { return s.c.Partitions() }

// SaveErr reports the outcome of the last persist attempt.
func (s *Store) SaveErr() error { return s.saveErr }

// Add appends a pending todo. Blank text is a no-op.
func (s *Store) Add(text string) (model.Todo, bool) {
	next, t, ok := s.c.Add(text)
	if !ok {
		return model.Todo{}, false
	}
	s.commit("add", next, zap.Int("id", t.ID))
	return t, true
}

// Toggle flips the completed flag of id. Unknown ids are ignored.
func (s *Store) Toggle(id int) bool {
	next, ok := s.c.Toggle(id)
	if !ok {
		return false
	}
	s.commit("toggle", next, zap.Int("id", id))
	return true
}

// Delete removes id. Unknown ids are ignored.
func (s *Store) Delete(id int) bool {
	next, ok := s.c.Delete(id)
	if !ok {
		return false
	}
	s.commit("delete", next, zap.Int("id", id))
	return true
}

// Reorder moves activeID onto overID's position. Moves between the pending
// and completed partitions are rejected.
func (s *Store) Reorder(activeID, overID int) bool {
	next, ok := s.c.Reorder(activeID, overID)
	if !ok {
		s.log.Debug("reorder ignored", zap.Int("active", activeID), zap.Int("over", overID))
		return false
	}
	s.commit("reorder", next, zap.Int("active", activeID), zap.Int("over", overID))
	return true
}

// commit swaps in next and saves it. The in-memory value wins even when the
// save fails.
func (s *Store) commit(op string, next model.Collection, fields ...zap.Field) {
	s.c = next
	s.saveErr = s.p.Save(next)
	if s.saveErr != nil {
		s.log.Warn("mutation kept in memory only", append(fields, zap.String("op", op), zap.Error(s.saveErr))...)
		return
	}
	s.log.Debug(op, append(fields, zap.Int("count", next.Len()))...)
}
