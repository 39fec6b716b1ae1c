package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Events is the repository for event records, keyed by event id.
type Events struct {
	*records[domain.Event]
}

// NewEvents returns an event repository backed by <dir>/events.json.
func NewEvents(dir string) *Events {
	return &Events{records: newRecords(dir, "events", func(e domain.Event) string { return e.ID })}
}

// All returns every event.
func (r *Events) All() ([]domain.Event, error) {
	return r.all()
}

// FindByID returns the event with the given id, or nil.
func (r *Events) FindByID(id string) (*domain.Event, error) {
	return r.find(func(e domain.Event) bool { return e.ID == id })
}

// Insert appends an event; the caller guarantees a fresh id.
func (r *Events) Insert(e domain.Event) error {
	return r.append(e)
}

// Save upserts an event by id.
func (r *Events) Save(e domain.Event) error {
	return r.upsert(e)
}

// DeleteByID removes the event with the given id.
func (r *Events) DeleteByID(id string) error {
	return r.deleteWhere(func(e domain.Event) bool { return e.ID == id })
}

// Clear removes every event.
func (r *Events) Clear() error {
	return r.clear()
}
