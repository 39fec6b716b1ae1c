package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Seats is the repository for the available-seat pool. The identity of
// a seat is the (event id, label) pair; the pair is unique within the
// pool, so adding the same seat twice is an upsert rather than a second
// sellable unit.
type Seats struct {
	*records[domain.Seat]
}

// NewSeats returns a seat repository backed by <dir>/seats.json.
func NewSeats(dir string) *Seats {
	return &Seats{records: newRecords(dir, "seats", func(s domain.Seat) string {
		return s.EventID + "\x00" + s.Label
	})}
}

// All returns the full pool.
func (r *Seats) All() ([]domain.Seat, error) {
	return r.all()
}

// ForEvent returns the pool filtered by event id.
func (r *Seats) ForEvent(eventID string) ([]domain.Seat, error) {
	return r.filter(func(s domain.Seat) bool { return s.EventID == eventID })
}

// Save upserts a seat by its (event id, label) pair.
func (r *Seats) Save(s domain.Seat) error {
	return r.upsert(s)
}

// Delete removes the first seat matching the event id and label.
// Removing a seat that is not in the pool is a no-op.
func (r *Seats) Delete(eventID, label string) error {
	return r.deleteFirst(func(s domain.Seat) bool {
		return s.EventID == eventID && s.Label == label
	})
}

// Clear empties the pool.
func (r *Seats) Clear() error {
	return r.clear()
}
