package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Ratings is the repository for rating records, keyed by rating id.
type Ratings struct {
	*records[domain.Rating]
}

// NewRatings returns a rating repository backed by <dir>/ratings.json.
func NewRatings(dir string) *Ratings {
	return &Ratings{records: newRecords(dir, "ratings", func(a domain.Rating) string { return a.ID })}
}

// All returns every rating.
func (r *Ratings) All() ([]domain.Rating, error) {
	return r.all()
}

// FindByID returns the rating with the given id, or nil.
func (r *Ratings) FindByID(id string) (*domain.Rating, error) {
	return r.find(func(a domain.Rating) bool { return a.ID == id })
}

// ForEvent returns the ratings submitted for an event.
func (r *Ratings) ForEvent(eventID string) ([]domain.Rating, error) {
	return r.filter(func(a domain.Rating) bool { return a.EventID == eventID })
}

// Insert appends a rating; the caller guarantees a fresh id.
func (r *Ratings) Insert(a domain.Rating) error {
	return r.append(a)
}

// DeleteByID removes the rating with the given id.
func (r *Ratings) DeleteByID(id string) error {
	return r.deleteWhere(func(a domain.Rating) bool { return a.ID == id })
}

// Clear removes every rating.
func (r *Ratings) Clear() error {
	return r.clear()
}
