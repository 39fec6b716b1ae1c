package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Cards is the repository for payment-card records, keyed by card id.
type Cards struct {
	*records[domain.Card]
}

// NewCards returns a card repository backed by <dir>/cards.json.
func NewCards(dir string) *Cards {
	return &Cards{records: newRecords(dir, "cards", func(c domain.Card) string { return c.ID })}
}

// All returns every card.
func (r *Cards) All() ([]domain.Card, error) {
	return r.all()
}

// FindByID returns the card with the given id, or nil.
func (r *Cards) FindByID(id string) (*domain.Card, error) {
	return r.find(func(c domain.Card) bool { return c.ID == id })
}

// FindByNumber returns the card with the given number, or nil.
func (r *Cards) FindByNumber(number string) (*domain.Card, error) {
	return r.find(func(c domain.Card) bool { return c.Number == number })
}

// Insert appends a card; the caller guarantees a fresh id and a unique
// number.
func (r *Cards) Insert(c domain.Card) error {
	return r.append(c)
}

// DeleteByID removes the card with the given id.
func (r *Cards) DeleteByID(id string) error {
	return r.deleteWhere(func(c domain.Card) bool { return c.ID == id })
}

// Clear removes every card.
func (r *Cards) Clear() error {
	return r.clear()
}
