package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Purchases is the repository for purchase records, keyed by purchase
// id. Purchases are immutable once created, so there is no Save.
type Purchases struct {
	*records[domain.Purchase]
}

// NewPurchases returns a purchase repository backed by
// <dir>/purchases.json.
func NewPurchases(dir string) *Purchases {
	return &Purchases{records: newRecords(dir, "purchases", func(p domain.Purchase) string { return p.ID })}
}

// All returns every purchase.
func (r *Purchases) All() ([]domain.Purchase, error) {
	return r.all()
}

// FindByID returns the purchase with the given id, or nil.
func (r *Purchases) FindByID(id string) (*domain.Purchase, error) {
	return r.find(func(p domain.Purchase) bool { return p.ID == id })
}

// ForSeat returns the purchases referencing a given event seat.
func (r *Purchases) ForSeat(eventID, seat string) ([]domain.Purchase, error) {
	return r.filter(func(p domain.Purchase) bool {
		return p.EventID == eventID && p.Seat == seat
	})
}

// Insert appends a purchase; the caller guarantees a fresh id.
func (r *Purchases) Insert(p domain.Purchase) error {
	return r.append(p)
}

// DeleteByID removes the purchase with the given id.
func (r *Purchases) DeleteByID(id string) error {
	return r.deleteWhere(func(p domain.Purchase) bool { return p.ID == id })
}

// Clear removes every purchase.
func (r *Purchases) Clear() error {
	return r.clear()
}
