package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Tickets is the repository for ticket records, keyed by ticket id.
type Tickets struct {
	*records[domain.Ticket]
}

// NewTickets returns a ticket repository backed by <dir>/tickets.json.
func NewTickets(dir string) *Tickets {
	return &Tickets{records: newRecords(dir, "tickets", func(t domain.Ticket) string { return t.ID })}
}

// All returns every ticket.
func (r *Tickets) All() ([]domain.Ticket, error) {
	return r.all()
}

// FindByID returns the ticket with the given id, or nil.
func (r *Tickets) FindByID(id string) (*domain.Ticket, error) {
	return r.find(func(t domain.Ticket) bool { return t.ID == id })
}

// ForSeat returns the tickets referencing a given event seat.
func (r *Tickets) ForSeat(eventID, seat string) ([]domain.Ticket, error) {
	return r.filter(func(t domain.Ticket) bool {
		return t.EventID == eventID && t.Seat == seat
	})
}

// Insert appends a ticket; the caller guarantees a fresh id.
func (r *Tickets) Insert(t domain.Ticket) error {
	return r.append(t)
}

// Save upserts a ticket by id.
func (r *Tickets) Save(t domain.Ticket) error {
	return r.upsert(t)
}

// DeleteByID removes the ticket with the given id.
func (r *Tickets) DeleteByID(id string) error {
	return r.deleteWhere(func(t domain.Ticket) bool { return t.ID == id })
}

// Clear removes every ticket.
func (r *Tickets) Clear() error {
	return r.clear()
}
