// Package inventory manages the pool of unsold seats for an event.
// A seat is either present (available) or absent (sold or never
// offered); there is no reserved state.
package inventory

import (
	"go.uber.org/zap"

	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
)

// Engine presents and mutates the available-seat pool. It is consumed
// by the booking workflow to validate and consume inventory.
type Engine struct {
	seats *repository.Seats
	log   *zap.Logger
}

// New returns an inventory engine over the given seat repository.
func New(seats *repository.Seats, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{seats: seats, log: log}
}

// ListAvailable returns the labels of the unsold seats for an event.
func (e *Engine) ListAvailable(eventID string) ([]string, error) {
	seats, err := e.seats.ForEvent(eventID)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(seats))
	for _, s := range seats {
		labels = append(labels, s.Label)
	}
	return labels, nil
}

// IsAvailable reports whether the seat label is in the event's pool.
func (e *Engine) IsAvailable(eventID, label string) (bool, error) {
	seats, err := e.seats.ForEvent(eventID)
	if err != nil {
		return false, err
	}
	for _, s := range seats {
		if s.Label == label {
			return true, nil
		}
	}
	return false, nil
}

// AddSeat puts a seat into the event's pool. The (event id, label)
// pair is unique, so adding an existing seat is idempotent.
func (e *Engine) AddSeat(eventID, label string) error {
	if err := e.seats.Save(domain.Seat{EventID: eventID, Label: label}); err != nil {
		return err
	}
	e.log.Debug("seat added", zap.String("event_id", eventID), zap.String("seat", label))
	return nil
}

// RemoveSeat takes a seat out of the event's pool. Removing a seat
// that is not in the pool is a no-op, not an error.
func (e *Engine) RemoveSeat(eventID, label string) error {
	if err := e.seats.Delete(eventID, label); err != nil {
		return err
	}
	e.log.Debug("seat removed", zap.String("event_id", eventID), zap.String("seat", label))
	return nil
}
