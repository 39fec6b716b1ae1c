package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

// UserStore is the slice of the user repository the booking workflow
// needs.
type UserStore interface {
	FindByID(id string) (*domain.User, error)
	Save(u domain.User) error
}

// CardStore resolves payment cards.
type CardStore interface {
	FindByID(id string) (*domain.Card, error)
}

// EventStore resolves events for the date rules.
type EventStore interface {
	FindByID(id string) (*domain.Event, error)
}

// TicketStore persists minted tickets.
type TicketStore interface {
	FindByID(id string) (*domain.Ticket, error)
	Insert(t domain.Ticket) error
	Save(t domain.Ticket) error
	DeleteByID(id string) error
}

// PurchaseStore persists purchase records.
type PurchaseStore interface {
	Insert(p domain.Purchase) error
	DeleteByID(id string) error
}

// SeatPool is the inventory engine surface the workflow consumes.
type SeatPool interface {
	IsAvailable(eventID, label string) (bool, error)
	AddSeat(eventID, label string) error
	RemoveSeat(eventID, label string) error
}

// BookingServiceConfig contains configuration for the booking service.
type BookingServiceConfig struct {
	// UnitPrice is the fixed price every ticket is minted at.
	UnitPrice decimal.Decimal
}

// BookingService orchestrates a purchase across the user, card,
// ticket, purchase and seat stores, and the symmetric cancellation and
// reactivation paths. The stores live in independent files with no
// shared transaction log, so the multi-store purchase path registers a
// compensating action for every completed step and unwinds them when a
// later step fails.
type BookingService struct {
	users     UserStore
	cards     CardStore
	events    EventStore
	tickets   TicketStore
	purchases PurchaseStore
	pool      SeatPool
	clock     clock.Clock
	log       *zap.Logger
	unitPrice decimal.Decimal
}

// NewBookingService creates a new booking service.
func NewBookingService(
	users UserStore,
	cards CardStore,
	events EventStore,
	tickets TicketStore,
	purchases PurchaseStore,
	pool SeatPool,
	clk clock.Clock,
	log *zap.Logger,
	cfg *BookingServiceConfig,
) *BookingService {
	price := decimal.NewFromInt(100)
	if cfg != nil && cfg.UnitPrice.IsPositive() {
		price = cfg.UnitPrice
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{
		users:     users,
		cards:     cards,
		events:    events,
		tickets:   tickets,
		purchases: purchases,
		pool:      pool,
		clock:     clk,
		log:       log,
		unitPrice: price,
	}
}

// PurchaseInput identifies the event, card and seat of a purchase
// attempt.
type PurchaseInput struct {
	EventID string
	CardID  string
	Seat    string
}

// PurchaseResult is returned on a completed purchase.
type PurchaseResult struct {
	PurchaseID string
	TicketID   string
}

// Purchase runs one purchase attempt to a terminal state. The card
// must resolve to an existing user and the seat must be in the event's
// pool; then the seat is consumed, a ticket is minted, a purchase
// record is created and the ticket is attached to the buyer. Every
// mutation after the availability check registers an undo; a failure
// in a later step runs the undos in reverse so the seat is not lost
// from the pool.
func (s *BookingService) Purchase(ctx context.Context, sess session.Session, in PurchaseInput) (PurchaseResult, error) {
	card, err := s.cards.FindByID(in.CardID)
	if err != nil {
		return PurchaseResult{}, err
	}
	if card == nil {
		return PurchaseResult{}, domain.ErrUnknownUser
	}
	buyer, err := s.users.FindByID(card.UserID)
	if err != nil {
		return PurchaseResult{}, err
	}
	if buyer == nil {
		return PurchaseResult{}, domain.ErrUnknownUser
	}

	available, err := s.pool.IsAvailable(in.EventID, in.Seat)
	if err != nil {
		return PurchaseResult{}, err
	}
	if !available {
		return PurchaseResult{}, domain.ErrSeatUnavailable
	}

	var undo []func() error
	compensate := func() {
		for i := len(undo) - 1; i >= 0; i-- {
			if err := undo[i](); err != nil {
				s.log.Error("purchase compensation failed, stores may be inconsistent",
					zap.String("event_id", in.EventID),
					zap.String("seat", in.Seat),
					zap.Error(err))
			}
		}
	}

	if err := s.pool.RemoveSeat(in.EventID, in.Seat); err != nil {
		return PurchaseResult{}, err
	}
	undo = append(undo, func() error { return s.pool.AddSeat(in.EventID, in.Seat) })

	ticket := domain.Ticket{
		ID:      uuid.New().String(),
		EventID: in.EventID,
		Price:   s.unitPrice,
		Seat:    in.Seat,
		Active:  true,
	}
	if err := s.tickets.Insert(ticket); err != nil {
		compensate()
		return PurchaseResult{}, err
	}
	undo = append(undo, func() error { return s.tickets.DeleteByID(ticket.ID) })

	purchase := domain.Purchase{
		ID:      uuid.New().String(),
		Email:   buyer.Email,
		EventID: in.EventID,
		CardID:  card.ID,
		Seat:    in.Seat,
	}
	if err := s.purchases.Insert(purchase); err != nil {
		compensate()
		return PurchaseResult{}, err
	}
	undo = append(undo, func() error { return s.purchases.DeleteByID(purchase.ID) })

	buyer.AttachTicket(ticket)
	if err := s.users.Save(*buyer); err != nil {
		compensate()
		return PurchaseResult{}, err
	}

	s.log.Info("purchase completed",
		zap.String("purchase_id", purchase.ID),
		zap.String("ticket_id", ticket.ID),
		zap.String("event_id", in.EventID),
		zap.String("seat", in.Seat),
		zap.String("buyer", buyer.Email),
		zap.String("session_user", sess.UserID))
	return PurchaseResult{PurchaseID: purchase.ID, TicketID: ticket.ID}, nil
}

// CancelTicket refunds one of the session user's tickets. Refunds only
// apply before the event occurs: a ticket for a past event is refused.
// The ticket record is flagged inactive and detached from the user's
// list; the seat is not returned to the pool.
func (s *BookingService) CancelTicket(ctx context.Context, sess session.Session, ticketID string) error {
	user, err := s.users.FindByID(sess.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnknownUser
	}
	if !user.OwnsTicket(ticketID) {
		return domain.ErrTicketNotOwned
	}
	ticket, err := s.tickets.FindByID(ticketID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrTicketNotFound
	}
	event, err := s.events.FindByID(ticket.EventID)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrEventNotFound
	}
	if !event.Active(s.clock.Now()) {
		return domain.ErrEventFinished
	}

	ticket.Active = false
	if err := s.tickets.Save(*ticket); err != nil {
		return err
	}
	user.DetachTicket(ticketID)
	if err := s.users.Save(*user); err != nil {
		return err
	}

	s.log.Info("ticket cancelled",
		zap.String("ticket_id", ticketID),
		zap.String("user_id", user.ID))
	return nil
}

// ReactivateTicket flips a cancelled ticket back to active. Unlike
// cancellation there is no date check, and the ticket is not
// re-attached to any user's list.
func (s *BookingService) ReactivateTicket(ctx context.Context, ticketID string) error {
	ticket, err := s.tickets.FindByID(ticketID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrTicketNotFound
	}
	ticket.Active = true
	if err := s.tickets.Save(*ticket); err != nil {
		return err
	}
	s.log.Info("ticket reactivated", zap.String("ticket_id", ticketID))
	return nil
}
