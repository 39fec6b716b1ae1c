// Package facade is the stable surface the booking core exposes to
// UI and test callers: create/get/delete per entity kind, the purchase
// and cancellation workflows, ratings, and full-reset paths.
package facade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/config"
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/inventory"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
	"github.com/davidm34/Venda-de-Ingressos/internal/service"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

// Facade wires the repositories, the inventory engine and the
// workflows over one storage directory.
type Facade struct {
	users     *repository.Users
	events    *repository.Events
	seats     *repository.Seats
	cards     *repository.Cards
	tickets   *repository.Tickets
	purchases *repository.Purchases
	ratings   *repository.Ratings

	inventory *inventory.Engine

	userSvc   *service.UserService
	eventSvc  *service.EventService
	cardSvc   *service.CardService
	booking   *service.BookingService
	ratingSvc *service.RatingService
}

// New builds a facade from configuration. The clock is injectable so
// callers can stage past or future events deterministically.
func New(cfg *config.Config, clk clock.Clock, log *zap.Logger) (*Facade, error) {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if log == nil {
		log = zap.NewNop()
	}

	unitPrice, err := decimal.NewFromString(cfg.Ticket.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("parse ticket unit price %q: %w", cfg.Ticket.UnitPrice, err)
	}

	dir := cfg.Storage.Dir
	f := &Facade{
		users:     repository.NewUsers(dir),
		events:    repository.NewEvents(dir),
		seats:     repository.NewSeats(dir),
		cards:     repository.NewCards(dir),
		tickets:   repository.NewTickets(dir),
		purchases: repository.NewPurchases(dir),
		ratings:   repository.NewRatings(dir),
	}
	f.inventory = inventory.New(f.seats, log)
	f.userSvc = service.NewUserService(f.users, log, cfg.Auth.BcryptCost)
	f.eventSvc = service.NewEventService(f.events, f.users, clk, log)
	f.cardSvc = service.NewCardService(f.cards, f.users, log)
	f.booking = service.NewBookingService(
		f.users, f.cards, f.events, f.tickets, f.purchases, f.inventory,
		clk, log, &service.BookingServiceConfig{UnitPrice: unitPrice},
	)
	f.ratingSvc = service.NewRatingService(f.ratings, f.events, clk, log)
	return f, nil
}

// Users

// CreateUser registers an account; the email must be unused.
func (f *Facade) CreateUser(ctx context.Context, in service.CreateUserInput) (*domain.User, error) {
	return f.userSvc.Create(ctx, in)
}

// Authenticate checks an email/password pair.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return f.userSvc.Authenticate(ctx, email, password)
}

// UserByEmail returns a user, or nil when absent.
func (f *Facade) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.userSvc.GetByEmail(ctx, email)
}

// UserByID returns a user, or nil when absent.
func (f *Facade) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return f.userSvc.GetByID(ctx, id)
}

// UpdateUserName changes a user's display name.
func (f *Facade) UpdateUserName(ctx context.Context, email, name string) error {
	return f.userSvc.UpdateName(ctx, email, name)
}

// UpdateUserCPF changes a user's CPF.
func (f *Facade) UpdateUserCPF(ctx context.Context, email, cpf string) error {
	return f.userSvc.UpdateCPF(ctx, email, cpf)
}

// UpdateUserEmail changes a user's email.
func (f *Facade) UpdateUserEmail(ctx context.Context, email, newEmail string) error {
	return f.userSvc.UpdateEmail(ctx, email, newEmail)
}

// UpdateUserPassword changes a user's password.
func (f *Facade) UpdateUserPassword(ctx context.Context, email, password string) error {
	return f.userSvc.UpdatePassword(ctx, email, password)
}

// DeleteUser removes the user with the given email.
func (f *Facade) DeleteUser(ctx context.Context, email string) error {
	return f.userSvc.DeleteByEmail(ctx, email)
}

// UserCount returns how many users are registered.
func (f *Facade) UserCount(ctx context.Context) (int, error) {
	return f.userSvc.Count(ctx)
}

// DeleteAllUsers clears the user collection.
func (f *Facade) DeleteAllUsers(ctx context.Context) error {
	return f.userSvc.DeleteAll(ctx)
}

// Events

// CreateEvent registers an event; the session user must be an admin.
func (f *Facade) CreateEvent(ctx context.Context, sess session.Session, in service.CreateEventInput) (*domain.Event, error) {
	return f.eventSvc.Create(ctx, sess, in)
}

// SeedEvent registers an event without the admin gate, any date
// allowed. Administration/test path.
func (f *Facade) SeedEvent(ctx context.Context, in service.CreateEventInput, organizer string) (*domain.Event, error) {
	return f.eventSvc.Seed(ctx, in, organizer)
}

// EventByID returns an event, or nil when absent.
func (f *Facade) EventByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.eventSvc.GetByID(ctx, id)
}

// EventIsActive reports whether the event exists and is future-dated.
func (f *Facade) EventIsActive(ctx context.Context, id string) (bool, error) {
	return f.eventSvc.IsActive(ctx, id)
}

// AddSeat puts a seat into an event's pool.
func (f *Facade) AddSeat(ctx context.Context, eventID, label string) error {
	return f.inventory.AddSeat(eventID, label)
}

// RemoveSeat takes a seat out of an event's pool.
func (f *Facade) RemoveSeat(ctx context.Context, eventID, label string) error {
	return f.inventory.RemoveSeat(eventID, label)
}

// AvailableSeats lists the unsold seats of an event.
func (f *Facade) AvailableSeats(ctx context.Context, eventID string) ([]string, error) {
	return f.inventory.ListAvailable(eventID)
}

// DeleteEvent removes a single event.
func (f *Facade) DeleteEvent(ctx context.Context, id string) error {
	return f.eventSvc.Delete(ctx, id)
}

// DeleteAllEvents clears the event collection.
func (f *Facade) DeleteAllEvents(ctx context.Context) error {
	return f.eventSvc.DeleteAll(ctx)
}

// Cards

// CreateCard stores a card; the number must be unique and the owner
// must exist.
func (f *Facade) CreateCard(ctx context.Context, in service.CreateCardInput) (*domain.Card, error) {
	return f.cardSvc.Create(ctx, in)
}

// CardByID returns a card, or nil when absent.
func (f *Facade) CardByID(ctx context.Context, id string) (*domain.Card, error) {
	return f.cardSvc.GetByID(ctx, id)
}

// DeleteCard removes (disables) a card.
func (f *Facade) DeleteCard(ctx context.Context, id string) error {
	return f.cardSvc.Delete(ctx, id)
}

// DeleteAllCards clears the card collection.
func (f *Facade) DeleteAllCards(ctx context.Context) error {
	return f.cardSvc.DeleteAll(ctx)
}

// Booking

// Purchase runs a purchase attempt to completion or rejection.
func (f *Facade) Purchase(ctx context.Context, sess session.Session, in service.PurchaseInput) (service.PurchaseResult, error) {
	return f.booking.Purchase(ctx, sess, in)
}

// CancelTicket refunds a ticket for a still-future event.
func (f *Facade) CancelTicket(ctx context.Context, sess session.Session, ticketID string) error {
	return f.booking.CancelTicket(ctx, sess, ticketID)
}

// ReactivateTicket flips a cancelled ticket back to active.
func (f *Facade) ReactivateTicket(ctx context.Context, ticketID string) error {
	return f.booking.ReactivateTicket(ctx, ticketID)
}

// SeedTicket mints an active ticket directly, outside the purchase
// flow: no seat is consumed from the pool and the ticket is attached
// to no user. Administration/test path, like SeedEvent.
func (f *Facade) SeedTicket(ctx context.Context, eventID string, price decimal.Decimal, seat string) (*domain.Ticket, error) {
	ticket := domain.Ticket{
		ID:      uuid.New().String(),
		EventID: eventID,
		Price:   price,
		Seat:    seat,
		Active:  true,
	}
	if err := f.tickets.Insert(ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// TicketByID returns a ticket, or nil when absent.
func (f *Facade) TicketByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return f.tickets.FindByID(id)
}

// DeleteAllTickets clears the ticket collection.
func (f *Facade) DeleteAllTickets(ctx context.Context) error {
	return f.tickets.Clear()
}

// Purchases

// PurchaseByID returns a purchase, or nil when absent.
func (f *Facade) PurchaseByID(ctx context.Context, id string) (*domain.Purchase, error) {
	return f.purchases.FindByID(id)
}

// CardForPurchase resolves the card a purchase was paid with, or nil.
func (f *Facade) CardForPurchase(ctx context.Context, purchaseID string) (*domain.Card, error) {
	purchase, err := f.purchases.FindByID(purchaseID)
	if err != nil || purchase == nil {
		return nil, err
	}
	return f.cards.FindByID(purchase.CardID)
}

// DeleteAllPurchases clears the purchase collection.
func (f *Facade) DeleteAllPurchases(ctx context.Context) error {
	return f.purchases.Clear()
}

// Ratings

// SubmitRating records feedback for a finished event.
func (f *Facade) SubmitRating(ctx context.Context, sess session.Session, eventID string, score int, comment string) (*domain.Rating, error) {
	return f.ratingSvc.Submit(ctx, sess, eventID, score, comment)
}

// AverageScore returns the mean rating of an event, or ErrNoRatings.
func (f *Facade) AverageScore(ctx context.Context, eventID string) (float64, error) {
	return f.ratingSvc.AverageScore(ctx, eventID)
}

// CommentCount returns how many ratings an event has.
func (f *Facade) CommentCount(ctx context.Context, eventID string) (int, error) {
	return f.ratingSvc.CommentCount(ctx, eventID)
}

// RatingByID returns a rating, or nil when absent.
func (f *Facade) RatingByID(ctx context.Context, id string) (*domain.Rating, error) {
	return f.ratingSvc.GetByID(ctx, id)
}

// DeleteRating removes a single rating.
func (f *Facade) DeleteRating(ctx context.Context, id string) error {
	return f.ratingSvc.Delete(ctx, id)
}

// DeleteAllRatings clears the rating collection.
func (f *Facade) DeleteAllRatings(ctx context.Context) error {
	return f.ratingSvc.DeleteAll(ctx)
}

// Reset clears every collection. Test/administration path.
func (f *Facade) Reset(ctx context.Context) error {
	for _, clear := range []func() error{
		f.users.Clear,
		f.events.Clear,
		f.seats.Clear,
		f.cards.Clear,
		f.tickets.Clear,
		f.purchases.Clear,
		f.ratings.Clear,
	} {
		if err := clear(); err != nil {
			return err
		}
	}
	return nil
}

// Helpers used by the CLI.

// ExpiryFromString parses a card expiry in 2006-01 form.
func ExpiryFromString(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse expiry %q: %w", s, err)
	}
	return t, nil
}
