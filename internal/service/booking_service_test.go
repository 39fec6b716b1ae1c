package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/inventory"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

// bookingFixture wires a booking service over real file-backed
// repositories in a temp dir, with a clock frozen at fixture.now.
type bookingFixture struct {
	svc       *BookingService
	users     *repository.Users
	events    *repository.Events
	cards     *repository.Cards
	tickets   *repository.Tickets
	purchases *repository.Purchases
	pool      *inventory.Engine
	now       time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	dir := t.TempDir()
	f := &bookingFixture{
		users:     repository.NewUsers(dir),
		events:    repository.NewEvents(dir),
		cards:     repository.NewCards(dir),
		tickets:   repository.NewTickets(dir),
		purchases: repository.NewPurchases(dir),
		now:       time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	f.pool = inventory.New(repository.NewSeats(dir), nil)
	f.svc = NewBookingService(
		f.users, f.cards, f.events, f.tickets, f.purchases, f.pool,
		clock.NewFixed(f.now), nil, nil,
	)
	return f
}

func (f *bookingFixture) addUser(t *testing.T, id, email string) domain.User {
	t.Helper()
	u := domain.User{ID: id, Login: id, Name: "User " + id, Email: email, Tickets: []domain.Ticket{}}
	require.NoError(t, f.users.Insert(u))
	return u
}

func (f *bookingFixture) addCard(t *testing.T, id, userID string) domain.Card {
	t.Helper()
	c := domain.Card{ID: id, UserID: userID, Number: "4111-" + id}
	require.NoError(t, f.cards.Insert(c))
	return c
}

// addEvent stages an event offset from the frozen clock, with the
// given seats in the pool.
func (f *bookingFixture) addEvent(t *testing.T, id string, offset time.Duration, seats ...string) domain.Event {
	t.Helper()
	e := domain.Event{ID: id, Name: "Event " + id, Organizer: "org", Date: f.now.Add(offset)}
	require.NoError(t, f.events.Insert(e))
	for _, s := range seats {
		require.NoError(t, f.pool.AddSeat(id, s))
	}
	return e
}

func (f *bookingFixture) sessionFor(u domain.User) session.Session {
	return session.Session{UserID: u.ID}
}

func TestBookingService_Purchase(t *testing.T) {
	ctx := context.Background()

	// One seat sold out of a two-seat past event. Purchases are not
	// date-gated: tickets for finished events can still be sold.
	t.Run("happy path", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", -24*time.Hour, "A1", "A2")

		res, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		require.NoError(t, err)
		require.NotEmpty(t, res.PurchaseID)
		require.NotEmpty(t, res.TicketID)

		left, err := f.pool.ListAvailable("e1")
		require.NoError(t, err)
		assert.Equal(t, []string{"A2"}, left, "the sold seat leaves the pool")

		ticket, err := f.tickets.FindByID(res.TicketID)
		require.NoError(t, err)
		require.NotNil(t, ticket)
		assert.True(t, ticket.Active)
		assert.Equal(t, "A1", ticket.Seat)
		assert.True(t, ticket.Price.Equal(decimal.NewFromInt(100)), "ticket minted at the unit price, got %s", ticket.Price)

		purchase, err := f.purchases.FindByID(res.PurchaseID)
		require.NoError(t, err)
		require.NotNil(t, purchase)
		assert.Equal(t, u.Email, purchase.Email)
		assert.Equal(t, c.ID, purchase.CardID)

		buyer, err := f.users.FindByID(u.ID)
		require.NoError(t, err)
		require.Len(t, buyer.Tickets, 1)
		assert.Equal(t, res.TicketID, buyer.Tickets[0].ID)
	})

	t.Run("unknown card", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		_, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: "nope", Seat: "A1"})
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})

	t.Run("card with no owner", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		require.NoError(t, f.cards.Insert(domain.Card{ID: "orphan", UserID: "ghost", Number: "4111"}))
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		_, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: "orphan", Seat: "A1"})
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})

	t.Run("seat not in pool", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		_, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "Z9"})
		assert.ErrorIs(t, err, domain.ErrSeatUnavailable)
	})

	t.Run("seat sells once", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		_, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		require.NoError(t, err)
		_, err = f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		assert.ErrorIs(t, err, domain.ErrSeatUnavailable)
	})

	t.Run("custom unit price", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		svc := NewBookingService(
			f.users, f.cards, f.events, f.tickets, f.purchases, f.pool,
			clock.NewFixed(f.now), nil,
			&BookingServiceConfig{UnitPrice: decimal.NewFromInt(250)},
		)
		res, err := svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		require.NoError(t, err)
		ticket, err := f.tickets.FindByID(res.TicketID)
		require.NoError(t, err)
		assert.True(t, ticket.Price.Equal(decimal.NewFromInt(250)))
	})
}

// failingPurchases rejects every insert, simulating a broken purchase
// store after the seat was already consumed.
type failingPurchases struct {
	*repository.Purchases
}

func (f failingPurchases) Insert(domain.Purchase) error {
	return errors.New("purchase store unavailable")
}

// failingUserSave resolves users normally but rejects writes, failing
// the final attach step of the purchase.
type failingUserSave struct {
	*repository.Users
}

func (f failingUserSave) Save(domain.User) error {
	return errors.New("user store unavailable")
}

func TestBookingService_PurchaseCompensation(t *testing.T) {
	ctx := context.Background()

	t.Run("purchase insert fails", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		svc := NewBookingService(
			f.users, f.cards, f.events, f.tickets, failingPurchases{f.purchases}, f.pool,
			clock.NewFixed(f.now), nil, nil,
		)
		_, err := svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		require.Error(t, err)

		// The seat is back in the pool and the minted ticket is gone.
		left, err := f.pool.ListAvailable("e1")
		require.NoError(t, err)
		assert.Equal(t, []string{"A1"}, left)
		tickets, err := f.tickets.All()
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})

	t.Run("attach to buyer fails", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 24*time.Hour, "A1")

		svc := NewBookingService(
			failingUserSave{f.users}, f.cards, f.events, f.tickets, f.purchases, f.pool,
			clock.NewFixed(f.now), nil, nil,
		)
		_, err := svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		require.Error(t, err)

		left, err := f.pool.ListAvailable("e1")
		require.NoError(t, err)
		assert.Equal(t, []string{"A1"}, left)
		tickets, err := f.tickets.All()
		require.NoError(t, err)
		assert.Empty(t, tickets)
		purchases, err := f.purchases.All()
		require.NoError(t, err)
		assert.Empty(t, purchases)
	})
}

func TestBookingService_CancelTicket(t *testing.T) {
	ctx := context.Background()

	buy := func(t *testing.T, f *bookingFixture, u domain.User, c domain.Card, eventID, seat string) PurchaseResult {
		t.Helper()
		res, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: eventID, CardID: c.ID, Seat: seat})
		require.NoError(t, err)
		return res
	}

	t.Run("future event cancels", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 48*time.Hour, "A1")
		res := buy(t, f, u, c, "e1", "A1")

		require.NoError(t, f.svc.CancelTicket(ctx, f.sessionFor(u), res.TicketID))

		ticket, err := f.tickets.FindByID(res.TicketID)
		require.NoError(t, err)
		assert.False(t, ticket.Active)

		owner, err := f.users.FindByID(u.ID)
		require.NoError(t, err)
		assert.Empty(t, owner.Tickets, "cancelled ticket leaves the owner's list")

		left, err := f.pool.ListAvailable("e1")
		require.NoError(t, err)
		assert.Empty(t, left, "cancellation does not return the seat to the pool")
	})

	t.Run("past event refuses", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", -24*time.Hour, "A1")
		res := buy(t, f, u, c, "e1", "A1")

		err := f.svc.CancelTicket(ctx, f.sessionFor(u), res.TicketID)
		assert.ErrorIs(t, err, domain.ErrEventFinished)

		ticket, err := f.tickets.FindByID(res.TicketID)
		require.NoError(t, err)
		assert.True(t, ticket.Active, "refused cancellation leaves the ticket untouched")
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		other := f.addUser(t, "u2", "bob@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 48*time.Hour, "A1")
		res := buy(t, f, u, c, "e1", "A1")

		err := f.svc.CancelTicket(ctx, f.sessionFor(other), res.TicketID)
		assert.ErrorIs(t, err, domain.ErrTicketNotOwned)
	})

	t.Run("unknown session user", func(t *testing.T) {
		f := newBookingFixture(t)
		err := f.svc.CancelTicket(ctx, session.Session{UserID: "ghost"}, "t1")
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})
}

func TestBookingService_ReactivateTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the flag back without re-attaching", func(t *testing.T) {
		f := newBookingFixture(t)
		u := f.addUser(t, "u1", "ana@example.com")
		c := f.addCard(t, "c1", u.ID)
		f.addEvent(t, "e1", 48*time.Hour, "A1")
		res, err := f.svc.Purchase(ctx, f.sessionFor(u), PurchaseInput{EventID: "e1", CardID: c.ID, Seat: "A1"})
		require.NoError(t, err)
		require.NoError(t, f.svc.CancelTicket(ctx, f.sessionFor(u), res.TicketID))

		require.NoError(t, f.svc.ReactivateTicket(ctx, res.TicketID))

		ticket, err := f.tickets.FindByID(res.TicketID)
		require.NoError(t, err)
		assert.True(t, ticket.Active)

		owner, err := f.users.FindByID(u.ID)
		require.NoError(t, err)
		assert.Empty(t, owner.Tickets, "reactivation acts on the ticket record only")
	})

	// Reactivation is not date-gated the way cancellation is.
	t.Run("past event reactivates", func(t *testing.T) {
		f := newBookingFixture(t)
		require.NoError(t, f.tickets.Insert(domain.Ticket{ID: "t1", EventID: "gone", Seat: "A1", Active: false}))

		require.NoError(t, f.svc.ReactivateTicket(ctx, "t1"))
		ticket, err := f.tickets.FindByID("t1")
		require.NoError(t, err)
		assert.True(t, ticket.Active)
	})

	t.Run("missing ticket", func(t *testing.T) {
		f := newBookingFixture(t)
		err := f.svc.ReactivateTicket(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrTicketNotFound)
	})
}
