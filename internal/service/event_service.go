package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

// EventService manages events. Creating an event through the normal
// path requires an admin session; Seed exists for the administration
// and test reset paths and skips the gate.
type EventService struct {
	events *repository.Events
	users  *repository.Users
	clock  clock.Clock
	log    *zap.Logger
}

// NewEventService creates a new event service.
func NewEventService(events *repository.Events, users *repository.Users, clk clock.Clock, log *zap.Logger) *EventService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventService{events: events, users: users, clock: clk, log: log}
}

// CreateEventInput carries the fields of a new event.
type CreateEventInput struct {
	Name        string
	Description string
	Date        time.Time
}

// Create registers a new event owned by the session user, who must be
// an admin. The date is immutable after creation.
func (s *EventService) Create(ctx context.Context, sess session.Session, in CreateEventInput) (*domain.Event, error) {
	organizer, err := s.users.FindByID(sess.UserID)
	if err != nil {
		return nil, err
	}
	if organizer == nil {
		return nil, domain.ErrUnknownUser
	}
	if !organizer.Admin {
		return nil, domain.ErrNotAdmin
	}
	return s.insert(in, organizer.Login)
}

// Seed registers an event without the admin gate, with any date,
// including past ones. Used to stage finished events for rating tests
// and administration tooling.
func (s *EventService) Seed(ctx context.Context, in CreateEventInput, organizer string) (*domain.Event, error) {
	return s.insert(in, organizer)
}

func (s *EventService) insert(in CreateEventInput, organizer string) (*domain.Event, error) {
	event := domain.Event{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Organizer:   organizer,
		Date:        in.Date,
	}
	if err := s.events.Insert(event); err != nil {
		return nil, err
	}
	s.log.Info("event created",
		zap.String("event_id", event.ID),
		zap.String("name", event.Name),
		zap.Time("date", event.Date))
	return &event, nil
}

// GetByID returns the event with the given id, or nil.
func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(id)
}

// IsActive reports whether the event exists and its date is still in
// the future. A missing event is simply not active.
func (s *EventService) IsActive(ctx context.Context, id string) (bool, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		return false, err
	}
	return event != nil && event.Active(s.clock.Now()), nil
}

// Delete removes a single event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.events.DeleteByID(id)
}

// DeleteAll removes every event. Test/reset path.
func (s *EventService) DeleteAll(ctx context.Context) error {
	return s.events.Clear()
}
