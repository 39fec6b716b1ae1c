package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

func newEventFixture(t *testing.T) (*EventService, *repository.Users, time.Time) {
	t.Helper()
	dir := t.TempDir()
	users := repository.NewUsers(dir)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := NewEventService(repository.NewEvents(dir), users, clock.NewFixed(now), nil)
	return svc, users, now
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("admin session creates", func(t *testing.T) {
		svc, users, now := newEventFixture(t)
		require.NoError(t, users.Insert(domain.User{ID: "a1", Login: "admin", Email: "admin@example.com", Admin: true}))

		event, err := svc.Create(ctx, session.Session{UserID: "a1"}, CreateEventInput{
			Name: "Show", Date: now.Add(72 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", event.Organizer)
	})

	t.Run("plain user refused", func(t *testing.T) {
		svc, users, now := newEventFixture(t)
		require.NoError(t, users.Insert(domain.User{ID: "u1", Login: "ana", Email: "ana@example.com"}))

		_, err := svc.Create(ctx, session.Session{UserID: "u1"}, CreateEventInput{Name: "Show", Date: now})
		assert.ErrorIs(t, err, domain.ErrNotAdmin)
	})

	t.Run("unknown session refused", func(t *testing.T) {
		svc, _, now := newEventFixture(t)
		_, err := svc.Create(ctx, session.Session{UserID: "ghost"}, CreateEventInput{Name: "Show", Date: now})
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})
}

func TestEventService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newEventFixture(t)

	// Seed skips the admin gate and accepts past dates, which is how
	// finished events are staged for the rating flow.
	event, err := svc.Seed(ctx, CreateEventInput{Name: "Old Show", Date: now.Add(-48 * time.Hour)}, "org")
	require.NoError(t, err)
	assert.Equal(t, "org", event.Organizer)

	active, err := svc.IsActive(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestEventService_IsActive(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newEventFixture(t)

	future, err := svc.Seed(ctx, CreateEventInput{Name: "Next", Date: now.Add(24 * time.Hour)}, "org")
	require.NoError(t, err)

	active, err := svc.IsActive(ctx, future.ID)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = svc.IsActive(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, active, "a missing event is not active")
}
