package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davidm34/Venda-de-Ingressos/internal/clock"
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
	"github.com/davidm34/Venda-de-Ingressos/internal/session"
)

// RatingService records post-event feedback and aggregates it into an
// average score per event.
type RatingService struct {
	ratings *repository.Ratings
	events  *repository.Events
	clock   clock.Clock
	log     *zap.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(ratings *repository.Ratings, events *repository.Events, clk clock.Clock, log *zap.Logger) *RatingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RatingService{ratings: ratings, events: events, clock: clk, log: log}
}

// Submit records a rating for an event. The event must exist and its
// date must be strictly before the current instant; rating an event
// that has not occurred yet is refused.
func (s *RatingService) Submit(ctx context.Context, sess session.Session, eventID string, score int, comment string) (*domain.Rating, error) {
	event, err := s.events.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	if !event.Finished(s.clock.Now()) {
		return nil, domain.ErrEventNotFinished
	}

	rating := domain.Rating{
		ID:      uuid.New().String(),
		UserID:  sess.UserID,
		EventID: eventID,
		Score:   score,
		Comment: comment,
	}
	if err := s.ratings.Insert(rating); err != nil {
		return nil, err
	}
	s.log.Info("rating submitted",
		zap.String("rating_id", rating.ID),
		zap.String("event_id", eventID),
		zap.Int("score", score))
	return &rating, nil
}

// AverageScore returns the arithmetic mean of the scores submitted for
// an event. When the event has no ratings it returns ErrNoRatings
// instead of a meaningless number.
func (s *RatingService) AverageScore(ctx context.Context, eventID string) (float64, error) {
	ratings, err := s.ratings.ForEvent(eventID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, domain.ErrNoRatings
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings)), nil
}

// CommentCount returns how many ratings an event has received.
func (s *RatingService) CommentCount(ctx context.Context, eventID string) (int, error) {
	ratings, err := s.ratings.ForEvent(eventID)
	if err != nil {
		return 0, err
	}
	return len(ratings), nil
}

// GetByID returns a rating by id, or nil when it does not exist.
func (s *RatingService) GetByID(ctx context.Context, id string) (*domain.Rating, error) {
	return s.ratings.FindByID(id)
}

// Delete removes a single rating.
func (s *RatingService) Delete(ctx context.Context, id string) error {
	return s.ratings.DeleteByID(id)
}

// DeleteAll removes every rating. Test/reset path.
func (s *RatingService) DeleteAll(ctx context.Context) error {
	return s.ratings.Clear()
}
