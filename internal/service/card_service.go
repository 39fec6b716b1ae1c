package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
)

// CardService manages stored payment-card references.
type CardService struct {
	cards *repository.Cards
	users *repository.Users
	log   *zap.Logger
}

// NewCardService creates a new card service.
func NewCardService(cards *repository.Cards, users *repository.Users, log *zap.Logger) *CardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CardService{cards: cards, users: users, log: log}
}

// CreateCardInput carries the fields of a new card.
type CreateCardInput struct {
	UserEmail string
	Number    string
	Expiry    time.Time
	CVV       int
}

// Create stores a card for the user with the given email. The card
// number must be globally unique and the owner must exist.
func (s *CardService) Create(ctx context.Context, in CreateCardInput) (*domain.Card, error) {
	existing, err := s.cards.FindByNumber(in.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCard
	}

	owner, err := s.users.FindByEmail(in.UserEmail)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUnknownUser
	}

	card := domain.Card{
		ID:     uuid.New().String(),
		UserID: owner.ID,
		Holder: owner.Name,
		Number: in.Number,
		Expiry: in.Expiry,
		CVV:    in.CVV,
	}
	if err := s.cards.Insert(card); err != nil {
		return nil, err
	}
	s.log.Info("card created", zap.String("card_id", card.ID), zap.String("user_id", owner.ID))
	return &card, nil
}

// GetByID returns the card with the given id, or nil.
func (s *CardService) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	return s.cards.FindByID(id)
}

// Delete removes a card. Disabling a card and deleting it are the same
// operation.
func (s *CardService) Delete(ctx context.Context, id string) error {
	return s.cards.DeleteByID(id)
}

// DeleteAll removes every card. Test/reset path.
func (s *CardService) DeleteAll(ctx context.Context) error {
	return s.cards.Clear()
}
