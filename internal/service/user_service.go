package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
	"github.com/davidm34/Venda-de-Ingressos/internal/repository"
)

// UserService manages accounts. Lookups and updates are keyed by
// email, the user's unique external identity.
type UserService struct {
	users      *repository.Users
	log        *zap.Logger
	bcryptCost int
}

// NewUserService creates a new user service. A cost of zero selects
// the bcrypt default.
func NewUserService(users *repository.Users, log *zap.Logger, bcryptCost int) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, log: log, bcryptCost: bcryptCost}
}

// CreateUserInput carries the fields of a new account.
type CreateUserInput struct {
	Login    string
	Password string
	Name     string
	CPF      string
	Email    string
	Admin    bool
}

// Create registers a new user. The email must not be in use by any
// existing user.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	existing, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		ID:           uuid.New().String(),
		Login:        in.Login,
		Name:         in.Name,
		CPF:          in.CPF,
		Email:        in.Email,
		PasswordHash: string(hash),
		Admin:        in.Admin,
		Tickets:      []domain.Ticket{},
	}
	if err := s.users.Insert(user); err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return &user, nil
}

// Authenticate checks an email/password pair and returns the matching
// user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrBadCredentials
	}
	return user, nil
}

// GetByEmail returns the user with the given email, or nil.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(email)
}

// GetByID returns the user with the given id, or nil.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(id)
}

// UpdateName changes the display name of the user with the given
// email. Updating a user that does not exist is a no-op.
func (s *UserService) UpdateName(ctx context.Context, email, name string) error {
	return s.update(email, func(u *domain.User) { u.Name = name })
}

// UpdateCPF changes the user's CPF.
func (s *UserService) UpdateCPF(ctx context.Context, email, cpf string) error {
	return s.update(email, func(u *domain.User) { u.CPF = cpf })
}

// UpdateEmail changes the user's email. The new email must be free.
func (s *UserService) UpdateEmail(ctx context.Context, email, newEmail string) error {
	if email != newEmail {
		taken, err := s.users.FindByEmail(newEmail)
		if err != nil {
			return err
		}
		if taken != nil {
			return domain.ErrDuplicateUser
		}
	}
	return s.update(email, func(u *domain.User) { u.Email = newEmail })
}

// UpdatePassword re-hashes and stores a new password for the user with
// the given email.
func (s *UserService) UpdatePassword(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.update(email, func(u *domain.User) { u.PasswordHash = string(hash) })
}

func (s *UserService) update(email string, apply func(*domain.User)) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	apply(user)
	return s.users.Save(*user)
}

// DeleteByEmail removes the user with the given email.
func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	return s.users.DeleteByEmail(email)
}

// Count returns the number of registered users.
func (s *UserService) Count(ctx context.Context) (int, error) {
	return s.users.Count()
}

// DeleteAll removes every user. Test/reset path.
func (s *UserService) DeleteAll(ctx context.Context) error {
	return s.users.Clear()
}
