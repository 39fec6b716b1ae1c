package repository

import (
	"github.com/davidm34/Venda-de-Ingressos/internal/domain"
)

// Users is the repository for user records, keyed by user id. Email
// uniqueness is the workflow's concern, not the repository's.
type Users struct {
	*records[domain.User]
}

// NewUsers returns a user repository backed by <dir>/users.json.
func NewUsers(dir string) *Users {
	return &Users{records: newRecords(dir, "users", func(u domain.User) string { return u.ID })}
}

// All returns every user.
func (r *Users) All() ([]domain.User, error) {
	return r.all()
}

// FindByID returns the user with the given id, or nil.
func (r *Users) FindByID(id string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

// FindByEmail returns the user with the given email, or nil.
func (r *Users) FindByEmail(email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

// Insert appends a user without dedup; the caller guarantees the id is
// fresh and the email unique.
func (r *Users) Insert(u domain.User) error {
	return r.append(u)
}

// Save upserts a user by id, last write wins.
func (r *Users) Save(u domain.User) error {
	return r.upsert(u)
}

// DeleteByEmail removes the first user with the given email.
func (r *Users) DeleteByEmail(email string) error {
	return r.deleteFirst(func(u domain.User) bool { return u.Email == email })
}

// Count returns the number of registered users.
func (r *Users) Count() (int, error) {
	users, err := r.all()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// Clear removes every user.
func (r *Users) Clear() error {
	return r.clear()
}
