package domain

import "time"

// Card is a stored payment-card reference. The number is unique across
// all cards.
type Card struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Holder string    `json:"holder"`
	Number string    `json:"number"`
	Expiry time.Time `json:"expiry"`
	CVV    int       `json:"cvv"`
}
