package domain

import "github.com/shopspring/decimal"

// Ticket is minted when a seat is purchased. Cancellation flips the
// active flag instead of deleting the record, so reactivation can flip
// it back.
type Ticket struct {
	ID      string          `json:"id"`
	EventID string          `json:"event_id"`
	Price   decimal.Decimal `json:"price"`
	Seat    string          `json:"seat"`
	Active  bool            `json:"active"`
}
