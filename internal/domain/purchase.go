package domain

// Purchase links a buyer to the event, card and seat of a completed
// booking. Records are immutable once created; the only write path
// after creation is a full delete.
type Purchase struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	EventID string `json:"event_id"`
	CardID  string `json:"card_id"`
	Seat    string `json:"seat"`
}
