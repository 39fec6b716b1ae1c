package domain

// Rating is post-event feedback from a user. Ratings are only accepted
// once the event date has passed.
type Rating struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}
