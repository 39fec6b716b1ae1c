package domain

import "time"

// Event represents a sellable event. The date is immutable after
// creation; whether the event is active is derived from it, never
// stored.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer"`
	Date        time.Time `json:"date"`
}

// Active reports whether the event date is still in the future at the
// given instant.
func (e *Event) Active(now time.Time) bool {
	return e.Date.After(now)
}

// Finished reports whether the event date is strictly in the past at
// the given instant. Ratings are only accepted for finished events.
func (e *Event) Finished(now time.Time) bool {
	return e.Date.Before(now)
}
