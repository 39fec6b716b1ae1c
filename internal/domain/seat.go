package domain

// Seat is one available unit of an event's inventory. A seat record
// exists while the seat can be sold; selling it removes the record.
// There is no reserved state.
type Seat struct {
	EventID string `json:"event_id"`
	Label   string `json:"label"`
}
