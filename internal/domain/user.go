package domain

// User represents a registered account. The ticket list holds the
// tickets the user currently owns; cancelled tickets are detached from
// it but survive in the ticket collection.
type User struct {
	ID           string   `json:"id"`
	Login        string   `json:"login"`
	Name         string   `json:"name"`
	CPF          string   `json:"cpf"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password_hash"`
	Admin        bool     `json:"admin"`
	Tickets      []Ticket `json:"tickets"`
}

// AttachTicket appends a ticket to the user's list.
func (u *User) AttachTicket(t Ticket) {
	u.Tickets = append(u.Tickets, t)
}

// DetachTicket removes the ticket with the given id from the user's
// list. It reports whether a ticket was removed.
func (u *User) DetachTicket(ticketID string) bool {
	for i, t := range u.Tickets {
		if t.ID == ticketID {
			u.Tickets = append(u.Tickets[:i], u.Tickets[i+1:]...)
			return true
		}
	}
	return false
}

// OwnsTicket reports whether the ticket with the given id is in the
// user's list.
func (u *User) OwnsTicket(ticketID string) bool {
	for _, t := range u.Tickets {
		if t.ID == ticketID {
			return true
		}
	}
	return false
}
