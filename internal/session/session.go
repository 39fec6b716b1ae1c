// Package session models the acting user. Workflows take a Session
// value explicitly instead of consulting process-wide state; the
// mutex-guarded Holder exists only for the interactive front end,
// which has a single "current user" at a time.
package session

import "sync"

// Session identifies the authenticated user on whose behalf a workflow
// runs. The zero value means "not authenticated".
type Session struct {
	UserID string
}

// Authenticated reports whether the session carries a user.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Holder stores the current session for an interactive caller. It is
// the only shared mutable state in the system.
type Holder struct {
	mu      sync.Mutex
	current Session
}

// Login replaces the current session.
func (h *Holder) Login(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = Session{UserID: userID}
}

// Current returns the current session; the zero Session when nobody is
// logged in.
func (h *Holder) Current() Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Logout clears the current session.
func (h *Holder) Logout() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = Session{}
}
