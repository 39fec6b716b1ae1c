package domain

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateUser  = errors.New("user with this email already exists")
	ErrUnknownUser    = errors.New("unknown user")
	ErrBadCredentials = errors.New("invalid login or password")
	ErrNotAdmin       = errors.New("operation requires an admin user")

	// Event errors
	ErrEventNotFound    = errors.New("event not found")
	ErrEventNotFinished = errors.New("event has not occurred yet")
	ErrEventFinished    = errors.New("event has already occurred")

	// Seat errors
	ErrSeatUnavailable = errors.New("seat is not available")

	// Card errors
	ErrCardNotFound  = errors.New("card not found")
	ErrDuplicateCard = errors.New("card with this number already exists")

	// Ticket errors
	ErrTicketNotFound = errors.New("ticket not found")
	ErrTicketNotOwned = errors.New("ticket does not belong to this user")

	// Purchase errors
	ErrPurchaseNotFound = errors.New("purchase not found")

	// Rating errors
	ErrNoRatings = errors.New("event has no ratings")
)
