package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Not found
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrHireNotFound    = errors.New("hire request not found")

	// Validation
	ErrInvalidSeatCount   = errors.New("seat count must be positive")
	ErrInvalidContactInfo = errors.New("contact name and email are required")
	ErrInvalidStatus      = errors.New("unknown status value")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrMissingEventID     = errors.New("event id is required")
	ErrInvalidDate        = errors.New("preferred date is required")
	ErrInvalidDescription = errors.New("description is required")

	// Inventory
	ErrInsufficientSeats = errors.New("not enough seats available")

	// Auth
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAdminRequired          = errors.New("admin role required")

	// Infrastructure
	ErrDuplicateReferenceCode = errors.New("reference code already exists")
	ErrGatewayUnavailable     = errors.New("payment gateway unavailable")
)

// InsufficientSeatsError carries the remaining inventory so the API can
// report it without a second query.
type InsufficientSeatsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough seats available: requested %d, remaining %d", e.Requested, e.Remaining)
}

// Is makes the typed error match the ErrInsufficientSeats sentinel.
func (e *InsufficientSeatsError) Is(target error) bool {
	return target == ErrInsufficientSeats
}

// IsNotFoundError returns true for any not-found domain error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrHireNotFound)
}

// IsValidationError returns true for request-shape errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidSeatCount) ||
		errors.Is(err, ErrInvalidContactInfo) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrMissingEventID) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDescription)
}

// IsAuthError returns true for authentication/authorization errors
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthenticationRequired) ||
		errors.Is(err, ErrAdminRequired)
}
