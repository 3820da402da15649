package domain

import "errors"

// Error taxonomy. ErrAuthService aborts the operation and leaves local state
// unchanged; ErrRoleLookup is logged and leaves the role unresolved;
// ErrStorage is surfaced to the initiating caller with no automatic retry.
var (
	ErrAuthService = errors.New("auth service failure")
	ErrRoleLookup  = errors.New("role lookup failed")
	ErrStorage     = errors.New("storage failure")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidName        = errors.New("name must not be empty")

	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidPrice    = errors.New("price must not be negative")

	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidDateRange   = errors.New("check-out must not precede check-in")
	ErrInvalidGuestCount  = errors.New("guest count must not be negative")
	ErrInvalidRatingScore = errors.New("rating must be between 0 and 5")
	ErrImageNotFound      = errors.New("image not found")

	ErrForbidden = errors.New("access forbidden")
)
