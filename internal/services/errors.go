package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken signals a signup against an existing email
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrUsernameTaken signals a signup against an existing username
	ErrUsernameTaken = errors.New("user already exists with this username")
	// ErrNotOwner signals a booking operation by a non-owner. Anonymous
	// bookings have no owner, so they always fail the ownership check.
	ErrNotOwner = errors.New("you do not have permission to modify this booking")
)

// ValidationError carries per-field problems; handlers turn it into a
// structured 400 body keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
