package repository

import "errors"

// Failure taxonomy shared by every store. Handlers map these onto HTTP
// statuses; anything else is a server error.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not authorized")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidStatus      = errors.New("invalid status")
)
