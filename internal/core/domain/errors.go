package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password so login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMalformedToken means a bearer token could not be parsed or its
	// signature did not verify. The authentication middleware logs it and
	// continues anonymously; it is never surfaced to clients.
	ErrMalformedToken = errors.New("malformed token")

	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidInput     = errors.New("invalid input")
	ErrForbidden        = errors.New("access forbidden")
	ErrTooManyAttempts  = errors.New("too many login attempts")
	ErrUserExists       = errors.New("username or email already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrPlaceNotFound    = errors.New("place not found")
)
