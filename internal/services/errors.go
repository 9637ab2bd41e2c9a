package services

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the service layer. Handlers match on these with
// errors.Is to pick response codes; anything else is treated as a storage
// failure.
var (
	// ErrInvalidInput indicates a missing or malformed field in the request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound indicates the user id has no matching row.
	ErrUserNotFound = errors.New("user not found")

	// ErrCoinNotFound indicates the coin id is not in the current catalog.
	ErrCoinNotFound = errors.New("coin not found")

	// ErrAlreadyTracked indicates the user already tracks this coin.
	ErrAlreadyTracked = errors.New("coin already tracked")

	// ErrNotTracked indicates the user does not track this coin.
	ErrNotTracked = errors.New("coin not in user's tracker")

	// ErrUpstreamUnavailable indicates the price source could not be fetched
	// or returned a malformed payload.
	ErrUpstreamUnavailable = errors.New("price source unavailable")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure
// on the given column set (e.g. "users.username"). The driver exposes no
// typed error for this, so the message is matched the way it is emitted:
// "UNIQUE constraint failed: <table>.<column>[, ...]".
func isUniqueViolation(err error, columns string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+columns)
}
