package main

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these onto user-facing messages; nothing is
// ever swallowed into a blank render.
var (
	// ErrNotFound means the username resolved in neither the authored
	// collection nor the published catalog. Recoverable, not fatal.
	ErrNotFound = errors.New("profile not found")

	// ErrValidation means a required creation field was missing.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateUsername means an authored profile with the same
	// username already exists. The store is left untouched.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrUpstreamFetch means the published-catalog fetch failed or
	// returned non-success. For end users this behaves like ErrNotFound,
	// but it is logged distinctly.
	ErrUpstreamFetch = errors.New("published catalog fetch failed")

	// ErrImageTooLarge means an uploaded image exceeds the size ceiling.
	// Rejected before any store write.
	ErrImageTooLarge = errors.New("image exceeds size limit")
)

// validationError wraps ErrValidation with the offending field name.
func validationError(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}

// friendlyError maps an error onto a message suitable for display.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "Profile not found."
	case errors.Is(err, ErrValidation):
		return "Username and name are required fields."
	case errors.Is(err, ErrDuplicateUsername):
		return "This username is already taken. Please choose another one."
	case errors.Is(err, ErrImageTooLarge):
		return "The image file must be at most 2MB."
	case errors.Is(err, ErrUpstreamFetch):
		return "Profile not found."
	default:
		return "Something went wrong. Please try again later."
	}
}
