package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")
	// ErrNoData is the caller-facing outcome of a failed fetch or of a page no
	// strategy could read.
	ErrNoData                = crerr.New("no data for this league/date")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
	// ErrMalformedPayload marks provider content that was present but unusable.
	ErrMalformedPayload = crerr.New("malformed provider payload")
)
