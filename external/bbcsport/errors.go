package bbcsport

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/usecase"
)

var (
	// ErrNotFound marks an expected absence: no marker, no fixtures key, no rows.
	ErrNotFound = crerr.New("bbc sport data not found")
	// ErrMalformed marks input that was present but unusable. Errors carrying it
	// also carry usecase.ErrMalformedPayload.
	ErrMalformed = crerr.New("bbc sport data malformed")
)

func notFoundf(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), ErrNotFound)
}

func markMalformed(err error) error {
	return crerr.Mark(crerr.Mark(err, ErrMalformed), usecase.ErrMalformedPayload)
}

func malformed(err error, msg string) error {
	return markMalformed(crerr.Wrap(err, msg))
}

func malformedf(format string, args ...any) error {
	return markMalformed(crerr.Newf(format, args...))
}
