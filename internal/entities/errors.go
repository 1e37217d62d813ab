// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRecordNotFound is returned when no rows match a registration number.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownSemester signals a semester key missing from the catalogue.
	ErrUnknownSemester = errors.New("unknown semester")
	// ErrLoadFailure signals that a result table could not be read.
	ErrLoadFailure = errors.New("load failure")
)

// Outcome tags the result of a lookup for the rendering layer.
type Outcome string

const (
	OutcomeFound           Outcome = "found"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeInvalidArgument Outcome = "invalid_argument"
	OutcomeUnknownSemester Outcome = "unknown_semester"
	OutcomeLoadFailure     Outcome = "load_failure"
)

// OutcomeOf maps an error returned by the lookup layer to its tag.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrRecordNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, ErrUnknownSemester):
		return OutcomeUnknownSemester
	default:
		return OutcomeLoadFailure
	}
}
