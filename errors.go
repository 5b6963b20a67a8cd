package blurview

import "fmt"

// ErrorKind classifies a decode failure. The set is closed: every failure a
// View can report maps to exactly one kind, and the kind determines the
// host-visible message format.
type ErrorKind uint8

const (
	ErrMissingHash  ErrorKind = iota // no blurhash string was provided
	ErrInvalidWidth                  // decode width is zero or negative
	ErrInvalidHeight                 // decode height is zero or negative
	ErrInvalidPunch                  // punch factor is zero or negative
	ErrDecodeFailed                  // the decode function rejected the input
	ErrUnknown                       // the decode function panicked
)

// DecodeError describes why a decode attempt failed. Value carries the
// offending number for the invalid-parameter kinds; Message carries detail
// for ErrDecodeFailed.
type DecodeError struct {
	Kind    ErrorKind
	Value   float64
	Message string
}

// Error formats the host-visible message for this failure. The message names
// the violated constraint and, where applicable, the offending value.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrMissingHash:
		return "The provided Blurhash string must not be null!"
	case ErrInvalidWidth:
		return fmt.Sprintf("decodeWidth must be greater than 0! Actual: %d", int(e.Value))
	case ErrInvalidHeight:
		return fmt.Sprintf("decodeHeight must be greater than 0! Actual: %d", int(e.Value))
	case ErrInvalidPunch:
		return fmt.Sprintf("decodePunch must be greater than 0! Actual: %g", e.Value)
	case ErrDecodeFailed:
		return e.Message
	default:
		return "An unknown error occurred while decoding the blurhash!"
	}
}
