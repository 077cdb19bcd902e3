package annotgo

import "fmt"

// ErrMalformedPayload indicates that payload bytes handed to Unpack
// are not valid JSON.
//
// It is a distinct error kind from any validation failure so callers
// can branch on it with errors.As. The original codec error can be
// accessed via errors.Unwrap.
type ErrMalformedPayload struct {
	cause error
}

func (e *ErrMalformedPayload) Error() string {
	return fmt.Sprintf("malformed payload: not valid JSON: %v", e.cause)
}

func (e *ErrMalformedPayload) Unwrap() error { return e.cause }
