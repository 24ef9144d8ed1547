package credit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks inputs that can never produce a schedule.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration marks missing or contradictory financing terms.
	ErrConfiguration = errors.New("configuration error")
)

// FieldError reports which input field caused a failure. Kind is one of the
// sentinel errors above, so callers can match with errors.Is.
type FieldError struct {
	Kind    error
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func invalid(field, format string, args ...any) error {
	return &FieldError{Kind: ErrInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

func misconfigured(field, format string, args ...any) error {
	return &FieldError{Kind: ErrConfiguration, Field: field, Message: fmt.Sprintf(format, args...)}
}
