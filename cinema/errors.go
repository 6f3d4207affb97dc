package cinema

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is matched by every ConfigError.
	ErrInvalidDimensions = errors.New("invalid room dimensions")
	ErrOutOfRange        = errors.New("seat out of range")
	ErrAlreadySold       = errors.New("seat already sold")
)

// ConfigError is returned when a room cannot be built from the given
// dimensions. Err carries the parse failure for non-numeric input.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ErrInvalidDimensions.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %q: %v", ErrInvalidDimensions, e.Field, e.Value, e.Err)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s %s: %s", ErrInvalidDimensions, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s must be greater than 0, got %s", ErrInvalidDimensions, e.Field, e.Value)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidDimensions
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SeatError describes a rejected sale.
type SeatError struct {
	Row  int
	Seat int
	Err  error
}

func (e *SeatError) Error() string {
	if e == nil || e.Err == nil {
		return "seat error"
	}
	return fmt.Sprintf("row %d seat %d: %v", e.Row, e.Seat, e.Err)
}

func (e *SeatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsOutOfRange reports whether err rejects a sale for bad coordinates.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsAlreadySold reports whether err rejects a sale for a taken seat.
func IsAlreadySold(err error) bool {
	return errors.Is(err, ErrAlreadySold)
}
