package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnknownUnit     = 4101
	CodeInvalidOperand  = 4102
	CodeInvalidArgument = 4103
	CodeInvalidRequest  = 4104
	CodeDuplicateSpan   = 4105
	CodeSpanNotFound    = 4040

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeCalendarOutOfBounds = 5001
)

// Base error types
var (
	// ErrUnknownUnit is returned when a unit name is not present in the unit
	// table, including its singular/plural aliases
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrInvalidOperand is returned when an arithmetic operation is given an
	// operand it cannot work with, such as a zero divisor
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidArgument is returned for malformed low-level accessor requests,
	// such as reading a basis that is neither seconds nor months
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCalendarOutOfBounds is returned when a projected calendar date is
	// invalid. The projection clamps days before building dates, so seeing this
	// error means an invariant was violated upstream
	ErrCalendarOutOfBounds = errors.New("calendar date out of bounds")

	// ErrInvalidSpanName is returned when a span is created with an empty name
	ErrInvalidSpanName = errors.New("span name cannot be empty")

	// ErrInvalidSpanID is returned when a span ID is not a valid UUID
	ErrInvalidSpanID = errors.New("invalid span ID")

	// ErrSpanNotFound is returned when the requested span doesn't exist
	ErrSpanNotFound = errors.New("span not found")

	// ErrDuplicateSpan is returned when a span with the same name already exists
	ErrDuplicateSpan = errors.New("span with this name already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnknownUnit):
		return CodeUnknownUnit
	case errors.Is(err, ErrInvalidOperand):
		return CodeInvalidOperand
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidSpanName), errors.Is(err, ErrInvalidSpanID):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateSpan):
		return CodeDuplicateSpan
	case errors.Is(err, ErrSpanNotFound):
		return CodeSpanNotFound
	case errors.Is(err, ErrCalendarOutOfBounds):
		return CodeCalendarOutOfBounds
	default:
		return CodeInternalServer
	}
}

// UnitError carries the offending unit name together with the underlying error
type UnitError struct {
	Unit string
	Err  error
}

// Error implements the error interface for UnitError
func (e *UnitError) Error() string {
	return fmt.Sprintf("unit %q: %v", e.Unit, e.Err)
}

// Unwrap returns the underlying error
func (e *UnitError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *UnitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unit_error",
		"unit":       e.Unit,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewUnknownUnitError creates a detailed error for an unrecognized unit name
func NewUnknownUnitError(unit string) error {
	return &UnitError{Unit: unit, Err: ErrUnknownUnit}
}

// SpanError represents an error related to span storage operations
type SpanError struct {
	SpanID string
	Name   string
	Err    error
}

// Error implements the error interface for SpanError
func (e *SpanError) Error() string {
	return fmt.Sprintf("span operation failed for %q (id: %s): %v", e.Name, e.SpanID, e.Err)
}

// Unwrap returns the underlying error
func (e *SpanError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SpanError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "span_error",
		"span_id":    e.SpanID,
		"name":       e.Name,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewSpanError creates a detailed span error
func NewSpanError(spanID, name string, err error) error {
	return &SpanError{SpanID: spanID, Name: name, Err: err}
}

// IsUnknownUnitError checks if the error is an unknown unit error
func IsUnknownUnitError(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}

// IsSpanNotFoundError checks if the error is a span not found error
func IsSpanNotFoundError(err error) bool {
	return errors.Is(err, ErrSpanNotFound)
}

// IsDuplicateSpanError checks if the error is a duplicate span error
func IsDuplicateSpanError(err error) bool {
	return errors.Is(err, ErrDuplicateSpan)
}
