// Package errors provides standardized error types for Series and DataFrame operations.
// This package defines DataFrameError for consistent error handling across
// all public APIs, with an error kind, operation context and error wrapping support.
package errors

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a failure independently of the operation that raised it.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNullOrEmpty
	KindNotFound
	KindDuplicateKey
	KindCapacityExceeded
	KindTypeMismatch
	KindInvalidArgument
	KindOutOfRange
	KindDivideByZero
)

// String returns the human-readable name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNullOrEmpty:
		return "null or empty"
	case KindNotFound:
		return "not found"
	case KindDuplicateKey:
		return "duplicate key"
	case KindCapacityExceeded:
		return "capacity exceeded"
	case KindTypeMismatch:
		return "type mismatch"
	case KindInvalidArgument:
		return "invalid argument"
	case KindOutOfRange:
		return "out of range"
	case KindDivideByZero:
		return "divide by zero"
	default:
		return "unknown"
	}
}

// DataFrameError represents standardized errors across all Series and DataFrame operations
type DataFrameError struct {
	Kind    ErrorKind // Failure classification
	Op      string    // Operation name (e.g., "Add", "SetIndex", "AddRow")
	Column  string    // Column or label name if applicable
	Message string    // Human-readable error description
	Hint    string    // Optional remediation hint
	Cause   error     // Underlying error cause
}

// Error implements the error interface
func (e *DataFrameError) Error() string {
	var msg string
	switch {
	case e.Op == "" && e.Message == "":
		msg = e.Kind.String()
	case e.Column != "":
		msg = fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	default:
		msg = fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
	}
	if e.Hint != "" {
		msg += ". Hint: " + e.Hint
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping support
func (e *DataFrameError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is().
// A kind sentinel (no Op and no Message) matches every error of that kind.
func (e *DataFrameError) Is(target error) bool {
	df, ok := target.(*DataFrameError)
	if !ok {
		return false
	}
	if df.Op == "" && df.Message == "" {
		return df.Kind == e.Kind
	}
	return e.Op == df.Op && e.Column == df.Column && e.Message == df.Message
}

// WithHint returns a copy of the error carrying a remediation hint
func (e *DataFrameError) WithHint(hint string) *DataFrameError {
	cp := *e
	cp.Hint = hint
	return &cp
}

// Kind sentinels, usable with errors.Is
var (
	ErrNullOrEmpty      = &DataFrameError{Kind: KindNullOrEmpty}
	ErrNotFound         = &DataFrameError{Kind: KindNotFound}
	ErrDuplicateKey     = &DataFrameError{Kind: KindDuplicateKey}
	ErrCapacityExceeded = &DataFrameError{Kind: KindCapacityExceeded}
	ErrTypeMismatch     = &DataFrameError{Kind: KindTypeMismatch}
	ErrInvalidArgument  = &DataFrameError{Kind: KindInvalidArgument}
	ErrOutOfRange       = &DataFrameError{Kind: KindOutOfRange}
	ErrDivideByZero     = &DataFrameError{Kind: KindDivideByZero}
)

// Common error constructors for consistent error creation

// NewEmptyError creates an error for operations on a nil or zero-length container
func NewEmptyError(op, what string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindNullOrEmpty,
		Op:      op,
		Message: fmt.Sprintf("%s is null or empty", what),
	}
}

// NewLabelNotFoundError creates an error for lookups of a label that is not present
func NewLabelNotFoundError(op, label string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindNotFound,
		Op:      op,
		Message: fmt.Sprintf("label '%s' not found", label),
	}
}

// NewColumnNotFoundError creates an error for operations on non-existent columns
func NewColumnNotFoundError(op, column string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindNotFound,
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewColumnNotFoundErrorWithSuggestions adds the available columns as a hint
func NewColumnNotFoundErrorWithSuggestions(op, column string, available []string) *DataFrameError {
	return NewColumnNotFoundError(op, column).
		WithHint(fmt.Sprintf("Available columns: [%s]", strings.Join(available, ", ")))
}

// NewDuplicateLabelError creates an error for inserting a label that already exists
func NewDuplicateLabelError(op, label string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindDuplicateKey,
		Op:      op,
		Message: fmt.Sprintf("label '%s' already exists", label),
	}
}

// NewDuplicateColumnError creates an error for adding a column that already exists
func NewDuplicateColumnError(op, column string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindDuplicateKey,
		Op:      op,
		Column:  column,
		Message: "column already exists",
	}
}

// NewCapacityError creates an error for exceeding a size bound
func NewCapacityError(op string, limit int) *DataFrameError {
	return &DataFrameError{
		Kind:    KindCapacityExceeded,
		Op:      op,
		Message: fmt.Sprintf("cannot hold more than %d elements", limit),
	}
}

// NewTypeMismatchError creates an error for operands with different element types
func NewTypeMismatchError(op, column, expected, actual string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindTypeMismatch,
		Op:      op,
		Column:  column,
		Message: fmt.Sprintf("expected %s, got %s", expected, actual),
	}
}

// NewUnsupportedTypeError creates an error for unsupported data types
func NewUnsupportedTypeError(op, typeName string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindTypeMismatch,
		Op:      op,
		Message: fmt.Sprintf("unsupported type: %s", typeName),
	}
}

// NewInvalidInputError creates an error for invalid operation inputs
func NewInvalidInputError(op, message string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindInvalidArgument,
		Op:      op,
		Message: message,
	}
}

// NewValidationError creates an error for input validation failures
func NewValidationError(op, column, message string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindInvalidArgument,
		Op:      op,
		Column:  column,
		Message: message,
	}
}

// NewIndexOutOfBoundsError creates an error for a position outside [0, size)
func NewIndexOutOfBoundsError(op string, index, size int) *DataFrameError {
	return &DataFrameError{
		Kind:    KindOutOfRange,
		Op:      op,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, size),
	}
}

// NewDivideByZeroError creates an error for a division with a zero denominator
func NewDivideByZeroError(op, message string) *DataFrameError {
	return &DataFrameError{
		Kind:    KindDivideByZero,
		Op:      op,
		Message: message,
	}
}
