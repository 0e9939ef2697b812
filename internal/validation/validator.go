// Package validation provides input validation utilities for Series and DataFrame operations.
// Validators are composable and run eagerly before any mutation is applied,
// so a failed operation leaves its receiver untouched.
package validation

import (
	"fmt"

	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/missing"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ColumnProvider interface for types that provide column information
type ColumnProvider interface {
	HasColumn(name string) bool
	Columns() []string
}

// Sized interface for containers that report their element count
type Sized interface {
	Len() int
}

// ColumnValidator validates column existence
type ColumnValidator struct {
	df      ColumnProvider
	columns []string
	op      string
}

// NewColumnValidator creates a validator for column operations
func NewColumnValidator(df ColumnProvider, op string, columns ...string) *ColumnValidator {
	return &ColumnValidator{
		df:      df,
		columns: columns,
		op:      op,
	}
}

// Validate checks if all columns exist in the DataFrame
func (v *ColumnValidator) Validate() error {
	for _, column := range v.columns {
		if !v.df.HasColumn(column) {
			return errors.NewColumnNotFoundErrorWithSuggestions(v.op, column, v.df.Columns())
		}
	}
	return nil
}

// LengthValidator validates length consistency
type LengthValidator struct {
	expected int
	actual   int
	op       string
	context  string
}

// NewLengthValidator creates a validator for length consistency
func NewLengthValidator(expected, actual int, op, context string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
		context:  context,
	}
}

// Validate checks if lengths match
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		message := fmt.Sprintf("%s: expected length %d, got %d", v.context, v.expected, v.actual)
		return errors.NewValidationError(v.op, "", message)
	}
	return nil
}

// IndexValidator validates position bounds
type IndexValidator struct {
	index int
	max   int
	op    string
}

// NewIndexValidator creates a validator for positional access
func NewIndexValidator(index, maxIndex int, op string) *IndexValidator {
	return &IndexValidator{
		index: index,
		max:   maxIndex,
		op:    op,
	}
}

// Validate checks if index is within [0, max)
func (v *IndexValidator) Validate() error {
	if v.index < 0 || v.index >= v.max {
		return errors.NewIndexOutOfBoundsError(v.op, v.index, v.max)
	}
	return nil
}

// NotEmptyValidator rejects nil or zero-length containers
type NotEmptyValidator struct {
	c    Sized
	op   string
	what string
}

// NewNotEmptyValidator creates a validator for empty container checks
func NewNotEmptyValidator(c Sized, op, what string) *NotEmptyValidator {
	return &NotEmptyValidator{
		c:    c,
		op:   op,
		what: what,
	}
}

// Validate checks that the container exists and holds at least one element
func (v *NotEmptyValidator) Validate() error {
	if missing.IsNull(v.c) || v.c.Len() == 0 {
		return errors.NewEmptyError(v.op, v.what)
	}
	return nil
}

// NameValidator rejects empty names
type NameValidator struct {
	name string
	op   string
	what string
}

// NewNameValidator creates a validator for column and series names
func NewNameValidator(name, op, what string) *NameValidator {
	return &NameValidator{
		name: name,
		op:   op,
		what: what,
	}
}

// Validate checks that the name is not empty
func (v *NameValidator) Validate() error {
	if v.name == "" {
		return errors.NewInvalidInputError(v.op, fmt.Sprintf("%s cannot be empty", v.what))
	}
	return nil
}

// CapacityValidator validates a size bound
type CapacityValidator struct {
	count int
	limit int
	op    string
}

// NewCapacityValidator creates a validator checking count <= limit
func NewCapacityValidator(count, limit int, op string) *CapacityValidator {
	return &CapacityValidator{
		count: count,
		limit: limit,
		op:    op,
	}
}

// Validate checks that count does not exceed limit
func (v *CapacityValidator) Validate() error {
	if v.count > v.limit {
		return errors.NewCapacityError(v.op, v.limit)
	}
	return nil
}

// UniqueLabelsValidator rejects label lists with duplicates
type UniqueLabelsValidator struct {
	labels []string
	op     string
}

// NewUniqueLabelsValidator creates a validator for label uniqueness
func NewUniqueLabelsValidator(labels []string, op string) *UniqueLabelsValidator {
	return &UniqueLabelsValidator{
		labels: labels,
		op:     op,
	}
}

// Validate checks that no label repeats
func (v *UniqueLabelsValidator) Validate() error {
	seen := make(map[string]struct{}, len(v.labels))
	for _, label := range v.labels {
		if _, dup := seen[label]; dup {
			return errors.NewDuplicateLabelError(v.op, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateAll runs validators in order and returns the first error
func ValidateAll(validators ...Validator) error {
	return NewCompoundValidator(validators...).Validate()
}

// ValidateColumns is a convenience function for column validation
func ValidateColumns(df ColumnProvider, op string, columns ...string) error {
	return NewColumnValidator(df, op, columns...).Validate()
}

// ValidateLength is a convenience function for length validation
func ValidateLength(expected, actual int, op, context string) error {
	return NewLengthValidator(expected, actual, op, context).Validate()
}

// ValidateIndex is a convenience function for index validation
func ValidateIndex(index, maxIndex int, op string) error {
	return NewIndexValidator(index, maxIndex, op).Validate()
}

// ValidateNotEmpty is a convenience function for empty container validation
func ValidateNotEmpty(c Sized, op, what string) error {
	return NewNotEmptyValidator(c, op, what).Validate()
}

// ValidateName is a convenience function for name validation
func ValidateName(name, op, what string) error {
	return NewNameValidator(name, op, what).Validate()
}

// ValidateCapacity is a convenience function for size bound validation
func ValidateCapacity(count, limit int, op string) error {
	return NewCapacityValidator(count, limit, op).Validate()
}

// ValidateUniqueLabels is a convenience function for label uniqueness validation
func ValidateUniqueLabels(labels []string, op string) error {
	return NewUniqueLabelsValidator(labels, op).Validate()
}
