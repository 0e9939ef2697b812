// Package common provides shared utilities for string representations, type
// conversions and the numeric kernels used by Series operations
package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// StringFormatter provides common string formatting utilities.
type StringFormatter struct{}

// NewStringFormatter creates a new StringFormatter instance.
func NewStringFormatter() *StringFormatter {
	return &StringFormatter{}
}

// FormatBinaryOperation formats the name of a binary operation result
// Pattern: left operator right.
func (sf *StringFormatter) FormatBinaryOperation(left, operator, right string) string {
	return fmt.Sprintf("%s %s %s", left, operator, right)
}

// FormatList formats a list of items as [a, b, c].
func (sf *StringFormatter) FormatList(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PadLeft right-aligns s in a field of width runes.
func (sf *StringFormatter) PadLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// PadRight left-aligns s in a field of width runes.
func (sf *StringFormatter) PadRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Default formatter instance for convenience.
var defaultFormatter = NewStringFormatter()

// FormatBinaryOperation formats a binary operation using the default formatter.
func FormatBinaryOperation(left, operator, right string) string {
	return defaultFormatter.FormatBinaryOperation(left, operator, right)
}

// FormatList formats a list using the default formatter.
func FormatList(items []any) string {
	return defaultFormatter.FormatList(items)
}
