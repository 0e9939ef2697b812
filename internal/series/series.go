// Package series provides the label-indexed, homogeneous column type
package series

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/paveg/panda/internal/common"
	"github.com/paveg/panda/internal/config"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/index"
	"github.com/paveg/panda/internal/missing"
	"github.com/paveg/panda/internal/validation"
)

type uniqueness uint8

const (
	uniqueUnknown uniqueness = iota
	uniqueYes
	uniqueNo
)

// Series is an ordered mapping from unique string labels to values of one element type.
// Labels and their positions live in an index.Index; values are stored positionally.
type Series[T any] struct {
	name   string
	index  *index.Index
	values []T
	limit  int
	uniq   uniqueness
}

// Option configures Series construction
type Option func(*options)

type options struct {
	name     string
	limit    int
	hasLimit bool
}

// WithName sets the display name. An empty name keeps the default.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLimit sets the maximum number of elements.
func WithLimit(limit int) Option {
	return func(o *options) {
		o.limit = limit
		o.hasLimit = true
	}
}

func resolveOptions(opts []Option) (options, error) {
	cfg := config.GetGlobalConfig()
	o := options{
		name:  cfg.DefaultSeriesName,
		limit: cfg.EffectiveSeriesLimit(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasLimit && o.limit < 0 {
		return o, errors.NewInvalidInputError("New", fmt.Sprintf("limit cannot be negative, got %d", o.limit))
	}
	return o, nil
}

// New creates a Series from values labeled "0", "1", ...
func New[T any](values []T, opts ...Option) (*Series[T], error) {
	if len(values) == 0 {
		return nil, errors.NewEmptyError("New", "values")
	}
	return FromLabeled(values, positionalLabels(len(values)), opts...)
}

// FromLabeled creates a Series from parallel value and label lists
func FromLabeled[T any](values []T, labels []string, opts ...Option) (*Series[T], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 || len(labels) == 0 {
		return nil, errors.NewEmptyError("New", "values and labels")
	}
	if err := validation.ValidateAll(
		validation.NewLengthValidator(len(values), len(labels), "New", "labels"),
		validation.NewCapacityValidator(len(values), o.limit, "New"),
	); err != nil {
		return nil, err
	}

	idx, err := index.New(labels, "")
	if err != nil {
		return nil, err
	}

	return &Series[T]{
		name:   o.name,
		index:  idx,
		values: slices.Clone(values),
		limit:  o.limit,
	}, nil
}

// FromMap creates a Series from a label to value mapping. Labels are sorted
// because map iteration order is unspecified.
func FromMap[T any](data map[string]T, opts ...Option) (*Series[T], error) {
	if len(data) == 0 {
		return nil, errors.NewEmptyError("New", "data")
	}

	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	values := make([]T, len(labels))
	for i, label := range labels {
		values[i] = data[label]
	}
	return FromLabeled(values, labels, opts...)
}

// Empty creates a Series with no elements
func Empty[T any](opts ...Option) (*Series[T], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, _ := index.New(nil, "")
	return &Series[T]{
		name:  o.name,
		index: idx,
		limit: o.limit,
	}, nil
}

// newFromIndex assembles a Series from already validated parts
func newFromIndex[T any](idx *index.Index, values []T, name string, limit int) *Series[T] {
	return &Series[T]{
		name:   name,
		index:  idx,
		values: values,
		limit:  limit,
	}
}

func positionalLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// checkNotEmpty is the shared precondition of nearly every operation
func (s *Series[T]) checkNotEmpty(op string) error {
	return validation.ValidateNotEmpty(s, op, "series")
}

func (s *Series[T]) invalidate() {
	s.uniq = uniqueUnknown
}

// IsNull reports whether s is nil or was not built by a constructor
func (s *Series[T]) IsNull() bool {
	return s == nil || s.index == nil
}

// Name returns the display name
func (s *Series[T]) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// SetName sets the display name
func (s *Series[T]) SetName(name string) error {
	if s == nil {
		return errors.NewEmptyError("SetName", "series")
	}
	if err := validation.ValidateName(name, "SetName", "name"); err != nil {
		return err
	}
	s.name = name
	return nil
}

// SetDefaultName restores the configured default name
func (s *Series[T]) SetDefaultName() {
	if s == nil {
		return
	}
	s.name = config.GetGlobalConfig().DefaultSeriesName
}

// Len returns the number of elements (0 for a nil Series)
func (s *Series[T]) Len() int {
	if s.IsNull() {
		return 0
	}
	return len(s.values)
}

// Size returns the number of elements; an empty Series has no size
func (s *Series[T]) Size() (int, error) {
	if err := s.checkNotEmpty("Size"); err != nil {
		return 0, err
	}
	return len(s.values), nil
}

// Empty reports whether the Series holds no elements
func (s *Series[T]) Empty() bool {
	return s.Len() == 0
}

// DType returns the element type name, e.g. "float64" or "object"
func (s *Series[T]) DType() string {
	return common.TypeName(reflect.TypeFor[T]())
}

// Index returns a snapshot of the labels; mutating it does not affect the Series.
// A null Series yields an empty index.
func (s *Series[T]) Index() *index.Index {
	if s.IsNull() {
		return index.Empty("")
	}
	return s.index.Clone()
}

// IndexEquals compares the Series labels with idx without taking a snapshot
func (s *Series[T]) IndexEquals(idx *index.Index) (bool, error) {
	if s.IsNull() {
		return false, errors.NewEmptyError("IndexEquals", "series")
	}
	return s.index.Equals(idx)
}

// Labels returns a copy of the labels in order
func (s *Series[T]) Labels() []string {
	if s.IsNull() {
		return []string{}
	}
	return s.index.Labels()
}

// Values returns a copy of the values in order
func (s *Series[T]) Values() []T {
	if s.IsNull() {
		return []T{}
	}
	return slices.Clone(s.values)
}

// Limit returns the maximum number of elements
func (s *Series[T]) Limit() int {
	if s == nil {
		return 0
	}
	return s.limit
}

// SetLimit changes the maximum number of elements
func (s *Series[T]) SetLimit(limit int) error {
	if s == nil {
		return errors.NewEmptyError("SetLimit", "series")
	}
	if limit < 0 {
		return errors.NewInvalidInputError("SetLimit", fmt.Sprintf("limit cannot be negative, got %d", limit))
	}
	if err := validation.ValidateCapacity(s.Len(), limit, "SetLimit"); err != nil {
		return err
	}
	s.limit = limit
	return nil
}

// Contains reports whether label is present
func (s *Series[T]) Contains(label string) bool {
	return s.Len() > 0 && s.index.Contains(label)
}

// Append adds a new label/value pair at the end
func (s *Series[T]) Append(label string, value T) error {
	if s.IsNull() {
		return errors.NewEmptyError("Append", "series")
	}
	if s.index.Contains(label) {
		return errors.NewDuplicateLabelError("Append", label)
	}
	if err := validation.ValidateCapacity(len(s.values)+1, s.limit, "Append"); err != nil {
		return err
	}
	if err := s.index.Append(label); err != nil {
		return err
	}
	s.values = append(s.values, value)
	s.invalidate()
	return nil
}

// Get returns the value bound to label
func (s *Series[T]) Get(label string) (T, error) {
	var zero T
	if err := s.checkNotEmpty("Get"); err != nil {
		return zero, err
	}
	p, ok := s.index.Position(label)
	if !ok {
		return zero, errors.NewLabelNotFoundError("Get", label)
	}
	return s.values[p], nil
}

// Set updates the value bound to label, or appends it when absent
func (s *Series[T]) Set(label string, value T) error {
	if s.IsNull() {
		return errors.NewEmptyError("Set", "series")
	}
	if p, ok := s.index.Position(label); ok {
		s.values[p] = value
		s.invalidate()
		return nil
	}
	if len(s.values) >= s.limit {
		return errors.NewCapacityError("Set", s.limit)
	}
	return s.Append(label, value)
}

// At returns the value at position p
func (s *Series[T]) At(p int) (T, error) {
	var zero T
	if err := validation.ValidateAll(
		validation.NewNotEmptyValidator(s, "At", "series"),
		validation.NewIndexValidator(p, s.Len(), "At"),
	); err != nil {
		return zero, err
	}
	return s.values[p], nil
}

// SetAt replaces the value at position p
func (s *Series[T]) SetAt(p int, value T) error {
	if err := validation.ValidateAll(
		validation.NewNotEmptyValidator(s, "SetAt", "series"),
		validation.NewIndexValidator(p, s.Len(), "SetAt"),
	); err != nil {
		return err
	}
	s.values[p] = value
	s.invalidate()
	return nil
}

// GetIndex returns the first label bound to a value equal to value
func (s *Series[T]) GetIndex(value T) (string, error) {
	if err := s.checkNotEmpty("GetIndex"); err != nil {
		return "", err
	}
	for p, v := range s.values {
		if sameValue(v, value) {
			return s.index.At(p)
		}
	}
	return "", &errors.DataFrameError{
		Kind:    errors.KindNotFound,
		Op:      "GetIndex",
		Message: fmt.Sprintf("value '%v' not found", value),
	}
}

// ResetIndex relabels all entries "0", "1", ... in current order
func (s *Series[T]) ResetIndex() error {
	if err := s.checkNotEmpty("ResetIndex"); err != nil {
		return err
	}
	idx, err := index.New(positionalLabels(len(s.values)), s.index.Name())
	if err != nil {
		return err
	}
	s.index = idx
	return nil
}

// SetIndex replaces the labels positionally
func (s *Series[T]) SetIndex(labels []string) error {
	if err := s.checkNotEmpty("SetIndex"); err != nil {
		return err
	}
	if len(labels) == 0 {
		return errors.NewEmptyError("SetIndex", "labels")
	}
	if err := validation.ValidateAll(
		validation.NewCapacityValidator(len(labels), s.limit, "SetIndex"),
		validation.NewLengthValidator(len(s.values), len(labels), "SetIndex", "labels"),
		validation.NewUniqueLabelsValidator(labels, "SetIndex"),
	); err != nil {
		return err
	}
	idx, err := index.New(labels, s.index.Name())
	if err != nil {
		return err
	}
	s.index = idx
	return nil
}

// String returns a tab separated rendering of the Series
func (s *Series[T]) String() string {
	if s.IsNull() {
		return "Series[nil]"
	}

	maxRows := config.GetGlobalConfig().MaxDisplayRows
	var sb strings.Builder
	fmt.Fprintf(&sb, "Index\t%s\n", s.name)
	for p, label := range s.index.Labels() {
		if maxRows > 0 && p == maxRows {
			fmt.Fprintf(&sb, "...\t(%d more)\n", len(s.values)-maxRows)
			break
		}
		fmt.Fprintf(&sb, "%s\t%v\n", label, s.values[p])
	}
	fmt.Fprintf(&sb, "dtype: %s\n", s.DType())
	return sb.String()
}

// sameValue is value equality where two missing values are equal
func sameValue[T any](a, b T) bool {
	if missing.IsNaN(a) && missing.IsNaN(b) {
		return true
	}
	return reflect.DeepEqual(a, b)
}
