// Package index provides the ordered, unique label sequence shared by
// Series and DataFrame for alignment.
package index

import (
	"fmt"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/paveg/panda/internal/errors"
)

// Index is an ordered sequence of unique labels with a display name.
type Index struct {
	name   string
	labels []string
	pos    map[string]int
	digest *xxhash.Digest // running hash of labels, fed by Append
}

// Empty creates an Index with no labels.
func Empty(name string) *Index {
	return &Index{name: name, pos: make(map[string]int), digest: xxhash.New()}
}

// New creates an Index from labels, rejecting duplicates.
func New(labels []string, name string) (*Index, error) {
	idx := &Index{
		name:   name,
		labels: make([]string, 0, len(labels)),
		pos:    make(map[string]int, len(labels)),
		digest: xxhash.New(),
	}
	for _, label := range labels {
		if err := idx.Append(label); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Name returns the display name
func (i *Index) Name() string {
	return i.name
}

// SetName sets the display name
func (i *Index) SetName(name string) {
	i.name = name
}

// Len returns the number of labels
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.labels)
}

// Size is an alias of Len
func (i *Index) Size() int {
	return i.Len()
}

// Labels returns a copy of the labels in order
func (i *Index) Labels() []string {
	if i == nil {
		return []string{}
	}
	return append([]string(nil), i.labels...)
}

// At returns the label at position p
func (i *Index) At(p int) (string, error) {
	if p < 0 || p >= len(i.labels) {
		return "", errors.NewIndexOutOfBoundsError("Index.At", p, len(i.labels))
	}
	return i.labels[p], nil
}

// Contains reports whether label is present
func (i *Index) Contains(label string) bool {
	_, ok := i.pos[label]
	return ok
}

// Position returns the position of label
func (i *Index) Position(label string) (int, bool) {
	p, ok := i.pos[label]
	return p, ok
}

// Append adds label at the end
func (i *Index) Append(label string) error {
	if _, exists := i.pos[label]; exists {
		return errors.NewDuplicateLabelError("Index.Append", label)
	}
	i.pos[label] = len(i.labels)
	i.labels = append(i.labels, label)
	if i.digest != nil {
		writeLabel(i.digest, label)
	}
	return nil
}

// Clone returns an independent copy
func (i *Index) Clone() *Index {
	if i == nil {
		return nil
	}
	pos := make(map[string]int, len(i.pos))
	for k, v := range i.pos {
		pos[k] = v
	}
	var digest *xxhash.Digest
	if i.digest != nil {
		d := *i.digest
		digest = &d
	}
	return &Index{
		name:   i.name,
		labels: append([]string(nil), i.labels...),
		pos:    pos,
		digest: digest,
	}
}

// Fingerprint hashes the label sequence. Equal sequences have equal fingerprints.
// The hash is maintained by Append, so this is constant time.
func (i *Index) Fingerprint() uint64 {
	if i.digest == nil {
		i.digest = xxhash.New()
		for _, label := range i.labels {
			writeLabel(i.digest, label)
		}
	}
	return i.digest.Sum64()
}

func writeLabel(d *xxhash.Digest, label string) {
	_, _ = d.WriteString(label)
	_, _ = d.Write([]byte{0})
}

// Equals compares two indexes position by position. The display name is ignored.
// Indexes of different length are not equal; a nil operand is an error.
func (i *Index) Equals(other *Index) (bool, error) {
	if i == nil || other == nil {
		return false, errors.NewEmptyError("Index.Equals", "index")
	}
	if len(i.labels) != len(other.labels) {
		return false, nil
	}
	if i.Fingerprint() != other.Fingerprint() {
		return false, nil
	}
	for p, label := range i.labels {
		if other.labels[p] != label {
			return false, nil
		}
	}
	return true, nil
}

// String returns a string representation of the index
func (i *Index) String() string {
	return fmt.Sprintf("Index([%s], name='%s')", strings.Join(i.labels, ", "), i.name)
}
