// Package selection holds the ordered set of active preset colors and
// enforces its cardinality bounds.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"colorcycle/internal/palette"
)

const (
	// MinActive is the enforced floor of the active selection.
	MinActive = 2
	// MaxActive is the ceiling of the active selection.
	MaxActive = palette.Size
)

var (
	ErrTooFew         = errors.New("too few colors selected")
	ErrTooMany        = errors.New("too many colors selected")
	ErrUnknownColor   = errors.New("unknown color id")
	ErrDuplicateColor = errors.New("duplicate color id")
)

// DefaultIDs is the selection a fresh display starts with.
var DefaultIDs = []int{1, 2}

// Selection is the ordered sequence of active color ids. Its length always
// stays within [MinActive, MaxActive].
type Selection struct {
	ids []int
}

// New validates ids and returns a selection holding them in the given order.
func New(ids []int) (*Selection, error) {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if !palette.Known(id) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownColor, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateColor, id)
		}
		seen[id] = true
	}
	switch {
	case len(ids) < MinActive:
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFew, len(ids), MinActive)
	case len(ids) > MaxActive:
		return nil, fmt.Errorf("%w: got %d, at most %d allowed", ErrTooMany, len(ids), MaxActive)
	}
	return &Selection{ids: slices.Clone(ids)}, nil
}

// Default returns a selection holding DefaultIDs.
func Default() *Selection {
	return &Selection{ids: slices.Clone(DefaultIDs)}
}

// IDs returns a copy of the active ids in insertion order.
func (s *Selection) IDs() []int {
	return slices.Clone(s.ids)
}

// Len returns the number of active ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Contains reports whether id is active.
func (s *Selection) Contains(id int) bool {
	return slices.Contains(s.ids, id)
}

// CanToggle reports whether Toggle(id) would change the selection.
func (s *Selection) CanToggle(id int) bool {
	if !palette.Known(id) {
		return false
	}
	if s.Contains(id) {
		return len(s.ids)-1 >= MinActive
	}
	return len(s.ids) < MaxActive
}

// Toggle removes an active id or appends an inactive one. A toggle that would
// leave the selection outside its bounds is silently ignored. It reports
// whether the selection changed.
func (s *Selection) Toggle(id int) bool {
	if !s.CanToggle(id) {
		return false
	}
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return true
	}
	s.ids = append(s.ids, id)
	return true
}
