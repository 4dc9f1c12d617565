// Package history keeps a bounded stack of full-canvas snapshots for undo.
package history

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultLimit is the number of snapshots kept before the oldest is dropped.
const DefaultLimit = 20

// Stack is a LIFO of image snapshots with a fixed capacity. When full, a
// push silently evicts the oldest entry. The zero value is not usable;
// construct one with New.
type Stack struct {
	limit   int
	entries []*image.NRGBA
}

// New returns an empty stack holding at most limit snapshots. A
// non-positive limit selects DefaultLimit.
func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit, entries: make([]*image.NRGBA, 0, limit)}
}

// Push stores a deep copy of img.
func (s *Stack) Push(img *image.NRGBA) {
	snap := imaging.Clone(img)
	if len(s.entries) == s.limit {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = nil
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, snap)
}

// Pop removes and returns the most recent snapshot.
func (s *Stack) Pop() (*image.NRGBA, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	last := len(s.entries) - 1
	snap := s.entries[last]
	s.entries[last] = nil
	s.entries = s.entries[:last]
	return snap, true
}

func (s *Stack) Len() int   { return len(s.entries) }
func (s *Stack) Limit() int { return s.limit }

// Clear drops every snapshot.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
