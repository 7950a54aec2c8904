/*
Package intset implements sets of unsigned 32-bit integers, as used for
code-points, glyph indices, name IDs and OpenType tags.

A Set keeps its members ordered, thus iteration and Values will always yield
ascending numbers. Sets are not safe for concurrent mutation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package intset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a set of uint32 values. The zero value is not usable, clients have
// to call New.
type Set struct {
	tree      *treeset.Set
	destroyed bool
}

// New creates a set, optionally populated with values.
func New(values ...uint32) *Set {
	s := &Set{tree: treeset.NewWith(utils.UInt32Comparator)}
	s.AddSlice(values)
	return s
}

// Add inserts v into the set.
func (s *Set) Add(v uint32) {
	if s.usable() {
		s.tree.Add(v)
	}
}

// AddRange inserts all values from lo to hi, inclusive.
// If lo > hi, nothing is inserted.
func (s *Set) AddRange(lo, hi uint32) {
	if !s.usable() || lo > hi {
		return
	}
	for v := lo; ; v++ {
		s.tree.Add(v)
		if v == hi { // guard against wrap-around at math.MaxUint32
			break
		}
	}
}

// AddSlice inserts every value of vs.
func (s *Set) AddSlice(vs []uint32) {
	if !s.usable() {
		return
	}
	for _, v := range vs {
		s.tree.Add(v)
	}
}

// Remove deletes v from the set, if present.
func (s *Set) Remove(v uint32) {
	if s.usable() {
		s.tree.Remove(v)
	}
}

// Has returns true if v is a member of the set.
func (s *Set) Has(v uint32) bool {
	if !s.usable() {
		return false
	}
	return s.tree.Contains(v)
}

// Clear removes all members.
func (s *Set) Clear() {
	if s.usable() {
		s.tree.Clear()
	}
}

// Len returns the number of members.
func (s *Set) Len() int {
	if !s.usable() {
		return 0
	}
	return s.tree.Size()
}

// IsEmpty is a shortcut for Len() == 0.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Values returns the members of s in ascending order.
func (s *Set) Values() []uint32 {
	values := make([]uint32, 0, s.Len())
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// All iterates over the members of s in ascending order.
// The set must not be modified during iteration.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if !s.usable() {
			return
		}
		it := s.tree.Iterator()
		for it.Next() {
			if !yield(it.Value().(uint32)) {
				return
			}
		}
	}
}

// Min returns the smallest member. If s is empty, ok is false.
func (s *Set) Min() (v uint32, ok bool) {
	if s.IsEmpty() {
		return 0, false
	}
	it := s.tree.Iterator()
	if it.First() {
		return it.Value().(uint32), true
	}
	return 0, false
}

// Max returns the largest member. If s is empty, ok is false.
func (s *Set) Max() (v uint32, ok bool) {
	if s.IsEmpty() {
		return 0, false
	}
	it := s.tree.Iterator()
	if it.Last() {
		return it.Value().(uint32), true
	}
	return 0, false
}

// Equal returns true if s and other hold the same members.
// Two nil sets are equal; a nil set equals an empty one.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.All() {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Copy returns an independent set with the same members as s.
func (s *Set) Copy() *Set {
	c := New()
	for v := range s.All() {
		c.tree.Add(v)
	}
	return c
}

// Destroy releases the storage of s. A destroyed set acts as an empty set and
// silently ignores insertions.
func (s *Set) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	s.tree.Clear()
	s.tree = nil
	s.destroyed = true
}

// IsDestroyed returns true after Destroy has been called.
func (s *Set) IsDestroyed() bool {
	return s != nil && s.destroyed
}

func (s *Set) usable() bool {
	return s != nil && !s.destroyed && s.tree != nil
}

// String returns the members in ascending order, with consecutive runs
// collapsed into ranges, e.g. "{0-6, 9}".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first, inRun := true, false
	var start, prev uint32
	flush := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		if start == prev {
			sb.WriteString(fmt.Sprintf("%d", start))
		} else {
			sb.WriteString(fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for v := range s.All() {
		if inRun && v == prev+1 {
			prev = v
			continue
		}
		if inRun {
			flush()
		}
		start, prev, inRun = v, v, true
	}
	if inRun {
		flush()
	}
	sb.WriteByte('}')
	return sb.String()
}
