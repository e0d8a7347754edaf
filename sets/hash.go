// Package sets provides the plain-set siblings of the multiset: membership
// only, no occurrence counts.
package sets

import (
	"iter"
	"maps"
)

// A Hash is a set implemented via a map.
type Hash[T comparable] struct {
	m map[T]struct{}
}

// NewHash creates a new Hash set holding the initial values.
func NewHash[T comparable](initialValues ...T) *Hash[T] {
	s := &Hash[T]{
		m: make(map[T]struct{}),
	}
	s.Add(initialValues...)
	return s
}

// Add adds values to the set.
func (s *Hash[T]) Add(elements ...T) {
	for _, element := range elements {
		s.m[element] = struct{}{}
	}
}

// Delete removes an element from the set.
func (s *Hash[T]) Delete(element T) {
	delete(s.m, element)
}

// Has returns true if the element is in the set.
func (s *Hash[T]) Has(element T) bool {
	_, ok := s.m[element]
	return ok
}

// Size returns the size of the set.
func (s *Hash[T]) Size() int {
	return len(s.m)
}

// Items returns the set's elements as a slice, in no particular order.
func (s *Hash[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// All returns a sequence of the set's elements, in no particular order.
func (s *Hash[T]) All() iter.Seq[T] {
	return maps.Keys(s.m)
}
