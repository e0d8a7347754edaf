// Package multiset implements a bag data structure: an unordered collection
// that permits repeated occurrences of equal elements, tracked by count
// rather than by repeated storage.
//
// Internally it wraps a map from element to a positive occurrence count,
// plus a cached total, so membership checks, counts and single-element
// updates are all O(1).
package multiset

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/databrickslabs/sandbox/buckets/hashutil"
)

// Multiset counts occurrences of elements of type T. The zero value is an
// empty multiset ready for use. Multisets are not safe for concurrent use
// by multiple goroutines without additional locking.
type Multiset[T comparable] struct {
	members map[T]int
	size    int
}

// New creates an empty multiset.
func New[T comparable]() *Multiset[T] {
	return &Multiset[T]{}
}

// Of creates a multiset holding the listed elements. Duplicates accumulate:
// Of("x", "x", "y") holds two occurrences of "x" and one of "y".
func Of[T comparable](elements ...T) *Multiset[T] {
	return Collect(slices.Values(elements))
}

// Collect creates a multiset from a finite sequence, inserting every
// element it yields with multiplicity 1.
func Collect[T comparable](seq iter.Seq[T]) *Multiset[T] {
	m := New[T]()
	m.InsertSeq(seq)
	return m
}

// FromCounts creates a multiset from a table of occurrence counts.
// Entries with a count below 1 denote absence and are skipped.
func FromCounts[T comparable](counts map[T]int) *Multiset[T] {
	m := New[T]()
	for element, occurrences := range counts {
		if occurrences < 1 {
			continue
		}
		m.add(element, occurrences)
	}
	return m
}

// Count returns the total number of occurrences across all elements.
func (m *Multiset[T]) Count() int {
	return m.size
}

// DistinctCount returns the number of distinct elements present.
func (m *Multiset[T]) DistinctCount() int {
	return len(m.members)
}

// IsEmpty reports whether the multiset holds no occurrences at all.
func (m *Multiset[T]) IsEmpty() bool {
	return m.size == 0
}

// Contains reports whether at least one occurrence of element is present.
func (m *Multiset[T]) Contains(element T) bool {
	_, ok := m.members[element]
	return ok
}

// Occurrences returns how many times element is present, or 0 when absent.
func (m *Multiset[T]) Occurrences(element T) int {
	return m.members[element]
}

// Insert adds one occurrence of element and returns the occurrence count
// the element had before the insert, 0 when it was absent.
func (m *Multiset[T]) Insert(element T) int {
	return m.InsertN(element, 1)
}

// InsertN adds occurrences of element and returns the occurrence count the
// element had before the insert, 0 when it was absent. Inserting less than
// one occurrence is a caller bug and panics.
func (m *Multiset[T]) InsertN(element T, occurrences int) int {
	if occurrences < 1 {
		panic(fmt.Sprintf("multiset: insert %d occurrences", occurrences))
	}
	return m.add(element, occurrences)
}

// InsertSeq adds every element yielded by seq with multiplicity 1.
func (m *Multiset[T]) InsertSeq(seq iter.Seq[T]) {
	for element := range seq {
		m.add(element, 1)
	}
}

func (m *Multiset[T]) add(element T, occurrences int) int {
	if m.members == nil {
		m.members = map[T]int{}
	}
	prior := m.members[element]
	m.members[element] = prior + occurrences
	m.size += occurrences
	return prior
}

// Remove drops one occurrence of element if any is present and returns the
// occurrence count the element had before the call, 0 when it was absent.
func (m *Multiset[T]) Remove(element T) int {
	return m.RemoveN(element, 1)
}

// RemoveN drops up to occurrences of element. An absent element is a no-op,
// not an error. The entry disappears entirely once its count reaches zero.
// Returns the occurrence count the element had before the call. Removing
// less than one occurrence is a caller bug and panics.
func (m *Multiset[T]) RemoveN(element T, occurrences int) int {
	if occurrences < 1 {
		panic(fmt.Sprintf("multiset: remove %d occurrences", occurrences))
	}
	prior, ok := m.members[element]
	if !ok {
		return 0
	}
	if occurrences >= prior {
		delete(m.members, element)
		m.size -= prior
		return prior
	}
	m.members[element] = prior - occurrences
	m.size -= occurrences
	return prior
}

// RemoveAllOf drops every occurrence of element and returns the occurrence
// count it had before the call, 0 when it was absent.
func (m *Multiset[T]) RemoveAllOf(element T) int {
	prior, ok := m.members[element]
	if !ok {
		return 0
	}
	delete(m.members, element)
	m.size -= prior
	return prior
}

// RemoveAll empties the multiset. With keepCapacity the backing storage is
// retained for reuse; either way the observable state is the same.
func (m *Multiset[T]) RemoveAll(keepCapacity bool) {
	if keepCapacity {
		clear(m.members)
	} else {
		m.members = nil
	}
	m.size = 0
}

// All returns a lazy, restartable sequence of every occurrence: each
// distinct element is yielded consecutively as many times as it occurs.
// The order across distinct elements is the map's, i.e. unspecified.
func (m *Multiset[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for element, occurrences := range m.members {
			for range occurrences {
				if !yield(element) {
					return
				}
			}
		}
	}
}

// Distinct returns a sequence of the distinct elements, each yielded once.
func (m *Multiset[T]) Distinct() iter.Seq[T] {
	return maps.Keys(m.members)
}

// Counts returns a sequence of (element, occurrences) pairs, one per
// distinct element.
func (m *Multiset[T]) Counts() iter.Seq2[T, int] {
	return maps.All(m.members)
}

// Clone returns a deep copy. Mutating either the clone or the original is
// never observable through the other.
func (m *Multiset[T]) Clone() *Multiset[T] {
	return &Multiset[T]{
		members: maps.Clone(m.members),
		size:    m.size,
	}
}

// Equal reports whether both multisets hold exactly the same occurrence
// counts for the same elements. A nil multiset equals an empty one.
func (m *Multiset[T]) Equal(other *Multiset[T]) bool {
	if m == nil {
		return other == nil || other.size == 0
	}
	if other == nil {
		return m.size == 0
	}
	if m.size != other.size || len(m.members) != len(other.members) {
		return false
	}
	for element, occurrences := range m.members {
		if other.members[element] != occurrences {
			return false
		}
	}
	return true
}

// Hash returns a digest of the multiset's contents. Equal multisets hash
// equal regardless of the order the map happens to enumerate elements in:
// per-element digests are folded in with wrapping addition, which is
// commutative, before being mixed with the aggregate counts.
func (m *Multiset[T]) Hash() uint64 {
	var acc uint64
	for element, occurrences := range m.members {
		d := hashutil.NewDigest()
		d.WriteUint64(hashutil.MustHash(element))
		d.WriteInt64(int64(occurrences))
		acc += d.Sum64()
	}
	d := hashutil.NewDigest()
	d.WriteInt64(int64(len(m.members)))
	d.WriteInt64(int64(m.size))
	d.WriteUint64(acc)
	return d.Sum64()
}

// String renders every occurrence in iteration order, comma-separated and
// bracketed. It is a debugging aid, not a parseable format.
func (m *Multiset[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for element := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, element)
		first = false
	}
	sb.WriteByte(']')
	return sb.String()
}
