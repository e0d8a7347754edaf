// Package iterutil contains functions for working with iterators.
package iterutil

import "iter"

// Take yields at most the first n elements of seq.
func Take[E any](seq iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for e := range seq {
			if !yield(e) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Filter yields the elements of seq for which keep returns true.
func Filter[E any](seq iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range seq {
			if keep(e) && !yield(e) {
				return
			}
		}
	}
}

// Chunk yields successive slices of seq up to n elements each. The final
// chunk may be shorter. Chunk panics if n is less than 1.
func Chunk[E any](seq iter.Seq[E], n int) iter.Seq[[]E] {
	if n < 1 {
		panic("iterutil: chunk size must be positive")
	}
	return func(yield func([]E) bool) {
		chunk := make([]E, 0, n)
		for e := range seq {
			chunk = append(chunk, e)
			if len(chunk) == n {
				if !yield(chunk) {
					return
				}
				chunk = make([]E, 0, n)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}
