package multiset

// Sum returns a multiset where every element occurs as many times as in
// a and b combined.
func Sum[T comparable](a, b *Multiset[T]) *Multiset[T] {
	return merge(a, b, func(left, right int) int {
		return left + right
	})
}

// Union returns a multiset where every element occurs as many times as in
// whichever of a and b holds more of it.
func Union[T comparable](a, b *Multiset[T]) *Multiset[T] {
	return merge(a, b, max)
}

// Intersection returns a multiset where every element occurs as many times
// as in whichever of a and b holds fewer of it. Elements missing from
// either side are absent from the result.
func Intersection[T comparable](a, b *Multiset[T]) *Multiset[T] {
	return merge(a, b, min)
}

// Difference returns a multiset where every element occurs as many times
// as in a minus its occurrences in b, clamped at zero.
func Difference[T comparable](a, b *Multiset[T]) *Multiset[T] {
	return merge(a, b, func(left, right int) int {
		return max(left-right, 0)
	})
}

// merge folds the occurrence counts of both inputs into a fresh multiset,
// combining counts element by element. Inputs are left untouched; combined
// counts below 1 denote absence and are dropped.
func merge[T comparable](a, b *Multiset[T], combine func(left, right int) int) *Multiset[T] {
	out := New[T]()
	for element, left := range a.members {
		if occurrences := combine(left, b.Occurrences(element)); occurrences >= 1 {
			out.add(element, occurrences)
		}
	}
	for element, right := range b.members {
		if a.Contains(element) {
			continue
		}
		if occurrences := combine(0, right); occurrences >= 1 {
			out.add(element, occurrences)
		}
	}
	return out
}
