package multiset_test

import (
	"maps"
	"testing"

	"github.com/databrickslabs/sandbox/buckets/multiset"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAlgebra(t *testing.T) {
	a := multiset.Of("x", "x", "x", "y")
	b := multiset.Of("x", "y", "y", "z")

	tests := []struct {
		name   string
		result *multiset.Multiset[string]
		want   map[string]int
	}{
		{"sum", multiset.Sum(a, b), map[string]int{"x": 4, "y": 3, "z": 1}},
		{"union", multiset.Union(a, b), map[string]int{"x": 3, "y": 2, "z": 1}},
		{"intersection", multiset.Intersection(a, b), map[string]int{"x": 1, "y": 1}},
		{"difference", multiset.Difference(a, b), map[string]int{"x": 2}},
		{"reverse difference", multiset.Difference(b, a), map[string]int{"y": 1, "z": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, maps.Collect(tt.result.Counts())); diff != "" {
				t.Errorf("unexpected counts (-want +got):\n%s", diff)
			}
		})
	}

	// inputs stay untouched
	assert.Equal(t, 4, a.Count())
	assert.Equal(t, 4, b.Count())
}

func TestAlgebraWithEmpty(t *testing.T) {
	empty := multiset.New[string]()
	bag := multiset.Of("a", "a")

	assert.True(t, multiset.Sum(empty, bag).Equal(bag))
	assert.True(t, multiset.Union(bag, empty).Equal(bag))
	assert.True(t, multiset.Intersection(bag, empty).IsEmpty())
	assert.True(t, multiset.Difference(bag, empty).Equal(bag))
	assert.True(t, multiset.Difference(empty, bag).IsEmpty())
}

func TestAlgebraResultsAreFresh(t *testing.T) {
	a := multiset.Of("a")
	b := multiset.Of("a")
	sum := multiset.Sum(a, b)
	sum.InsertN("a", 10)
	assert.Equal(t, 1, a.Occurrences("a"))
	assert.Equal(t, 1, b.Occurrences("a"))
	assert.Equal(t, 12, sum.Occurrences("a"))
}

func TestIntersectionOfDisjointIsEmpty(t *testing.T) {
	left := multiset.Of(1, 2)
	right := multiset.Of(3, 4)
	assert.True(t, multiset.Intersection(left, right).IsEmpty())
	assert.True(t, multiset.Difference(left, right).Equal(left))
}
