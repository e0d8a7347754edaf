package sets_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/databrickslabs/sandbox/buckets/sets"
	"github.com/stretchr/testify/assert"
)

func ExampleHash() {
	stop := sets.NewHash("the", "a", "of")
	fmt.Println(stop.Has("the"), stop.Has("word"), stop.Size())
	// Output:
	// true false 3
}

func TestHashDeduplicates(t *testing.T) {
	s := sets.NewHash("kevin", "jim", "kevin", "kevin")
	assert.Equal(t, 2, s.Size())
	assert.ElementsMatch(t, []string{"jim", "kevin"}, s.Items())
}

func TestHashAddDelete(t *testing.T) {
	s := sets.NewHash[int]()
	s.Add(1, 2, 3)
	s.Delete(2)
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
	assert.Equal(t, []int{1, 3}, slices.Sorted(s.All()))
}

func TestSortedStringAscends(t *testing.T) {
	s := sets.NewSortedString("pear", "apple", "plum", "apple")
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []string{"apple", "pear", "plum"}, s.ToSlice())
}

func TestSortedStringDelete(t *testing.T) {
	s := sets.NewSortedString("a", "b", "c")
	s.Delete("b")
	assert.False(t, s.Has("b"))
	assert.Equal(t, []string{"a", "c"}, s.ToSlice())
}

func TestSortedStringClear(t *testing.T) {
	s := sets.NewSortedString("a", "b")
	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.ToSlice())
}

func TestSortedStringForEachStops(t *testing.T) {
	s := sets.NewSortedString("a", "b", "c", "d")
	var visited []string
	s.ForEach(func(element string) bool {
		visited = append(visited, element)
		return len(visited) < 2
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}
