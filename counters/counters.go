package counters

import (
	"sort"

	"github.com/databrickslabs/sandbox/buckets/multiset"
)

type Counter[K comparable] map[K]int

func NewStringCounter() Counter[string] {
	return Counter[string]{}
}

func (c Counter[K]) Add(k K) {
	c.AddN(k, 1)
}

func (c Counter[K]) AddN(k K, n int) {
	c[k] += n
}

// Total sums up all counts in the counter.
func (c Counter[K]) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

func (c Counter[K]) Without(without K) Counter[K] {
	out := Counter[K]{}
	for k, v := range c {
		if k == without {
			continue
		}
		out[k] = v
	}
	return out
}

type Pair[K comparable] struct {
	Key   K
	Count int
}

// Stats returns (key, count) pairs sorted by descending count.
func (c Counter[K]) Stats() (stats []Pair[K]) {
	for k, v := range c {
		stats = append(stats, Pair[K]{k, v})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

func (c Counter[K]) Keys() (out []K) {
	for _, v := range c.Stats() {
		out = append(out, v.Key)
	}
	return out
}

func (c Counter[K]) HeadOrDefault(k K) K {
	keys := c.Keys()
	if len(keys) == 0 {
		return k
	}
	return keys[0]
}

// Multiset converts the counter into a multiset holding the same
// occurrence counts. Non-positive counts denote absence and are skipped.
func (c Counter[K]) Multiset() *multiset.Multiset[K] {
	return multiset.FromCounts(c)
}
