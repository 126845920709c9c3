// Package aggregate builds ordered count views over a normalized record
// set. Views are pure functions of their input: none re-applies or
// re-checks a normalization rule, and none mutates the record set.
package aggregate

import "sort"

// Table is an ordered mapping from a category key to a count. Keys keep
// insertion order until one of the sort methods is called.
type Table struct {
	keys   []string
	counts map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add increments the count for key, registering the key on first sight.
func (t *Table) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Get returns the count for key, zero when absent.
func (t *Table) Get(key string) int {
	return t.counts[key]
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.counts[key]
	return ok
}

// Keys returns the keys in their current order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// SortKeys orders keys ascending, which is chronological for year keys.
func (t *Table) SortKeys() *Table {
	sort.Strings(t.keys)
	return t
}

// SortByCount orders keys by descending count, ties broken by key
// ascending so the order is deterministic.
func (t *Table) SortByCount() *Table {
	sort.SliceStable(t.keys, func(i, j int) bool {
		a, b := t.keys[i], t.keys[j]
		if t.counts[a] != t.counts[b] {
			return t.counts[a] > t.counts[b]
		}
		return a < b
	})
	return t
}

// Filter returns a new table keeping only keys with at least min counts,
// preserving key order. Display-side thresholding only: totals must always
// come from the unfiltered table.
func (t *Table) Filter(min int) *Table {
	out := NewTable()
	for _, key := range t.keys {
		if t.counts[key] >= min {
			out.keys = append(out.keys, key)
			out.counts[key] = t.counts[key]
		}
	}
	return out
}
