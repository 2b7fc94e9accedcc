package valuecounter

import (
	"cmp"
	"slices"
)

// ValueCount pairs a value with the amount of times it was seen
type ValueCount[K cmp.Ordered] struct {
	Value K
	Count int
}

// ValueCounter counts how many times each value of a column appears
// + counters: amount of occurrences per value
type ValueCounter[K cmp.Ordered] struct {
	counters map[K]int
}

func NewValueCounter[K cmp.Ordered]() *ValueCounter[K] {
	return &ValueCounter[K]{
		counters: make(map[K]int),
	}
}

// UpdateCounter adds one occurrence of value
func (vc *ValueCounter[K]) UpdateCounter(value K) {
	vc.counters[value] += 1
}

// IsEmpty returns true if nothing was counted
func (vc *ValueCounter[K]) IsEmpty() bool {
	return len(vc.counters) == 0
}

// Mode returns the most frequent value and its count. When several values are
// equally frequent the smallest one is returned. ok is false if the counter is empty.
func (vc *ValueCounter[K]) Mode() (mode K, count int, ok bool) {
	for value, counter := range vc.counters {
		if !ok || counter > count || (counter == count && value < mode) {
			mode, count, ok = value, counter, true
		}
	}
	return mode, count, ok
}

// Min returns the smallest value counted. ok is false if the counter is empty.
func (vc *ValueCounter[K]) Min() (smallest K, ok bool) {
	for value := range vc.counters {
		if !ok || value < smallest {
			smallest, ok = value, true
		}
	}
	return smallest, ok
}

// Max returns the largest value counted. ok is false if the counter is empty.
func (vc *ValueCounter[K]) Max() (largest K, ok bool) {
	for value := range vc.counters {
		if !ok || value > largest {
			largest, ok = value, true
		}
	}
	return largest, ok
}

// ValueCounts returns every value with its count, sorted by count in
// descending order. Values with the same count are sorted in ascending order.
func (vc *ValueCounter[K]) ValueCounts() []ValueCount[K] {
	counts := make([]ValueCount[K], 0, len(vc.counters))
	for value, counter := range vc.counters {
		counts = append(counts, ValueCount[K]{Value: value, Count: counter})
	}

	slices.SortFunc(counts, func(a, b ValueCount[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return counts
}
