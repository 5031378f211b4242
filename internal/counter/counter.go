package counter

import "github.com/skybi/chaintable/internal/hashtable"

// Counter keeps track of accumulating integer totals per key, for example hit or
// usage counts, and hands them out in batches.
// It is safe for concurrent use.
type Counter[K comparable] struct {
	totals *hashtable.GuardedTable[K, int64]
}

// New creates a new counter
func New[K comparable]() *Counter[K] {
	return &Counter[K]{
		totals: hashtable.NewGuarded[K, int64](hashtable.DefaultBucketCount),
	}
}

// Add accumulates the total of a specific key by the given delta
func (counter *Counter[K]) Add(key K, delta int64) {
	counter.totals.Do(func(table hashtable.Map[K, int64]) {
		current, _ := table.Lookup(key)
		table.Set(key, current+delta)
	})
}

// Get returns the current total of a specific key.
// Keys without a tracked total report 0.
func (counter *Counter[K]) Get(key K) int64 {
	total, _ := counter.totals.Lookup(key)
	return total
}

// Len returns the amount of keys with a tracked total
func (counter *Counter[K]) Len() int {
	return counter.totals.Length()
}

// Drain returns all tracked totals and resets the counter
func (counter *Counter[K]) Drain() map[K]int64 {
	var snapshot map[K]int64
	counter.totals.Do(func(table hashtable.Map[K, int64]) {
		items := table.Items()
		snapshot = make(map[K]int64, len(items))
		for _, entry := range items {
			snapshot[entry.Key] = entry.Value
		}
		table.Clear()
	})
	return snapshot
}
