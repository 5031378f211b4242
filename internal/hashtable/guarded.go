package hashtable

import (
	"iter"
	"sync"
)

// GuardedTable wraps a Table with a RWMutex in order to make it safe for concurrent use.
// The table itself stays unsynchronized; this type supplies the external mutual
// exclusion it requires by guarding the whole table with one lock, including the
// cross-bucket size counter.
type GuardedTable[K comparable, V any] struct {
	mtx   sync.RWMutex
	table *Table[K, V]
}

var _ Map[int, any] = (*GuardedTable[int, any])(nil)

// NewGuarded creates a new empty guarded table with the given amount of buckets
func NewGuarded[K comparable, V any](bucketCount int) *GuardedTable[K, V] {
	return &GuardedTable[K, V]{
		table: New[K, V](bucketCount),
	}
}

// Length returns the amount of stored key-value entries
func (guarded *GuardedTable[K, V]) Length() int {
	guarded.mtx.RLock()
	defer guarded.mtx.RUnlock()
	return guarded.table.Length()
}

// Contains returns whether an entry is stored under the given key
func (guarded *GuardedTable[K, V]) Contains(key K) bool {
	_, ok := guarded.Lookup(key)
	return ok
}

// Lookup returns the value stored under the given key and a boolean indicating
// whether such an entry exists
func (guarded *GuardedTable[K, V]) Lookup(key K) (V, bool) {
	guarded.mtx.RLock()
	defer guarded.mtx.RUnlock()
	return guarded.table.Lookup(key)
}

// Get returns the value stored under the given key.
// A *KeyNotFoundError is returned if no entry with that key exists.
func (guarded *GuardedTable[K, V]) Get(key K) (V, error) {
	guarded.mtx.RLock()
	defer guarded.mtx.RUnlock()
	return guarded.table.Get(key)
}

// Set inserts a new entry or updates the value of an existing one in place
func (guarded *GuardedTable[K, V]) Set(key K, value V) {
	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()
	guarded.table.Set(key, value)
}

// Delete removes the entry stored under the given key.
// A *KeyNotFoundError is returned if no entry with that key exists.
func (guarded *GuardedTable[K, V]) Delete(key K) error {
	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()
	return guarded.table.Delete(key)
}

// Keys returns all keys, bucket by bucket, in chain order within a bucket
func (guarded *GuardedTable[K, V]) Keys() []K {
	guarded.mtx.RLock()
	defer guarded.mtx.RUnlock()
	return guarded.table.Keys()
}

// Values returns all values in the same order as Keys
func (guarded *GuardedTable[K, V]) Values() []V {
	guarded.mtx.RLock()
	defer guarded.mtx.RUnlock()
	return guarded.table.Values()
}

// Items returns all key-value entries in the same order as Keys
func (guarded *GuardedTable[K, V]) Items() []Entry[K, V] {
	guarded.mtx.RLock()
	defer guarded.mtx.RUnlock()
	return guarded.table.Items()
}

// Iterate returns a lazy, single-use sequence over all entries in the same order as Items.
// The entries are snapshotted under the read lock; no lock is held while the
// sequence is being consumed.
func (guarded *GuardedTable[K, V]) Iterate() iter.Seq2[K, V] {
	items := guarded.Items()
	return func(yield func(K, V) bool) {
		for _, entry := range items {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Clear removes all entries
func (guarded *GuardedTable[K, V]) Clear() {
	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()
	guarded.table.Clear()
}

// Do runs the given function on the underlying table while holding the write lock.
// It allows compound operations that have to be atomic as a whole.
func (guarded *GuardedTable[K, V]) Do(action func(table Map[K, V])) {
	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()
	action(guarded.table)
}
