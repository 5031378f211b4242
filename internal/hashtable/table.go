package hashtable

import (
	"hash/maphash"
	"iter"

	"github.com/skybi/chaintable/internal/linkedlist"
)

// DefaultBucketCount is the amount of buckets used when no valid bucket count is requested
const DefaultBucketCount = 8

// Entry represents a single key-value pair stored in a table
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Table implements the Map interface using a fixed amount of buckets, resolving
// hash collisions by chaining colliding entries into a per-bucket linked list.
// The bucket array is chosen at construction and never grown; point operations
// degrade linearly with the length of the target bucket's chain instead.
// A Table provides no synchronization; use GuardedTable to share one across goroutines.
type Table[K comparable, V any] struct {
	seed    maphash.Seed
	buckets []*linkedlist.List[Entry[K, V]]
	size    int
}

var _ Map[int, any] = (*Table[int, any])(nil)

// New creates a new empty table with the given amount of buckets.
// Bucket counts below 1 fall back to DefaultBucketCount.
func New[K comparable, V any](bucketCount int) *Table[K, V] {
	if bucketCount < 1 {
		bucketCount = DefaultBucketCount
	}
	buckets := make([]*linkedlist.List[Entry[K, V]], bucketCount)
	for i := range buckets {
		// The chains only ever compare entries the table has already located by
		// key, so key equality is the equality relation they need.
		buckets[i] = linkedlist.New(func(a, b Entry[K, V]) bool {
			return a.Key == b.Key
		})
	}
	return &Table[K, V]{
		seed:    maphash.MakeSeed(),
		buckets: buckets,
	}
}

// bucketIndex returns the index of the bucket the given key is stored in.
// The mapping is deterministic for the lifetime of the table.
func (table *Table[K, V]) bucketIndex(key K) int {
	return int(maphash.Comparable(table.seed, key) % uint64(len(table.buckets)))
}

// Length returns the amount of stored key-value entries
func (table *Table[K, V]) Length() int {
	return table.size
}

// Contains returns whether an entry is stored under the given key
func (table *Table[K, V]) Contains(key K) bool {
	_, ok := table.Lookup(key)
	return ok
}

// Lookup returns the value stored under the given key and a boolean indicating
// whether such an entry exists
func (table *Table[K, V]) Lookup(key K) (V, bool) {
	bucket := table.buckets[table.bucketIndex(key)]
	entry, ok := bucket.Find(func(entry Entry[K, V]) bool {
		return entry.Key == key
	})
	if !ok {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

// Get returns the value stored under the given key.
// A *KeyNotFoundError is returned if no entry with that key exists.
func (table *Table[K, V]) Get(key K) (V, error) {
	value, ok := table.Lookup(key)
	if !ok {
		var zero V
		return zero, &KeyNotFoundError{Key: key}
	}
	return value, nil
}

// Set inserts a new entry or updates the value of an existing one in place.
// The total size only grows when the key was not present before.
func (table *Table[K, V]) Set(key K, value V) {
	bucket := table.buckets[table.bucketIndex(key)]
	entry := Entry[K, V]{Key: key, Value: value}
	if bucket.Replace(entry, entry) == nil {
		return
	}
	bucket.Append(entry)
	table.size++
}

// Delete removes the entry stored under the given key.
// A *KeyNotFoundError is returned if no entry with that key exists; the total
// size is only adjusted when an entry was actually removed.
func (table *Table[K, V]) Delete(key K) error {
	bucket := table.buckets[table.bucketIndex(key)]
	if bucket.Delete(Entry[K, V]{Key: key}) != nil {
		return &KeyNotFoundError{Key: key}
	}
	table.size--
	return nil
}

// Keys returns all keys, bucket by bucket, in chain order within a bucket.
// The order is only stable as long as the table is not modified between calls.
func (table *Table[K, V]) Keys() []K {
	keys := make([]K, 0, table.size)
	for _, bucket := range table.buckets {
		for _, entry := range bucket.Items() {
			keys = append(keys, entry.Key)
		}
	}
	return keys
}

// Values returns all values in the same order as Keys
func (table *Table[K, V]) Values() []V {
	values := make([]V, 0, table.size)
	for _, bucket := range table.buckets {
		for _, entry := range bucket.Items() {
			values = append(values, entry.Value)
		}
	}
	return values
}

// Items returns all key-value entries in the same order as Keys
func (table *Table[K, V]) Items() []Entry[K, V] {
	items := make([]Entry[K, V], 0, table.size)
	for _, bucket := range table.buckets {
		items = append(items, bucket.Items()...)
	}
	return items
}

// Iterate returns a lazy sequence over all entries in the same order as Items.
// A returned sequence may only be consumed once; every call to Iterate starts
// a fresh scan from the first bucket.
func (table *Table[K, V]) Iterate() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range table.buckets {
			for _, entry := range bucket.Items() {
				if !yield(entry.Key, entry.Value) {
					return
				}
			}
		}
	}
}

// Clear removes all entries.
// The buckets themselves stay in place, only their chains are emptied.
func (table *Table[K, V]) Clear() {
	for _, bucket := range table.buckets {
		bucket.Clear()
	}
	table.size = 0
}
