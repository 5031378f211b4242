package hashtable

import (
	"iter"
	"time"

	"github.com/skybi/chaintable/internal/task"
)

type expiringEntry[T any] struct {
	raw      T
	inserted time.Time
}

// ExpiringTable implements the Map interface and wraps a GuardedTable in order to
// implement value expiration
type ExpiringTable[K comparable, V any] struct {
	guarded     *GuardedTable[K, *expiringEntry[V]]
	lifetime    time.Duration
	cleanupTask *task.RepeatingTask
}

var _ Map[int, any] = (*ExpiringTable[int, any])(nil)

// NewExpiring creates a new expiring table whose values exist for a specific lifetime.
// Expired values will not be removed before ScheduleCleanupTask is called.
// Until then this table behaves exactly like a GuardedTable.
func NewExpiring[K comparable, V any](bucketCount int, lifetime time.Duration) *ExpiringTable[K, V] {
	return &ExpiringTable[K, V]{
		guarded:  NewGuarded[K, *expiringEntry[V]](bucketCount),
		lifetime: lifetime,
	}
}

// ScheduleCleanupTask schedules the task that cleans up expired values in a specific interval.
// A call to StopCleanupTask as soon as the table is no longer needed is highly recommended
// because it would not be garbage collected otherwise.
func (obj *ExpiringTable[K, V]) ScheduleCleanupTask(tick time.Duration) {
	if obj.cleanupTask != nil {
		return
	}
	obj.cleanupTask = task.NewRepeating(func() {
		obj.guarded.Do(func(table Map[K, *expiringEntry[V]]) {
			for _, entry := range table.Items() {
				if time.Since(entry.Value.inserted) > obj.lifetime {
					_ = table.Delete(entry.Key)
				}
			}
		})
	}, tick)
	obj.cleanupTask.Start()
}

// StopCleanupTask stops the cleanup task, sweeping expired values one last time
func (obj *ExpiringTable[K, V]) StopCleanupTask() {
	obj.cleanupTask.Stop(true)
	obj.cleanupTask = nil
}

// Length returns the amount of stored key-value entries, including expired ones
// that have not been swept yet
func (obj *ExpiringTable[K, V]) Length() int {
	return obj.guarded.Length()
}

// Contains returns whether an entry is stored under the given key
func (obj *ExpiringTable[K, V]) Contains(key K) bool {
	return obj.guarded.Contains(key)
}

// Lookup returns the value stored under the given key and a boolean indicating
// whether such an entry exists
func (obj *ExpiringTable[K, V]) Lookup(key K) (V, bool) {
	entry, ok := obj.guarded.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return entry.raw, true
}

// Get returns the value stored under the given key.
// A *KeyNotFoundError is returned if no entry with that key exists.
func (obj *ExpiringTable[K, V]) Get(key K) (V, error) {
	entry, err := obj.guarded.Get(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return entry.raw, nil
}

// Set inserts a new entry or updates the value of an existing one in place.
// Updating an entry restarts its lifetime.
func (obj *ExpiringTable[K, V]) Set(key K, value V) {
	obj.guarded.Set(key, &expiringEntry[V]{
		raw:      value,
		inserted: time.Now(),
	})
}

// Delete removes the entry stored under the given key.
// A *KeyNotFoundError is returned if no entry with that key exists.
func (obj *ExpiringTable[K, V]) Delete(key K) error {
	return obj.guarded.Delete(key)
}

// Keys returns all keys, bucket by bucket, in chain order within a bucket
func (obj *ExpiringTable[K, V]) Keys() []K {
	return obj.guarded.Keys()
}

// Values returns all values in the same order as Keys
func (obj *ExpiringTable[K, V]) Values() []V {
	raw := obj.guarded.Items()
	values := make([]V, 0, len(raw))
	for _, entry := range raw {
		values = append(values, entry.Value.raw)
	}
	return values
}

// Items returns all key-value entries in the same order as Keys
func (obj *ExpiringTable[K, V]) Items() []Entry[K, V] {
	raw := obj.guarded.Items()
	items := make([]Entry[K, V], 0, len(raw))
	for _, entry := range raw {
		items = append(items, Entry[K, V]{
			Key:   entry.Key,
			Value: entry.Value.raw,
		})
	}
	return items
}

// Iterate returns a lazy, single-use sequence over all entries in the same order as Items
func (obj *ExpiringTable[K, V]) Iterate() iter.Seq2[K, V] {
	items := obj.Items()
	return func(yield func(K, V) bool) {
		for _, entry := range items {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Clear removes all entries
func (obj *ExpiringTable[K, V]) Clear() {
	obj.guarded.Clear()
}
