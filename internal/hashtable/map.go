package hashtable

import "iter"

// Map represents the interface every table flavour provided by this package has to implement
type Map[K comparable, V any] interface {
	// Length returns the amount of stored key-value entries
	Length() int

	// Contains returns whether an entry is stored under the given key
	Contains(key K) bool

	// Lookup returns the value stored under the given key and a boolean indicating
	// whether such an entry exists
	Lookup(key K) (V, bool)

	// Get returns the value stored under the given key.
	// A *KeyNotFoundError is returned if no entry with that key exists.
	Get(key K) (V, error)

	// Set inserts a new entry or updates the value of an existing one in place
	Set(key K, value V)

	// Delete removes the entry stored under the given key.
	// A *KeyNotFoundError is returned if no entry with that key exists.
	Delete(key K) error

	// Keys returns all keys, bucket by bucket, in chain order within a bucket
	Keys() []K

	// Values returns all values in the same order as Keys
	Values() []V

	// Items returns all key-value entries in the same order as Keys
	Items() []Entry[K, V]

	// Iterate returns a lazy, single-use sequence over all entries in the same order as Items
	Iterate() iter.Seq2[K, V]

	// Clear removes all entries
	Clear()
}
