package hashtable

import "fmt"

// KeyNotFoundError is returned by lookups and removals targeting a key no entry is stored under
type KeyNotFoundError struct {
	Key any
}

func (err *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %v", err.Key)
}
