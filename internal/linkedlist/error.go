package linkedlist

import "fmt"

// NotFoundError is returned when an operation expects an item the list does not hold
type NotFoundError struct {
	Item any
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("item not found: %v", err.Item)
}
