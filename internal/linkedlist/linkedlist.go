package linkedlist

// node owns one element of a list together with the link to its successor
type node[T any] struct {
	data T
	next *node[T]
}

// List implements a singly linked list with a maintained size and O(1) appends.
// The head reference owns the node chain; the tail reference only caches the last
// node to avoid a full traversal on Append.
// Element equality is supplied at construction because element types do not have
// to be comparable.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	equal func(a, b T) bool
}

// New creates a new list using the given equality function and appends the given initial items, if any
func New[T any](equal func(a, b T) bool, items ...T) *List[T] {
	list := &List[T]{
		equal: equal,
	}
	for _, item := range items {
		list.Append(item)
	}
	return list
}

// IsEmpty returns whether the list holds no items
func (list *List[T]) IsEmpty() bool {
	return list.head == nil
}

// Length returns the amount of stored items
func (list *List[T]) Length() int {
	return list.size
}

// Items returns a newly allocated snapshot of all items, head to tail.
// The snapshot does not reflect later mutations of the list.
func (list *List[T]) Items() []T {
	items := make([]T, 0, list.size)
	for cur := list.head; cur != nil; cur = cur.next {
		items = append(items, cur.data)
	}
	return items
}

// Append inserts the given item at the tail of the list
func (list *List[T]) Append(item T) {
	newNode := &node[T]{data: item}
	if list.tail != nil {
		list.tail.next = newNode
	} else {
		list.head = newNode
	}
	list.tail = newNode
	list.size++
}

// Prepend inserts the given item at the head of the list
func (list *List[T]) Prepend(item T) {
	newNode := &node[T]{data: item, next: list.head}
	if list.head == nil {
		list.tail = newNode
	}
	list.head = newNode
	list.size++
}

// Find returns the first item satisfying the given predicate and a boolean indicating
// whether such an item exists.
// An absent item is a normal empty result, not an error.
func (list *List[T]) Find(predicate func(item T) bool) (T, bool) {
	for cur := list.head; cur != nil; cur = cur.next {
		if predicate(cur.data) {
			return cur.data, true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the first item equal to the given one.
// A *NotFoundError is returned if the list holds no such item.
// The size is only adjusted when a node was actually unlinked.
func (list *List[T]) Delete(item T) error {
	var prev *node[T]
	for cur := list.head; cur != nil; cur = cur.next {
		if !list.equal(cur.data, item) {
			prev = cur
			continue
		}
		if prev == nil {
			list.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == list.tail {
			list.tail = prev
		}
		list.size--
		return nil
	}
	return &NotFoundError{Item: item}
}

// Replace mutates the first item equal to the given one to the new data in place.
// A *NotFoundError is returned if the list holds no such item.
// The size never changes.
func (list *List[T]) Replace(item, newData T) error {
	for cur := list.head; cur != nil; cur = cur.next {
		if list.equal(cur.data, item) {
			cur.data = newData
			return nil
		}
	}
	return &NotFoundError{Item: item}
}

// Clear removes all items from the list
func (list *List[T]) Clear() {
	list.head = nil
	list.tail = nil
	list.size = 0
}
