package hashtable

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestGuardedBasicOperations(t *testing.T) {
	table := NewGuarded[string, int](8)

	table.Set("I", 1)
	table.Set("V", 5)

	if table.Length() != 2 {
		t.Errorf("Length() = %d, want 2", table.Length())
	}
	if value, err := table.Get("I"); err != nil || value != 1 {
		t.Errorf("Get(I) = (%d, %v), want (1, nil)", value, err)
	}
	if err := table.Delete("I"); err != nil {
		t.Fatalf("Delete(I) returned %v", err)
	}
	var notFound *KeyNotFoundError
	if err := table.Delete("I"); !errors.As(err, &notFound) {
		t.Errorf("Delete(I) returned %v, want *KeyNotFoundError", err)
	}
}

func TestGuardedConcurrentWrites(t *testing.T) {
	table := NewGuarded[string, int](4)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			table.Set(key, i)
			if _, ok := table.Lookup(key); !ok {
				t.Errorf("Lookup(%s) missed a value set by the same goroutine", key)
			}
		}(i)
	}
	wg.Wait()

	if table.Length() != 64 {
		t.Errorf("Length() = %d, want 64", table.Length())
	}
}

func TestGuardedDo(t *testing.T) {
	table := NewGuarded[string, int](8)
	table.Set("hits", 41)

	// Read-modify-write as one atomic unit
	table.Do(func(table Map[string, int]) {
		current, _ := table.Lookup("hits")
		table.Set("hits", current+1)
	})

	if value, _ := table.Lookup("hits"); value != 42 {
		t.Errorf("Lookup(hits) = %d, want 42", value)
	}
}

func TestGuardedIterateSnapshots(t *testing.T) {
	table := NewGuarded[string, int](8)
	table.Set("a", 1)

	seq := table.Iterate()
	table.Set("b", 2)

	count := 0
	for key, value := range seq {
		if key != "a" || value != 1 {
			t.Errorf("snapshot sequence yielded %s=%d", key, value)
		}
		count++
	}
	if count != 1 {
		t.Errorf("snapshot sequence yielded %d entries, want 1", count)
	}
}
