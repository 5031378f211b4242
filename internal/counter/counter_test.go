package counter

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestAddAndGet(t *testing.T) {
	hits := New[string]()

	hits.Add("a", 1)
	hits.Add("a", 2)
	hits.Add("b", 5)

	if got := hits.Get("a"); got != 3 {
		t.Errorf("Get(a) = %d, want 3", got)
	}
	if got := hits.Get("b"); got != 5 {
		t.Errorf("Get(b) = %d, want 5", got)
	}
	if got := hits.Get("untracked"); got != 0 {
		t.Errorf("Get(untracked) = %d, want 0", got)
	}
	if hits.Len() != 2 {
		t.Errorf("Len() = %d, want 2", hits.Len())
	}
}

func TestDrain(t *testing.T) {
	hits := New[string]()
	hits.Add("a", 1)
	hits.Add("b", 2)

	totals := hits.Drain()
	if len(totals) != 2 || totals["a"] != 1 || totals["b"] != 2 {
		t.Errorf("Drain() = %v, want map[a:1 b:2]", totals)
	}

	if hits.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", hits.Len())
	}
	if got := hits.Get("a"); got != 0 {
		t.Errorf("Get(a) after Drain = %d, want 0", got)
	}
}

func TestConcurrentAdds(t *testing.T) {
	hits := New[uuid.UUID]()
	client := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				hits.Add(client, 1)
			}
		}()
	}
	wg.Wait()

	if got := hits.Get(client); got != 320 {
		t.Errorf("Get() = %d, want 320", got)
	}
}
