package hashtable

import (
	"testing"
	"time"
)

func TestExpiringBehavesNormallyWithoutCleanup(t *testing.T) {
	table := NewExpiring[string, int](8, time.Millisecond)

	table.Set("key", 1)
	time.Sleep(20 * time.Millisecond)

	// No cleanup task is scheduled, so even expired values stay readable
	if value, ok := table.Lookup("key"); !ok || value != 1 {
		t.Errorf("Lookup(key) = (%d, %t), want (1, true)", value, ok)
	}
	if table.Length() != 1 {
		t.Errorf("Length() = %d, want 1", table.Length())
	}
}

func TestExpiringSweepsExpiredValues(t *testing.T) {
	table := NewExpiring[string, int](8, 10*time.Millisecond)
	table.ScheduleCleanupTask(5 * time.Millisecond)
	defer func() {
		if table.cleanupTask != nil {
			table.StopCleanupTask()
		}
	}()

	table.Set("short", 1)

	deadline := time.Now().Add(2 * time.Second)
	for table.Contains("short") {
		if time.Now().After(deadline) {
			t.Fatal("value was not swept within 2s")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if table.Length() != 0 {
		t.Errorf("Length() = %d after sweep, want 0", table.Length())
	}
}

func TestExpiringStopSweepsOneLastTime(t *testing.T) {
	table := NewExpiring[string, int](8, time.Millisecond)
	table.ScheduleCleanupTask(time.Hour)

	table.Set("key", 1)
	time.Sleep(20 * time.Millisecond)

	// The tick is far in the future, so only the final sweep on Stop removes the value
	table.StopCleanupTask()
	if table.Contains("key") {
		t.Error("Contains(key) = true after the final sweep")
	}
}

func TestExpiringUnwrapsValues(t *testing.T) {
	table := NewExpiring[string, string](8, time.Minute)
	table.Set("a", "1")
	table.Set("b", "2")

	items := table.Items()
	if len(items) != 2 {
		t.Fatalf("Items() yielded %d entries, want 2", len(items))
	}
	for _, entry := range items {
		if value, err := table.Get(entry.Key); err != nil || value != entry.Value {
			t.Errorf("Get(%s) = (%q, %v), want (%q, nil)", entry.Key, value, err, entry.Value)
		}
	}
	if values := table.Values(); len(values) != 2 {
		t.Errorf("Values() yielded %d entries, want 2", len(values))
	}

	got := map[string]string{}
	for key, value := range table.Iterate() {
		got[key] = value
	}
	if len(got) != 2 || got["a"] != "1" || got["b"] != "2" {
		t.Errorf("Iterate yielded %v", got)
	}
}
