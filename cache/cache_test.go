package cache

import (
	"fmt"
	"testing"
)

func TestCache_BoundNeverExceeded(t *testing.T) {
	c := New[int](8)
	for i := 0; i < 1000; i++ {
		c.Insert(fmt.Sprintf("pattern-%d", i), i)
		if c.Size() > 8 {
			t.Fatalf("cache size = %d after %d inserts, want <= 8", c.Size(), i+1)
		}
	}
	if c.Size() != 8 {
		t.Errorf("final cache size = %d, want 8", c.Size())
	}
}

func TestCache_FIFOEviction(t *testing.T) {
	c := New[int](2)
	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("c", 3) // evicts "a"

	if _, ok := c.Get("a"); ok {
		t.Error("expected \"a\" to have been evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected \"b\" to still be cached")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected \"c\" to be cached")
	}
}

func TestCache_GetHitsAndMisses(t *testing.T) {
	c := New[int](4)
	c.Insert("a", 1)
	c.Get("a")
	c.Get("missing")

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (1, 1)", hits, misses)
	}
}

func TestCache_DisabledCacheStoresNothing(t *testing.T) {
	c := New[int](0)
	if c.Enabled() {
		t.Error("Enabled() = true for maxSize 0")
	}
	c.Insert("a", 1)
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 for a disabled cache", c.Size())
	}
}

func TestCache_UpdateExistingEntryDoesNotGrow(t *testing.T) {
	c := New[int](2)
	c.Insert("a", 1)
	c.Insert("a", 2)
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1 after re-inserting the same key", c.Size())
	}
	v, _ := c.Get("a")
	if v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
}
