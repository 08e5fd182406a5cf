package tile

import "testing"

func TestLruEviction(t *testing.T) {
	var evicted []string
	lru := newLruCache[int](2, func(key string, val int) {
		evicted = append(evicted, key)
	})

	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Get("a") // a becomes most recent
	lru.Put("c", 3)

	if len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("evicted: got %v, want [b]", evicted)
	}
	if lru.Get("a") != 1 || lru.Get("c") != 3 {
		t.Error("survivors lost their values")
	}
	if lru.Get("b") != 0 {
		t.Error("evicted key must read as zero")
	}
	if lru.Len() != 2 {
		t.Errorf("len: got %d, want 2", lru.Len())
	}
}

func TestLruUpdateMovesToFront(t *testing.T) {
	lru := newLruCache[int](2, nil)
	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Put("a", 10)
	lru.Put("c", 3)

	if lru.Get("a") != 10 {
		t.Errorf("updated value: got %d, want 10", lru.Get("a"))
	}
	if lru.Get("b") != 0 {
		t.Error("b should have been evicted")
	}
}

func TestLruClear(t *testing.T) {
	lru := newLruCache[int](4, nil)
	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Clear()
	if lru.Len() != 0 {
		t.Errorf("len after clear: got %d, want 0", lru.Len())
	}
}
