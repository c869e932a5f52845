package gpt2bpe

import "testing"

func TestSimpleCache(t *testing.T) {
	c := newSimpleCache()

	if _, ok := c.get("missing"); ok {
		t.Error("expected miss for unset key")
	}

	c.put("key", []int{1, 2, 3})
	v, ok := c.get("key")
	if !ok {
		t.Fatal("expected hit after put")
	}
	if len(v) != 3 || v[0] != 1 || v[2] != 3 {
		t.Errorf("got %v, want [1 2 3]", v)
	}

	c.put("key", []int{4, 5})
	v, _ = c.get("key")
	if len(v) != 2 || v[0] != 4 {
		t.Errorf("expected overwrite to [4 5], got %v", v)
	}
}

func TestLRUCacheEviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", []int{1})
	c.put("b", []int{2})
	c.put("c", []int{3}) // evicts "a"

	if _, ok := c.get("a"); ok {
		t.Error("expected 'a' to be evicted")
	}
	if _, ok := c.get("b"); !ok {
		t.Error("expected 'b' to still be present")
	}
	if _, ok := c.get("c"); !ok {
		t.Error("expected 'c' to be present")
	}
}

func TestLRUCacheRecencyOrder(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", []int{1})
	c.put("b", []int{2})
	c.get("a")           // "a" becomes most recently used
	c.put("c", []int{3}) // evicts "b"

	if _, ok := c.get("b"); ok {
		t.Error("expected 'b' to be evicted (least recently used)")
	}
	if _, ok := c.get("a"); !ok {
		t.Error("expected 'a' to survive (recently accessed)")
	}
}

func TestLRUCacheUpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("key", []int{1, 2})
	c.put("key", []int{3, 4})

	v, ok := c.get("key")
	if !ok || len(v) != 2 || v[0] != 3 {
		t.Errorf("got (%v, %v), want ([3 4], true)", v, ok)
	}
}
