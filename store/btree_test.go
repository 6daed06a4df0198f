package store

import (
	"bytes"
	"testing"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()
	k, v := []byte("french"), []byte("fry")

	// empty store has nothing
	if base.Has(k) {
		t.Fatal("empty store must not have the key")
	}

	cache := base.CacheWrap()
	cache.Set(k, v)
	if !cache.Has(k) {
		t.Fatal("cache must expose the write")
	}
	if base.Has(k) {
		t.Fatal("write must not reach the base before Write()")
	}

	cache.Write()
	if got := base.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}
}

func TestBTreeCacheDiscard(t *testing.T) {
	base := MemStore()
	k, v := []byte("top"), []byte("hat")
	base.Set(k, v)

	cache := base.CacheWrap()
	cache.Set([]byte("extra"), []byte("junk"))
	cache.Delete(k)
	if cache.Has(k) {
		t.Fatal("delete must be visible in the cache")
	}

	cache.Discard()
	if !base.Has(k) {
		t.Fatal("discard must leave the base untouched")
	}
	if base.Has([]byte("extra")) {
		t.Fatal("discarded write must not reach the base")
	}
}

func TestBTreeCacheDeleteShadowsParent(t *testing.T) {
	base := MemStore()
	k := []byte("gone")
	base.Set(k, []byte("soon"))

	cache := base.CacheWrap()
	cache.Delete(k)
	if cache.Has(k) {
		t.Fatal("deleted key must not be visible")
	}
	if cache.Get(k) != nil {
		t.Fatal("deleted key must read as nil")
	}

	cache.Write()
	if base.Has(k) {
		t.Fatal("delete must propagate on Write()")
	}
}

func TestBTreeCacheLayered(t *testing.T) {
	base := MemStore()
	k, v1, v2 := []byte("key"), []byte("one"), []byte("two")

	outer := base.CacheWrap()
	outer.Set(k, v1)

	// the inner wrap sees the outer's uncommitted write
	inner := outer.CacheWrap()
	if got := inner.Get(k); !bytes.Equal(got, v1) {
		t.Fatalf("want %q, got %q", v1, got)
	}

	inner.Set(k, v2)
	inner.Write()
	if got := outer.Get(k); !bytes.Equal(got, v2) {
		t.Fatalf("inner Write must reach the outer wrap, got %q", got)
	}
	// still nothing in base
	if base.Has(k) {
		t.Fatal("base must be untouched until outer Write()")
	}

	outer.Write()
	if got := base.Get(k); !bytes.Equal(got, v2) {
		t.Fatalf("want %q, got %q", v2, got)
	}
}

func TestBTreeCacheIterator(t *testing.T) {
	base := MemStore()
	base.Set([]byte("a"), []byte{1})
	base.Set([]byte("c"), []byte{3})

	cache := base.CacheWrap()
	cache.Set([]byte("b"), []byte{2})
	cache.Delete([]byte("c"))
	cache.Set([]byte("d"), []byte{4})

	var keys []string
	it := cache.Iterator(nil, nil)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}

	want := []string{"a", "b", "d"}
	if len(keys) != len(want) {
		t.Fatalf("want %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("want %v, got %v", want, keys)
		}
	}
}

func TestBTreeCacheReverseIterator(t *testing.T) {
	base := MemStore()
	base.Set([]byte("a"), []byte{1})

	cache := base.CacheWrap()
	cache.Set([]byte("b"), []byte{2})

	var keys []string
	it := cache.ReverseIterator(nil, nil)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}

	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("want [b a], got %v", keys)
	}
}

func TestSliceIterator(t *testing.T) {
	data := []Model{
		{Key: []byte("a"), Value: []byte{1}},
		{Key: []byte("b"), Value: []byte{2}},
	}
	it := NewSliceIterator(data)
	defer it.Close()

	if !it.Valid() {
		t.Fatal("fresh iterator must be valid")
	}
	if !bytes.Equal(it.Key(), []byte("a")) {
		t.Fatalf("unexpected key %q", it.Key())
	}
	it.Next()
	if !bytes.Equal(it.Value(), []byte{2}) {
		t.Fatalf("unexpected value %v", it.Value())
	}
	it.Next()
	if it.Valid() {
		t.Fatal("iterator must be exhausted")
	}
}
