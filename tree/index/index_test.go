package index

import (
	"slices"
	"testing"
)

// Test_Primary_PutGet tests adding and resolving entries.
func Test_Primary_PutGet(t *testing.T) {
	idx := NewPrimary[string, int](10)

	idx.Put("root", 1)
	idx.Put("child1", 2)
	idx.Put("child2", 3)

	if v, ok := idx.Get("root"); !ok || v != 1 {
		t.Errorf("Get(root) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := idx.Get("child2"); !ok || v != 3 {
		t.Errorf("Get(child2) = %d, %v; want 3, true", v, ok)
	}
	if _, ok := idx.Get("missing"); ok {
		t.Error("Get(missing) should report ok=false")
	}

	stats := idx.Stats()
	if stats.Entries != 3 {
		t.Errorf("Expected 3 entries, got %d", stats.Entries)
	}
	if stats.Impl != "Primary" {
		t.Errorf("Expected impl=Primary, got %s", stats.Impl)
	}
}

// Test_Primary_PutOverwrites tests that Put replaces an existing entry.
func Test_Primary_PutOverwrites(t *testing.T) {
	idx := NewPrimary[string, int](0)

	idx.Put("a", 1)
	idx.Put("a", 2)

	if v, _ := idx.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d; want 2", v)
	}
	if idx.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", idx.Len())
	}
}

// Test_Primary_Delete tests removal, including deleting absent keys.
func Test_Primary_Delete(t *testing.T) {
	idx := NewPrimary[string, int](0)

	idx.Put("a", 1)
	idx.Delete("a")
	idx.Delete("a") // safe on absent keys
	idx.Delete("never-added")

	if _, ok := idx.Get("a"); ok {
		t.Error("Deleted entry should be gone")
	}
	if idx.Len() != 0 {
		t.Errorf("Expected 0 entries, got %d", idx.Len())
	}
}

// Test_Primary_KeysSorted tests sorted key enumeration.
func Test_Primary_KeysSorted(t *testing.T) {
	idx := NewPrimary[string, int](0)

	idx.Put("b", 2)
	idx.Put("a", 1)
	idx.Put("c", 3)

	got := idx.Keys()
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys() = %v; want %v", got, want)
	}
}

// Test_Tags_OrderPreserved tests that registration order survives lookups.
func Test_Tags_OrderPreserved(t *testing.T) {
	idx := NewTags[string]()

	idx.Add("hot", "c")
	idx.Add("hot", "a")
	idx.Add("hot", "b")

	keys, ok := idx.Get("hot")
	if !ok {
		t.Fatal("Expected tag to be registered")
	}
	if !slices.Equal(keys, []string{"c", "a", "b"}) {
		t.Errorf("Get(hot) = %v; want registration order [c a b]", keys)
	}
}

// Test_Tags_NoDeduplication tests that repeated keys are kept.
func Test_Tags_NoDeduplication(t *testing.T) {
	idx := NewTags[string]()

	idx.Add("hot", "a")
	idx.Add("hot", "a")

	keys, _ := idx.Get("hot")
	if len(keys) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(keys))
	}
}

// Test_Tags_UnregisteredTag tests the ok=false contract.
func Test_Tags_UnregisteredTag(t *testing.T) {
	idx := NewTags[string]()

	if _, ok := idx.Get("nope"); ok {
		t.Error("Get on an unregistered tag should report ok=false")
	}
}

// Test_Tags_TagsSorted tests sorted tag enumeration and stats.
func Test_Tags_TagsSorted(t *testing.T) {
	idx := NewTags[int]()

	idx.Add("zeta", 1)
	idx.Add("alpha", 2)

	if got := idx.Tags(); !slices.Equal(got, []string{"alpha", "zeta"}) {
		t.Errorf("Tags() = %v; want [alpha zeta]", got)
	}

	stats := idx.Stats()
	if stats.Entries != 2 || stats.Impl != "Tags" {
		t.Errorf("Stats() = %+v; want 2 entries, impl=Tags", stats)
	}
}
