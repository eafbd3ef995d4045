package registry_test

import (
	"reflect"
	"testing"

	"campusmart/internal/registry"
)

type item struct {
	ID   string
	Tags []string
}

func newItems() *registry.Registry[item] {
	return registry.New(
		func(v item) string { return v.ID },
		func(v item) item {
			v.Tags = append([]string(nil), v.Tags...)
			return v
		},
	)
}

func ids(vs []item) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestRegistry_PutPreservesPosition(t *testing.T) {
	r := newItems()
	r.Put(item{ID: "a"})
	r.Put(item{ID: "b"})
	r.Put(item{ID: "c"})

	if replaced := r.Put(item{ID: "b", Tags: []string{"new"}}); !replaced {
		t.Fatal("expected b to be replaced")
	}
	if got := ids(r.Values()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("order = %v", got)
	}
	b, _ := r.Get("b")
	if len(b.Tags) != 1 || b.Tags[0] != "new" {
		t.Fatalf("b not replaced: %+v", b)
	}
}

func TestRegistry_DeleteReindexes(t *testing.T) {
	r := newItems()
	for _, id := range []string{"a", "b", "c", "d"} {
		r.Put(item{ID: id})
	}
	if !r.Delete("b") {
		t.Fatal("expected b to be deleted")
	}
	if r.Delete("missing") {
		t.Fatal("deleting a missing id should report false")
	}
	if got := ids(r.Values()); !reflect.DeepEqual(got, []string{"a", "c", "d"}) {
		t.Fatalf("order after delete = %v", got)
	}
	r.Put(item{ID: "d", Tags: []string{"x"}})
	if got := ids(r.Values()); !reflect.DeepEqual(got, []string{"a", "c", "d"}) {
		t.Fatalf("replace after delete moved record: %v", got)
	}
	if d, ok := r.Get("d"); !ok || len(d.Tags) != 1 {
		t.Fatalf("get d after reindex = %+v, %v", d, ok)
	}
}

func TestRegistry_ReadsAreCopies(t *testing.T) {
	r := newItems()
	r.Put(item{ID: "a", Tags: []string{"orig"}})

	got, _ := r.Get("a")
	got.Tags[0] = "mutated"
	vals := r.Values()
	vals[0].Tags[0] = "mutated"

	again, _ := r.Get("a")
	if again.Tags[0] != "orig" {
		t.Fatalf("registry observed caller mutation: %v", again.Tags)
	}
}

func TestRegistry_UpdateWhere(t *testing.T) {
	r := newItems()
	r.Put(item{ID: "a", Tags: []string{"x"}})
	r.Put(item{ID: "b"})
	r.Put(item{ID: "c", Tags: []string{"x"}})

	n := r.UpdateWhere(
		func(v item) bool { return len(v.Tags) > 0 },
		func(v *item) { v.Tags = nil },
	)
	if n != 2 {
		t.Fatalf("updated %d, want 2", n)
	}
	if got := r.Filter(func(v item) bool { return len(v.Tags) > 0 }); len(got) != 0 {
		t.Fatalf("tags left on %v", ids(got))
	}
}

func TestRegistry_ReplaceDeduplicates(t *testing.T) {
	r := newItems()
	r.Put(item{ID: "old"})
	r.Replace([]item{{ID: "a"}, {ID: "b"}, {ID: "a", Tags: []string{"dup"}}})

	if r.Has("old") {
		t.Fatal("replace kept old contents")
	}
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	a, _ := r.Get("a")
	if len(a.Tags) != 1 {
		t.Fatalf("later duplicate did not win: %+v", a)
	}
}

func TestRegistry_SwapRekeysInPlace(t *testing.T) {
	r := newItems()
	r.Put(item{ID: "a"})
	r.Put(item{ID: "b"})
	r.Put(item{ID: "c"})

	if !r.Swap("b", item{ID: "z"}) {
		t.Fatal("expected swap to find b")
	}
	if got := ids(r.Values()); !reflect.DeepEqual(got, []string{"a", "z", "c"}) {
		t.Fatalf("order = %v", got)
	}
	if r.Has("b") || !r.Has("z") {
		t.Fatal("index not re-keyed")
	}
	if r.Swap("missing", item{ID: "q"}) {
		t.Fatal("swap on a missing id must be a no-op")
	}
}
