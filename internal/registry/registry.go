// Package registry provides the insertion-ordered, id-keyed collections that
// back the user, business and product registries.
//
// A Registry is not safe for concurrent use; the market store serializes access.
package registry

// Registry maps unique ids to records while preserving insertion order.
//
// Records go in and come out through the clone function, so callers never
// share memory with the registry.
type Registry[T any] struct {
	key   func(T) string
	clone func(T) T
	items []T
	index map[string]int
}

// New returns an empty registry. key extracts a record's id; clone deep-copies
// a record and may be nil for plain value types.
func New[T any](key func(T) string, clone func(T) T) *Registry[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Registry[T]{key: key, clone: clone, index: make(map[string]int)}
}

// Len returns the number of records.
func (r *Registry[T]) Len() int { return len(r.items) }

// Has reports whether id is present.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Get returns a copy of the record with id.
func (r *Registry[T]) Get(id string) (T, bool) {
	i, ok := r.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.clone(r.items[i]), true
}

// Find returns a copy of the first record, in order, for which match is true.
func (r *Registry[T]) Find(match func(T) bool) (T, bool) {
	for _, v := range r.items {
		if match(v) {
			return r.clone(v), true
		}
	}
	var zero T
	return zero, false
}

// Filter returns copies of every record for which match is true, in order.
func (r *Registry[T]) Filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range r.items {
		if match(v) {
			out = append(out, r.clone(v))
		}
	}
	return out
}

// Put replaces the record with the same id in place, or appends it.
// It reports whether an existing record was replaced.
func (r *Registry[T]) Put(v T) bool {
	id := r.key(v)
	if i, ok := r.index[id]; ok {
		r.items[i] = r.clone(v)
		return true
	}
	r.index[id] = len(r.items)
	r.items = append(r.items, r.clone(v))
	return false
}

// Swap replaces the record stored under id with v in place, re-keying it under
// v's id. It reports whether id was found. v's id must not belong to another record.
func (r *Registry[T]) Swap(id string, v T) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	delete(r.index, id)
	r.items[i] = r.clone(v)
	r.index[r.key(v)] = i
	return true
}

// Update applies fn to the stored record with id. It reports whether id was found.
// fn must not change the record's id.
func (r *Registry[T]) Update(id string, fn func(*T)) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	fn(&r.items[i])
	return true
}

// UpdateWhere applies fn to every stored record for which match is true and
// returns how many were changed. fn must not change a record's id.
func (r *Registry[T]) UpdateWhere(match func(T) bool, fn func(*T)) int {
	n := 0
	for i := range r.items {
		if match(r.items[i]) {
			fn(&r.items[i])
			n++
		}
	}
	return n
}

// Delete removes the record with id. A missing id is a no-op reporting false.
func (r *Registry[T]) Delete(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.key(r.items[j])] = j
	}
	return true
}

// Values returns copies of all records in insertion order.
func (r *Registry[T]) Values() []T {
	out := make([]T, len(r.items))
	for i, v := range r.items {
		out[i] = r.clone(v)
	}
	return out
}

// Replace discards the current contents and loads vs in order. Later
// duplicates of an id replace earlier ones in place.
func (r *Registry[T]) Replace(vs []T) {
	r.items = r.items[:0]
	r.index = make(map[string]int, len(vs))
	for _, v := range vs {
		r.Put(v)
	}
}
