package syncmap

import "sync"

// Map is a thread-safe generic map that lists values in insertion order.
type Map[T any] struct {
	mux  sync.RWMutex
	m    map[string]T
	keys []string
}

// NewMap creates a new instance of Map
func NewMap[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or updates an item by name. Updating keeps the original position.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.m[name] = value
}

// PutIfAbsent adds value unless name is already present. It reports whether
// the value was added.
func (r *Map[T]) PutIfAbsent(name string, value T) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; ok {
		return false
	}
	r.keys = append(r.keys, name)
	r.m[name] = value
	return true
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		return
	}
	delete(r.m, name)
	for i, key := range r.keys {
		if key == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.keys)
}

// Keys returns item names in insertion order.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]string(nil), r.keys...)
}

// List returns a slice of all items in insertion order
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.keys))
	for _, key := range r.keys {
		ret = append(ret, r.m[key])
	}
	return ret
}
