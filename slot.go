package fluent

// slot holds the deferred result for the "matched" key of a boolean-keyed
// builder. Only the true key is ever read at resolution, so the false key is
// not stored at all.
//
// The first offer wins; later offers are dropped without error.
type slot[V any] struct {
	filled bool
	value  V
}

// offer stores v if the slot is empty and reports whether it did.
func (s *slot[V]) offer(v V) bool {
	if s.filled {
		return false
	}
	s.value = v
	s.filled = true
	return true
}

func (s *slot[V]) get() (V, bool) {
	return s.value, s.filled
}

// table is a value-keyed registration table with first-write-wins insertion.
type table[K comparable, V any] struct {
	entries map[K]V
}

func newTable[K comparable, V any]() table[K, V] {
	return table[K, V]{entries: make(map[K]V)}
}

// putIfAbsent stores v under key unless key is already present.
func (t table[K, V]) putIfAbsent(key K, v V) bool {
	if _, ok := t.entries[key]; ok {
		return false
	}
	t.entries[key] = v
	return true
}

func (t table[K, V]) get(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t table[K, V]) len() int {
	return len(t.entries)
}
