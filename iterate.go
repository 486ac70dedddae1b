package guardmap

import "iter"

// Entries returns a lazy, restartable sequence of the current entries in
// insertion order. Each range over the sequence walks the container afresh, so
// it reflects contents at range time. It is a live view, not a snapshot;
// mutating the map mid-iteration follows the ordered container's usual
// iterator semantics.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			key, _ := it.Key().(K)
			value, _ := it.Value().(V)
			if !yield(key, value) {
				return
			}
		}
	}
}

// Keys returns a lazy, restartable sequence of the current keys in insertion
// order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			key, _ := it.Key().(K)
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns a lazy, restartable sequence of the current values in
// insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			value, _ := it.Value().(V)
			if !yield(value) {
				return
			}
		}
	}
}

// ForEach invokes fn for each entry in insertion order. The third argument is
// this same facade, never the bare container, so the callback cannot bypass
// the policy by mutating storage directly.
func (m *Map[K, V]) ForEach(fn func(value V, key K, m *Map[K, V])) {
	for key, value := range m.Entries() {
		fn(value, key, m)
	}
}
