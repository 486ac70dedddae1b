package guardmap

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Entry is one key/value pair used to seed a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a policy-enforcing facade over an insertion-ordered key/value
// container. The container is owned exclusively by the Map and is never
// exposed to callers; every operation consults the Policy and current
// container state before touching it.
//
// The mode (mutable, properties-immutable, fully-immutable) is fixed at
// construction; there are no transitions between modes afterward.
type Map[K comparable, V any] struct {
	inner    *linkedhashmap.Map
	policy   Policy
	observer Observer
}

// New constructs a facade seeded with entries, in order. Nil or empty entries
// mean an empty map. Construction never fails: the policy is coerced and
// normalized, and seeding bypasses interception (the policy governs access,
// not initial contents).
func New[K comparable, V any](entries []Entry[K, V], opts ...Option) *Map[K, V] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	m := &Map[K, V]{
		inner:    linkedhashmap.New(),
		policy:   s.policy.normalized(),
		observer: s.observer,
	}
	for _, e := range entries {
		m.inner.Put(e.Key, e.Value)
	}
	return m
}

// Policy returns a copy of the normalized policy governing this Map.
func (m *Map[K, V]) Policy() Policy {
	return m.policy
}

// Get returns the value stored under key and whether the key is present.
// An absent key yields (zero, false, nil), or (zero, false, *MissingKeyError)
// when ErrorOnMissingKey is set. Get never mutates the container.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var zero V
	raw, found := m.inner.Get(key)
	if !found {
		if m.policy.ErrorOnMissingKey {
			return zero, false, &MissingKeyError{Op: "get", Key: key}
		}
		return zero, false, nil
	}
	value, _ := raw.(V)
	return value, true, nil
}

// Set stores value under key and reports whether the write applied.
//
// The write is rejected when key is a reserved operation name (always, under
// any policy), when the map is fully immutable, or when existing entries are
// immutable and key is already present. Additions under PropertiesImmutable
// alone stay allowed. A rejection yields (false, nil), or
// (false, *MutationBlockedError) when ErrorOnMutationBlocked is set.
func (m *Map[K, V]) Set(key K, value V) (bool, error) {
	if reason, blocked := m.setBlocked(key); blocked {
		return m.rejectMutation("set", key, reason)
	}
	m.inner.Put(key, value)
	m.notify(Mutation{Op: "set", Key: key, Applied: true})
	return true, nil
}

// Delete removes key and reports whether a deletion occurred.
//
// Deleting is a change under either immutability mode, so it is rejected
// whenever FullyImmutable or PropertiesImmutable is set, present or absent
// key. That check precedes the missing-key check. Past it, an absent key
// yields (false, nil), or (false, *MissingKeyError) when ErrorOnMissingKey
// is set.
func (m *Map[K, V]) Delete(key K) (bool, error) {
	if reason, blocked := m.deleteBlocked(key); blocked {
		return m.rejectMutation("delete", key, reason)
	}
	if _, found := m.inner.Get(key); !found {
		if m.policy.ErrorOnMissingKey {
			return false, &MissingKeyError{Op: "delete", Key: key}
		}
		return false, nil
	}
	m.inner.Remove(key)
	m.notify(Mutation{Op: "delete", Key: key, Applied: true})
	return true, nil
}

// Has reports whether key is a reserved operation name or currently present
// in the container. Has never errors and never mutates.
func (m *Map[K, V]) Has(key K) bool {
	if isReservedKey(key) {
		return true
	}
	_, found := m.inner.Get(key)
	return found
}

// Len returns the current entry count.
func (m *Map[K, V]) Len() int {
	return m.inner.Size()
}

// Clear removes all entries, subject to the same rejection rule as Delete:
// blocked under either immutability mode.
func (m *Map[K, V]) Clear() (bool, error) {
	if reason, blocked := m.immutableBlocked(); blocked {
		return m.rejectMutation("clear", nil, reason)
	}
	m.inner.Clear()
	m.notify(Mutation{Op: "clear", Applied: true})
	return true, nil
}

// setBlocked classifies a write rejection, checked in fixed order: reserved
// name, full immutability, update of an existing entry.
func (m *Map[K, V]) setBlocked(key K) (BlockReason, bool) {
	if isReservedKey(key) {
		return ReasonReservedName, true
	}
	if m.policy.FullyImmutable {
		return ReasonFullyImmutable, true
	}
	if m.policy.PropertiesImmutable {
		if _, found := m.inner.Get(key); found {
			return ReasonPropertiesImmutable, true
		}
	}
	return "", false
}

// deleteBlocked classifies a delete rejection. Reserved names can never be
// deleted; otherwise either immutability mode blocks, key state irrelevant.
func (m *Map[K, V]) deleteBlocked(key K) (BlockReason, bool) {
	if isReservedKey(key) {
		return ReasonReservedName, true
	}
	return m.immutableBlocked()
}

func (m *Map[K, V]) immutableBlocked() (BlockReason, bool) {
	if m.policy.FullyImmutable {
		return ReasonFullyImmutable, true
	}
	if m.policy.PropertiesImmutable {
		return ReasonPropertiesImmutable, true
	}
	return "", false
}

// rejectMutation turns a classified rejection into the caller-visible form
// selected by ErrorOnMutationBlocked. The container is untouched either way.
func (m *Map[K, V]) rejectMutation(op string, key any, reason BlockReason) (bool, error) {
	m.notify(Mutation{Op: op, Key: key, Reason: reason})
	if m.policy.ErrorOnMutationBlocked {
		return false, &MutationBlockedError{Op: op, Key: key, Reason: reason}
	}
	return false, nil
}

func (m *Map[K, V]) notify(mu Mutation) {
	if m.observer != nil {
		m.observer.OnMutation(mu)
	}
}
