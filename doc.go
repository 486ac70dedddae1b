// Package guardmap provides a policy-enforcing facade over an insertion-ordered
// key/value container.
//
// Every read, write, delete, and existence check goes through the facade, which
// evaluates a small immutability Policy before the underlying container is
// touched. The Policy is normalized and frozen at construction; full
// immutability always implies property immutability.
//
// # Surfaces
//
// Map is the typed, method-style surface:
//
//	m := guardmap.New([]guardmap.Entry[string, int]{{"a", 1}, {"b", 2}},
//		guardmap.PropertiesImmutable(),
//		guardmap.ErrorOnMutationBlocked(),
//	)
//	applied, err := m.Set("c", 3) // addition: applied
//	applied, err = m.Set("a", 9)  // update: *MutationBlockedError
//
// View (via Reflect) is the property-style surface for string-keyed maps. A
// fixed set of reserved operation names (get, set, has, delete, entries, keys,
// values, clear, forEach, size, and the default-iteration hook) always resolves
// to the bound built-in operations and can never be stored or deleted as
// entries, under any policy.
//
// Interop presents a Map through the gods container interfaces so generic code
// written against maps.Map accepts the facade without ever seeing the raw
// container.
//
// # Failure modes
//
// A rejected operation is classified as either a policy-blocked mutation or a
// missing-key access. Each category independently degrades to a silent
// not-applied result or surfaces as a typed error (*MutationBlockedError,
// *MissingKeyError), selected by the ErrorOnMutationBlocked and
// ErrorOnMissingKey policy flags. Checks run before the container is touched,
// so a rejected operation never partially applies.
//
// # Concurrency
//
// A Map is not safe for concurrent use. Guard it with the same mutual
// exclusion you would use for an ordinary map.
package guardmap
