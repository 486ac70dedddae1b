package guardmap

// View is the property-style surface over a string-keyed Map: a single name
// space where reserved operation names resolve to the operations themselves,
// bound to this facade, and every other name resolves to container entries
// under the Map's policy. Reserved names always win on read and are always
// rejected on write, regardless of container contents.
type View[V any] struct {
	m *Map[string, V]
}

// Reflect returns the property-style view of m. The view holds no state of
// its own; all access funnels through the same interception layer as the
// typed methods.
func Reflect[V any](m *Map[string, V]) *View[V] {
	return &View[V]{m: m}
}

// Map returns the typed facade behind the view.
func (v *View[V]) Map() *Map[string, V] {
	return v.m
}

// Get resolves name. A reserved operation name yields that operation bound to
// this facade (for example "size" yields a func() int). Any other name
// follows the typed Get semantics, with nil as the absent-value result.
func (v *View[V]) Get(name string) (any, error) {
	if op, ok := v.bridge(name); ok {
		return op, nil
	}
	value, found, err := v.m.Get(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return value, nil
}

// Set delegates to the typed Set; reserved names are always rejected there.
func (v *View[V]) Set(name string, value V) (bool, error) {
	return v.m.Set(name, value)
}

// Delete delegates to the typed Delete.
func (v *View[V]) Delete(name string) (bool, error) {
	return v.m.Delete(name)
}

// Has reports whether name is a reserved operation name or a present entry.
func (v *View[V]) Has(name string) bool {
	return v.m.Has(name)
}

// Clear delegates to the typed Clear.
func (v *View[V]) Clear() (bool, error) {
	return v.m.Clear()
}

// Len returns the current entry count.
func (v *View[V]) Len() int {
	return v.m.Len()
}

// Names returns the union of current container keys, in insertion order, and
// the reserved operation names. A seeded entry whose key collides with a
// reserved name is shadowed by the bridge and listed once.
func (v *View[V]) Names() []string {
	names := make([]string, 0, v.m.Len()+len(bridgeOrder))
	for key := range v.m.Keys() {
		if IsBridgeName(key) {
			continue
		}
		names = append(names, key)
	}
	return append(names, bridgeOrder...)
}

// SetPrototype always fails with *ImmutableStructureError: the facade's
// operation set and underlying type are fixed at construction. This is not
// policy-configurable because it protects the reserved-name invariant itself.
func (v *View[V]) SetPrototype(any) error {
	return &ImmutableStructureError{}
}

// bridge resolves a reserved operation name to the bound operation.
func (v *View[V]) bridge(name string) (any, bool) {
	switch name {
	case "get":
		return func(key string) (V, bool, error) { return v.m.Get(key) }, true
	case "set":
		return func(key string, value V) (bool, error) { return v.m.Set(key, value) }, true
	case "has":
		return func(key string) bool { return v.m.Has(key) }, true
	case "delete":
		return func(key string) (bool, error) { return v.m.Delete(key) }, true
	case "entries":
		return v.m.Entries, true
	case "keys":
		return v.m.Keys, true
	case "values":
		return v.m.Values, true
	case "clear":
		return v.m.Clear, true
	case "forEach":
		return v.m.ForEach, true
	case "size":
		return v.m.Len, true
	case IteratorName:
		// The default-iteration hook is the entries sequence itself.
		return v.m.Entries(), true
	}
	return nil, false
}
