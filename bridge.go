package guardmap

// IteratorName is the reserved name of the default-iteration hook on the
// property-style surface.
const IteratorName = "@@iterator"

// bridgeOrder lists the reserved operation names in their fixed enumeration
// order. These always resolve to built-in behavior on the View surface and can
// never be stored, shadowed, or deleted as container entries, under any policy.
var bridgeOrder = []string{
	"get",
	"set",
	"has",
	"delete",
	"entries",
	"keys",
	"values",
	"clear",
	"forEach",
	"size",
	IteratorName,
}

var bridgeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(bridgeOrder))
	for _, name := range bridgeOrder {
		set[name] = struct{}{}
	}
	return set
}()

// IsBridgeName reports whether name is a reserved operation name.
func IsBridgeName(name string) bool {
	_, ok := bridgeSet[name]
	return ok
}

// BridgeNames returns the reserved operation names in enumeration order.
func BridgeNames() []string {
	names := make([]string, len(bridgeOrder))
	copy(names, bridgeOrder)
	return names
}

// isReservedKey reports whether a container key collides with the bridge.
// Only string keys can collide; the check is a no-op for every other key type.
func isReservedKey(key any) bool {
	s, ok := key.(string)
	return ok && IsBridgeName(s)
}
