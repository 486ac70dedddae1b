package guardmap

import (
	"fmt"
	"strconv"
)

// BlockReason identifies which rule rejected a mutation.
type BlockReason string

const (
	// ReasonFullyImmutable means the whole structure is immutable.
	ReasonFullyImmutable BlockReason = "fully-immutable"

	// ReasonPropertiesImmutable means existing entries are immutable.
	ReasonPropertiesImmutable BlockReason = "properties-immutable"

	// ReasonReservedName means the key is a reserved operation name.
	ReasonReservedName BlockReason = "reserved-name"
)

// MutationBlockedError reports a mutation rejected by the immutability policy
// or by the reserved-name rule. Returned only when ErrorOnMutationBlocked is
// set; otherwise the rejection degrades to a not-applied result.
type MutationBlockedError struct {
	Op     string // "set", "delete", or "clear"
	Key    any    // nil for clear
	Reason BlockReason
}

func (e *MutationBlockedError) Error() string {
	target := e.Op
	if e.Key != nil {
		target = fmt.Sprintf("%s %s", e.Op, formatKey(e.Key))
	}
	switch e.Reason {
	case ReasonReservedName:
		return fmt.Sprintf("guardmap: %s blocked: key is a reserved operation name", target)
	case ReasonPropertiesImmutable:
		return fmt.Sprintf("guardmap: %s blocked: existing entries are immutable", target)
	default:
		return fmt.Sprintf("guardmap: %s blocked: map is fully immutable", target)
	}
}

// MissingKeyError reports a read or delete of an absent key. Returned only
// when ErrorOnMissingKey is set; otherwise the access degrades to the
// absent-value or not-applied result.
type MissingKeyError struct {
	Op  string // "get" or "delete"
	Key any
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("guardmap: %s %s: key not present", e.Op, formatKey(e.Key))
}

// ImmutableStructureError reports an attempt to alter the facade's own shape,
// such as replacing its prototype. Always raised, regardless of policy: the
// operation set protects the reserved-name invariant itself.
type ImmutableStructureError struct{}

func (e *ImmutableStructureError) Error() string {
	return "guardmap: facade structure is fixed and cannot be altered"
}

// formatKey renders a key for error messages. Strings are quoted so empty and
// whitespace keys stay visible.
func formatKey(key any) string {
	if s, ok := key.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", key)
}
