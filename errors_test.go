package guardmap_test

import (
	"strings"
	"testing"

	. "github.com/comalice/guardmap"
)

// Test that MutationBlockedError messages deterministically encode the rule,
// the operation, and the key.
func TestMutationBlockedErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *MutationBlockedError
		want []string
	}{
		{
			"fully immutable set",
			&MutationBlockedError{Op: "set", Key: "x", Reason: ReasonFullyImmutable},
			[]string{"set", `"x"`, "fully immutable"},
		},
		{
			"properties immutable set",
			&MutationBlockedError{Op: "set", Key: "x", Reason: ReasonPropertiesImmutable},
			[]string{"set", `"x"`, "existing entries"},
		},
		{
			"reserved name",
			&MutationBlockedError{Op: "set", Key: "size", Reason: ReasonReservedName},
			[]string{"set", `"size"`, "reserved"},
		},
		{
			"delete",
			&MutationBlockedError{Op: "delete", Key: "a", Reason: ReasonFullyImmutable},
			[]string{"delete", `"a"`, "fully immutable"},
		},
		{
			"clear has no key",
			&MutationBlockedError{Op: "clear", Reason: ReasonPropertiesImmutable},
			[]string{"clear", "existing entries"},
		},
		{
			"non-string key",
			&MutationBlockedError{Op: "set", Key: 7, Reason: ReasonFullyImmutable},
			[]string{"set", "7"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.err.Error()
			if !strings.HasPrefix(msg, "guardmap: ") {
				t.Errorf("message should carry the package prefix: %q", msg)
			}
			for _, part := range tc.want {
				if !strings.Contains(msg, part) {
					t.Errorf("message %q should contain %q", msg, part)
				}
			}
		})
	}
}

// Test MissingKeyError messages name the operation and the key.
func TestMissingKeyErrorMessages(t *testing.T) {
	err := &MissingKeyError{Op: "get", Key: "ghost"}
	msg := err.Error()
	if !strings.Contains(msg, "get") || !strings.Contains(msg, `"ghost"`) {
		t.Errorf("message %q should name op and key", msg)
	}

	err = &MissingKeyError{Op: "delete", Key: ""}
	if !strings.Contains(err.Error(), `""`) {
		t.Errorf("empty string keys must stay visible: %q", err.Error())
	}
}

// Test ImmutableStructureError has a stable, non-empty message.
func TestImmutableStructureErrorMessage(t *testing.T) {
	err := &ImmutableStructureError{}
	if !strings.HasPrefix(err.Error(), "guardmap: ") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
