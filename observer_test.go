package guardmap_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "github.com/comalice/guardmap"
)

// Test observers see every evaluated mutation in call order, applied and
// blocked, with the blocking reason attached.
func TestObserverSeesDecisions(t *testing.T) {
	var log []Mutation
	m := New([]Entry[string, int]{{"a", 1}},
		PropertiesImmutable(),
		WithObserver(FuncObserver(func(mu Mutation) { log = append(log, mu) })),
	)

	m.Set("b", 2)     // addition: applied
	m.Set("a", 9)     // update: blocked
	m.Delete("b")     // blocked under properties-immutable
	m.Set("size", 1)  // reserved name: blocked
	m.Delete("ghost") // absent key, but the immutability check fires first

	want := []Mutation{
		{Op: "set", Key: "b", Applied: true},
		{Op: "set", Key: "a", Reason: ReasonPropertiesImmutable},
		{Op: "delete", Key: "b", Reason: ReasonPropertiesImmutable},
		{Op: "set", Key: "size", Reason: ReasonReservedName},
		{Op: "delete", Key: "ghost", Reason: ReasonPropertiesImmutable},
	}
	if len(log) != len(want) {
		t.Fatalf("expected %d notifications, got %d: %v", len(want), len(log), log)
	}
	for i, mu := range want {
		if log[i] != mu {
			t.Errorf("notification %d: expected %+v, got %+v", i, mu, log[i])
		}
	}
}

// Test missing-key no-ops on a mutable map are not reported: the policy never
// evaluated them.
func TestObserverSkipsMissingKeyNoops(t *testing.T) {
	var count int
	m := New[string, int](nil, WithObserver(FuncObserver(func(Mutation) { count++ })))

	m.Delete("ghost")
	if count != 0 {
		t.Errorf("expected no notification for a missing-key no-op, got %d", count)
	}

	m.Set("a", 1)
	m.Delete("a")
	m.Clear()
	if count != 3 {
		t.Errorf("expected 3 notifications, got %d", count)
	}
}

// Test the slog-backed observer renders applied and blocked mutations.
func TestSlogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New[string, int](nil, FullyImmutable(), WithObserver(SlogObserver{Logger: logger}))
	m.Set("x", 1)

	out := buf.String()
	if !strings.Contains(out, "blocked") || !strings.Contains(out, "fully-immutable") {
		t.Errorf("expected a blocked log line with the reason, got %q", out)
	}

	buf.Reset()
	n := New[string, int](nil, WithObserver(SlogObserver{Logger: logger}))
	n.Set("x", 1)
	if !strings.Contains(buf.String(), "applied") {
		t.Errorf("expected an applied log line, got %q", buf.String())
	}
}

// Test a nil-logger SlogObserver does not panic.
func TestSlogObserverNilLogger(t *testing.T) {
	m := New[string, int](nil, WithObserver(SlogObserver{}))
	m.Set("x", 1)
}
