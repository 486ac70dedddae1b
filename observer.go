package guardmap

import "log/slog"

// Mutation describes one mutation attempt evaluated by the facade. Observers
// receive the facade's decision, never the container: a non-applied Mutation
// carries the reason that blocked it.
type Mutation struct {
	Op      string // "set", "delete", or "clear"
	Key     any    // nil for clear
	Applied bool
	Reason  BlockReason // set when Applied is false
}

// Observer is notified synchronously after every evaluated mutation, applied
// or blocked. Observers cannot veto; missing-key no-ops are not reported
// because the policy never evaluated them.
type Observer interface {
	OnMutation(m Mutation)
}

// FuncObserver adapts a plain function to the Observer interface.
type FuncObserver func(Mutation)

func (f FuncObserver) OnMutation(m Mutation) { f(m) }

// SlogObserver logs every mutation attempt through a slog.Logger. A nil
// Logger falls back to slog.Default.
type SlogObserver struct {
	Logger *slog.Logger
}

func (o SlogObserver) OnMutation(m Mutation) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if m.Applied {
		logger.Debug("guardmap mutation applied", "op", m.Op, "key", m.Key)
		return
	}
	logger.Warn("guardmap mutation blocked", "op", m.Op, "key", m.Key, "reason", string(m.Reason))
}
