// Options for configuring Map instances at construction time.
package guardmap

// settings collects construction-time configuration before the Map exists.
type settings struct {
	policy   Policy
	observer Observer
}

// Option configures a Map at construction time.
type Option func(*settings)

// WithPolicy replaces the whole policy record. Normalization still applies.
func WithPolicy(p Policy) Option {
	return func(s *settings) { s.policy = p }
}

// FullyImmutable forbids adding, changing, and removing entries.
func FullyImmutable() Option {
	return func(s *settings) { s.policy.FullyImmutable = true }
}

// PropertiesImmutable forbids changing and removing existing entries.
// Additions remain allowed.
func PropertiesImmutable() Option {
	return func(s *settings) { s.policy.PropertiesImmutable = true }
}

// ErrorOnMutationBlocked surfaces policy-blocked mutations as errors.
func ErrorOnMutationBlocked() Option {
	return func(s *settings) { s.policy.ErrorOnMutationBlocked = true }
}

// ErrorOnMissingKey surfaces reads and deletes of absent keys as errors.
func ErrorOnMissingKey() Option {
	return func(s *settings) { s.policy.ErrorOnMissingKey = true }
}

// WithObserver configures an Observer notified after every evaluated mutation.
func WithObserver(o Observer) Option {
	return func(s *settings) { s.observer = o }
}
