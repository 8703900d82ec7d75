package slotq

import "log/slog"

type options struct {
	logger *slog.Logger
	checks bool
}

// Option configures arena construction behavior.
type Option func(*options)

// WithLogger attaches a structured logger to the arena. The arena logs
// lifecycle events at Debug and, in checked mode, structural corruption at
// Error before panicking. Passing nil leaves logging disabled (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithChecks enables checked mode: every mutating operation re-validates the
// full structure afterwards and panics on corruption. Meant for tests and
// debugging, since it turns O(1) operations into O(capacity).
func WithChecks(enabled bool) Option {
	return func(o *options) {
		o.checks = enabled
	}
}
