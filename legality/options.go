// SPDX-License-Identifier: MIT

package legality

import "log/slog"

// Option configures a Checker.
type Option func(*Options)

// Options holds the Checker configuration.
type Options struct {
	// Logger receives a debug record for every rejection and a summary per
	// search. nil disables logging.
	Logger *slog.Logger

	// MaxResults stops LegalOrders after this many orders; 0 means all.
	MaxResults int
}

// DefaultOptions returns silent options without a result cap.
func DefaultOptions() Options {
	return Options{Logger: nil, MaxResults: 0}
}

// WithLogger installs l; nil keeps the checker silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxResults caps LegalOrders. It panics on a negative n.
func WithMaxResults(n int) Option {
	if n < 0 {
		panic(panicNegativeMaxResults)
	}

	return func(o *Options) {
		o.MaxResults = n
	}
}
