package formula

// ============================================================================
// FORMULA OPTIONS — Functional options for extraction and evaluation
// ============================================================================

// Option configures formula behavior via functional options pattern.
type Option func(*config)

type config struct {
	Reserved   map[string]struct{} // lowercase builtin names skipped by extraction
	DummyValue float64             // value bound to every reference during validation
	Suggest    int                 // max did-you-mean suggestions per unknown channel, 0 disables
}

// WithReservedNames replaces the builtin-name list used to filter bare
// identifiers. Matching is case-insensitive.
func WithReservedNames(names []string) Option {
	return func(c *config) {
		c.Reserved = reservedSet(names)
	}
}

// WithDummyValue sets the placeholder bound to every reference when a
// formula is validated without real data.
func WithDummyValue(v float64) Option {
	return func(c *config) {
		c.DummyValue = v
	}
}

// WithSuggestions caps how many near-miss channel names a validation
// error may suggest per unknown reference. 0 disables suggestions.
func WithSuggestions(n int) Option {
	return func(c *config) {
		c.Suggest = n
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Reserved:   reservedSet(DefaultReservedNames),
		DummyValue: 1.0,
		Suggest:    3,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
