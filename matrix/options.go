package matrix

// Option customizes matrix construction. Options follow the functional
// pattern: zero options give a zero-filled matrix.
type Option func(*config)

// config collects construction-time settings resolved by New.
type config struct {
	defaultValue int // fill value for every cell created by New
}

// defaultConfig returns the baseline construction settings.
func defaultConfig() config {
	return config{defaultValue: 0}
}

// WithDefaultValue sets the fill value used for all cells created by New.
// It does not affect values supplied later via Set, InsertRow or InsertColumn.
func WithDefaultValue(v int) Option {
	return func(c *config) {
		c.defaultValue = v
	}
}
