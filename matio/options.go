package matio

// DefaultDelimiter separates values within a row of the text format.
const DefaultDelimiter = ";"

// Option customizes reading and writing of the delimited format.
type Option func(*config)

type config struct {
	delimiter string
}

func defaultConfig() config {
	return config{delimiter: DefaultDelimiter}
}

// WithDelimiter replaces the ";" value separator. An empty delimiter is
// ignored and the default kept.
func WithDelimiter(d string) Option {
	return func(c *config) {
		if d != "" {
			c.delimiter = d
		}
	}
}
