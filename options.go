package schemafetch

type options struct {
	fields []string
}

// Option configures an Adapter or ListAdapter at construction time.
type Option func(*options)

// WithFetchFields sets the relation paths to prefetch on every fetch.
// Nested paths use the "__" delimiter, e.g. "items__product". Fields
// accumulate across repeated options; the adapter imposes no uniqueness
// or ordering constraint of its own.
func WithFetchFields(fields ...string) Option {
	return func(o *options) {
		o.fields = append(o.fields, fields...)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
