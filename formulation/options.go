package formulation

// Options configures Build.
type Options struct {
	// SeedValues is an optional relaxation point over the edges of the graph.
	// When set, its violated subset constraints are added to the model up front.
	SeedValues []float64
}

// Option configures Options.
type Option func(*Options)

// WithSeedValues pre-separates values (length N(N−1)/2) into initial subset
// constraints. The slice is read once during Build and not retained.
func WithSeedValues(values []float64) Option {
	return func(o *Options) { o.SeedValues = values }
}

// DefaultOptions returns an empty configuration: no seed cuts.
func DefaultOptions() Options {
	return Options{}
}
