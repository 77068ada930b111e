package cartesian

// Option customizes a grid construction by mutating a private config
// before the grid is allocated: last-option-wins, applied in order,
// deterministic zero-value defaults when omitted.
type Option[S comparable] func(*config[S])

// config aggregates the knobs shared by every constructor in this package.
type config[S comparable] struct {
	periods []bool
	weights map[S]float64
}

// newConfig applies opts over deterministic defaults: no periodic axes,
// no weight overrides (every state defaults to weight 1 inside wfc).
func newConfig[S comparable](opts []Option[S]) config[S] {
	cfg := config[S]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPeriods marks which axes wrap (torus) versus terminate (boundary).
// len(periods) must equal len(size) passed to the constructor; omitting
// WithPeriods entirely defaults every axis to non-periodic, matching the
// original C++ library's default-constructed (all-false) periods array.
func WithPeriods[S comparable](periods []bool) Option[S] {
	return func(c *config[S]) {
		c.periods = periods
	}
}

// WithWeights overrides the default weight (1) for the given states. A
// state absent from the map keeps weight 1; a state mapped to 0 is excluded
// from random sampling without being removed from any node's candidate set.
func WithWeights[S comparable](w map[S]float64) Option[S] {
	return func(c *config[S]) {
		c.weights = w
	}
}
