package cartesian

import "errors"

// Sentinel errors for the cartesian package. As in the wfc package,
// callers branch with errors.Is; context is added by wrapping at the call
// site rather than baked into the sentinel.
var (
	// ErrEmptySize indicates a zero-dimensional grid (len(size) == 0).
	ErrEmptySize = errors.New("cartesian: size must have at least one axis")

	// ErrInvalidSize indicates a non-positive axis length.
	ErrInvalidSize = errors.New("cartesian: every axis size must be > 0")

	// ErrPeriodsMismatch indicates WithPeriods was given a slice whose
	// length does not match len(size).
	ErrPeriodsMismatch = errors.New("cartesian: periods length must match size length")

	// ErrNoStates indicates a builder was given an empty states slice.
	ErrNoStates = errors.New("cartesian: at least one state is required")

	// ErrRuleCountMismatch indicates NewAxisRules was given a rules slice
	// whose length does not match len(size) (one rule per axis).
	ErrRuleCountMismatch = errors.New("cartesian: rules length must match the number of axes")

	// ErrDirectionCountMismatch indicates NewAllowedNeighbors or
	// NewEdgeTokens was given a per-state table whose length does not
	// equal 2*len(size) (one entry per direction).
	ErrDirectionCountMismatch = errors.New("cartesian: per-state direction table length must equal 2*len(size)")
)
