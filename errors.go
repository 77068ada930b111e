package wfc

import "errors"

// Sentinel errors for the wfc package. Callers branch on these with
// errors.Is; contextual detail is added by wrapping with fmt.Errorf("%w: ...")
// at the call site rather than baking detail into the sentinel itself.
var (
	// ErrInvalidForcedState is returned by CollapseNode when the requested
	// state is not a member of the node's current candidate set. This is a
	// caller-visible logic error; the engine never raises it internally.
	ErrInvalidForcedState = errors.New("wfc: state not in node's candidate set")

	// ErrNoValidStates is returned when propagation empties a node's
	// candidate set, or when weighted sampling finds no placeable state
	// with positive weight. This is a legitimate search failure — the
	// library does not backtrack or retry.
	ErrNoValidStates = errors.New("wfc: no valid states")
)
