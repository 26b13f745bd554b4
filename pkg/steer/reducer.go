package steer

// Proposal is the reducer's view of a pending transition: the resolved
// partial state plus the type tag describing where the request came
// from. The tag is informational only; it is stripped before anything
// reaches the state bag.
type Proposal struct {
	// Type is the transition's type tag. Always non-empty: untagged
	// requests default to TypeChange.
	Type string

	// Changes is the partial state the transition wants to apply.
	Changes State
}

// Reducer intercepts every transition before it commits. It receives
// the current resolved state and the proposal and returns the proposal
// that should actually apply. Returning a proposal with empty Changes
// vetoes the transition entirely (a defined no-op, not an error).
//
// A Reducer must be pure with respect to the engine: it is invoked
// exactly once per Propose, with the state as observed at the start of
// that call, and must not call back into the engine.
type Reducer func(current State, proposed Proposal) Proposal

// IdentityReducer is the default Reducer: it applies every proposal
// unchanged.
func IdentityReducer(current State, proposed Proposal) Proposal {
	return proposed
}

// outcome is the result of the reducer pipeline. The no-change path is
// a first-class case rather than an emptiness check scattered around
// the commit logic.
type outcome struct {
	// noChange is true when the pipeline degraded to a no-op: the
	// request resolved to nothing, or the reducer vetoed it.
	noChange bool

	// vetoed is true when the request was non-empty but the reducer
	// returned an empty proposal.
	vetoed bool

	// changes is the reduced partial state, tag already stripped.
	// Empty when noChange is true.
	changes State
}
