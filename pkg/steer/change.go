package steer

// Built-in transition types. Widgets layer their own types on top
// (e.g. "toggle"); these two are the engine's defaults.
const (
	// TypeChange is the default type tag applied to any Change that was
	// not explicitly tagged. Reducers can therefore rely on the type tag
	// always being non-empty.
	TypeChange = "change"

	// TypeReset tags transitions raised by Engine.Reset.
	TypeReset = "reset"
)

// Change describes a desired state mutation: either a literal partial
// state (Patch) or a function from current state to a partial state
// (Compute), optionally annotated with a type tag (WithType).
//
// A Change is ephemeral. It is built by a caller, consumed by a single
// Propose call, and never stored. The zero value is invalid and causes
// Propose to panic.
type Change struct {
	patch   State
	compute func(current State) State
	typ     string
	valid   bool
}

// Patch creates a Change from a literal partial state. An empty or nil
// partial is a valid no-op request.
func Patch(partial State) Change {
	return Change{patch: partial, valid: true}
}

// Compute creates a Change from a function of the current state. The
// function receives the resolved state (controlled keys read from their
// external owner) and returns the partial state to apply. It must be
// pure: it is invoked exactly once per Propose and must not call back
// into the engine.
func Compute(fn func(current State) State) Change {
	if fn == nil {
		panic("[STEER E001] steer: Compute called with nil function")
	}
	return Change{compute: fn, valid: true}
}

// WithType returns a copy of the Change annotated with a type tag. The
// tag identifies the semantic origin of the request (e.g. "toggle",
// "reset") and is visible to the Reducer but never written into state.
func (c Change) WithType(typ string) Change {
	c.typ = typ
	return c
}

// resolve evaluates the Change against the given resolved state and
// returns the requested partial plus the effective type tag. Untagged
// changes get TypeChange so reducers always see a non-empty tag.
func (c Change) resolve(current State) (State, string) {
	typ := c.typ
	if typ == "" {
		typ = TypeChange
	}
	if c.compute != nil {
		return c.compute(current), typ
	}
	return c.patch, typ
}
