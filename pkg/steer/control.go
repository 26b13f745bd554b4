package steer

// Control wires external ownership for a single state key.
//
// A key is controlled whenever Value reports ok=true. The engine
// re-evaluates this on every read: a consumer may switch a key between
// controlled and uncontrolled at any point in the widget's lifetime,
// and the engine follows without desynchronizing.
//
// While controlled, the engine never writes the key into its internal
// bag. When a transition wants to mutate the key, the reduced value is
// delivered to OnChange instead; the external owner decides whether to
// adopt it. Reads keep returning the external value until the owner
// itself updates it.
//
// Value and OnChange must not call back into the engine.
type Control struct {
	// Value returns the current external value for the key. ok=false
	// means the key is uncontrolled right now and the engine's internal
	// bag is authoritative.
	Value func() (value any, ok bool)

	// OnChange is invoked with the value the engine would have
	// committed, after it has passed through the Reducer. Optional; nil
	// means the owner does not want change notifications.
	OnChange func(value any)
}

// value returns the external value and whether the control currently
// claims the key.
func (c Control) value() (any, bool) {
	if c.Value == nil {
		return nil, false
	}
	return c.Value()
}

// isControlled reports whether the control currently claims the key.
func (c Control) isControlled() bool {
	_, ok := c.value()
	return ok
}
