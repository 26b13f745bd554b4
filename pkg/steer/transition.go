package steer

import "time"

// Transition is the record of one settled Propose call, delivered to
// observers after the settle callback. It describes what was requested,
// what the reducer let through, and how each key was routed.
type Transition struct {
	// Type is the transition's type tag.
	Type string

	// Requested is the resolved partial state before the reducer ran.
	Requested State

	// Reduced is the partial state after the reducer, tag stripped.
	// Empty for no-op transitions.
	Reduced State

	// Committed lists the uncontrolled keys written into the internal
	// bag, in sorted order.
	Committed []string

	// Notified lists the controlled keys whose reduced values were
	// surfaced to their external owners, in sorted order.
	Notified []string

	// Vetoed is true when the request was non-empty but the reducer
	// returned an empty proposal.
	Vetoed bool

	// Start and End bound the Propose call.
	Start time.Time
	End   time.Time
}

// Status summarizes how the transition resolved: "committed",
// "notified", "vetoed", or "noop". A transition that both committed and
// notified reports "committed".
func (t Transition) Status() string {
	switch {
	case len(t.Committed) > 0:
		return "committed"
	case len(t.Notified) > 0:
		return "notified"
	case t.Vetoed:
		return "vetoed"
	default:
		return "noop"
	}
}

// Observer receives a Transition record after every settled Propose
// call. Observers run after the settle callback, outside the engine
// lock, in registration order.
type Observer interface {
	ObserveTransition(t Transition)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(t Transition)

// ObserveTransition implements Observer.
func (f ObserverFunc) ObserveTransition(t Transition) { f(t) }
