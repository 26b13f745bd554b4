// Package steer is a controllable state engine for interactive widgets.
//
// A widget author ships default behavior; the widget's consumer can
// intercept and rewrite every state transition before it commits (the
// state reducer), take external ownership of individual state keys
// (controlled mode), or both. The engine is UI-tree-agnostic: it knows
// nothing about markup or rendering and is driven as a plain stateful
// object by an external render loop.
//
// The unit of work is a proposal. A gesture raises a Change, the engine
// resolves it against current state, routes it through the consumer's
// Reducer, and then either commits (uncontrolled keys) or notifies the
// external owner (controlled keys) without committing. Both sides see
// the same resolved value at settle time.
//
// Example:
//
//	e := steer.New(
//	    steer.WithInitialState(steer.State{"on": false}),
//	)
//	e.Propose(steer.Compute(func(s steer.State) steer.State {
//	    return steer.State{"on": !s["on"].(bool)}
//	}), nil)
//	on := e.Get("on").(bool) // true
package steer
