package steer

import (
	"fmt"
	"sync"
	"time"
)

// Engine is the single authority for turning a Change into either a
// committed internal state change or an external notification, with the
// Reducer's veto/transform rights respected uniformly in both cases.
//
// An Engine expects the single-threaded call discipline typical of UI
// event dispatch: one Propose runs to completion before the next
// begins. Engines are fully independent; nothing is shared between
// instances.
type Engine struct {
	// bag is the internal state. Only the commit step writes it, and
	// never for controlled keys.
	bag State

	// initial is the snapshot taken at construction. Immutable; Reset
	// proposes it back through the full reducer pipeline.
	initial State

	// mu protects bag. Callbacks and user-supplied functions run
	// outside the lock, except Control.Value reads during resolution.
	mu sync.RWMutex

	reducer   Reducer
	controls  map[string]Control
	observers []Observer
	onSettle  func(t Transition)
}

// New creates an Engine from the given options. The initial state
// defines the engine's key set for its lifetime. Wiring a Control for a
// key absent from the initial state is a contract violation and panics.
func New(opts ...Option) *Engine {
	options := applyOptions(opts)

	e := &Engine{
		bag:       options.initial.clone(),
		initial:   options.initial.clone(),
		reducer:   options.reducer,
		controls:  options.controls,
		observers: options.observers,
		onSettle:  options.onSettle,
	}

	for key := range e.controls {
		if _, ok := e.bag[key]; !ok {
			panic(fmt.Sprintf("[STEER E002] steer: control wired for unknown key %q", key))
		}
	}

	return e
}

// Propose resolves a Change against current state, routes it through
// the Reducer, and either commits (uncontrolled keys) or notifies the
// external owner (controlled keys) without committing.
//
// The Reducer runs exactly once, with the state as observed at the
// start of the call. If it returns an empty proposal the transition is
// a defined no-op: nothing is written and no owner is notified.
//
// onSettled, if non-nil, receives the resolved post-commit state:
// controlled keys read from their external owner, uncontrolled keys
// from the just-committed bag. It therefore never reports a stale or
// internally-inconsistent value. Observers run after onSettled.
//
// A zero-value Change is a contract violation and panics; so is a
// change naming a key outside the engine's key set.
func (e *Engine) Propose(req Change, onSettled func(resolved State)) {
	if !req.valid {
		panic("[STEER E001] steer: invalid Change, construct with Patch or Compute")
	}

	start := time.Now()

	// Resolve the request and run the reducer against the state as
	// observed at the start of the call, outside the lock.
	e.mu.RLock()
	current := e.resolvedLocked()
	e.mu.RUnlock()

	requested, typ := req.resolve(current)
	e.checkKeys(requested)

	proposal := e.reducer(current, Proposal{Type: typ, Changes: requested})

	// The tag stops here: only the reduced partial reaches the bag.
	out := outcome{changes: proposal.Changes}
	if len(proposal.Changes) == 0 {
		out = outcome{noChange: true, vetoed: len(requested) > 0}
	}
	e.checkKeys(out.changes)

	var committed, notified []string
	var deferred []func()

	e.mu.Lock()
	if !out.noChange {
		staged := make(State, len(out.changes))
		for _, key := range out.changes.keys() {
			value := out.changes[key]
			if ctrl, ok := e.controls[key]; ok && ctrl.isControlled() {
				// Controlled: never written. Surface the reduced value
				// to the owner once the lock is released.
				notified = append(notified, key)
				if fn := ctrl.OnChange; fn != nil {
					v := value
					deferred = append(deferred, func() { fn(v) })
				}
				continue
			}
			staged[key] = value
			committed = append(committed, key)
		}
		// Single atomic commit: a reader never sees part of a change.
		for k, v := range staged {
			e.bag[k] = v
		}
	}
	settled := e.resolvedLocked()
	e.mu.Unlock()

	// Callbacks run outside the lock: external owners first, then the
	// settle callback, then the lifecycle hook and observers.
	for _, fn := range deferred {
		fn()
	}
	if onSettled != nil {
		onSettled(settled)
	}

	t := Transition{
		Type:      typ,
		Requested: requested.clone(),
		Reduced:   out.changes.clone(),
		Committed: committed,
		Notified:  notified,
		Vetoed:    out.vetoed,
		Start:     start,
		End:       time.Now(),
	}
	if e.onSettle != nil {
		e.onSettle(t)
	}
	for _, obs := range e.observers {
		obs.ObserveTransition(t)
	}
}

// Reset proposes the initial snapshot back through the full reducer
// pipeline, tagged TypeReset. The reducer may veto or transform a reset
// like any other transition; onSettled is delivered post-commit.
func (e *Engine) Reset(onSettled func(resolved State)) {
	e.Propose(Patch(e.initial.clone()).WithType(TypeReset), onSettled)
}

// Get returns the resolved value for a key: the external value when the
// key is currently controlled, the internal bag's value otherwise.
// Controlled-ness is evaluated fresh on every call. Unknown keys panic.
func (e *Engine) Get(key string) any {
	e.mu.RLock()
	defer e.mu.RUnlock()

	internal, ok := e.bag[key]
	if !ok {
		panic(fmt.Sprintf("[STEER E002] steer: unknown state key %q", key))
	}
	if ctrl, wired := e.controls[key]; wired {
		if external, controlled := ctrl.value(); controlled {
			return external
		}
	}
	return internal
}

// Snapshot returns a resolved copy of the whole state bag.
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolvedLocked()
}

// IsControlled reports whether the consumer currently supplies an
// external value for the key. Unknown keys panic.
func (e *Engine) IsControlled(key string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.bag[key]; !ok {
		panic(fmt.Sprintf("[STEER E002] steer: unknown state key %q", key))
	}
	ctrl, wired := e.controls[key]
	return wired && ctrl.isControlled()
}

// Keys returns the engine's key set in sorted order.
func (e *Engine) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bag.keys()
}

// Initial returns a copy of the construction-time snapshot.
func (e *Engine) Initial() State {
	return e.initial.clone()
}

// resolvedLocked builds the resolved view of the bag: controlled keys
// read from their external owner, the rest from the internal bag.
// Caller holds at least a read lock.
func (e *Engine) resolvedLocked() State {
	out := make(State, len(e.bag))
	for k, v := range e.bag {
		if ctrl, wired := e.controls[k]; wired {
			if external, controlled := ctrl.value(); controlled {
				out[k] = external
				continue
			}
		}
		out[k] = v
	}
	return out
}

// checkKeys panics if the partial names a key outside the engine's key
// set. Silently dropping such a key would desynchronize internal and
// controlled state, so the engine fails loudly instead.
func (e *Engine) checkKeys(partial State) {
	if len(partial) == 0 {
		return
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	for key := range partial {
		if _, ok := e.bag[key]; !ok {
			panic(fmt.Sprintf("[STEER E002] steer: unknown state key %q", key))
		}
	}
}
