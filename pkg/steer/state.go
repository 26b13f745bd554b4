package steer

import "sort"

// State is a bag of named widget state values. Values are opaque to the
// engine; in practice they are booleans, numbers, and strings. The key
// set is fixed at engine construction: keys are never added or removed
// afterwards.
type State map[string]any

// clone returns a shallow copy. A nil State clones to an empty one so
// callers can write into the result.
func (s State) clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// keys returns the key set in sorted order for deterministic iteration.
func (s State) keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
