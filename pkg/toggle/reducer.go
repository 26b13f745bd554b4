package toggle

import "github.com/vango-dev/steer/pkg/steer"

// LimitReducer returns a reducer that allows at most max normal toggle
// transitions, then vetoes further ones. Transitions tagged
// TypeForcedToggle bypass the limit, and a reset clears the count.
//
// The returned reducer carries its count internally and is therefore
// bound to a single widget instance.
func LimitReducer(max int) steer.Reducer {
	var used int
	return func(current steer.State, proposed steer.Proposal) steer.Proposal {
		switch proposed.Type {
		case steer.TypeReset:
			used = 0
			return proposed
		case TypeForcedToggle:
			return proposed
		case TypeToggle:
			if used >= max {
				return steer.Proposal{Type: proposed.Type}
			}
			used++
			return proposed
		default:
			return proposed
		}
	}
}

// ChainReducers composes reducers left to right: each receives the
// previous one's output as its proposal. An empty chain behaves as
// steer.IdentityReducer.
func ChainReducers(reducers ...steer.Reducer) steer.Reducer {
	return func(current steer.State, proposed steer.Proposal) steer.Proposal {
		for _, r := range reducers {
			if r == nil {
				continue
			}
			proposed = r(current, proposed)
		}
		return proposed
	}
}
