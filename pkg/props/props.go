package props

import "strings"

// Event is the fixed-arity argument passed to every Handler. The engine
// is render-agnostic, so Event carries only what gesture dispatch
// needs: the gesture kind, the element it targeted, and an optional
// string payload for input-shaped events.
type Event struct {
	// Kind is the gesture kind: "click", "input", "keydown", ...
	Kind string

	// Target identifies the interactive element the gesture hit.
	Target string

	// Value is the payload for input-shaped events, empty otherwise.
	Value string
}

// Handler handles one Event. Handlers are wiring, not transactions: a
// panic in a handler propagates to the dispatcher.
type Handler func(e Event)

// Props holds attributes and event handlers ready to attach to an
// interactive element. Handler entries use "on"-prefixed keys
// ("onclick", "oninput") and Handler values; everything else is a
// display attribute.
type Props map[string]any

// Handler returns the handler stored under the given key, or nil if
// the entry is absent or not a Handler.
func (p Props) Handler(key string) Handler {
	h, _ := p[key].(Handler)
	return h
}

// clone returns a shallow copy.
func (p Props) clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// IsHandlerKey reports whether the key names an event handler entry.
func IsHandlerKey(key string) bool {
	return strings.HasPrefix(key, "on")
}

// Compose returns a single Handler that invokes every non-nil input
// handler in the order supplied, forwarding the identical Event to
// each. Absent (nil) handlers are skipped. A panic in one handler
// aborts the remaining invocations and propagates to the caller.
func Compose(handlers ...Handler) Handler {
	return func(e Event) {
		for _, h := range handlers {
			if h != nil {
				h(e)
			}
		}
	}
}

// Merge layers override entries onto base. Non-handler keys are
// last-write-wins: the override is authoritative for display
// attributes. Handler keys are composed instead of overwritten, base
// handler first, so neither side's wiring is lost.
func Merge(base, overrides Props) Props {
	out := base.clone()
	for key, value := range overrides {
		if IsHandlerKey(key) {
			if ov, ok := value.(Handler); ok {
				if bv := out.Handler(key); bv != nil {
					out[key] = Compose(bv, ov)
					continue
				}
				out[key] = ov
				continue
			}
		}
		out[key] = value
	}
	return out
}
