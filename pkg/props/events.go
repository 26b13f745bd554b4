package props

// EventHandler pairs an "on"-prefixed key with its Handler, for
// building Props literals.
type EventHandler struct {
	Event   string
	Handler Handler
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler Handler) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler Handler) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler Handler) EventHandler { return event("dblclick", handler) }

// OnInput handles input events (fired when a value changes).
func OnInput(handler Handler) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when a value is committed).
func OnChange(handler Handler) EventHandler { return event("change", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler Handler) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler Handler) EventHandler { return event("keyup", handler) }

// OnFocus handles focus events.
func OnFocus(handler Handler) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler Handler) EventHandler { return event("blur", handler) }

// New builds a Props bag from attributes and event handlers. Accepted
// items: Props (merged entry by entry), EventHandler, and nothing else;
// unknown item types are ignored.
func New(items ...any) Props {
	out := Props{}
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			continue
		case Props:
			for k, val := range v {
				out[k] = val
			}
		case EventHandler:
			if v.Handler != nil {
				out[v.Event] = v.Handler
			}
		}
	}
	return out
}
