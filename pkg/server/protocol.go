package server

// GestureMessage is sent by the client when the user interacts with a
// widget element.
type GestureMessage struct {
	// Widget names the widget instance: "toggle" or "stepper".
	Widget string `json:"widget"`

	// Gesture is the interaction kind: "click", "force", "reset",
	// "increment", "decrement", "set".
	Gesture string `json:"gesture"`

	// Value carries the payload for input-shaped gestures.
	Value string `json:"value,omitempty"`
}

// StateMessage pushes a widget's resolved state to the client after a
// transition settles.
type StateMessage struct {
	Widget string         `json:"widget"`
	State  map[string]any `json:"state"`
}
