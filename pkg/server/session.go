package server

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/steer/pkg/props"
	"github.com/vango-dev/steer/pkg/steer"
	"github.com/vango-dev/steer/pkg/stepper"
	"github.com/vango-dev/steer/pkg/toggle"
)

// nextSessionID is the monotonically increasing session counter.
var nextSessionID atomic.Uint64

// Widget names used on the wire.
const (
	widgetToggle  = "toggle"
	widgetStepper = "stepper"
)

// session owns one WebSocket connection and the widget instances bound
// to it. Widgets are per-session; nothing is shared across connections.
type session struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	toggle  *toggle.Toggle
	stepper *stepper.Stepper

	// Prop bundles are built once; gestures dispatch through their
	// composed handlers, the same way a render layer would.
	togglerProps   props.Props
	resetProps     props.Props
	incrementProps props.Props
	decrementProps props.Props
	inputProps     props.Props

	// writeMu serializes writes to the connection.
	writeMu sync.Mutex
}

// newSession wires the demo widgets for one connection: a toggle behind
// a click-limit reducer and a clamped stepper, both reporting to the
// server's transition observer.
func newSession(conn *websocket.Conn, config *ServerConfig, obs steer.Observer, logger *slog.Logger) *session {
	id := fmt.Sprintf("sess-%d", nextSessionID.Add(1))

	s := &session{
		id:     id,
		conn:   conn,
		logger: logger.With("session", id),
	}

	s.toggle = toggle.New(
		toggle.WithReducer(toggle.LimitReducer(config.ToggleLimit)),
		toggle.WithOnToggle(func(bool) { s.pushToggle() }),
		toggle.WithOnReset(func(bool) { s.pushToggle() }),
		toggle.WithObserver(obs),
	)
	s.stepper = stepper.New(
		stepper.WithClamp(config.StepperMin, config.StepperMax),
		stepper.WithOnChange(func(int) { s.pushStepper() }),
		stepper.WithObserver(obs),
	)

	s.togglerProps = s.toggle.TogglerProps(nil)
	s.resetProps = s.toggle.ResetProps(nil)
	s.incrementProps = s.stepper.IncrementProps(nil)
	s.decrementProps = s.stepper.DecrementProps(nil)
	s.inputProps = s.stepper.InputProps(nil)

	return s
}

// run pushes the initial snapshots, then reads gestures until the
// connection closes.
func (s *session) run() {
	defer func() { _ = s.conn.Close() }()

	s.logger.Info("session started")
	s.pushToggle()
	s.pushStepper()

	for {
		var msg GestureMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read failed", "error", err)
			}
			s.logger.Info("session ended")
			return
		}
		s.dispatch(msg)
	}
}

// dispatch routes a gesture to the matching prop handler. Unknown
// widgets and gestures are logged and dropped; a broken client must
// not take the session down.
func (s *session) dispatch(msg GestureMessage) {
	event := props.Event{Kind: "click", Target: msg.Widget, Value: msg.Value}

	var h props.Handler
	switch msg.Widget {
	case widgetToggle:
		switch msg.Gesture {
		case "click":
			h = s.togglerProps.Handler("onclick")
		case "force":
			h = func(props.Event) { s.toggle.ForceToggle() }
		case "reset":
			h = s.resetProps.Handler("onclick")
		}
	case widgetStepper:
		switch msg.Gesture {
		case "increment":
			h = s.incrementProps.Handler("onclick")
		case "decrement":
			h = s.decrementProps.Handler("onclick")
		case "set":
			event.Kind = "change"
			h = s.inputProps.Handler("onchange")
		case "reset":
			h = func(props.Event) { s.stepper.Reset() }
		}
	}

	if h == nil {
		s.logger.Warn("unknown gesture", "widget", msg.Widget, "gesture", msg.Gesture)
		return
	}
	h(event)
}

func (s *session) pushToggle() {
	s.push(StateMessage{
		Widget: widgetToggle,
		State:  s.toggle.Engine().Snapshot(),
	})
}

func (s *session) pushStepper() {
	s.push(StateMessage{
		Widget: widgetStepper,
		State:  s.stepper.Engine().Snapshot(),
	})
}

func (s *session) push(msg StateMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Warn("write failed", "widget", msg.Widget, "error", err)
	}
}
