package toggle

import (
	"github.com/vango-dev/steer/pkg/props"
	"github.com/vango-dev/steer/pkg/steer"
)

// KeyOn is the toggle's only state key.
const KeyOn = "on"

// Transition types raised by this widget, visible to reducers.
const (
	// TypeToggle tags the normal interaction-path toggle.
	TypeToggle = "toggle"

	// TypeForcedToggle tags an explicit override toggle. Policy
	// reducers such as LimitReducer let it through unconditionally.
	TypeForcedToggle = "forced_toggle"
)

// Toggle is an on/off widget built on a steer.Engine. It renders
// nothing itself; a host attaches TogglerProps to whatever on/off
// visual control it has and re-reads On after each gesture.
type Toggle struct {
	engine *steer.Engine

	onToggle func(on bool)
	onReset  func(on bool)
}

// New creates a Toggle from the given options.
func New(opts ...Option) *Toggle {
	c := applyOptions(opts)

	engineOpts := []steer.Option{
		steer.WithInitialState(steer.State{KeyOn: c.initialOn}),
		steer.WithReducer(c.reducer),
	}
	if c.controlled {
		engineOpts = append(engineOpts, steer.WithControl(KeyOn, steer.Control{
			Value: func() (any, bool) {
				value, ok := c.controlValue()
				return value, ok
			},
			OnChange: func(value any) {
				if c.controlOnChange == nil {
					return
				}
				want, _ := value.(bool)
				c.controlOnChange(want)
			},
		}))
	}
	for _, obs := range c.observers {
		engineOpts = append(engineOpts, steer.WithObserver(obs))
	}

	return &Toggle{
		engine:   steer.New(engineOpts...),
		onToggle: c.onToggle,
		onReset:  c.onReset,
	}
}

// On returns the resolved on/off value: the external value while the
// consumer controls the key, the widget's own state otherwise.
func (t *Toggle) On() bool {
	on, _ := t.engine.Get(KeyOn).(bool)
	return on
}

// IsControlled reports whether the consumer currently owns the "on" key.
func (t *Toggle) IsControlled() bool {
	return t.engine.IsControlled(KeyOn)
}

// Engine exposes the underlying state engine, e.g. for wiring extra
// observers or proposing custom transitions.
func (t *Toggle) Engine() *steer.Engine {
	return t.engine
}

// Toggle raises the normal interaction-path toggle transition.
func (t *Toggle) Toggle() {
	t.flip(TypeToggle)
}

// ForceToggle raises a toggle tagged TypeForcedToggle, letting
// policy reducers distinguish it from the normal path.
func (t *Toggle) ForceToggle() {
	t.flip(TypeForcedToggle)
}

// Reset proposes the initial state back through the reducer pipeline.
func (t *Toggle) Reset() {
	t.engine.Reset(func(resolved steer.State) {
		if t.onReset != nil {
			on, _ := resolved[KeyOn].(bool)
			t.onReset(on)
		}
	})
}

func (t *Toggle) flip(typ string) {
	req := steer.Compute(func(s steer.State) steer.State {
		on, _ := s[KeyOn].(bool)
		return steer.State{KeyOn: !on}
	}).WithType(typ)

	t.engine.Propose(req, func(resolved steer.State) {
		if t.onToggle != nil {
			on, _ := resolved[KeyOn].(bool)
			t.onToggle(on)
		}
	})
}

// TogglerProps returns the ready-to-attach bundle for the toggler
// element: the resolved state flags plus the widget's click handler.
// Override attributes win over the widget's; override handlers are
// composed after the widget's rather than replacing it.
func (t *Toggle) TogglerProps(overrides props.Props) props.Props {
	on := t.On()
	base := props.New(
		props.Props{
			"role":         "switch",
			"aria-pressed": on,
		},
		props.OnClick(func(props.Event) { t.Toggle() }),
	)
	return props.Merge(base, overrides)
}

// ResetProps returns the bundle for a reset element.
func (t *Toggle) ResetProps(overrides props.Props) props.Props {
	base := props.New(
		props.OnClick(func(props.Event) { t.Reset() }),
	)
	return props.Merge(base, overrides)
}
