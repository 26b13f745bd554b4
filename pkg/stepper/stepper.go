// Package stepper is a numeric steer widget: a single "value" key with
// increment, decrement, and direct-set transitions, an optional
// min/max clamp reducer, and controlled-mode wiring for the value.
package stepper

import (
	"strconv"

	"github.com/vango-dev/steer/pkg/props"
	"github.com/vango-dev/steer/pkg/steer"
)

// KeyValue is the stepper's only state key.
const KeyValue = "value"

// Transition types raised by this widget.
const (
	TypeIncrement = "increment"
	TypeDecrement = "decrement"
	TypeSet       = "set"
)

// Stepper is a numeric up/down widget built on a steer.Engine.
type Stepper struct {
	engine *steer.Engine
	step   int

	onChange func(value int)
}

// New creates a Stepper from the given options.
func New(opts ...Option) *Stepper {
	c := applyOptions(opts)

	engineOpts := []steer.Option{
		steer.WithInitialState(steer.State{KeyValue: c.initial}),
		steer.WithReducer(c.reducer),
	}
	if c.controlled {
		engineOpts = append(engineOpts, steer.WithControl(KeyValue, steer.Control{
			Value: func() (any, bool) {
				value, ok := c.controlValue()
				return value, ok
			},
			OnChange: func(value any) {
				if c.controlOnChange == nil {
					return
				}
				want, _ := value.(int)
				c.controlOnChange(want)
			},
		}))
	}
	for _, obs := range c.observers {
		engineOpts = append(engineOpts, steer.WithObserver(obs))
	}

	return &Stepper{
		engine:   steer.New(engineOpts...),
		step:     c.step,
		onChange: c.onChange,
	}
}

// Value returns the resolved current value.
func (s *Stepper) Value() int {
	v, _ := s.engine.Get(KeyValue).(int)
	return v
}

// IsControlled reports whether the consumer currently owns the value.
func (s *Stepper) IsControlled() bool {
	return s.engine.IsControlled(KeyValue)
}

// Engine exposes the underlying state engine.
func (s *Stepper) Engine() *steer.Engine {
	return s.engine
}

// Increment raises the value by the configured step.
func (s *Stepper) Increment() {
	s.shift(s.step, TypeIncrement)
}

// Decrement lowers the value by the configured step.
func (s *Stepper) Decrement() {
	s.shift(-s.step, TypeDecrement)
}

// SetValue proposes a direct value, tagged TypeSet.
func (s *Stepper) SetValue(value int) {
	s.propose(steer.Patch(steer.State{KeyValue: value}).WithType(TypeSet))
}

// Reset proposes the initial value back through the reducer pipeline.
func (s *Stepper) Reset() {
	s.engine.Reset(s.settle)
}

func (s *Stepper) shift(delta int, typ string) {
	req := steer.Compute(func(st steer.State) steer.State {
		v, _ := st[KeyValue].(int)
		return steer.State{KeyValue: v + delta}
	}).WithType(typ)
	s.propose(req)
}

func (s *Stepper) propose(req steer.Change) {
	s.engine.Propose(req, s.settle)
}

func (s *Stepper) settle(resolved steer.State) {
	if s.onChange != nil {
		v, _ := resolved[KeyValue].(int)
		s.onChange(v)
	}
}

// IncrementProps returns the bundle for the increment element.
func (s *Stepper) IncrementProps(overrides props.Props) props.Props {
	base := props.New(
		props.Props{"aria-label": "increment"},
		props.OnClick(func(props.Event) { s.Increment() }),
	)
	return props.Merge(base, overrides)
}

// DecrementProps returns the bundle for the decrement element.
func (s *Stepper) DecrementProps(overrides props.Props) props.Props {
	base := props.New(
		props.Props{"aria-label": "decrement"},
		props.OnClick(func(props.Event) { s.Decrement() }),
	)
	return props.Merge(base, overrides)
}

// InputProps returns the bundle for a direct-entry element. The change
// handler parses Event.Value as an integer and ignores garbage input.
func (s *Stepper) InputProps(overrides props.Props) props.Props {
	base := props.New(
		props.Props{"value": s.Value()},
		props.OnChange(func(e props.Event) {
			v, err := strconv.Atoi(e.Value)
			if err != nil {
				return
			}
			s.SetValue(v)
		}),
	)
	return props.Merge(base, overrides)
}

// ClampReducer returns a reducer that clamps every proposed value into
// [min, max]. Proposals without a value change pass through untouched.
func ClampReducer(min, max int) steer.Reducer {
	return func(current steer.State, proposed steer.Proposal) steer.Proposal {
		raw, ok := proposed.Changes[KeyValue]
		if !ok {
			return proposed
		}
		v, ok := raw.(int)
		if !ok {
			return proposed
		}
		if v < min {
			v = min
		}
		if v > max {
			v = max
		}
		out := steer.State{}
		for k, val := range proposed.Changes {
			out[k] = val
		}
		out[KeyValue] = v
		return steer.Proposal{Type: proposed.Type, Changes: out}
	}
}
