package toggle

import "github.com/vango-dev/steer/pkg/steer"

// Option is a functional option for configuring a Toggle.
type Option func(*config)

type config struct {
	initialOn bool
	reducer   steer.Reducer

	controlled      bool
	controlValue    func() (on bool, ok bool)
	controlOnChange func(on bool)

	onToggle  func(on bool)
	onReset   func(on bool)
	observers []steer.Observer
}

// WithInitialOn sets the initial on/off value (default false).
func WithInitialOn(on bool) Option {
	return func(c *config) {
		c.initialOn = on
	}
}

// WithReducer installs a consumer reducer over every toggle transition.
func WithReducer(r steer.Reducer) Option {
	return func(c *config) {
		if r != nil {
			c.reducer = r
		}
	}
}

// WithControlledOn puts the "on" key under external ownership. value is
// read fresh on every access; returning ok=false hands ownership back
// to the widget. onChange receives the value the widget wants the key
// to become, reduced through the reducer; nil means no notifications.
func WithControlledOn(value func() (on bool, ok bool), onChange func(on bool)) Option {
	return func(c *config) {
		if value == nil {
			return
		}
		c.controlled = true
		c.controlValue = value
		c.controlOnChange = onChange
	}
}

// WithOnToggle registers a callback invoked after every settled toggle
// with the resolved on/off value. Absent means no-op.
func WithOnToggle(fn func(on bool)) Option {
	return func(c *config) {
		c.onToggle = fn
	}
}

// WithOnReset registers a callback invoked after every settled reset
// with the resolved on/off value. Absent means no-op.
func WithOnReset(fn func(on bool)) Option {
	return func(c *config) {
		c.onReset = fn
	}
}

// WithObserver registers a transition observer on the underlying engine.
func WithObserver(obs steer.Observer) Option {
	return func(c *config) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

func applyOptions(opts []Option) config {
	c := config{
		reducer: steer.IdentityReducer,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
