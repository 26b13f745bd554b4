package stepper

import "github.com/vango-dev/steer/pkg/steer"

// Option is a functional option for configuring a Stepper.
type Option func(*config)

type config struct {
	initial int
	step    int
	reducer steer.Reducer

	controlled      bool
	controlValue    func() (value int, ok bool)
	controlOnChange func(value int)

	onChange  func(value int)
	observers []steer.Observer
}

// WithInitialValue sets the initial value (default 0).
func WithInitialValue(value int) Option {
	return func(c *config) {
		c.initial = value
	}
}

// WithStep sets the increment/decrement step (default 1).
func WithStep(step int) Option {
	return func(c *config) {
		if step > 0 {
			c.step = step
		}
	}
}

// WithReducer installs a consumer reducer over every transition.
func WithReducer(r steer.Reducer) Option {
	return func(c *config) {
		if r != nil {
			c.reducer = r
		}
	}
}

// WithClamp is shorthand for WithReducer(ClampReducer(min, max)).
func WithClamp(min, max int) Option {
	return WithReducer(ClampReducer(min, max))
}

// WithControlledValue puts the value under external ownership. value is
// read fresh on every access; ok=false hands ownership back to the
// widget. onChange receives the reduced value the widget wants.
func WithControlledValue(value func() (v int, ok bool), onChange func(v int)) Option {
	return func(c *config) {
		if value == nil {
			return
		}
		c.controlled = true
		c.controlValue = value
		c.controlOnChange = onChange
	}
}

// WithOnChange registers a callback invoked after every settle with the
// resolved value.
func WithOnChange(fn func(value int)) Option {
	return func(c *config) {
		c.onChange = fn
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
		step:    1,
		reducer: steer.IdentityReducer,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
