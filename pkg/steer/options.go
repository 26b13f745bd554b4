package steer

// Option is a functional option for configuring an Engine.
type Option func(*engineOptions)

// engineOptions holds construction-time configuration.
type engineOptions struct {
	initial   State
	reducer   Reducer
	controls  map[string]Control
	observers []Observer
	onSettle  func(t Transition)
}

// WithInitialState sets the initial state bag. The snapshot taken at
// construction defines the engine's key set for its whole lifetime and
// is what Reset restores.
func WithInitialState(initial State) Option {
	return func(o *engineOptions) {
		o.initial = initial
	}
}

// WithReducer installs the consumer's state reducer. The default is
// IdentityReducer.
func WithReducer(r Reducer) Option {
	return func(o *engineOptions) {
		if r != nil {
			o.reducer = r
		}
	}
}

// WithControl wires external ownership for a single key. The key must
// exist in the initial state; New panics otherwise.
func WithControl(key string, c Control) Option {
	return func(o *engineOptions) {
		if o.controls == nil {
			o.controls = make(map[string]Control)
		}
		o.controls[key] = c
	}
}

// WithObserver registers an observer for settled transitions. May be
// given multiple times; observers run in registration order.
func WithObserver(obs Observer) Option {
	return func(o *engineOptions) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithOnSettle registers a lifecycle callback invoked after every
// settle, before observers. Absent means no-op.
func WithOnSettle(fn func(t Transition)) Option {
	return func(o *engineOptions) {
		o.onSettle = fn
	}
}

// applyOptions applies the given options and returns the resulting
// configuration with defaults filled in.
func applyOptions(opts []Option) engineOptions {
	options := engineOptions{
		reducer: IdentityReducer,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.initial == nil {
		options.initial = State{}
	}
	return options
}
