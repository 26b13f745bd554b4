// Package toggle is the canonical steer widget: a single boolean "on"
// key with toggle, forced-toggle, and reset transitions, prop getters
// for the toggler element, and optional controlled-mode wiring.
//
// Uncontrolled:
//
//	t := toggle.New(toggle.WithOnToggle(func(on bool) {
//	    log.Println("toggled:", on)
//	}))
//	t.Toggle()
//
// Controlled (the consumer owns "on"):
//
//	var on bool
//	t := toggle.New(toggle.WithControlledOn(
//	    func() (bool, bool) { return on, true },
//	    func(want bool) { on = want },
//	))
package toggle
