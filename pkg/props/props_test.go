package props

import "testing"

func TestComposeInvokesInOrderWithSameEvent(t *testing.T) {
	var calls []string
	var events []Event

	a := func(e Event) { calls = append(calls, "a"); events = append(events, e) }
	b := func(e Event) { calls = append(calls, "b"); events = append(events, e) }

	h := Compose(a, nil, b)
	ev := Event{Kind: "click", Target: "toggler", Value: "x"}
	h(ev)

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("calls = %v, want [a b]", calls)
	}
	for i, got := range events {
		if got != ev {
			t.Errorf("handler %d received %+v, want %+v", i, got, ev)
		}
	}
}

func TestComposeSkipsAllNil(t *testing.T) {
	h := Compose(nil, nil)
	// Must not panic.
	h(Event{Kind: "click"})
}

func TestComposeFailFast(t *testing.T) {
	var calls []string
	a := func(Event) { calls = append(calls, "a") }
	boom := func(Event) { panic("boom") }
	c := func(Event) { calls = append(calls, "c") }

	h := Compose(a, boom, c)

	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recover = %v, want propagated panic", r)
		}
		if len(calls) != 1 || calls[0] != "a" {
			t.Errorf("calls = %v, want [a]: first failure aborts the rest", calls)
		}
	}()
	h(Event{Kind: "click"})
}

func TestMergeAttributeOverrideWins(t *testing.T) {
	base := Props{"aria-pressed": false, "role": "switch"}
	out := Merge(base, Props{"aria-pressed": true, "id": "t1"})

	if out["aria-pressed"] != true {
		t.Errorf("aria-pressed = %v, want override true", out["aria-pressed"])
	}
	if out["role"] != "switch" {
		t.Errorf("role = %v, want base switch", out["role"])
	}
	if out["id"] != "t1" {
		t.Errorf("id = %v, want t1", out["id"])
	}
}

func TestMergeComposesHandlersBaseFirst(t *testing.T) {
	var calls []string
	base := New(OnClick(func(Event) { calls = append(calls, "widget") }))
	overrides := New(OnClick(func(Event) { calls = append(calls, "caller") }))

	out := Merge(base, overrides)
	out.Handler("onclick")(Event{Kind: "click"})

	if len(calls) != 2 || calls[0] != "widget" || calls[1] != "caller" {
		t.Errorf("calls = %v, want [widget caller]", calls)
	}
}

func TestMergeComposedHandlersRunExactlyOnceEach(t *testing.T) {
	widgetCalls, callerCalls := 0, 0
	base := New(OnClick(func(Event) { widgetCalls++ }))
	overrides := New(OnClick(func(Event) { callerCalls++ }))

	Merge(base, overrides).Handler("onclick")(Event{Kind: "click"})

	if widgetCalls != 1 || callerCalls != 1 {
		t.Errorf("widget=%d caller=%d, want exactly one call each", widgetCalls, callerCalls)
	}
}

func TestMergeOverrideHandlerWithoutBase(t *testing.T) {
	called := false
	out := Merge(Props{}, New(OnInput(func(Event) { called = true })))

	out.Handler("oninput")(Event{Kind: "input"})
	if !called {
		t.Error("override handler dropped when base has none")
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := New(
		Props{"role": "switch"},
		OnClick(func(Event) {}),
	)
	Merge(base, Props{"role": "button", "onclick": Handler(func(Event) {})})

	if base["role"] != "switch" {
		t.Error("Merge mutated base props")
	}
}

func TestNewBuildsFromMixedItems(t *testing.T) {
	p := New(
		Props{"role": "switch"},
		OnClick(func(Event) {}),
		nil,
		42, // unknown item types are ignored
	)

	if p["role"] != "switch" {
		t.Errorf("role = %v, want switch", p["role"])
	}
	if p.Handler("onclick") == nil {
		t.Error("onclick handler missing")
	}
	if len(p) != 2 {
		t.Errorf("len = %d, want 2", len(p))
	}
}

func TestIsHandlerKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onclick", true},
		{"oninput", true},
		{"role", false},
		{"aria-pressed", false},
	}
	for _, tt := range tests {
		if got := IsHandlerKey(tt.key); got != tt.want {
			t.Errorf("IsHandlerKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
