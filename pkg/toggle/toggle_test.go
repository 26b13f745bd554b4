package toggle

import (
	"testing"

	"github.com/vango-dev/steer/pkg/props"
	"github.com/vango-dev/steer/pkg/steer"
)

func TestToggleFlips(t *testing.T) {
	tg := New()

	if tg.On() {
		t.Fatal("expected initial off")
	}
	tg.Toggle()
	if !tg.On() {
		t.Fatal("expected on after first toggle")
	}
	tg.Toggle()
	if tg.On() {
		t.Fatal("expected off after second toggle")
	}
}

func TestToggleInitialOn(t *testing.T) {
	tg := New(WithInitialOn(true))
	if !tg.On() {
		t.Fatal("expected initial on")
	}
	tg.Reset()
	if !tg.On() {
		t.Fatal("reset must restore initial on")
	}
}

func TestOnToggleCallbackSeesResolvedValue(t *testing.T) {
	var reported []bool
	tg := New(WithOnToggle(func(on bool) { reported = append(reported, on) }))

	tg.Toggle()
	tg.Toggle()

	if len(reported) != 2 || reported[0] != true || reported[1] != false {
		t.Errorf("reported = %v, want [true false]", reported)
	}
}

func TestOnResetCallback(t *testing.T) {
	var reported []bool
	tg := New(WithOnReset(func(on bool) { reported = append(reported, on) }))

	tg.Toggle()
	tg.Reset()

	if len(reported) != 1 || reported[0] != false {
		t.Errorf("reported = %v, want [false]", reported)
	}
}

func TestLimitReducerVetoesAfterMax(t *testing.T) {
	tg := New(WithReducer(LimitReducer(2)))

	tg.Toggle() // on
	tg.Toggle() // off
	tg.Toggle() // vetoed
	if tg.On() {
		t.Fatal("third toggle should be vetoed, want off")
	}

	// The tagged override bypasses the policy.
	tg.ForceToggle()
	if !tg.On() {
		t.Fatal("forced toggle must bypass the limit")
	}
}

func TestLimitReducerResetClearsCount(t *testing.T) {
	tg := New(WithReducer(LimitReducer(1)))

	tg.Toggle() // on, limit used up
	tg.Toggle() // vetoed
	if !tg.On() {
		t.Fatal("second toggle should be vetoed")
	}

	tg.Reset()
	if tg.On() {
		t.Fatal("reset should restore off")
	}
	tg.Toggle()
	if !tg.On() {
		t.Fatal("toggle after reset should work again")
	}
}

func TestControlledToggleNeverCommits(t *testing.T) {
	external := true
	var wanted []bool

	tg := New(WithControlledOn(
		func() (bool, bool) { return external, true },
		func(on bool) { wanted = append(wanted, on) },
	))

	if !tg.IsControlled() {
		t.Fatal("expected controlled toggle")
	}

	tg.Toggle()

	// Still reads the external value; the owner was told what the
	// widget wants.
	if !tg.On() {
		t.Error("On() should keep reading the external true")
	}
	if len(wanted) != 1 || wanted[0] != false {
		t.Errorf("onChange = %v, want [false]", wanted)
	}

	// Owner adopts the proposal; the widget follows.
	external = false
	if tg.On() {
		t.Error("On() should follow the external update")
	}
}

func TestControlledToggleReleaseOwnership(t *testing.T) {
	external := true
	controlled := true

	tg := New(WithControlledOn(
		func() (bool, bool) { return external, controlled },
		nil,
	))

	if !tg.On() {
		t.Fatal("controlled read should be true")
	}

	controlled = false
	if tg.On() {
		t.Fatal("uncontrolled read should fall back to internal false")
	}

	tg.Toggle()
	if !tg.On() {
		t.Fatal("uncontrolled toggle should commit")
	}
}

func TestTogglerPropsReflectState(t *testing.T) {
	tg := New()

	p := tg.TogglerProps(nil)
	if p["aria-pressed"] != false {
		t.Errorf("aria-pressed = %v, want false", p["aria-pressed"])
	}
	if p["role"] != "switch" {
		t.Errorf("role = %v, want switch", p["role"])
	}

	p.Handler("onclick")(props.Event{Kind: "click"})
	if !tg.On() {
		t.Fatal("click through props should toggle")
	}

	if p = tg.TogglerProps(nil); p["aria-pressed"] != true {
		t.Errorf("aria-pressed = %v, want true after toggle", p["aria-pressed"])
	}
}

func TestTogglerPropsComposeCallerHandler(t *testing.T) {
	tg := New()
	callerCalls := 0

	p := tg.TogglerProps(props.New(
		props.OnClick(func(props.Event) { callerCalls++ }),
	))
	p.Handler("onclick")(props.Event{Kind: "click"})

	if !tg.On() {
		t.Error("widget handler dropped")
	}
	if callerCalls != 1 {
		t.Errorf("caller handler calls = %d, want 1", callerCalls)
	}
}

func TestTogglerPropsAttributeOverride(t *testing.T) {
	tg := New()
	p := tg.TogglerProps(props.Props{"role": "button"})
	if p["role"] != "button" {
		t.Errorf("role = %v, want caller override button", p["role"])
	}
}

func TestResetPropsHandler(t *testing.T) {
	tg := New()
	tg.Toggle()

	tg.ResetProps(nil).Handler("onclick")(props.Event{Kind: "click"})
	if tg.On() {
		t.Fatal("reset props click should restore initial off")
	}
}

func TestChainReducers(t *testing.T) {
	var order []string
	first := func(current steer.State, p steer.Proposal) steer.Proposal {
		order = append(order, "first")
		return p
	}
	second := func(current steer.State, p steer.Proposal) steer.Proposal {
		order = append(order, "second")
		return p
	}

	tg := New(WithReducer(ChainReducers(first, nil, second)))
	tg.Toggle()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
	if !tg.On() {
		t.Error("chained identity reducers should not block the toggle")
	}
}

func TestReducerSeesWidgetTypes(t *testing.T) {
	var seen []string
	spy := func(current steer.State, p steer.Proposal) steer.Proposal {
		seen = append(seen, p.Type)
		return p
	}

	tg := New(WithReducer(spy))
	tg.Toggle()
	tg.ForceToggle()
	tg.Reset()

	want := []string{TypeToggle, TypeForcedToggle, steer.TypeReset}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("type[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}
