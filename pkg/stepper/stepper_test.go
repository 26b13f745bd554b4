package stepper

import (
	"testing"

	"github.com/vango-dev/steer/pkg/props"
	"github.com/vango-dev/steer/pkg/steer"
)

func TestStepperBasics(t *testing.T) {
	s := New(WithInitialValue(5))

	if got := s.Value(); got != 5 {
		t.Fatalf("initial = %d, want 5", got)
	}

	s.Increment()
	if got := s.Value(); got != 6 {
		t.Errorf("after increment = %d, want 6", got)
	}

	s.Decrement()
	s.Decrement()
	if got := s.Value(); got != 4 {
		t.Errorf("after decrements = %d, want 4", got)
	}

	s.SetValue(9)
	if got := s.Value(); got != 9 {
		t.Errorf("after set = %d, want 9", got)
	}

	s.Reset()
	if got := s.Value(); got != 5 {
		t.Errorf("after reset = %d, want 5", got)
	}
}

func TestStepperCustomStep(t *testing.T) {
	s := New(WithStep(5))
	s.Increment()
	s.Increment()
	if got := s.Value(); got != 10 {
		t.Errorf("value = %d, want 10", got)
	}
}

func TestClampReducerBoundsValue(t *testing.T) {
	s := New(WithClamp(0, 3))

	for i := 0; i < 10; i++ {
		s.Increment()
	}
	if got := s.Value(); got != 3 {
		t.Errorf("value = %d, want clamped 3", got)
	}

	s.SetValue(-7)
	if got := s.Value(); got != 0 {
		t.Errorf("value = %d, want clamped 0", got)
	}
}

func TestOnChangeReportsResolvedValue(t *testing.T) {
	var reported []int
	s := New(WithClamp(0, 2), WithOnChange(func(v int) { reported = append(reported, v) }))

	s.Increment() // 1
	s.Increment() // 2
	s.Increment() // clamped to 2

	want := []int{1, 2, 2}
	if len(reported) != len(want) {
		t.Fatalf("reported = %v, want %v", reported, want)
	}
	for i := range want {
		if reported[i] != want[i] {
			t.Errorf("reported[%d] = %d, want %d", i, reported[i], want[i])
		}
	}
}

func TestControlledValue(t *testing.T) {
	external := 7
	var wanted []int

	s := New(WithControlledValue(
		func() (int, bool) { return external, true },
		func(v int) { wanted = append(wanted, v) },
	))

	if !s.IsControlled() {
		t.Fatal("expected controlled stepper")
	}

	s.Increment()

	if got := s.Value(); got != 7 {
		t.Errorf("value = %d, want external 7", got)
	}
	if len(wanted) != 1 || wanted[0] != 8 {
		t.Errorf("onChange = %v, want [8]", wanted)
	}

	external = 8
	if got := s.Value(); got != 8 {
		t.Errorf("value = %d, want adopted 8", got)
	}
}

func TestInputPropsParseValue(t *testing.T) {
	s := New()

	p := s.InputProps(nil)
	p.Handler("onchange")(props.Event{Kind: "change", Value: "42"})
	if got := s.Value(); got != 42 {
		t.Errorf("value = %d, want 42", got)
	}

	// Garbage input is ignored, not an error.
	p.Handler("onchange")(props.Event{Kind: "change", Value: "nope"})
	if got := s.Value(); got != 42 {
		t.Errorf("value = %d, want unchanged 42", got)
	}
}

func TestIncrementDecrementProps(t *testing.T) {
	s := New()

	s.IncrementProps(nil).Handler("onclick")(props.Event{Kind: "click"})
	s.IncrementProps(nil).Handler("onclick")(props.Event{Kind: "click"})
	s.DecrementProps(nil).Handler("onclick")(props.Event{Kind: "click"})

	if got := s.Value(); got != 1 {
		t.Errorf("value = %d, want 1", got)
	}
}

func TestReducerSeesStepperTypes(t *testing.T) {
	var seen []string
	spy := func(current steer.State, p steer.Proposal) steer.Proposal {
		seen = append(seen, p.Type)
		return p
	}

	s := New(WithReducer(spy))
	s.Increment()
	s.Decrement()
	s.SetValue(3)
	s.Reset()

	want := []string{TypeIncrement, TypeDecrement, TypeSet, steer.TypeReset}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("type[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}
