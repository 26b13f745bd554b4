package steer

import "testing"

func TestPatchResolvesLiteral(t *testing.T) {
	partial, typ := Patch(State{"on": true}).resolve(State{"on": false})
	if partial["on"] != true {
		t.Errorf("partial = %v, want {on: true}", partial)
	}
	if typ != TypeChange {
		t.Errorf("type = %q, want default %q", typ, TypeChange)
	}
}

func TestComputeResolvesAgainstCurrent(t *testing.T) {
	req := Compute(func(s State) State {
		n, _ := s["count"].(int)
		return State{"count": n + 1}
	}).WithType("bump")

	partial, typ := req.resolve(State{"count": 4})
	if partial["count"] != 5 {
		t.Errorf("partial = %v, want {count: 5}", partial)
	}
	if typ != "bump" {
		t.Errorf("type = %q, want %q", typ, "bump")
	}
}

func TestWithTypeDoesNotMutateOriginal(t *testing.T) {
	base := Patch(State{"on": true})
	tagged := base.WithType("forced")

	if _, typ := base.resolve(nil); typ != TypeChange {
		t.Errorf("base type = %q, want %q", typ, TypeChange)
	}
	if _, typ := tagged.resolve(nil); typ != "forced" {
		t.Errorf("tagged type = %q, want %q", typ, "forced")
	}
}

func TestComputeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Compute(nil)")
		}
	}()
	Compute(nil)
}
