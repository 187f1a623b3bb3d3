package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEnvironmentChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.runtime")
	defer teardown()
	//
	globals := NewGlobals()
	if _, ok := globals.Get("clock"); !ok {
		t.Errorf("expected native 'clock' in globals")
	}
	outer := NewEnvironment("outer", globals)
	inner := NewEnvironment("inner", outer)
	outer.Define("a", Number(1))
	inner.Define("a", Number(2))
	if v, _ := inner.GetAt(0, "a"); v != Number(2) {
		t.Errorf("expected inner a = 2, have %v", v)
	}
	if v, _ := inner.GetAt(1, "a"); v != Number(1) {
		t.Errorf("expected outer a = 1, have %v", v)
	}
	if !inner.AssignAt(1, "a", String("x")) {
		t.Fatalf("assignment to outer a failed")
	}
	if v, _ := outer.Get("a"); v != String("x") {
		t.Errorf("expected outer a = \"x\", have %v", v)
	}
	if inner.AssignAt(2, "a", Nil) {
		t.Errorf("assignment to unbound global should fail")
	}
	if inner.Ancestor(5) != nil {
		t.Errorf("expected no ancestor beyond root")
	}
	if !inner.Ancestor(2).IsRoot() {
		t.Errorf("expected ancestor 2 to be the root environment")
	}
}

func TestEnvironmentEach(t *testing.T) {
	env := NewEnvironment("test", nil)
	env.Define("a", Number(1))
	env.Define("b", Bool(true))
	env.Define("a", Number(3))
	n := 0
	env.Each(func(name string, v Value) {
		n++
		if name == "a" && v != Number(3) {
			t.Errorf("redefinition should overwrite, have a = %v", v)
		}
	})
	if n != 2 {
		t.Errorf("expected 2 bindings, have %d", n)
	}
}
