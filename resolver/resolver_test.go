package resolver

import (
	"testing"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/parser"
	"github.com/npillmayer/golox/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func resolve(t *testing.T, input string) ([]ast.Stmt, Bindings, golox.Diagnostics) {
	tokens, diags := scanner.Scan(input)
	stmts, pdiags := parser.Parse(tokens)
	diags.Append(pdiags)
	if diags.HasErrors() {
		t.Fatalf("syntax errors for %q: %v", input, diags)
	}
	bindings, rdiags := Resolve(stmts)
	return stmts, bindings, rdiags
}

func TestGlobalsAreNotRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	_, bindings, diags := resolve(t, "var a = 1; var a = 2; print a; a = 3;")
	if diags.HasErrors() {
		t.Errorf("global re-declaration should be legal, have %v", diags)
	}
	if len(bindings) != 0 {
		t.Errorf("expected no bindings for globals, have %d", len(bindings))
	}
}

func TestHopCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	stmts, bindings, diags := resolve(t, "{ var a = 1; { var b = 2; print a; print b; a = b; } }")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags)
	}
	inner := stmts[0].(*ast.Block).Stmts[1].(*ast.Block)
	printA := inner.Stmts[1].(*ast.PrintStmt).Expr
	printB := inner.Stmts[2].(*ast.PrintStmt).Expr
	assign := inner.Stmts[3].(*ast.ExpressionStmt).Expr.(*ast.Assign)
	if h, ok := bindings[printA]; !ok || h != 1 {
		t.Errorf("expected a to be 1 hop away, have %d (%v)", h, ok)
	}
	if h, ok := bindings[printB]; !ok || h != 0 {
		t.Errorf("expected b to be 0 hops away, have %d (%v)", h, ok)
	}
	if h, ok := bindings[assign]; !ok || h != 1 {
		t.Errorf("expected assignment to a to be 1 hop away, have %d (%v)", h, ok)
	}
	if h, ok := bindings[assign.Value]; !ok || h != 0 {
		t.Errorf("expected b in assignment to be 0 hops away, have %d (%v)", h, ok)
	}
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	stmts, bindings, diags := resolve(t, "{ var a = 1; { var a = 2; print a; } print a; }")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags)
	}
	outer := stmts[0].(*ast.Block)
	inner := outer.Stmts[1].(*ast.Block)
	if h := bindings[inner.Stmts[1].(*ast.PrintStmt).Expr]; h != 0 {
		t.Errorf("expected innermost a to be found, have hops = %d", h)
	}
	if h := bindings[outer.Stmts[2].(*ast.PrintStmt).Expr]; h != 0 {
		t.Errorf("expected outer a at 0 hops, have %d", h)
	}
}

func TestFunctionScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	input := `
fun makeCounter() {
  var count = 0;
  fun counter() { count = count + 1; return count; }
  return counter;
}`
	stmts, bindings, diags := resolve(t, input)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags)
	}
	outer := stmts[0].(*ast.FunctionDecl)
	counter := outer.Body.Stmts[1].(*ast.FunctionDecl)
	assign := counter.Body.Stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Assign)
	if h, ok := bindings[assign]; !ok || h != 1 {
		t.Errorf("expected count to be 1 hop away from counter, have %d (%v)", h, ok)
	}
	ret := outer.Body.Stmts[2].(*ast.ReturnStmt)
	if h, ok := bindings[ret.Value]; !ok || h != 0 {
		t.Errorf("expected counter to be local to makeCounter, have %d (%v)", h, ok)
	}
}

func TestRecursiveFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	_, _, diags := resolve(t, "{ fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } }")
	if diags.HasErrors() {
		t.Errorf("local recursive function should resolve, have %v", diags)
	}
}

func TestStaticErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	for i, test := range []struct {
		input, msg string
	}{
		{"{ var a = a; }", "[line 1] Error at 'a': Can't read local variable in its own initializer."},
		{"{ var a = 1; var a = 2; }", "[line 1] Error at 'a': Already a variable with this name in this scope."},
		{"fun f(a, a) {}", "[line 1] Error at 'a': Already a variable with this name in this scope."},
		{"return 1;", "[line 1] Error at 'return': Can't return from top-level code."},
	} {
		_, _, diags := resolve(t, test.input)
		if len(diags) != 1 {
			t.Errorf("test %d: expected 1 error, have %v", i, diags)
			continue
		}
		if diags[0].Error() != test.msg {
			t.Errorf("test %d: expected %q, have %q", i, test.msg, diags[0].Error())
		}
	}
}

func TestResolutionContinuesAfterErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	_, _, diags := resolve(t, "return; { var b = b; } return;")
	if len(diags) != 3 {
		t.Errorf("expected 3 errors, have %v", diags)
	}
}

func TestMergeBindings(t *testing.T) {
	b := make(Bindings)
	other := Bindings{&ast.Variable{}: 2}
	b.Merge(other)
	if len(b) != 1 {
		t.Errorf("expected merged table to contain 1 entry")
	}
}
