package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, input string) ([]ast.Stmt, golox.Diagnostics) {
	tokens, diags := scanner.Scan(input)
	if diags.HasErrors() {
		t.Fatalf("scanner errors for %q: %v", input, diags)
	}
	return Parse(tokens)
}

func sexprs(stmts []ast.Stmt) string {
	s := make([]string, len(stmts))
	for i, stmt := range stmts {
		s[i] = ast.StmtSexpr(stmt)
	}
	return strings.Join(s, " ")
}

func TestExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	for i, test := range []struct {
		input, output string
	}{
		{"1 + 2 * 3;", "(expr (+ 1 (* 2 3)))"},
		{"(1 + 2) * 3;", "(expr (* (group (+ 1 2)) 3))"},
		{"8 - 4 - 2;", "(expr (- (- 8 4) 2))"},
		{"8 / 4 * 2;", "(expr (* (/ 8 4) 2))"},
		{"-!x;", "(expr (- (! x)))"},
		{"a == b != c;", "(expr (!= (== a b) c))"},
		{"1 < 2 == 3 >= 4;", "(expr (== (< 1 2) (>= 3 4)))"},
		{"a or b and c;", "(expr (or a (and b c)))"},
		{"a and b or c and d;", "(expr (or (and a b) (and c d)))"},
		{"a = b = 3;", "(expr (= a (= b 3)))"},
		{"f(1)(2, 3);", "(expr (call (call f 1) 2 3))"},
		{"f();", "(expr (call f))"},
		{`print "hi" + nil;`, `(print (+ "hi" nil))`},
	} {
		stmts, diags := parse(t, test.input)
		if diags.HasErrors() {
			t.Errorf("test %d: unexpected errors: %v", i, diags)
			continue
		}
		if s := sexprs(stmts); s != test.output {
			t.Errorf("test %d: expected %s, have %s", i, test.output, s)
		}
	}
}

func TestStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	for i, test := range []struct {
		input, output string
	}{
		{"var a;", "(var a)"},
		{"var a = 1;", "(var a 1)"},
		{"{ var a = 1; print a; }", "(block (var a 1) (print a))"},
		{"if (a) print 1; else print 2;", "(if a (print 1) (print 2))"},
		{"if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))"},
		{"while (true) break;", "(while true (break))"},
		{"fun f(a, b) { return a + b; }", "(fun f (a b) (return (+ a b)))"},
		{"fun g() { return; }", "(fun g () (return))"},
		{"for (var i = 0; i < 3; i = i + 1) print i;",
			"(block (var i 0) (while (< i 3) (block (print i) (expr (= i (+ i 1))))))"},
		{"for (;;) break;", "(while true (break))"},
		{"for (i = 0; ; ) {}", "(block (expr (= i 0)) (while true (block)))"},
	} {
		stmts, diags := parse(t, test.input)
		if diags.HasErrors() {
			t.Errorf("test %d: unexpected errors: %v", i, diags)
			continue
		}
		if s := sexprs(stmts); s != test.output {
			t.Errorf("test %d: expected %s, have %s", i, test.output, s)
		}
	}
}

func TestVariableIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	stmts, _ := parse(t, "a + a;")
	bin := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Binary)
	if bin.Left == bin.Right {
		t.Errorf("expected distinct nodes for two references to 'a'")
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	stmts, diags := parse(t, "a + b = c; print 1;")
	if len(diags) != 1 {
		t.Fatalf("expected 1 error, have %v", diags)
	}
	if diags[0].Error() != "[line 1] Error at '=': Invalid assignment target." {
		t.Errorf("unexpected error message: %s", diags[0].Error())
	}
	if len(stmts) != 2 {
		t.Errorf("expected parsing to continue after invalid assignment, have %d statements", len(stmts))
	}
}

func TestErrorRecovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	input := `
var = 1;
print 2;
print (3;
var ok = 4;
print 5`
	stmts, diags := parse(t, input)
	if len(diags) != 3 {
		t.Fatalf("expected 3 errors, have %d: %v", len(diags), diags)
	}
	expected := []string{
		"[line 2] Error at '=': Expect variable name.",
		"[line 4] Error at ';': Expect ')' after expression.",
		"[line 6] Error at end: Expect ';' after value.",
	}
	for i, msg := range expected {
		if diags[i].Error() != msg {
			t.Errorf("error %d: expected %q, have %q", i, msg, diags[i].Error())
		}
	}
	if s := sexprs(stmts); s != "(print 2) (var ok 4)" {
		t.Errorf("unexpected partial AST: %s", s)
	}
}

func TestVarIsNotAnExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	_, diags := parse(t, "print var a = 1;")
	if !diags.HasErrors() || diags[0].Message != "Expect expression." {
		t.Errorf("expected 'Expect expression.' error, have %v", diags)
	}
	_, diags = parse(t, "if (true) var a = 1;")
	if !diags.HasErrors() {
		t.Errorf("expected declaration in statement position to be rejected")
	}
}

func TestReservedWordsWithoutStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	stmts, diags := parse(t, "class; continue; print 1;")
	if len(diags) != 2 {
		t.Fatalf("expected 2 errors, have %v", diags)
	}
	if s := sexprs(stmts); s != "(print 1)" {
		t.Errorf("unexpected partial AST: %s", s)
	}
}

func TestTooManyArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	stmts, diags := parse(t, "f("+strings.Join(args, ", ")+");")
	if len(diags) != 1 || diags[0].Message != "Can't have more than 255 arguments." {
		t.Fatalf("expected argument count error, have %v", diags)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected call to be accepted nonetheless")
	}
	call := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Call)
	if len(call.Args) != 256 {
		t.Errorf("expected 256 arguments, have %d", len(call.Args))
	}
	//
	_, diags = parse(t, "f("+strings.Join(args[:255], ", ")+");")
	if diags.HasErrors() {
		t.Errorf("255 arguments should be accepted, have %v", diags)
	}
}

func TestTooManyParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	params := make([]string, 256)
	for i := range params {
		params[i] = fmt.Sprintf("p%d", i)
	}
	stmts, diags := parse(t, "fun f("+strings.Join(params, ", ")+") {}")
	if len(diags) != 1 {
		t.Fatalf("expected 1 error, have %v", diags)
	}
	if diags[0].Error() != "[line 1] Error at 'p255': Can't have more than 255 parameters." {
		t.Errorf("unexpected error message: %s", diags[0].Error())
	}
	if len(stmts) != 1 {
		t.Fatalf("expected function declaration to be accepted nonetheless")
	}
	fun := stmts[0].(*ast.FunctionDecl)
	if len(fun.Params) != 256 {
		t.Errorf("expected 256 parameters, have %d", len(fun.Params))
	}
	//
	_, diags = parse(t, "fun f("+strings.Join(params[:255], ", ")+") {}")
	if diags.HasErrors() {
		t.Errorf("255 parameters should be accepted, have %v", diags)
	}
}

func TestUnclosedBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.parser")
	defer teardown()
	//
	_, diags := parse(t, "{ print 1;")
	if len(diags) != 1 || diags[0].Error() != "[line 1] Error at end: Expect '}' after block." {
		t.Errorf("expected unclosed block error, have %v", diags)
	}
}
