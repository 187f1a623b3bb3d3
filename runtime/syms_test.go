package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Fatal("no symbol created for table")
	}
	if sym.State != Declared {
		t.Errorf("new symbol should be in state 'declared'")
	}
	if sym.Value != Nil {
		t.Errorf("new symbol should carry value nil")
	}
}

func TestEmptyTagName(t *testing.T) {
	symtab := NewSymbolTable()
	if sym, _ := symtab.DefineTag(""); sym != nil {
		t.Error("symbol with empty name should not have been created")
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
	if symtab.Size() != 2 {
		t.Errorf("expected 2 symbols, have %d", symtab.Size())
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestScopeUpsearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.runtime")
	defer teardown()
	//
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.DefineTag("new-sym")
	sym, hops := scope.ResolveTag("new-sym", nil)
	if sym == nil {
		t.Fatal("symbol not found in parent scope")
	}
	if hops != 1 {
		t.Errorf("expected symbol 1 hop away, have %d", hops)
	}
	if sym, _ = scope.ResolveTag("new-sym", scopep); sym != nil {
		t.Errorf("search should have stopped before parent scope")
	}
}

func TestScopeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.runtime")
	defer teardown()
	//
	tree := &ScopeTree{}
	g := tree.PushNewScope("globals")
	if !tree.IsGlobal() {
		t.Errorf("expected first scope to be the global scope")
	}
	tree.PushNewScope("block")
	inner := tree.PushNewScope("inner")
	if tree.Depth() != 3 || tree.Current() != inner || tree.Globals() != g {
		t.Errorf("scope tree in unexpected state")
	}
	tree.PopScope()
	tree.PopScope()
	if tree.Current() != g || tree.Depth() != 1 {
		t.Errorf("expected to be back at global scope")
	}
}
