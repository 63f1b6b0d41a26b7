package symtab

import (
	"testing"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
)

func TestInsertAndLookupGlobal(t *testing.T) {
	tab := New()
	id, err := tab.Insert(Entry{Name: "x", Type: ast.Scalar(ast.Int)})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got, ok := tab.Lookup("x")
	if !ok || got != id {
		t.Fatalf("Lookup(x) = (%v, %v), want (%v, true)", got, ok, id)
	}
	if !tab.Entry(id).IsGlobal {
		t.Error("global entry should be marked IsGlobal")
	}
	if tab.Entry(id).Slot != -1 {
		t.Errorf("global entry Slot = %d, want -1", tab.Entry(id).Slot)
	}
}

func TestDuplicateInSameScopeFails(t *testing.T) {
	tab := New()
	if _, err := tab.Insert(Entry{Name: "x", Type: ast.Scalar(ast.Int)}); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if _, err := tab.Insert(Entry{Name: "x", Type: ast.Scalar(ast.Int)}); err == nil {
		t.Fatal("second Insert of same name in same scope should fail")
	}
}

func TestFunctionScopeResetsLocalSlots(t *testing.T) {
	tab := New()
	tab.EnterScope(true)
	a, _ := tab.Insert(Entry{Name: "a", Type: ast.Scalar(ast.Int)})
	b, _ := tab.Insert(Entry{Name: "b", Type: ast.Scalar(ast.Int)})
	if tab.Entry(a).Slot != 0 || tab.Entry(b).Slot != 1 {
		t.Fatalf("slots = %d, %d, want 0, 1", tab.Entry(a).Slot, tab.Entry(b).Slot)
	}
	tab.ExitFunctionScope()

	tab.EnterScope(true)
	c, _ := tab.Insert(Entry{Name: "c", Type: ast.Scalar(ast.Int)})
	if tab.Entry(c).Slot != 0 {
		t.Errorf("second function's first local Slot = %d, want 0 (fresh counter)", tab.Entry(c).Slot)
	}
	tab.ExitFunctionScope()
}

func TestNonFunctionScopeSharesSlotCounter(t *testing.T) {
	tab := New()
	tab.EnterScope(true)
	tab.Insert(Entry{Name: "a", Type: ast.Scalar(ast.Int)})

	tab.EnterScope(false) // e.g. an if-block inside the function
	b, _ := tab.Insert(Entry{Name: "b", Type: ast.Scalar(ast.Int)})
	if tab.Entry(b).Slot != 1 {
		t.Errorf("nested non-function scope Slot = %d, want 1 (continues counter)", tab.Entry(b).Slot)
	}
	tab.ExitScope()
	tab.ExitFunctionScope()
}

func TestShadowingAllowedAcrossScopes(t *testing.T) {
	tab := New()
	tab.Insert(Entry{Name: "x", Type: ast.Scalar(ast.Int)})
	tab.EnterScope(true)
	if _, err := tab.Insert(Entry{Name: "x", Type: ast.Scalar(ast.String)}); err != nil {
		t.Fatalf("shadowing an outer-scope name should succeed: %v", err)
	}
	id, _ := tab.Lookup("x")
	if tab.Entry(id).Type.Kind != ast.String {
		t.Error("Lookup should resolve to the innermost shadowing entry")
	}
	tab.ExitFunctionScope()
}

func TestExitScopeAtGlobalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ExitScope at global scope should panic")
		}
	}()
	New().ExitScope()
}

func TestScopeDepthAndAtGlobalScope(t *testing.T) {
	tab := New()
	if !tab.AtGlobalScope() || tab.ScopeDepth() != 1 {
		t.Fatalf("fresh table should be at global scope with depth 1, got depth %d", tab.ScopeDepth())
	}
	tab.EnterScope(false)
	if tab.AtGlobalScope() || tab.ScopeDepth() != 2 {
		t.Fatalf("after EnterScope, depth = %d, AtGlobalScope = %v", tab.ScopeDepth(), tab.AtGlobalScope())
	}
	tab.ExitScope()
	if !tab.AtGlobalScope() {
		t.Fatal("ExitScope should restore global scope")
	}
}

func TestAllReturnsEveryInsertedEntry(t *testing.T) {
	tab := New()
	tab.Insert(Entry{Name: "a", Type: ast.Scalar(ast.Int)})
	tab.Insert(Entry{Name: "b", Type: ast.Scalar(ast.Int)})
	if len(tab.All()) != 2 {
		t.Fatalf("All() len = %d, want 2", len(tab.All()))
	}
}
