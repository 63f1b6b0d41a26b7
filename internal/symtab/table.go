// Package symtab implements the nested-scope symbol table shared by the
// semantic analyzer and the code generator.
//
// It follows the Design Notes' "flat arena of entries + scope stacks of
// indices" shape rather than the teacher's own back-pointer-chained
// SymbolTable (internal/semantic/symbol_table.go in the retrieved pack):
// every Entry lives once in a flat slice, addressed by a stable SymbolID,
// and each scope is a name->SymbolID map pushed onto a stack. A SymbolID
// stays valid (and keeps pointing at the same Entry) even after the scope
// that declared it is popped, which lets AST nodes hold onto a resolved
// SymbolID past the point where the declaring scope has exited.
package symtab

import (
	"fmt"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
)

// Table is the symbol table: a stack of scopes over a flat arena of
// entries, plus the JVM local-slot allocator for the scope currently being
// analyzed or generated.
type Table struct {
	entries []*Entry
	scopes  []map[string]ast.SymbolID

	nextLocal  int
	savedLocal []int
}

// New returns a Table containing only the global scope.
func New() *Table {
	return &Table{
		scopes: []map[string]ast.SymbolID{make(map[string]ast.SymbolID)},
	}
}

// EnterScope pushes a new, empty scope. isFunctionScope must be true for a
// function body's top-level scope and false everywhere else (if, while,
// for, foreach, and plain blocks reuse the enclosing function's slot
// counter); passing true saves the current slot counter and resets it to
// zero, so each function's locals are numbered from its own slot 0 per
// spec invariant 3.
func (t *Table) EnterScope(isFunctionScope bool) {
	t.scopes = append(t.scopes, make(map[string]ast.SymbolID))
	if isFunctionScope {
		t.savedLocal = append(t.savedLocal, t.nextLocal)
		t.nextLocal = 0
	}
}

// ExitScope pops the current scope. It panics if called at global scope —
// callers must never unbalance EnterScope/ExitScope; doing so is a
// programming error in the analyzer or generator, not a user-facing one.
func (t *Table) ExitScope() {
	if len(t.scopes) <= 1 {
		panic("symtab: ExitScope called at global scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// ExitFunctionScope pops the current scope and restores the slot counter
// saved by the matching EnterScope(true).
func (t *Table) ExitFunctionScope() {
	t.ExitScope()
	n := len(t.savedLocal)
	t.nextLocal = t.savedLocal[n-1]
	t.savedLocal = t.savedLocal[:n-1]
}

// AtGlobalScope reports whether only the global scope is live.
func (t *Table) AtGlobalScope() bool { return len(t.scopes) == 1 }

// ScopeDepth returns the number of live scopes, 1 at global scope. Used to
// check the "after analysis, depth is back to 1" testable property.
func (t *Table) ScopeDepth() int { return len(t.scopes) }

// Insert adds entry to the current (innermost) scope and returns its
// SymbolID. It fails if a symbol of the same name is already declared in
// that same scope — shadowing an outer scope's symbol is allowed, but
// redeclaring within one scope is not. At global scope the entry is
// stamped IsGlobal with Slot -1; at function scope, unless the entry is
// itself a function, it is assigned the next local slot.
func (t *Table) Insert(entry Entry) (ast.SymbolID, error) {
	cur := t.scopes[len(t.scopes)-1]
	if _, dup := cur[entry.Name]; dup {
		return ast.InvalidSymbol, fmt.Errorf("symtab: %q already declared in this scope", entry.Name)
	}

	if t.AtGlobalScope() {
		entry.IsGlobal = true
		entry.Slot = -1
	} else if !entry.IsFunc {
		entry.Slot = t.AllocateSlot()
	} else {
		entry.Slot = -1
	}

	id := ast.SymbolID(len(t.entries))
	e := entry
	t.entries = append(t.entries, &e)
	cur[entry.Name] = id
	return id, nil
}

// Lookup resolves name against the scope stack from innermost to
// outermost, returning the first match.
func (t *Table) Lookup(name string) (ast.SymbolID, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if id, ok := t.scopes[i][name]; ok {
			return id, true
		}
	}
	return ast.InvalidSymbol, false
}

// Entry returns the entry for id. It panics on an invalid id: callers are
// expected to only dereference SymbolIDs that Lookup or Insert returned.
func (t *Table) Entry(id ast.SymbolID) *Entry {
	return t.entries[id]
}

// AllocateSlot hands out the next JVM local slot in the current function
// and advances the counter.
func (t *Table) AllocateSlot() int {
	s := t.nextLocal
	t.nextLocal++
	return s
}

// CurrentLocal returns the slot counter's current value without allocating.
func (t *Table) CurrentLocal() int { return t.nextLocal }

// ResetLocal resets the slot counter to base, bypassing the
// save/restore pair EnterScope(true)/ExitFunctionScope normally manage.
// Exposed for callers (e.g. a REPL-style driver) that need to replay
// analysis without re-entering a function scope.
func (t *Table) ResetLocal(base int) { t.nextLocal = base }

// All returns every entry ever inserted, in insertion order. It exists for
// callers outside this package (the driver's compile report) that need to
// tally globals/functions/slot usage after analysis completes; nothing in
// the analyzer or generator itself needs a full scan.
func (t *Table) All() []*Entry { return t.entries }
