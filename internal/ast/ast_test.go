package ast

import "testing"

func TestExprBaseLineAndType(t *testing.T) {
	lit := NewIntLit(7, 42)
	if lit.Line() != 7 {
		t.Errorf("Line() = %d, want 7", lit.Line())
	}
	lit.SetType(Scalar(Int))
	if lit.Type().Kind != Int {
		t.Errorf("Type().Kind = %v, want Int", lit.Type().Kind)
	}
}

func TestProgramLineFallsBackToStatements(t *testing.T) {
	tests := []struct {
		name string
		prog *Program
		want int
	}{
		{"globals first", &Program{Globals: []Statement{NewEmptyStmt(3)}}, 3},
		{"stmts when globals empty", &Program{Stmts: []Statement{NewEmptyStmt(5)}}, 5},
		{"default when both empty", &Program{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prog.Line(); got != tt.want {
				t.Errorf("Line() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVarRefIndicesRoundTrip(t *testing.T) {
	v := NewVarRef(1, "arr")
	v.Indices = append(v.Indices, NewIntLit(1, 0))
	if v.Sym != InvalidSymbol {
		t.Errorf("NewVarRef should start with InvalidSymbol, got %v", v.Sym)
	}
	if len(v.Indices) != 1 {
		t.Errorf("Indices len = %d, want 1", len(v.Indices))
	}
}

func TestWalkVisitsEveryChild(t *testing.T) {
	prog := &Program{
		Stmts: []Statement{
			NewIfStmt(1, NewBoolLit(1, true), NewExprStmt(2, NewIntLit(2, 1)), NewExprStmt(3, NewIntLit(3, 2))),
		},
	}
	count := 0
	var w walkerFunc
	w = func(n Node) Visitor {
		if n != nil {
			count++
		}
		return w
	}
	Walk(w, prog)
	// Program, IfStmt, its BoolLit condition, and two ExprStmts each
	// wrapping an IntLit.
	if count != 7 {
		t.Fatalf("Walk visited %d nodes, want 7", count)
	}
}

type walkerFunc func(Node) Visitor

func (f walkerFunc) Visit(n Node) Visitor { return f(n) }
