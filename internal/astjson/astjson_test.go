package astjson

import (
	"testing"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
)

func TestLoadSimpleProgram(t *testing.T) {
	doc := `{
		"globals": [
			{"kind": "var_decl", "line": 1, "name": "g", "type": {"kind": "int"}, "init": {"kind": "int_lit", "line": 1, "value": 7}}
		],
		"stmts": [
			{"kind": "func_decl", "line": 2, "name": "main", "return_type": {"kind": "void"}, "params": [],
			 "body": {"kind": "block", "line": 2, "stmts": [
				{"kind": "expr_stmt", "line": 3, "value": {"kind": "assign", "line": 3,
					"lhs": {"kind": "var_ref", "line": 3, "name": "g"},
					"rhs": {"kind": "binary", "line": 3, "op": "+",
						"left": {"kind": "var_ref", "line": 3, "name": "g"},
						"right": {"kind": "int_lit", "line": 3, "value": 1}}}}
			 ]}}
		]
	}`

	prog, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(prog.Globals) != 1 {
		t.Fatalf("Globals len = %d, want 1", len(prog.Globals))
	}
	vd, ok := prog.Globals[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("Globals[0] = %T, want *ast.VarDecl", prog.Globals[0])
	}
	if vd.Name != "g" || vd.VarType.Kind != ast.Int {
		t.Errorf("unexpected VarDecl: %+v", vd)
	}
	lit, ok := vd.Init.(*ast.IntLit)
	if !ok || lit.Value != 7 {
		t.Errorf("Init = %#v, want IntLit(7)", vd.Init)
	}

	if len(prog.Stmts) != 1 {
		t.Fatalf("Stmts len = %d, want 1", len(prog.Stmts))
	}
	fn, ok := prog.Stmts[0].(*ast.FuncDecl)
	if !ok || fn.Name != "main" {
		t.Fatalf("Stmts[0] = %+v, want FuncDecl main", prog.Stmts[0])
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("main body len = %d, want 1", len(fn.Body.Stmts))
	}
	exprStmt, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.ExprStmt", fn.Body.Stmts[0])
	}
	assign, ok := exprStmt.X.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("ExprStmt.X = %T, want *ast.AssignExpr", exprStmt.X)
	}
	bin, ok := assign.Rhs.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("assign.Rhs = %#v, want BinaryExpr(+)", assign.Rhs)
	}
}

func TestLoadUnknownKindErrors(t *testing.T) {
	_, err := Load([]byte(`{"stmts": [{"kind": "not_a_real_kind", "line": 1}]}`))
	if err == nil {
		t.Fatal("expected an error for an unknown statement kind")
	}
}

func TestLoadArrayVarRefIndices(t *testing.T) {
	doc := `{"globals": [
		{"kind": "var_decl", "line": 1, "name": "arr", "type": {"kind": "int"}, "dims": [3]}
	], "stmts": [
		{"kind": "expr_stmt", "line": 2, "value":
			{"kind": "var_ref", "line": 2, "name": "arr", "indices": [{"kind": "int_lit", "line": 2, "value": 1}]}}
	]}`
	prog, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	es := prog.Stmts[0].(*ast.ExprStmt)
	ref := es.X.(*ast.VarRef)
	if len(ref.Indices) != 1 {
		t.Fatalf("Indices len = %d, want 1", len(ref.Indices))
	}
}
