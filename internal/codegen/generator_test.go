package codegen

import (
	"strings"
	"testing"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/semantic"
)

func mustAnalyze(t *testing.T, prog *ast.Program) {
	t.Helper()
	sink, _ := semantic.Analyze(prog)
	if sink.HasErrors() {
		t.Fatalf("unexpected analysis errors: %v", sink.Strings())
	}
}

func TestLiteralGlobalEmitsInlineFieldValue(t *testing.T) {
	prog := &ast.Program{
		Globals: []ast.Statement{
			ast.NewVarDecl(1, ast.Scalar(ast.Int), "answer", ast.NewIntLit(1, 42), nil, true),
		},
	}
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "Demo")
	if !strings.Contains(listing, "field static int answer = 42") {
		t.Errorf("expected inline literal field declaration, got:\n%s", listing)
	}
	if strings.Contains(listing, "<clinit>") {
		t.Errorf("a literal initializer should not need a <clinit>, got:\n%s", listing)
	}
}

func TestNonLiteralGlobalSynthesizesClinit(t *testing.T) {
	init := ast.NewBinaryExpr(1, ast.OpAdd, ast.NewIntLit(1, 1), ast.NewIntLit(1, 2))
	prog := &ast.Program{
		Globals: []ast.Statement{
			ast.NewVarDecl(1, ast.Scalar(ast.Int), "g", init, nil, false),
		},
	}
	mustAnalyze(t, prog)
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "Demo")
	if !strings.Contains(listing, "method public static void <clinit>()") {
		t.Errorf("expected a synthesized <clinit>, got:\n%s", listing)
	}
	if !strings.Contains(listing, "putstatic int Demo.g") {
		t.Errorf("expected <clinit> to putstatic the computed value, got:\n%s", listing)
	}
}

func TestAssignExprDupsBeforeStoreAndLeavesExprStmtBalanced(t *testing.T) {
	varX := ast.NewVarDecl(1, ast.Scalar(ast.Int), "x", nil, nil, false)
	assign := ast.NewAssignExpr(2, ast.NewVarRef(2, "x"), ast.NewIntLit(2, 5))
	body := ast.NewBlock(1, []ast.Statement{
		varX,
		ast.NewExprStmt(2, assign),
	})
	fn := ast.NewFuncDecl(1, ast.Scalar(ast.Void), "main", nil, body)
	prog := &ast.Program{Globals: []ast.Statement{fn}}
	mustAnalyze(t, prog)
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "Demo")

	dupIdx := strings.Index(listing, "dup")
	if dupIdx < 0 {
		t.Fatalf("expected a dup instruction for the nested-assign fix, got:\n%s", listing)
	}
	storeIdx := strings.Index(listing, "istore")
	if storeIdx < dupIdx {
		t.Errorf("expected dup before istore, got:\n%s", listing)
	}
	popIdx := strings.Index(listing[storeIdx:], "pop")
	if popIdx < 0 {
		t.Errorf("expected a pop to balance the Assign-as-statement's leftover value, got:\n%s", listing)
	}
}

func TestShortCircuitAndEmitsBranchNotIand(t *testing.T) {
	cond := ast.NewBinaryExpr(1, ast.OpAnd, ast.NewBoolLit(1, true), ast.NewBoolLit(1, false))
	fn := ast.NewFuncDecl(1, ast.Scalar(ast.Void), "main", nil,
		ast.NewBlock(1, []ast.Statement{ast.NewExprStmt(1, cond)}))
	prog := &ast.Program{Globals: []ast.Statement{fn}}
	mustAnalyze(t, prog)
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "Demo")
	if strings.Contains(listing, "iand") {
		t.Errorf("&& must short-circuit via branches, not emit iand, got:\n%s", listing)
	}
	if !strings.Contains(listing, "ifeq") {
		t.Errorf("expected a branch for short-circuit evaluation, got:\n%s", listing)
	}
}

func TestFunctionCallEmitsInvokestaticWithSignature(t *testing.T) {
	add := ast.NewFuncDecl(1, ast.Scalar(ast.Int), "add", []*ast.VarDecl{
		ast.NewVarDecl(1, ast.Scalar(ast.Int), "a", nil, nil, false),
		ast.NewVarDecl(1, ast.Scalar(ast.Int), "b", nil, nil, false),
	}, ast.NewBlock(1, []ast.Statement{
		ast.NewReturnStmt(1, ast.NewBinaryExpr(1, ast.OpAdd, ast.NewVarRef(1, "a"), ast.NewVarRef(1, "b"))),
	}))
	call := ast.NewCallExpr(2, "add", []ast.Expression{ast.NewIntLit(2, 1), ast.NewIntLit(2, 2)})
	main := ast.NewFuncDecl(2, ast.Scalar(ast.Void), "main", nil,
		ast.NewBlock(2, []ast.Statement{ast.NewExprStmt(2, call)}))
	prog := &ast.Program{Globals: []ast.Statement{add, main}}
	mustAnalyze(t, prog)
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "Demo")
	if !strings.Contains(listing, "invokestatic int Demo.add(int, int)") {
		t.Errorf("expected invokestatic with a two-int signature, got:\n%s", listing)
	}
	if !strings.Contains(listing, "iadd") {
		t.Errorf("expected the function body to emit iadd, got:\n%s", listing)
	}
}

func TestVarRefIndicesAreIgnoredByCodegen(t *testing.T) {
	decl := ast.NewVarDecl(1, ast.Scalar(ast.Int), "arr", nil, []int{3}, false)
	ref := ast.NewVarRef(2, "arr")
	ref.Indices = []ast.Expression{ast.NewIntLit(2, 0)}
	main := ast.NewFuncDecl(2, ast.Scalar(ast.Void), "main", nil,
		ast.NewBlock(2, []ast.Statement{ast.NewExprStmt(2, ref)}))
	prog := &ast.Program{Globals: []ast.Statement{decl, main}}
	mustAnalyze(t, prog)
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "Demo")
	if strings.Contains(listing, "iaload") {
		t.Errorf("this module never emits array element loads, got:\n%s", listing)
	}
}

func TestDefaultClassNameIsExample(t *testing.T) {
	prog := &ast.Program{}
	_, tab := semantic.Analyze(prog)
	listing := Generate(prog, tab, "")
	if !strings.Contains(listing, "class example") {
		t.Errorf("expected default class name 'example', got:\n%s", listing)
	}
}
