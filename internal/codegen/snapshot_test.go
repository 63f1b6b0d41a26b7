package codegen

import (
	"testing"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/semantic"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEmittedListingSnapshots pins the full Jasmin-like listing for a
// handful of representative programs, mirroring the teacher's
// internal/interp/fixture_test.go use of snaps.MatchSnapshot to guard
// against accidental changes to emitted output shape rather than asserting
// on substrings of it.
func TestEmittedListingSnapshots(t *testing.T) {
	cases := []struct {
		name string
		prog *ast.Program
	}{
		{
			name: "literal_global_and_clinit",
			prog: &ast.Program{
				Globals: []ast.Statement{
					ast.NewVarDecl(1, ast.Scalar(ast.Int), "answer", ast.NewIntLit(1, 42), nil, true),
					ast.NewVarDecl(2, ast.Scalar(ast.Int), "doubled",
						ast.NewBinaryExpr(2, ast.OpMul, ast.NewIntLit(2, 42), ast.NewIntLit(2, 2)), nil, false),
				},
			},
		},
		{
			name: "function_with_if_and_return",
			prog: &ast.Program{
				Globals: []ast.Statement{
					ast.NewFuncDecl(1, ast.Scalar(ast.Int), "max", []*ast.VarDecl{
						ast.NewVarDecl(1, ast.Scalar(ast.Int), "a", nil, nil, false),
						ast.NewVarDecl(1, ast.Scalar(ast.Int), "b", nil, nil, false),
					}, ast.NewBlock(1, []ast.Statement{
						ast.NewIfStmt(2,
							ast.NewBinaryExpr(2, ast.OpGt, ast.NewVarRef(2, "a"), ast.NewVarRef(2, "b")),
							ast.NewReturnStmt(3, ast.NewVarRef(3, "a")),
							ast.NewReturnStmt(4, ast.NewVarRef(4, "b"))),
					})),
				},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sink, tab := semantic.Analyze(c.prog)
			if sink.HasErrors() {
				t.Fatalf("unexpected analysis errors: %v", sink.Strings())
			}
			listing := Generate(c.prog, tab, "Demo")
			snaps.MatchSnapshot(t, listing)
		})
	}
}
