package semantic

import "github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"

// stmtReturns and allPathsReturn implement the all-paths-return check,
// grounded verbatim on original_source's stmtReturns/allPathsReturn: a
// Return statement always returns; a Block returns if any one of its
// statements does; an If returns only when it has an else branch and both
// arms return. Every other statement kind (While, For, Foreach, ExprStmt,
// ...) never counts as returning, even a "while true" loop whose body
// always returns — the original does not attempt to prove loop
// termination, and this module preserves that conservative behavior.
func stmtReturns(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.Block:
		return allPathsReturn(n.Stmts)
	case *ast.IfStmt:
		if n.Else == nil {
			return false
		}
		return stmtReturns(n.Then) && stmtReturns(n.Else)
	default:
		return false
	}
}

func allPathsReturn(stmts []ast.Statement) bool {
	for _, s := range stmts {
		if stmtReturns(s) {
			return true
		}
	}
	return false
}
