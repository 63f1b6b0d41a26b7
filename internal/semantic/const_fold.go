package semantic

import (
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/symtab"
)

// evalConst folds e to a ConstValue when e is a literal. Grounded
// verbatim on original_source's evalConstExpr: only the five literal node
// kinds fold; anything else (a variable reference, even one known to hold
// a constant, a binary expression, a call) does not. This narrow,
// literal-only folder is intentional — it is what makes the const-array
// tracking in Assign "opportunistic" rather than a general constant
// propagation pass.
func (a *Analyzer) evalConst(e ast.Expression) (symtab.ConstValue, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return symtab.IntValue(n.Value), true
	case *ast.RealLit:
		return symtab.FloatValue(n.Value), true
	case *ast.StringLit:
		return symtab.StringValue(n.Value), true
	case *ast.BoolLit:
		return symtab.BoolValue(n.Value), true
	case *ast.CharLit:
		return symtab.CharValue(n.Value), true
	default:
		return symtab.ConstValue{}, false
	}
}

// evalConstInt folds e and reports its value only if e is a constant Int.
func (a *Analyzer) evalConstInt(e ast.Expression) (int64, bool) {
	cv, ok := a.evalConst(e)
	if !ok || cv.Kind != symtab.ConstInt {
		return 0, false
	}
	return cv.I, true
}
