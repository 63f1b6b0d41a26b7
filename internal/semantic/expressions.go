package semantic

import (
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/diag"
)

// typeOf type-checks e, annotates it with SetType, and returns the
// resolved Type. It is the expression-side counterpart of visitStmt and is
// grounded on original_source's per-node visit(ast::Expr&) overloads.
func (a *Analyzer) typeOf(e ast.Expression) ast.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		n.SetType(ast.Scalar(ast.Int))
	case *ast.RealLit:
		n.SetType(ast.Scalar(ast.Float))
	case *ast.StringLit:
		n.SetType(ast.Scalar(ast.String))
	case *ast.BoolLit:
		n.SetType(ast.Scalar(ast.Bool))
	case *ast.CharLit:
		n.SetType(ast.Scalar(ast.Char))
	case *ast.VarRef:
		a.typeOfVarRef(n)
	case *ast.UnaryExpr:
		a.typeOfUnary(n)
	case *ast.BinaryExpr:
		a.typeOfBinary(n)
	case *ast.PostfixExpr:
		a.typeOfPostfix(n)
	case *ast.CallExpr:
		a.typeOfCall(n)
	case *ast.RangeExpr:
		a.rangeType(n)
	case *ast.AssignExpr:
		a.typeOfAssign(n)
	default:
		panic("semantic: unhandled expression type")
	}
	return e.Type()
}

func (a *Analyzer) typeOfVarRef(v *ast.VarRef) {
	id, ok := a.Tab.Lookup(v.Name)
	if !ok {
		a.errorf(v.Line(), diag.KindUndeclaredVariable, "Undeclared variable '%s'", v.Name)
		v.SetType(ast.ErrorType)
		v.Sym = ast.InvalidSymbol
		return
	}
	v.Sym = id
	entry := a.Tab.Entry(id)
	base := entry.Type

	if len(v.Indices) == 0 {
		v.SetType(base)
		return
	}

	if len(v.Indices) > len(base.Dims) {
		a.errorf(v.Line(), diag.KindArrayBounds,
			"Too many indices for array '%s' (expected at most %d, got %d)",
			v.Name, len(base.Dims), len(v.Indices))
		v.SetType(ast.ErrorType)
		return
	}

	for i, idx := range v.Indices {
		t := a.typeOf(idx)
		if t.Kind != ast.Int {
			a.errorf(v.Line(), diag.KindTypeMismatch,
				"Array index must be int in '%s', index #%d", v.Name, i)
			v.SetType(ast.ErrorType)
			return
		}
	}

	remaining := append([]int(nil), base.Dims[len(v.Indices):]...)
	v.SetType(ast.Type{Kind: base.Kind, Dims: remaining})
}

func (a *Analyzer) typeOfUnary(u *ast.UnaryExpr) {
	rhsTy := a.typeOf(u.Operand)
	if rhsTy.IsError() {
		u.SetType(ast.ErrorType)
		return
	}

	switch u.Op {
	case ast.OpNeg:
		if !isNumeric(rhsTy.Kind) {
			a.errorf(u.Line(), diag.KindTypeMismatch, "Unary '-' requires int, char, float, or double!")
			u.SetType(ast.ErrorType)
			return
		}
		u.SetType(rhsTy)
	case ast.OpNot:
		if rhsTy.Kind != ast.Bool {
			a.errorf(u.Line(), diag.KindTypeMismatch, "Unary '!' requires bool!")
			u.SetType(ast.ErrorType)
			return
		}
		u.SetType(ast.Scalar(ast.Bool))
	default:
		a.errorf(u.Line(), diag.KindInvalidOperation, "Unknown unary operator")
		u.SetType(ast.ErrorType)
	}
}

func isNumeric(k ast.BasicKind) bool {
	return k == ast.Char || k == ast.Int || k == ast.Float || k == ast.Double
}

func isCharIntFloatDoubleBool(k ast.BasicKind) bool {
	return k == ast.Char || k == ast.Int || k == ast.Float || k == ast.Double || k == ast.Bool
}

func (a *Analyzer) typeOfBinary(b *ast.BinaryExpr) {
	lhsTy := a.typeOf(b.Left)
	rhsTy := a.typeOf(b.Right)

	if lhsTy.IsError() || rhsTy.IsError() {
		b.SetType(ast.ErrorType)
		return
	}

	sameType := lhsTy.Equals(rhsTy)

	switch b.Op {
	case ast.OpAdd:
		if sameType {
			b.SetType(lhsTy)
		} else {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '+' requires same types!")
			b.SetType(ast.ErrorType)
		}
	case ast.OpSub, ast.OpMul, ast.OpDiv:
		sym := map[ast.Op]string{ast.OpSub: "-", ast.OpMul: "*", ast.OpDiv: "/"}[b.Op]
		if !sameType {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '%s' requires same types!", sym)
			b.SetType(ast.ErrorType)
			return
		}
		if !isCharIntFloatDoubleBool(lhsTy.Kind) {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '%s' requires char, int, float, double or bool!", sym)
			b.SetType(ast.ErrorType)
			return
		}
		b.SetType(lhsTy)
	case ast.OpMod:
		if lhsTy.Kind != ast.Int || rhsTy.Kind != ast.Int {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '%%' requires int!")
			b.SetType(ast.ErrorType)
			return
		}
		b.SetType(ast.Scalar(ast.Int))
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		sym := map[ast.Op]string{ast.OpLt: "<", ast.OpLe: "<=", ast.OpGt: ">", ast.OpGe: ">="}[b.Op]
		if !sameType {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '%s' requires same types!", sym)
			b.SetType(ast.ErrorType)
			return
		}
		b.SetType(ast.Scalar(ast.Bool))
	case ast.OpEq, ast.OpNeq:
		sym := "=="
		if b.Op == ast.OpNeq {
			sym = "!="
		}
		if !sameType {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '%s' requires same type!", sym)
			b.SetType(ast.ErrorType)
			return
		}
		b.SetType(ast.Scalar(ast.Bool))
	case ast.OpAnd, ast.OpOr:
		sym := "&&"
		if b.Op == ast.OpOr {
			sym = "||"
		}
		if lhsTy.Kind != ast.Bool || rhsTy.Kind != ast.Bool {
			a.errorf(b.Line(), diag.KindTypeMismatch, "Binary '%s' requires bool!", sym)
			b.SetType(ast.ErrorType)
			return
		}
		b.SetType(ast.Scalar(ast.Bool))
	default:
		a.errorf(b.Line(), diag.KindInvalidOperation, "Operator not implemented")
		b.SetType(ast.ErrorType)
	}
}

func (a *Analyzer) typeOfPostfix(p *ast.PostfixExpr) {
	operandTy := a.typeOf(p.Operand)
	if operandTy.IsError() {
		p.SetType(ast.ErrorType)
		return
	}

	if !isNumeric(operandTy.Kind) {
		a.errorf(p.Line(), diag.KindTypeMismatch,
			"Postfix operator is '%s' type, and that is not applicable to type.", operandTy.String())
		p.SetType(ast.ErrorType)
		return
	}
	if p.Op != ast.OpInc && p.Op != ast.OpDec {
		a.errorf(p.Line(), diag.KindInvalidOperation, "Postfix operator not applicable to type, only '++' and '--' are allowed")
		p.SetType(ast.ErrorType)
		return
	}
	p.SetType(operandTy)
}

func (a *Analyzer) typeOfCall(c *ast.CallExpr) {
	argErr := false
	for _, arg := range c.Args {
		if a.typeOf(arg).IsError() {
			argErr = true
		}
	}

	id, ok := a.Tab.Lookup(c.Callee)
	if !ok {
		a.errorf(c.Line(), diag.KindUndeclaredFunction, "Undeclared function '%s'", c.Callee)
		c.SetType(ast.ErrorType)
		c.Sym = ast.InvalidSymbol
		return
	}
	if !a.Tab.Entry(id).IsFunc {
		a.errorf(c.Line(), diag.KindNotCallable, "'%s' is not callable", c.Callee)
		c.SetType(ast.ErrorType)
		c.Sym = ast.InvalidSymbol
		return
	}
	c.Sym = id
	entry := a.Tab.Entry(id)

	// An argument that is already Error has reported its own diagnostic;
	// the call becomes Error without adding a parameter-mismatch one.
	if argErr {
		c.SetType(ast.ErrorType)
		return
	}

	if entry.ParamTypes != nil {
		if len(c.Args) != len(entry.ParamTypes) {
			a.errorf(c.Line(), diag.KindArgumentCount, "Parameter count mismatch in call to '%s'", c.Callee)
		} else {
			for i, arg := range c.Args {
				if !arg.Type().Equals(entry.ParamTypes[i]) {
					a.errorf(c.Line(), diag.KindTypeMismatch, "Parameter type mismatch in call to '%s'", c.Callee)
				}
			}
		}
	}

	// The declared return type is used regardless of the parameter-mismatch
	// checks above: the original does not fall back to Error or bail out
	// early here, so neither does this port.
	if entry.ReturnType != nil {
		c.SetType(*entry.ReturnType)
	} else {
		c.SetType(ast.Scalar(ast.Void))
	}
	if c.Type().IsError() {
		a.errorf(c.Line(), diag.KindInvalidOperation, "Function '%s' has error return type", c.Callee)
	}
}
