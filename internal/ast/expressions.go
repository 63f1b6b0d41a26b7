package ast

// VarRef is an occurrence of a variable or constant name, optionally
// indexed (Indices is non-empty for an array element reference). The
// semantic analyzer resolves Name to Sym; folded index values are not
// recorded on the node.
type VarRef struct {
	exprBase
	Name    string
	Indices []Expression
	Sym     SymbolID
}

// UnaryExpr applies a prefix operator (Neg, Not) to Operand.
type UnaryExpr struct {
	exprBase
	Op      Op
	Operand Expression
}

// BinaryExpr applies Op to Left and Right.
type BinaryExpr struct {
	exprBase
	Op    Op
	Left  Expression
	Right Expression
}

// PostfixExpr applies a postfix increment/decrement (Inc, Dec) to a
// variable reference. The operand is restricted to *VarRef because the
// language only allows postfix ++/-- directly on an lvalue.
type PostfixExpr struct {
	exprBase
	Op      Op
	Operand *VarRef
}

// CallExpr is a function call. Callee resolves to the called function's
// SymbolID once the analyzer has checked it exists and is callable.
type CallExpr struct {
	exprBase
	Callee string
	Args   []Expression
	Sym    SymbolID
}

// RangeExpr is the start..end collection expression a ForeachStmt iterates
// over.
type RangeExpr struct {
	exprBase
	Start Expression
	End   Expression
}

// AssignExpr assigns Rhs to Lhs and, used as an expression, yields the
// assigned value. The generator dup's Rhs before the store so this can be
// safely nested (x = y = z).
type AssignExpr struct {
	exprBase
	Lhs *VarRef
	Rhs Expression
}

func NewVarRef(line int, name string) *VarRef {
	return &VarRef{exprBase: exprBase{Ln: line}, Name: name, Sym: InvalidSymbol}
}

func NewUnaryExpr(line int, op Op, operand Expression) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{Ln: line}, Op: op, Operand: operand}
}

func NewBinaryExpr(line int, op Op, left, right Expression) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{Ln: line}, Op: op, Left: left, Right: right}
}

func NewPostfixExpr(line int, op Op, operand *VarRef) *PostfixExpr {
	return &PostfixExpr{exprBase: exprBase{Ln: line}, Op: op, Operand: operand}
}

func NewCallExpr(line int, callee string, args []Expression) *CallExpr {
	return &CallExpr{exprBase: exprBase{Ln: line}, Callee: callee, Args: args, Sym: InvalidSymbol}
}

func NewRangeExpr(line int, start, end Expression) *RangeExpr {
	return &RangeExpr{exprBase: exprBase{Ln: line}, Start: start, End: end}
}

func NewAssignExpr(line int, lhs *VarRef, rhs Expression) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{Ln: line}, Lhs: lhs, Rhs: rhs}
}
