package ast

// IntLit is an integer literal. Its Typ is always Int once typed, and its
// constant value is foldable at every use site.
type IntLit struct {
	exprBase
	Value int64
}

// RealLit is a floating-point literal. The parser always tags it Float;
// Double is reached only by widening at VarDecl/ConstDecl initialization.
type RealLit struct {
	exprBase
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	exprBase
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	exprBase
	Value bool
}

// CharLit is a character literal.
type CharLit struct {
	exprBase
	Value rune
}

func NewIntLit(line int, v int64) *IntLit { return &IntLit{exprBase: exprBase{Ln: line}, Value: v} }
func NewRealLit(line int, v float64) *RealLit {
	return &RealLit{exprBase: exprBase{Ln: line}, Value: v}
}
func NewStringLit(line int, v string) *StringLit {
	return &StringLit{exprBase: exprBase{Ln: line}, Value: v}
}
func NewBoolLit(line int, v bool) *BoolLit { return &BoolLit{exprBase: exprBase{Ln: line}, Value: v} }
func NewCharLit(line int, v rune) *CharLit { return &CharLit{exprBase: exprBase{Ln: line}, Value: v} }
