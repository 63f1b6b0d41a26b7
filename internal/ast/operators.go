package ast

// Op is an operator token shared by unary, binary, and postfix expressions.
// Kept as a string (rather than a closed Go enum) so printers and error
// messages can use the operator's own spelling directly.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"

	OpLt  Op = "<"
	OpLe  Op = "<="
	OpGt  Op = ">"
	OpGe  Op = ">="
	OpEq  Op = "=="
	OpNeq Op = "!="

	OpAnd Op = "&&"
	OpOr  Op = "||"

	OpNeg Op = "-" // unary minus, same spelling as OpSub
	OpNot Op = "!"

	OpInc Op = "++"
	OpDec Op = "--"
)
