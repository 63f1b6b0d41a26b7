// Package ast defines the node shapes of the already-parsed abstract syntax
// tree this compiler's semantic analyzer and code generator operate on.
//
// There is no lexer or parser in this module: a Program arrives fully
// formed (see internal/astjson for the JSON loader used by the CLI and
// tests) and every node already carries its source line number. The
// semantic analyzer annotates expression nodes with a resolved Type and
// identifier-occurrence nodes with a resolved SymbolID; the code generator
// consumes those annotations and never re-derives them.
package ast

// SymbolID is a stable handle into a symbol table, written onto
// identifier-occurrence nodes by the semantic analyzer and consumed by the
// code generator. It is declared here, rather than in the symtab package,
// so AST nodes can carry a resolved symbol handle without symtab needing
// to depend back on ast's node types (symtab already imports ast for Type).
type SymbolID int32

// InvalidSymbol marks a node that has not yet been, or could not be,
// resolved to a symbol table entry.
const InvalidSymbol SymbolID = -1

// Node is the base interface implemented by every AST node.
type Node interface {
	Line() int
}

// Expression is any node that produces a value. The semantic analyzer
// annotates every expression node with its resolved Type; until that pass
// runs, Type returns the zero Type.
type Expression interface {
	Node
	exprNode()
	Type() Type
	SetType(Type)
}

// Statement is any node that performs an action rather than producing a
// value.
type Statement interface {
	Node
	stmtNode()
}

// Declaration is a Statement that also introduces a symbol into scope
// (variable, constant, or function). Globals and function-body locals are
// both expressed as Declaration-typed Statements.
type Declaration interface {
	Statement
	declNode()
}

// exprBase is embedded by every Expression implementation; it supplies the
// line number and the resolved-type slot the semantic pass writes into.
type exprBase struct {
	Ln  int
	Typ Type
}

func (b *exprBase) Line() int      { return b.Ln }
func (b *exprBase) Type() Type     { return b.Typ }
func (b *exprBase) SetType(t Type) { b.Typ = t }
func (b *exprBase) exprNode()      {}

// stmtBase is embedded by every Statement implementation.
type stmtBase struct {
	Ln int
}

func (b *stmtBase) Line() int { return b.Ln }
func (b *stmtBase) stmtNode() {}

// Program is the root of the AST: the ordered list of global declarations
// (VarDecl/ConstDecl/FuncDecl, possibly wrapped in a VarDeclList/DeclList)
// followed by the ordered list of top-level statements.
type Program struct {
	Globals []Statement
	Stmts   []Statement
}

func (p *Program) Line() int {
	if len(p.Globals) > 0 {
		return p.Globals[0].Line()
	}
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Line()
	}
	return 1
}
