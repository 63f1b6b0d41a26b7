package ast

// Visitor is implemented by callers that want double-dispatch traversal of
// a Program without writing their own type switch. Walk calls v.Visit(node);
// if the returned Visitor is non-nil, Walk recurses into node's children
// using that returned Visitor, mirroring go/ast's Walk contract. The
// analyzer and generator do not use this themselves — they both need
// node-specific control flow (scope entry/exit, label sequencing) that a
// generic walk can't express — but it gives external tooling (formatters,
// linters) a traversal entry point without duplicating the node's shape.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses node's children in source order, calling v.Visit on each.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Globals {
			Walk(v, s)
		}
		for _, s := range n.Stmts {
			Walk(v, s)
		}

	case *VarRef:
		for _, idx := range n.Indices {
			Walk(v, idx)
		}
	case *UnaryExpr:
		Walk(v, n.Operand)
	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *PostfixExpr:
		Walk(v, n.Operand)
	case *CallExpr:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *RangeExpr:
		Walk(v, n.Start)
		Walk(v, n.End)
	case *AssignExpr:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)

	case *Block:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *ExprStmt:
		Walk(v, n.X)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Step != nil {
			Walk(v, n.Step)
		}
		Walk(v, n.Body)
	case *ForeachStmt:
		Walk(v, n.Var)
		Walk(v, n.Collection)
		Walk(v, n.Body)
	case *ReturnStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *PrintStmt:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *PrintlnStmt:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *ReadStmt:
		Walk(v, n.Var)

	case *VarDecl:
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *VarDeclList:
		for _, d := range n.Decls {
			Walk(v, d)
		}
	case *DeclList:
		for _, d := range n.Decls {
			Walk(v, d)
		}
	case *FuncDecl:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)

	case *IntLit, *RealLit, *StringLit, *BoolLit, *CharLit, *EmptyStmt:
		// leaves

	default:
		panic("ast.Walk: unexpected node type")
	}

	v.Visit(nil)
}
