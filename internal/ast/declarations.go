package ast

// VarDecl declares a variable or (when IsConst is true) a constant, with an
// optional initializer and optional array dimensions. At global scope a
// non-literal Init is emitted into the synthesized <clinit> method rather
// than inline, since the JVM has no instruction-level way to run code
// while initializing a static field declaration.
type VarDecl struct {
	stmtBase
	VarType Type
	Name    string
	Init    Expression // nil when there is no initializer
	Dims    []int      // empty for a scalar
	IsConst bool
	Sym     SymbolID
}

// VarDeclList groups a comma-separated run of variable declarations that
// share a single statement position (e.g. "var a, b, c: Int;").
type VarDeclList struct {
	stmtBase
	Decls []*VarDecl
}

// DeclList groups a run of declarations of any kind at the same statement
// position.
type DeclList struct {
	stmtBase
	Decls []Statement
}

// FuncDecl declares a function. Sym is set once the analyzer inserts the
// function's entry, before the body is analyzed, so recursive calls
// resolve.
type FuncDecl struct {
	stmtBase
	ReturnType Type
	Name       string
	Params     []*VarDecl
	Body       *Block
	Sym        SymbolID
}

func (d *VarDecl) declNode()     {}
func (d *VarDeclList) declNode() {}
func (d *DeclList) declNode()    {}
func (d *FuncDecl) declNode()    {}

func NewVarDecl(line int, varType Type, name string, init Expression, dims []int, isConst bool) *VarDecl {
	return &VarDecl{
		stmtBase: stmtBase{Ln: line}, VarType: varType, Name: name,
		Init: init, Dims: dims, IsConst: isConst, Sym: InvalidSymbol,
	}
}

func NewVarDeclList(line int, decls []*VarDecl) *VarDeclList {
	return &VarDeclList{stmtBase: stmtBase{Ln: line}, Decls: decls}
}

func NewDeclList(line int, decls []Statement) *DeclList {
	return &DeclList{stmtBase: stmtBase{Ln: line}, Decls: decls}
}

func NewFuncDecl(line int, returnType Type, name string, params []*VarDecl, body *Block) *FuncDecl {
	return &FuncDecl{
		stmtBase: stmtBase{Ln: line}, ReturnType: returnType, Name: name,
		Params: params, Body: body, Sym: InvalidSymbol,
	}
}
