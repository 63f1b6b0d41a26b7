// Package astjson loads an already-parsed ast.Program from a JSON
// document. It is not a lexer or parser — this module has none, by
// design (spec.md §1) — it is a fixture format the CLI and tests use to
// materialize a Program without writing one out by hand in Go. The JSON
// shape mirrors the AST node set in internal/ast directly: a "kind"
// discriminator field plus the node's own fields, built through the
// ast package's own NewXxx constructors so this package never reaches
// into ast's unexported embedded fields.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
)

type rawNode struct {
	Kind    string            `json:"kind"`
	Line    int               `json:"line"`
	Name    string            `json:"name,omitempty"`
	Value   json.RawMessage   `json:"value,omitempty"`
	Op      string            `json:"op,omitempty"`
	Type    *rawType          `json:"type,omitempty"`
	Dims    []int             `json:"dims,omitempty"`
	IsConst bool              `json:"is_const,omitempty"`
	Left    json.RawMessage   `json:"left,omitempty"`
	Right   json.RawMessage   `json:"right,omitempty"`
	Operand json.RawMessage   `json:"operand,omitempty"`
	Lhs     json.RawMessage   `json:"lhs,omitempty"`
	Rhs     json.RawMessage   `json:"rhs,omitempty"`
	Cond    json.RawMessage   `json:"cond,omitempty"`
	Then    json.RawMessage   `json:"then,omitempty"`
	Else    json.RawMessage   `json:"else,omitempty"`
	Init    json.RawMessage   `json:"init,omitempty"`
	Step    json.RawMessage   `json:"step,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
	Var     json.RawMessage   `json:"var,omitempty"`
	Coll    json.RawMessage   `json:"collection,omitempty"`
	Start   json.RawMessage   `json:"start,omitempty"`
	End     json.RawMessage   `json:"end,omitempty"`
	Callee  string            `json:"callee,omitempty"`
	Args    []json.RawMessage `json:"args,omitempty"`
	Indices []json.RawMessage `json:"indices,omitempty"`
	Stmts   []json.RawMessage `json:"stmts,omitempty"`
	Decls   []json.RawMessage `json:"decls,omitempty"`
	Params  []json.RawMessage `json:"params,omitempty"`
	Return  *rawType          `json:"return_type,omitempty"`
}

type rawType struct {
	Kind string `json:"kind"`
	Dims []int  `json:"dims,omitempty"`
}

type rawProgram struct {
	Globals []json.RawMessage `json:"globals"`
	Stmts   []json.RawMessage `json:"stmts"`
}

var kindTable = map[string]ast.BasicKind{
	"bool": ast.Bool, "char": ast.Char, "int": ast.Int, "float": ast.Float,
	"double": ast.Double, "string": ast.String, "void": ast.Void, "error": ast.Error,
}

func parseType(t *rawType) ast.Type {
	if t == nil {
		return ast.Type{}
	}
	return ast.Type{Kind: kindTable[t.Kind], Dims: t.Dims}
}

// Load decodes data into an ast.Program.
func Load(data []byte) (*ast.Program, error) {
	var rp rawProgram
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, fmt.Errorf("astjson: %w", err)
	}
	prog := &ast.Program{}
	for _, raw := range rp.Globals {
		s, err := decodeStmt(raw)
		if err != nil {
			return nil, err
		}
		prog.Globals = append(prog.Globals, s)
	}
	for _, raw := range rp.Stmts {
		s, err := decodeStmt(raw)
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
	}
	return prog, nil
}

func decodeExpr(raw json.RawMessage) (ast.Expression, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var n rawNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "int_lit":
		var v int64
		_ = json.Unmarshal(n.Value, &v)
		return ast.NewIntLit(n.Line, v), nil
	case "real_lit":
		var v float64
		_ = json.Unmarshal(n.Value, &v)
		return ast.NewRealLit(n.Line, v), nil
	case "string_lit":
		var v string
		_ = json.Unmarshal(n.Value, &v)
		return ast.NewStringLit(n.Line, v), nil
	case "bool_lit":
		var v bool
		_ = json.Unmarshal(n.Value, &v)
		return ast.NewBoolLit(n.Line, v), nil
	case "char_lit":
		var v string
		_ = json.Unmarshal(n.Value, &v)
		r := rune(0)
		if len(v) > 0 {
			r = []rune(v)[0]
		}
		return ast.NewCharLit(n.Line, r), nil
	case "var_ref":
		v := ast.NewVarRef(n.Line, n.Name)
		for _, idxRaw := range n.Indices {
			idx, err := decodeExpr(idxRaw)
			if err != nil {
				return nil, err
			}
			v.Indices = append(v.Indices, idx)
		}
		return v, nil
	case "unary":
		operand, err := decodeExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(n.Line, ast.Op(n.Op), operand), nil
	case "binary":
		left, err := decodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpr(n.Line, ast.Op(n.Op), left, right), nil
	case "postfix":
		operand, err := decodeExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		vr, _ := operand.(*ast.VarRef)
		return ast.NewPostfixExpr(n.Line, ast.Op(n.Op), vr), nil
	case "call":
		var args []ast.Expression
		for _, argRaw := range n.Args {
			arg, err := decodeExpr(argRaw)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return ast.NewCallExpr(n.Line, n.Callee, args), nil
	case "range":
		start, err := decodeExpr(n.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeExpr(n.End)
		if err != nil {
			return nil, err
		}
		return ast.NewRangeExpr(n.Line, start, end), nil
	case "assign":
		lhsExpr, err := decodeExpr(n.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(n.Rhs)
		if err != nil {
			return nil, err
		}
		lhs, _ := lhsExpr.(*ast.VarRef)
		return ast.NewAssignExpr(n.Line, lhs, rhs), nil
	default:
		return nil, fmt.Errorf("astjson: unknown expression kind %q", n.Kind)
	}
}

func decodeStmt(raw json.RawMessage) (ast.Statement, error) {
	var n rawNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "var_decl", "const_decl":
		var init ast.Expression
		var err error
		if len(n.Init) > 0 {
			init, err = decodeExpr(n.Init)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewVarDecl(n.Line, parseType(n.Type), n.Name, init, n.Dims, n.Kind == "const_decl" || n.IsConst), nil
	case "var_decl_list":
		var decls []*ast.VarDecl
		for _, dRaw := range n.Decls {
			d, err := decodeStmt(dRaw)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d.(*ast.VarDecl))
		}
		return ast.NewVarDeclList(n.Line, decls), nil
	case "decl_list":
		var decls []ast.Statement
		for _, dRaw := range n.Decls {
			d, err := decodeStmt(dRaw)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d)
		}
		return ast.NewDeclList(n.Line, decls), nil
	case "func_decl":
		var params []*ast.VarDecl
		for _, pRaw := range n.Params {
			p, err := decodeStmt(pRaw)
			if err != nil {
				return nil, err
			}
			params = append(params, p.(*ast.VarDecl))
		}
		bodyStmt, err := decodeStmt(n.Body)
		if err != nil {
			return nil, err
		}
		body, _ := bodyStmt.(*ast.Block)
		return ast.NewFuncDecl(n.Line, parseType(n.Return), n.Name, params, body), nil
	case "block":
		var stmts []ast.Statement
		for _, sRaw := range n.Stmts {
			s, err := decodeStmt(sRaw)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		}
		return ast.NewBlock(n.Line, stmts), nil
	case "expr_stmt":
		x, err := decodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(n.Line, x), nil
	case "empty_stmt":
		return ast.NewEmptyStmt(n.Line), nil
	case "if":
		cond, err := decodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmt(n.Then)
		if err != nil {
			return nil, err
		}
		var elseStmt ast.Statement
		if len(n.Else) > 0 {
			elseStmt, err = decodeStmt(n.Else)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewIfStmt(n.Line, cond, then, elseStmt), nil
	case "while":
		cond, err := decodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewWhileStmt(n.Line, cond, body), nil
	case "for":
		var initStmt, stepStmt ast.Statement
		var cond ast.Expression
		var err error
		if len(n.Init) > 0 {
			initStmt, err = decodeStmt(n.Init)
			if err != nil {
				return nil, err
			}
		}
		if len(n.Cond) > 0 {
			cond, err = decodeExpr(n.Cond)
			if err != nil {
				return nil, err
			}
		}
		if len(n.Step) > 0 {
			stepStmt, err = decodeStmt(n.Step)
			if err != nil {
				return nil, err
			}
		}
		body, err := decodeStmt(n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForStmt(n.Line, initStmt, cond, stepStmt, body), nil
	case "foreach":
		varExpr, err := decodeExpr(n.Var)
		if err != nil {
			return nil, err
		}
		collExpr, err := decodeExpr(n.Coll)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(n.Body)
		if err != nil {
			return nil, err
		}
		v, _ := varExpr.(*ast.VarRef)
		coll, _ := collExpr.(*ast.RangeExpr)
		return ast.NewForeachStmt(n.Line, v, coll, body), nil
	case "return":
		var value ast.Expression
		var err error
		if len(n.Value) > 0 {
			value, err = decodeExpr(n.Value)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewReturnStmt(n.Line, value), nil
	case "print", "println":
		var args []ast.Expression
		for _, argRaw := range n.Args {
			arg, err := decodeExpr(argRaw)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if n.Kind == "print" {
			return ast.NewPrintStmt(n.Line, args), nil
		}
		return ast.NewPrintlnStmt(n.Line, args), nil
	case "read":
		varExpr, err := decodeExpr(n.Var)
		if err != nil {
			return nil, err
		}
		v, _ := varExpr.(*ast.VarRef)
		return ast.NewReadStmt(n.Line, v), nil
	default:
		return nil, fmt.Errorf("astjson: unknown statement kind %q", n.Kind)
	}
}
