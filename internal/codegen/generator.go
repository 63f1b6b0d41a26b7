// Package codegen implements the code generator: it walks an
// analyzer-annotated Program and emits a Jasmin-like textual assembly
// listing, grounded on original_source/src/CodeGenVisitor.cpp and
// original_source/include/CodeGenContext.hpp (CodeGenVisitor.hpp and
// CodeGenVisitor's own header declaration are empty in the retrieved
// source, so the Generator/Emitter split here is designed from the call
// pattern visible in the .cpp file alone: em.emit/em.push/em.pop).
package codegen

import (
	"strconv"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/symtab"
)

// Generator walks a Program and accumulates the emitted listing. Call
// Generate once per Program; the analyzer must have already annotated
// every node's Type and SymbolID, and the Sink it reported into must have
// no errors (spec.md §5).
type Generator struct {
	tab *symtab.Table
	em  Emitter
	ctx Context
}

// Generate returns the Jasmin-like assembly listing for prog, using tab
// (the same symbol table the analyzer populated) to resolve every
// SymbolID, under the given class name.
func Generate(prog *ast.Program, tab *symtab.Table, className string) string {
	if className == "" {
		className = "example"
	}
	g := &Generator{tab: tab, ctx: Context{ClassName: className}}
	g.visitProgram(prog)
	return g.em.String()
}

func (g *Generator) visitProgram(p *ast.Program) {
	g.em.Emit("class " + g.ctx.ClassName)
	g.em.Emit("{")
	g.em.Push()

	var clinitInits []*ast.VarDecl
	for _, decl := range p.Globals {
		clinitInits = append(clinitInits, g.emitGlobalFields(decl)...)
	}

	// Mandatory correction over the original: the original's two global
	// field branches (VarDeclList and plain VarDecl) each try to emit a
	// non-literal initializer's code but never store it anywhere, silently
	// dropping the assignment. This synthesizes a <clinit> method that
	// evaluates and putstatics every such initializer in declaration order,
	// after all field declarations so every field referenced by one
	// initializer's expression already has a "field static" line above it.
	if len(clinitInits) > 0 {
		g.emitClinit(clinitInits)
	}

	for _, decl := range p.Globals {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			g.visitFuncDecl(fn)
		}
	}
	for _, stmt := range p.Stmts {
		if fn, ok := stmt.(*ast.FuncDecl); ok {
			g.visitFuncDecl(fn)
		}
	}

	g.em.Pop()
	g.em.Emit("}")
}

// emitGlobalFields emits the "field static" declarations reachable
// directly from one top-level Globals entry (a bare VarDecl or a
// VarDeclList of them; DeclList/FuncDecl entries contribute nothing here),
// and returns the subset whose initializer is non-literal so the caller
// can feed them to the synthesized <clinit>.
func (g *Generator) emitGlobalFields(decl ast.Statement) []*ast.VarDecl {
	switch n := decl.(type) {
	case *ast.VarDeclList:
		var pending []*ast.VarDecl
		for _, vd := range n.Decls {
			pending = append(pending, g.emitOneGlobalField(vd)...)
		}
		return pending
	case *ast.VarDecl:
		return g.emitOneGlobalField(n)
	default:
		return nil
	}
}

func (g *Generator) emitOneGlobalField(vd *ast.VarDecl) []*ast.VarDecl {
	desc, ok := fieldType(vd.VarType.Kind)
	if !ok {
		return nil
	}

	instr := "field static " + desc + " " + vd.Name
	if vd.Init == nil {
		g.em.Emit(instr)
		return nil
	}

	switch lit := vd.Init.(type) {
	case *ast.IntLit:
		instr += " = " + strconv.FormatInt(lit.Value, 10)
	case *ast.BoolLit:
		if lit.Value {
			instr += " = 1"
		} else {
			instr += " = 0"
		}
	case *ast.StringLit:
		instr += " = \"" + lit.Value + "\""
	default:
		g.em.Emit(instr)
		return []*ast.VarDecl{vd}
	}
	g.em.Emit(instr)
	return nil
}

// emitClinit synthesizes the static initializer method for every global
// whose initializer did not fold to a field-declaration literal.
func (g *Generator) emitClinit(decls []*ast.VarDecl) {
	g.em.Emit("method public static void <clinit>()")
	g.em.Emit("max_stack 32")
	g.em.Emit("max_locals 32")
	g.em.Emit("{")
	g.em.Push()
	for _, vd := range decls {
		g.visitExpr(vd.Init)
		g.emitStore(g.tab.Entry(vd.Sym))
	}
	g.em.Emit("return")
	g.em.Pop()
	g.em.Emit("}")
}

func (g *Generator) visitFuncDecl(fn *ast.FuncDecl) {
	entry := g.tab.Entry(fn.Sym)

	sig := jasmType(entry.Type) + " " + fn.Name + "("
	if fn.Name == "main" {
		sig += "java.lang.String[]"
	} else {
		for i, pt := range entry.ParamTypes {
			if i > 0 {
				sig += ", "
			}
			sig += jasmType(pt)
		}
	}
	sig += ")"

	g.em.Emit("method public static " + sig)
	g.em.Emit("max_stack 32")
	g.em.Emit("max_locals 32")
	g.em.Emit("{")
	g.em.Push()

	g.visitStmt(fn.Body)
	if entry.Type.Kind == ast.Void {
		g.em.Emit("return")
	}

	g.em.Pop()
	g.em.Emit("}")
}
