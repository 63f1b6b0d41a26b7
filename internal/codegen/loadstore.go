package codegen

import (
	"strconv"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/symtab"
)

// emitLoad and emitStore push/pop a variable's value, grounded verbatim on
// original_source's emitLoad/emitStore: a global uses getstatic/putstatic
// against the class's own static field, a local uses iload/istore against
// its slot.
func (g *Generator) emitLoad(e *symtab.Entry) {
	if e.IsGlobal {
		g.em.Emit("getstatic " + loadStoreDesc(e) + " " + g.ctx.ClassName + "." + e.Name)
	} else {
		g.em.Emit("iload " + strconv.Itoa(e.Slot))
	}
}

func (g *Generator) emitStore(e *symtab.Entry) {
	if e.IsGlobal {
		g.em.Emit("putstatic " + loadStoreDesc(e) + " " + g.ctx.ClassName + "." + e.Name)
	} else {
		g.em.Emit("istore " + strconv.Itoa(e.Slot))
	}
}

// loadStoreDesc mirrors the narrower String/Bool/else-int switch
// emitLoad/emitStore use in the original, independently of jasmType's own
// (also narrow, but Void-aware) switch in types.go — the two free
// functions in CodeGenVisitor.cpp never agreed on every case, and this
// port keeps them distinct rather than merging them into one "the" type
// descriptor helper.
func loadStoreDesc(e *symtab.Entry) string {
	switch e.Type.Kind {
	case ast.String:
		return "java.lang.String"
	case ast.Bool:
		return "boolean"
	default:
		return "int"
	}
}
