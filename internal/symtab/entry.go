package symtab

import "github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"

// Entry is a symbol table entry for a variable, constant, or function,
// grounded on original_source/include/SymbolTable.hpp's SymEntry.
type Entry struct {
	Name string
	Type ast.Type

	IsConst bool
	IsFunc  bool

	// Code generation metadata.
	IsGlobal bool
	Slot     int // JVM local slot; -1 for globals and functions.

	// Constant tracking. Value is non-nil once a scalar constant's value is
	// known; ArrayValues tracks a const array's per-element values, sized to
	// the product of its declared dimensions, with a nil element meaning
	// "not currently known" rather than "known to be zero".
	Value       *ConstValue
	ArrayValues []*ConstValue

	// Function metadata, set only when IsFunc.
	ParamTypes []ast.Type
	ReturnType *ast.Type
}
