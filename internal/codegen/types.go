package codegen

import "github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"

// jasmType maps a Type to its Jasmin-like descriptor, grounded verbatim on
// original_source's jasmType(): only Int/Bool/String/Void get a real
// descriptor; everything else (Float, Double, Char, Error, and any array
// type) falls back to "int". This is narrower than a complete JVM type
// system would need, but it is exactly what the retrieved original
// implements, and spec.md's own descriptor list does not widen it.
func jasmType(t ast.Type) string {
	switch t.Kind {
	case ast.Int:
		return "int"
	case ast.Bool:
		return "boolean"
	case ast.String:
		return "java.lang.String"
	case ast.Void:
		return "void"
	default:
		return "int"
	}
}

// printSig maps a Type to the parenthesized argument descriptor
// print/println expects, grounded on the original's free function sig().
func printSig(t ast.Type) string {
	switch t.Kind {
	case ast.Int:
		return "(int)"
	case ast.Bool:
		return "(boolean)"
	case ast.String:
		return "(java.lang.String)"
	default:
		return "(int)"
	}
}

// fieldType returns the Jasmin-like field descriptor for a global of kind
// k, or ok=false when k has no field representation at all — matching the
// original Program visitor's "continue" on any global whose type isn't
// Int/Bool/String (Float/Double/Char globals are never declared as
// fields).
func fieldType(k ast.BasicKind) (string, bool) {
	switch k {
	case ast.Int:
		return "int", true
	case ast.Bool:
		return "boolean", true
	case ast.String:
		return "java.lang.String", true
	default:
		return "", false
	}
}
