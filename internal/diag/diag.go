// Package diag formats the analyzer's diagnostics. Diagnostics are plain
// data (spec.md §7: the analyzer never panics or returns a Go error for a
// user-facing problem), rendered on demand by a Sink — grounded on the
// teacher's internal/semantic/errors.go split between a structured
// SemanticError and its rendered AnalysisError/CompilerError form, adapted
// to this module's single textual rendering rule instead of the teacher's
// per-type message templates.
package diag

import "fmt"

// Severity distinguishes a hard error (suppresses code generation) from a
// warning (reported but does not stop emission).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Kind classifies a Diagnostic so tests can assert on error class rather
// than message substrings, mirroring the teacher's SemanticErrorType enum.
type Kind string

const (
	KindUndeclaredVariable Kind = "undeclared_variable"
	KindUndeclaredFunction Kind = "undeclared_function"
	KindRedeclaration      Kind = "redeclaration"
	KindTypeMismatch       Kind = "type_mismatch"
	KindConstViolation     Kind = "const_violation"
	KindArgumentCount      Kind = "argument_count"
	KindArrayBounds        Kind = "array_bounds"
	KindMissingReturn      Kind = "missing_return"
	KindInvalidOperation   Kind = "invalid_operation"
	KindNotCallable        Kind = "not_callable"
	KindGeneric            Kind = "generic"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Line     int
	Message  string
}

// String renders the diagnostic exactly as spec.md §6 mandates:
// "line <n>: <msg>" for an error, "Warning at line <n>: <msg>" for a
// warning — the same two formats original_source's
// SemanticAnalyzer::error/::warning produce.
func (d Diagnostic) String() string {
	if d.Severity == SeverityWarning {
		return fmt.Sprintf("Warning at line %d: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Sink collects diagnostics in report order.
type Sink struct {
	diags []Diagnostic
}

// Error appends an error-severity diagnostic.
func (s *Sink) Error(kind Kind, line int, format string, args ...interface{}) {
	s.diags = append(s.diags, Diagnostic{
		Severity: SeverityError,
		Kind:     kind,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warning appends a warning-severity diagnostic.
func (s *Sink) Warning(kind Kind, line int, format string, args ...interface{}) {
	s.diags = append(s.diags, Diagnostic{
		Severity: SeverityWarning,
		Kind:     kind,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns every diagnostic reported so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic { return s.diags }

// HasErrors reports whether any error-severity diagnostic was reported.
// Code generation must not run when this is true (spec.md §5).
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Strings renders every diagnostic with Diagnostic.String, in report order.
func (s *Sink) Strings() []string {
	out := make([]string, len(s.diags))
	for i, d := range s.diags {
		out[i] = d.String()
	}
	return out
}
