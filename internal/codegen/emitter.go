package codegen

import "strings"

// Emitter accumulates the textual Jasmin-like assembly listing. Each Emit
// call writes one line at the current indentation depth (4 spaces per
// level, spec.md §6); Push/Pop adjust that depth the way the original's
// em.push()/em.pop() calls bracket a "{ ... }" block.
type Emitter struct {
	lines  []string
	indent int
}

// Emit appends one line at the current indentation depth.
func (e *Emitter) Emit(line string) {
	e.lines = append(e.lines, strings.Repeat("    ", e.indent)+line)
}

// Push increases the indentation depth by one level.
func (e *Emitter) Push() { e.indent++ }

// Pop decreases the indentation depth by one level.
func (e *Emitter) Pop() {
	if e.indent > 0 {
		e.indent--
	}
}

// String renders the accumulated listing, one instruction per line.
func (e *Emitter) String() string {
	return strings.Join(e.lines, "\n") + "\n"
}
