package codegen

import "strconv"

// Context carries the code generator's only piece of cross-node mutable
// state: the label counter. original_source's CodeGenContext additionally
// carries an allocLocal/resetLocal/currentLocal slot counter, but that
// counter is never actually consulted by CodeGenVisitor.cpp — every local
// access there reads sym.slot, the slot the symbol table already assigned
// during semantic analysis — so it is dead code this port deliberately
// drops rather than ports, per spec.md's explicit "no second allocator
// runs in the generator" instruction. The grammar this module targets has
// no break/continue statement, so the original's loop-label stack (used
// only by constructs this module doesn't have) is dropped for the same
// reason: nothing would ever push onto it.
type Context struct {
	ClassName string
	labelSeq  int
}

// NewLabel returns the next label in the L0, L1, L2, ... sequence.
func (c *Context) NewLabel() string {
	l := "L" + strconv.Itoa(c.labelSeq)
	c.labelSeq++
	return l
}
