package codegen

import (
	"strconv"
	"strings"

	"github.com/Akiane-cloudy/NTUST-CompilerDesign-sD-Compiler/internal/ast"
)

func (g *Generator) visitExpr(e ast.Expression) {
	switch n := e.(type) {
	case *ast.IntLit:
		g.emitIntConst(n.Value)
	case *ast.BoolLit:
		if n.Value {
			g.em.Emit("iconst_1")
		} else {
			g.em.Emit("iconst_0")
		}
	case *ast.StringLit:
		g.em.Emit("ldc \"" + n.Value + "\"")
	case *ast.CharLit:
		g.em.Emit("ldc '" + string(n.Value) + "'")
	case *ast.RealLit:
		g.em.Emit("ldc2_w " + strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *ast.VarRef:
		// Indices are ignored here: neither this port nor the original it is
		// grounded on emits any element load instruction (iaload et al.) —
		// array support stops at compile-time constant tracking and bounds
		// checking in the analyzer (see DESIGN.md).
		g.emitLoad(g.tab.Entry(n.Sym))
	case *ast.UnaryExpr:
		g.visitUnary(n)
	case *ast.BinaryExpr:
		g.visitBinary(n)
	case *ast.PostfixExpr:
		g.visitPostfix(n)
	case *ast.CallExpr:
		g.visitCall(n)
	case *ast.RangeExpr:
		g.visitExpr(n.Start)
		g.visitExpr(n.End)
	case *ast.AssignExpr:
		g.visitAssign(n)
	default:
		panic("codegen: unhandled expression type")
	}
}

func (g *Generator) emitIntConst(v int64) {
	switch {
	case v >= -1 && v <= 5:
		names := map[int64]string{-1: "iconst_m1", 0: "iconst_0", 1: "iconst_1", 2: "iconst_2", 3: "iconst_3", 4: "iconst_4", 5: "iconst_5"}
		g.em.Emit(names[v])
	case v >= -128 && v <= 127:
		g.em.Emit("bipush " + strconv.FormatInt(v, 10))
	default:
		g.em.Emit("ldc " + strconv.FormatInt(v, 10))
	}
}

func (g *Generator) visitUnary(u *ast.UnaryExpr) {
	g.visitExpr(u.Operand)
	switch u.Op {
	case ast.OpNeg:
		g.em.Emit("ineg")
	case ast.OpNot:
		l, lEnd := g.ctx.NewLabel(), g.ctx.NewLabel()
		g.em.Emit("ifeq " + l)
		g.em.Emit("iconst_0")
		g.em.Emit("goto " + lEnd)
		g.em.Emit(l + ":")
		g.em.Emit("iconst_1")
		g.em.Emit(lEnd + ":")
	}
}

// visitAssign applies the mandatory dup-before-store correction: the
// original stores the rhs directly, so an Assign nested inside another
// expression (x = y = z) would leave the evaluation stack one value short
// once the inner store consumes it. Duplicating the value before the
// store keeps one copy on the stack as the AssignExpr's own result.
func (g *Generator) visitAssign(asn *ast.AssignExpr) {
	g.visitExpr(asn.Rhs)
	g.em.Emit("dup")
	g.emitStore(g.tab.Entry(asn.Lhs.Sym))
}

func (g *Generator) visitBinary(b *ast.BinaryExpr) {
	switch b.Op {
	case ast.OpAnd, ast.OpOr:
		g.visitShortCircuit(b)
		return
	}

	g.visitExpr(b.Left)
	g.visitExpr(b.Right)

	switch b.Op {
	case ast.OpAdd:
		g.em.Emit("iadd")
	case ast.OpSub:
		g.em.Emit("isub")
	case ast.OpMul:
		g.em.Emit("imul")
	case ast.OpDiv:
		g.em.Emit("idiv")
	case ast.OpMod:
		g.em.Emit("irem")
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe, ast.OpEq, ast.OpNeq:
		g.visitComparison(b.Op)
	}
}

func (g *Generator) visitComparison(op ast.Op) {
	lTrue, lEnd := g.ctx.NewLabel(), g.ctx.NewLabel()
	g.em.Emit("isub")
	branch := map[ast.Op]string{
		ast.OpLt: "iflt", ast.OpLe: "ifle", ast.OpGt: "ifgt",
		ast.OpGe: "ifge", ast.OpEq: "ifeq", ast.OpNeq: "ifne",
	}[op]
	g.em.Emit(branch + " " + lTrue)
	g.em.Emit("iconst_0")
	g.em.Emit("goto " + lEnd)
	g.em.Emit(lTrue + ":")
	g.em.Emit("iconst_1")
	g.em.Emit(lEnd + ":")
}

// visitShortCircuit implements the Open Question resolution to
// short-circuit && and ||, replacing the original's non-short-circuiting
// iand/ior (which always evaluates both operands) with a branch that
// skips the right operand once the left one already decides the result.
func (g *Generator) visitShortCircuit(b *ast.BinaryExpr) {
	g.visitExpr(b.Left)
	lShort, lEnd := g.ctx.NewLabel(), g.ctx.NewLabel()
	if b.Op == ast.OpAnd {
		g.em.Emit("ifeq " + lShort) // false && _ -> false, skip rhs
	} else {
		g.em.Emit("ifne " + lShort) // true || _ -> true, skip rhs
	}
	g.visitExpr(b.Right)
	g.em.Emit("goto " + lEnd)
	g.em.Emit(lShort + ":")
	if b.Op == ast.OpAnd {
		g.em.Emit("iconst_0")
	} else {
		g.em.Emit("iconst_1")
	}
	g.em.Emit(lEnd + ":")
}

func (g *Generator) visitPostfix(p *ast.PostfixExpr) {
	entry := g.tab.Entry(p.Operand.Sym)
	desc := jasmType(p.Type())

	if entry.IsGlobal {
		field := g.ctx.ClassName + "." + entry.Name
		g.em.Emit("getstatic " + desc + " " + field)
		g.em.Emit("dup")
		g.em.Emit("iconst_1")
		if p.Op == ast.OpInc {
			g.em.Emit("iadd")
		} else {
			g.em.Emit("isub")
		}
		g.em.Emit("putstatic " + desc + " " + field)
	} else {
		slot := strconv.Itoa(entry.Slot)
		g.em.Emit("iload " + slot)
		g.em.Emit("dup")
		g.em.Emit("iconst_1")
		if p.Op == ast.OpInc {
			g.em.Emit("iadd")
		} else {
			g.em.Emit("isub")
		}
		g.em.Emit("istore " + slot)
	}
}

func (g *Generator) visitCall(c *ast.CallExpr) {
	for _, arg := range c.Args {
		g.visitExpr(arg)
	}
	entry := g.tab.Entry(c.Sym)

	var sig strings.Builder
	sig.WriteByte('(')
	for i, pt := range entry.ParamTypes {
		if i > 0 {
			sig.WriteString(", ")
		}
		sig.WriteString(jasmType(pt))
	}
	sig.WriteByte(')')

	g.em.Emit("invokestatic " + jasmType(entry.Type) + " " + g.ctx.ClassName + "." + c.Callee + sig.String())
}
