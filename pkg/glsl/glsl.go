// Package glsl emits shader-language source text from a parsed expression.
//
// The backend is pure text synthesis: a total recursion over the AST that
// never evaluates or folds anything. It produces a single function
// definition with the host-agreed signature
//
//	vec2 F_Z(vec2 z)
//
// where the two vector components encode the real and imaginary parts. The
// emitted body consists solely of calls to the companion arithmetic routine
// library (c_add, c_mul, ...) that the surrounding shader program is
// expected to provide. [Prelude] ships that library, with formulas
// mirroring pkg/cplx so host evaluation and device rendering agree up to
// floating rounding.
package glsl

import (
	"strconv"
	"strings"

	"github.com/helicoid/zplot/pkg/types"
)

// FunctionName is the fixed name of the emitted shader function.
const FunctionName = "F_Z"

// variableName is the shader identifier bound to the free variable.
const variableName = "z"

// Emit renders the AST as a complete shader function definition.
func Emit(ast *types.ASTNode) string {
	var b strings.Builder
	b.WriteString("vec2 ")
	b.WriteString(FunctionName)
	b.WriteString("(vec2 ")
	b.WriteString(variableName)
	b.WriteString(") {\n    return ")
	emitExpr(&b, ast)
	b.WriteString(";\n}\n")
	return b.String()
}

// Fragment returns the companion routine library followed by the emitted
// function, ready to splice into a fragment shader at the designated
// insertion point.
func Fragment(ast *types.ASTNode) string {
	return Prelude + "\n" + Emit(ast)
}

// emitExpr writes the call expression for one AST node.
func emitExpr(b *strings.Builder, n *types.ASTNode) {
	switch n.Type {
	case types.NodeConstant:
		b.WriteString("vec2(")
		b.WriteString(formatFloat(n.NumValue))
		b.WriteString(", 0.0)")

	case types.NodeVariable:
		if n.Const != nil {
			b.WriteString(n.Const.GLSLLiteral)
		} else {
			b.WriteString(variableName)
		}

	case types.NodeBinary:
		b.WriteString(n.Op.Def().GLSLName)
		b.WriteByte('(')
		emitExpr(b, n.LHS)
		b.WriteString(", ")
		emitExpr(b, n.RHS)
		b.WriteByte(')')

	case types.NodeCall:
		b.WriteString(n.Fn.GLSLName)
		b.WriteByte('(')
		for i, arg := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			emitExpr(b, arg)
		}
		b.WriteByte(')')

	case types.NodeNeg:
		b.WriteString("c_mul(vec2(-1.0, 0.0), ")
		emitExpr(b, n.LHS)
		b.WriteByte(')')
	}
}

// formatFloat renders a constant at full precision as a valid shader float
// literal (a trailing ".0" is added when the rendering has neither a
// decimal point nor an exponent).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', 17, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
