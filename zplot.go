// Package zplot compiles untrusted, user-supplied mathematical expressions
// over the single free variable z into two semantically equivalent
// executable forms:
//   - shader-language source for a function F_Z(vec2) vec2, spliced by a
//     rendering collaborator into a fragment program for per-pixel
//     domain-colored evaluation
//   - a host-callable evaluator for single-point queries such as hover
//     readouts
//
// Both artifacts are generated from one AST, so a hovered point and the
// rendered pixel under it agree up to floating rounding.
//
// # Quick Start
//
//	// One-shot evaluation
//	w, err := zplot.Eval("sin(z)/(z^2 + 1)", cplx.New(0.5, 0.5))
//
//	// Compile once, consume both artifacts
//	expr, err := zplot.Compile("e^(i*pi*z)")
//	fn, _ := evaluator.Compile(expr.AST())
//	src := glsl.Emit(expr.AST())
//
//	// Interactive use: transactional recompilation
//	prog, err := zplot.NewProgram()
//	if err := prog.Recompile(userInput); err != nil {
//	    // previous expression stays in effect
//	}
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/helicoid/zplot/pkg/parser
//   - Evaluator backend: github.com/helicoid/zplot/pkg/evaluator
//   - Shader backend: github.com/helicoid/zplot/pkg/glsl
//   - Arithmetic: github.com/helicoid/zplot/pkg/cplx
package zplot

import (
	"fmt"

	"github.com/helicoid/zplot/pkg/cplx"
	"github.com/helicoid/zplot/pkg/evaluator"
	"github.com/helicoid/zplot/pkg/glsl"
	"github.com/helicoid/zplot/pkg/parser"
	"github.com/helicoid/zplot/pkg/types"
)

// Version returns the current version of zplot.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles an expression for repeated consumption by the two
// codegen backends. The returned Expression is immutable and safe for
// concurrent use.
func Compile(source string) (*types.Expression, error) {
	return parser.Compile(source)
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It simplifies safe initialization of global variables.
func MustCompile(source string) *types.Expression {
	expr, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("zplot: Compile(%q): %v", source, err))
	}
	return expr
}

// Eval is a convenience function that compiles an expression and evaluates
// it at a single point. For repeated evaluations, compile once and reuse
// the evaluator (or a [Program]).
func Eval(source string, z cplx.Complex) (cplx.Complex, error) {
	expr, err := Compile(source)
	if err != nil {
		return cplx.Zero, err
	}
	fn, err := evaluator.Compile(expr.AST())
	if err != nil {
		return cplx.Zero, err
	}
	return fn(z), nil
}

// ShaderSource is a convenience function that compiles an expression and
// returns its shader function definition.
func ShaderSource(source string) (string, error) {
	expr, err := Compile(source)
	if err != nil {
		return "", err
	}
	return glsl.Emit(expr.AST()), nil
}
