// Package evaluator compiles expression ASTs into host-callable evaluation
// functions.
//
// Each AST node is pre-compiled once into a small closure; evaluating a
// point walks the closure chain with no name lookups and no tree
// re-traversal bookkeeping. The resulting [Func] is referentially
// transparent: equal inputs on the same compiled expression produce equal
// outputs, with no side effects, so it is safe to call from any goroutine
// between recompilations.
//
// # Example
//
//	fn, err := evaluator.Compile(expr.AST())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w := fn(cplx.New(0.5, -0.5))
package evaluator

import (
	"github.com/helicoid/zplot/pkg/cplx"
	"github.com/helicoid/zplot/pkg/types"
)

// Func evaluates a compiled expression at one point of the complex plane.
type Func func(z cplx.Complex) cplx.Complex

// Compile builds the evaluation function for the given AST.
//
// Numeric edge cases (division by zero, log of zero, pow of a zero base)
// are not errors; they produce the defined sentinel results of pkg/cplx so
// that every point of the plane, singularities included, has a value.
func Compile(ast *types.ASTNode) (Func, error) {
	if ast == nil {
		return nil, types.NewError(types.ErrInvalidStructure, "nil expression tree", 0)
	}
	return compileNode(ast)
}

func compileNode(n *types.ASTNode) (Func, error) {
	switch n.Type {
	case types.NodeConstant:
		v := cplx.Real(n.NumValue)
		return func(cplx.Complex) cplx.Complex { return v }, nil

	case types.NodeVariable:
		if n.Const != nil {
			v := n.Const.Value
			return func(cplx.Complex) cplx.Complex { return v }, nil
		}
		return func(z cplx.Complex) cplx.Complex { return z }, nil

	case types.NodeBinary:
		lhs, err := compileNode(n.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := compileNode(n.RHS)
		if err != nil {
			return nil, err
		}
		apply := n.Op.Def().Eval
		return func(z cplx.Complex) cplx.Complex {
			return apply(lhs(z), rhs(z))
		}, nil

	case types.NodeCall:
		args := make([]Func, len(n.Arguments))
		for i, a := range n.Arguments {
			fn, err := compileNode(a)
			if err != nil {
				return nil, err
			}
			args[i] = fn
		}
		apply := n.Fn.Eval
		return func(z cplx.Complex) cplx.Complex {
			vals := make([]cplx.Complex, len(args))
			for i, fn := range args {
				vals[i] = fn(z)
			}
			return apply(vals)
		}, nil

	case types.NodeNeg:
		operand, err := compileNode(n.LHS)
		if err != nil {
			return nil, err
		}
		return func(z cplx.Complex) cplx.Complex {
			return operand(z).Neg()
		}, nil

	default:
		return nil, types.NewError(types.ErrInvalidStructure, "unknown node type", n.Position)
	}
}
