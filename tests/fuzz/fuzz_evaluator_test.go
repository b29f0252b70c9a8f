package fuzz

import (
	"testing"

	"github.com/helicoid/zplot"
	"github.com/helicoid/zplot/pkg/cplx"
	"github.com/helicoid/zplot/pkg/evaluator"
)

var fixturePoints = []cplx.Complex{
	cplx.Zero,
	cplx.Real(1),
	cplx.New(0, 1),
	cplx.New(-2.5, 3.5),
	cplx.New(1e8, -1e8),
}

// Any input that parses must also compile and evaluate without panicking,
// for every sampled point. Singularities are values, not faults.
func FuzzEvaluator(f *testing.F) {
	seeds := []string{
		`z`,
		`1/z`,
		`z^z`,
		`log(z)*sqrt(z)`,
		`pow(z, i) + cos(z)`,
		`0^0`,
		`1/0`,
		``,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		expr, err := zplot.Compile(input)
		if err != nil {
			return
		}
		fn, err := evaluator.Compile(expr.AST())
		if err != nil {
			return
		}
		for _, z := range fixturePoints {
			_ = fn(z)
		}
	})
}
