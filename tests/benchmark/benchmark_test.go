// Package benchmark provides performance benchmarks for zplot.
//
// Run all benchmarks:
//
//	go test -bench=. -benchmem ./tests/benchmark/...
//
// Run specific category:
//
//	go test -bench=BenchmarkParse -benchmem ./tests/benchmark/...
//	go test -bench=BenchmarkEval -benchmem ./tests/benchmark/...
package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/helicoid/zplot/pkg/cache"
	"github.com/helicoid/zplot/pkg/cplx"
	"github.com/helicoid/zplot/pkg/evaluator"
	"github.com/helicoid/zplot/pkg/glsl"
	"github.com/helicoid/zplot/pkg/parser"
	"github.com/helicoid/zplot/pkg/types"
)

// ---------------------------------------------------------------------------
// Test expressions
// ---------------------------------------------------------------------------

const (
	// simpleExpr - the identity map
	simpleExpr = "z"

	// rationalExpr - a small rational function, typical interactive input
	rationalExpr = "sin(z)/(z^2 + 1)"

	// denseExpr - every operator and function category at once
	denseExpr = "-pow(z, i)*e^(i*pi*z) + log(sqrt(z))/cosh(z) - sinh(cos(z^3))"
)

func mustParse(source string) *types.Expression {
	expr, err := parser.Parse(source)
	if err != nil {
		panic(fmt.Sprintf("mustParse(%q): %v", source, err))
	}
	return expr
}

func mustEval(expr *types.Expression) evaluator.Func {
	fn, err := evaluator.Compile(expr.AST())
	if err != nil {
		panic(err)
	}
	return fn
}

// ---------------------------------------------------------------------------
// Parser benchmarks
// ---------------------------------------------------------------------------

func BenchmarkParseSimple(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := parser.Parse(simpleExpr)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseRational(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := parser.Parse(rationalExpr)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDense(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := parser.Parse(denseExpr)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// Evaluation – single point
// ---------------------------------------------------------------------------

func BenchmarkEvalSimple(b *testing.B) {
	fn := mustEval(mustParse(simpleExpr))
	z := cplx.New(0.5, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(z)
	}
}

func BenchmarkEvalRational(b *testing.B) {
	fn := mustEval(mustParse(rationalExpr))
	z := cplx.New(0.5, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(z)
	}
}

func BenchmarkEvalDense(b *testing.B) {
	fn := mustEval(mustParse(denseExpr))
	z := cplx.New(0.5, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(z)
	}
}

// ---------------------------------------------------------------------------
// Evaluation – frame sweep
// ---------------------------------------------------------------------------

// A 256x256 sweep approximates the host-side cost of rendering one frame
// without a GPU.
func BenchmarkEvalFrameSweep(b *testing.B) {
	fn := mustEval(mustParse(rationalExpr))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for py := 0; py < 256; py++ {
			for px := 0; px < 256; px++ {
				z := cplx.New(float64(px)/64-2, float64(py)/64-2)
				_ = fn(z)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Shader emission
// ---------------------------------------------------------------------------

func BenchmarkEmitRational(b *testing.B) {
	expr := mustParse(rationalExpr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = glsl.Emit(expr.AST())
	}
}

func BenchmarkEmitDense(b *testing.B) {
	expr := mustParse(denseExpr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = glsl.Emit(expr.AST())
	}
}

func BenchmarkFragment(b *testing.B) {
	expr := mustParse(rationalExpr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = glsl.Fragment(expr.AST())
	}
}

// ---------------------------------------------------------------------------
// Full pipeline (parse + both backends)
// ---------------------------------------------------------------------------

func BenchmarkCompileBothBackends(b *testing.B) {
	z := cplx.New(0.5, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expr, err := parser.Parse(rationalExpr)
		if err != nil {
			b.Fatal(err)
		}
		fn, err := evaluator.Compile(expr.AST())
		if err != nil {
			b.Fatal(err)
		}
		_ = fn(z)
		_ = glsl.Emit(expr.AST())
	}
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

func BenchmarkCacheHit(b *testing.B) {
	c := cache.New(cache.DefaultCapacity)
	compile := func() (*types.Expression, error) { return parser.Compile(rationalExpr) }
	if _, err := c.GetOrCompile(rationalExpr, compile); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.GetOrCompile(rationalExpr, compile); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCacheMiss(b *testing.B) {
	c := cache.New(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := fmt.Sprintf("z^2 + %d", i)
		if _, err := c.GetOrCompile(src, func() (*types.Expression, error) {
			return parser.Compile(src)
		}); err != nil {
			b.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// Concurrent evaluation
// ---------------------------------------------------------------------------

func BenchmarkEvalConcurrent(b *testing.B) {
	fn := mustEval(mustParse(rationalExpr))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		z := cplx.New(0.5, 0.5)
		for pb.Next() {
			_ = fn(z)
		}
	})
}
