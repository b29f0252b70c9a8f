// Package symbols defines the static operator, function and constant tables
// shared by the parser and both codegen backends.
//
// The tables are read-only, constructed once at process start, and safe to
// share across all compiled expressions and across goroutines. Operator
// tokens are resolved to an enumerated [Op] tag during parsing and function
// identifiers to a [*FuncDef], so codegen never re-parses a name string.
package symbols

import "github.com/helicoid/zplot/pkg/cplx"

// FreeVariable is the single reserved free-variable name of the grammar.
const FreeVariable = "z"

// Assoc is the associativity of a binary operator.
type Assoc uint8

const (
	AssocLeft Assoc = iota
	AssocRight
)

// Op is the enumerated tag of a binary operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow

	opCount
)

// Binding powers. The unary-minus marker sits between the multiplicative
// and power tiers: -2*3 is (-2)*3 but -2^2 is -(2^2).
const (
	precAdditive       = 1
	precMultiplicative = 2
	PrecUnaryMinus     = 3
	precPower          = 4
)

// OpDef describes one binary operator: its surface symbol, precedence
// (higher binds tighter), associativity, and the two codegen recipes.
type OpDef struct {
	Symbol     string
	Precedence int
	Assoc      Assoc
	GLSLName   string
	Eval       func(a, b cplx.Complex) cplx.Complex
}

// operators is indexed by Op.
var operators = [opCount]OpDef{
	OpAdd: {"+", precAdditive, AssocLeft, "c_add", cplx.Complex.Add},
	OpSub: {"-", precAdditive, AssocLeft, "c_sub", cplx.Complex.Sub},
	OpMul: {"*", precMultiplicative, AssocLeft, "c_mul", cplx.Complex.Mul},
	OpDiv: {"/", precMultiplicative, AssocLeft, "c_div", cplx.Complex.Div},
	OpPow: {"^", precPower, AssocRight, "c_pow", cplx.Complex.Pow},
}

// Def returns the table entry for op.
func (op Op) Def() *OpDef {
	return &operators[op]
}

// String returns the operator's surface symbol.
func (op Op) String() string {
	return operators[op].Symbol
}

// LookupOperator maps an operator symbol to its tag.
func LookupOperator(symbol string) (Op, bool) {
	for op := Op(0); op < opCount; op++ {
		if operators[op].Symbol == symbol {
			return op, true
		}
	}
	return 0, false
}

// FuncDef describes one callable function: fixed arity and the two codegen
// recipes. Eval receives exactly Arity arguments in source order.
type FuncDef struct {
	Name     string
	Arity    int
	GLSLName string
	Eval     func(args []cplx.Complex) cplx.Complex
}

var functions = map[string]*FuncDef{
	"sin":  {"sin", 1, "c_sin", func(a []cplx.Complex) cplx.Complex { return a[0].Sin() }},
	"cos":  {"cos", 1, "c_cos", func(a []cplx.Complex) cplx.Complex { return a[0].Cos() }},
	"sinh": {"sinh", 1, "c_sinh", func(a []cplx.Complex) cplx.Complex { return a[0].Sinh() }},
	"cosh": {"cosh", 1, "c_cosh", func(a []cplx.Complex) cplx.Complex { return a[0].Cosh() }},
	"exp":  {"exp", 1, "c_exp", func(a []cplx.Complex) cplx.Complex { return a[0].Exp() }},
	"log":  {"log", 1, "c_log", func(a []cplx.Complex) cplx.Complex { return a[0].Log() }},
	"sqrt": {"sqrt", 1, "c_sqrt", func(a []cplx.Complex) cplx.Complex { return a[0].Sqrt() }},
	"pow":  {"pow", 2, "c_pow", func(a []cplx.Complex) cplx.Complex { return a[0].Pow(a[1]) }},
}

// LookupFunction returns the function table entry for name.
func LookupFunction(name string) (*FuncDef, bool) {
	def, ok := functions[name]
	return def, ok
}

// ConstDef describes one named constant: its value and its shader literal.
type ConstDef struct {
	Name        string
	Value       cplx.Complex
	GLSLLiteral string
}

var constants = map[string]*ConstDef{
	"pi": {"pi", cplx.Real(3.141592653589793), "vec2(3.141592653589793, 0.0)"},
	"e":  {"e", cplx.Real(2.718281828459045), "vec2(2.718281828459045, 0.0)"},
	"i":  {"i", cplx.New(0, 1), "vec2(0.0, 1.0)"},
}

// LookupConstant returns the constant table entry for name.
func LookupConstant(name string) (*ConstDef, bool) {
	def, ok := constants[name]
	return def, ok
}
