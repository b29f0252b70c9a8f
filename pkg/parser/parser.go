// Package parser compiles expression strings over one free complex variable
// into ASTs.
//
// The parser consists of two components:
//   - Lexer: tokenizes the input into numbers, identifiers, operators,
//     parentheses and commas
//   - Parser: builds an Abstract Syntax Tree from the token sequence
//
// The parser is a precedence-climbing shunting-yard machine with two stacks:
// finished AST nodes on the output stack, pending operators and markers on
// the operator stack. Operator symbols are resolved to their symbol-table
// tags and function names to their table entries while parsing, so the
// codegen backends never look a name up again.
//
// # Example
//
//	expr, err := parser.Parse("sin(z)/(z^2 + 1)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	"fmt"
	"strconv"

	"github.com/helicoid/zplot/pkg/symbols"
	"github.com/helicoid/zplot/pkg/types"
)

// Parse parses an expression and returns the compiled Expression.
//
// The function tokenizes the input, builds an AST, and validates the syntax.
// If parsing fails, it returns a structured error with position information.
func Parse(input string) (*types.Expression, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := newParser(tokens)
	ast, err := p.run()
	if err != nil {
		return nil, err
	}

	return types.NewExpression(ast, input), nil
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(input string) (*types.Expression, error) {
	return Parse(input)
}

// markerKind identifies what a pending operator-stack entry stands for.
type markerKind uint8

const (
	markerBinary markerKind = iota
	markerUnaryMinus
	markerParen
	markerFunction
)

// marker is one entry on the pending operator stack.
type marker struct {
	kind markerKind
	op   symbols.Op       // markerBinary
	fn   *symbols.FuncDef // markerFunction
	pos  int
}

// parser holds the two shunting-yard stacks while a token sequence is
// reduced to a single AST node.
type parser struct {
	tokens []Token
	output []*types.ASTNode
	stack  []marker
}

func newParser(tokens []Token) *parser {
	return &parser{tokens: tokens}
}

func (p *parser) errorf(code types.ErrorCode, t Token, format string, args ...interface{}) error {
	err := types.NewError(code, fmt.Sprintf(format, args...), t.Position)
	err.Token = t.Value
	return err
}

// run processes every token, drains the operator stack, and requires exactly
// one finished node on the output stack.
func (p *parser) run() (*types.ASTNode, error) {
	var prev *Token
	for i := range p.tokens {
		t := p.tokens[i]
		var err error
		switch t.Type {
		case TokenNumber:
			err = p.onNumber(t, prev)
		case TokenIdent:
			err = p.onIdent(t, prev)
		case TokenOperator:
			err = p.onOperator(t, prev)
		case TokenParenOpen:
			p.stack = append(p.stack, marker{kind: markerParen, pos: t.Position})
		case TokenParenClose:
			err = p.onParenClose(t)
		case TokenComma:
			// No stack action. Function arguments are recovered implicitly:
			// each reduced call consumes exactly arity output nodes.
		}
		if err != nil {
			return nil, err
		}
		prev = &p.tokens[i]
	}

	for len(p.stack) > 0 {
		m := p.pop()
		switch m.kind {
		case markerParen:
			return nil, types.NewError(types.ErrMismatchedParens, "mismatched parentheses", m.pos)
		default:
			if err := p.reduce(m); err != nil {
				return nil, err
			}
		}
	}

	if len(p.output) != 1 {
		return nil, types.NewError(types.ErrInvalidStructure, "invalid expression structure", 0)
	}
	return p.output[0], nil
}

// isValueToken reports whether t carries a value (number or identifier).
func isValueToken(t *Token) bool {
	return t != nil && (t.Type == TokenNumber || t.Type == TokenIdent)
}

func (p *parser) onNumber(t Token, prev *Token) error {
	if isValueToken(prev) {
		return p.errorf(types.ErrValueAdjacency, t, "unexpected token %q after value", t.Value)
	}
	val, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return p.errorf(types.ErrBadNumber, t, "invalid number %q", t.Value)
	}
	node := types.NewASTNode(types.NodeConstant, t.Position)
	node.NumValue = val
	p.output = append(p.output, node)
	return nil
}

func (p *parser) onIdent(t Token, prev *Token) error {
	if isValueToken(prev) {
		return p.errorf(types.ErrValueAdjacency, t, "unexpected token %q after value", t.Value)
	}

	if fn, ok := symbols.LookupFunction(t.Value); ok {
		p.stack = append(p.stack, marker{kind: markerFunction, fn: fn, pos: t.Position})
		return nil
	}

	node := types.NewASTNode(types.NodeVariable, t.Position)
	node.StrValue = t.Value
	if c, ok := symbols.LookupConstant(t.Value); ok {
		node.Const = c
	} else if t.Value != symbols.FreeVariable {
		return p.errorf(types.ErrUnknownIdentifier, t, "unknown identifier %q", t.Value)
	}
	p.output = append(p.output, node)
	return nil
}

// isUnaryContext reports whether a '-' in this position is a unary minus:
// at the start of input, after another operator, after an opening
// parenthesis, or after an argument-separating comma.
func isUnaryContext(prev *Token) bool {
	if prev == nil {
		return true
	}
	switch prev.Type {
	case TokenOperator, TokenParenOpen, TokenComma:
		return true
	default:
		return false
	}
}

func (p *parser) onOperator(t Token, prev *Token) error {
	if t.Value == "-" && isUnaryContext(prev) {
		p.stack = append(p.stack, marker{kind: markerUnaryMinus, pos: t.Position})
		return nil
	}

	if prev != nil && prev.Type == TokenOperator {
		return p.errorf(types.ErrOperatorSequence, t, "unexpected operator %q after operator", t.Value)
	}

	op, ok := symbols.LookupOperator(t.Value)
	if !ok {
		// The lexer only emits the five known operator runes.
		return p.errorf(types.ErrInvalidChar, t, "invalid operator %q", t.Value)
	}
	def := op.Def()

	// Pop everything that binds at least as tightly. A unary-minus marker
	// binds tighter than the additive and multiplicative tiers but looser
	// than '^', so -2*3 is (-2)*3 while -2^2 is -(2^2). A right-associative
	// incoming operator at equal precedence does not pop.
	for len(p.stack) > 0 {
		top := p.top()
		var topPrec int
		switch top.kind {
		case markerParen, markerFunction:
			topPrec = -1
		case markerUnaryMinus:
			topPrec = symbols.PrecUnaryMinus
		case markerBinary:
			topPrec = top.op.Def().Precedence
		}
		if topPrec > def.Precedence || (topPrec == def.Precedence && def.Assoc == symbols.AssocLeft) {
			if err := p.reduce(p.pop()); err != nil {
				return err
			}
			continue
		}
		break
	}

	p.stack = append(p.stack, marker{kind: markerBinary, op: op, pos: t.Position})
	return nil
}

func (p *parser) onParenClose(t Token) error {
	for {
		if len(p.stack) == 0 {
			return types.NewError(types.ErrMismatchedParens, "mismatched parentheses", t.Position)
		}
		m := p.pop()
		if m.kind == markerParen {
			break
		}
		if err := p.reduce(m); err != nil {
			return err
		}
	}

	// A function marker directly under the parenthesis is the pending call
	// these arguments belong to.
	if len(p.stack) > 0 && p.top().kind == markerFunction {
		return p.reduce(p.pop())
	}
	return nil
}

// reduce pops finished operands from the output stack and pushes the node
// the marker stands for.
func (p *parser) reduce(m marker) error {
	switch m.kind {
	case markerUnaryMinus:
		if len(p.output) < 1 {
			return types.NewError(types.ErrInvalidUnary, "invalid unary minus", m.pos)
		}
		node := types.NewASTNode(types.NodeNeg, m.pos)
		node.LHS = p.popNode()
		p.output = append(p.output, node)

	case markerBinary:
		if len(p.output) < 2 {
			err := types.NewError(types.ErrMissingOperand,
				fmt.Sprintf("missing operand for operator %q", m.op.String()), m.pos)
			return err.WithToken(m.op.String())
		}
		node := types.NewASTNode(types.NodeBinary, m.pos)
		node.Op = m.op
		node.RHS = p.popNode()
		node.LHS = p.popNode()
		p.output = append(p.output, node)

	case markerFunction:
		if len(p.output) < m.fn.Arity {
			err := types.NewError(types.ErrFunctionArity,
				fmt.Sprintf("not enough arguments for function %q", m.fn.Name), m.pos)
			return err.WithToken(m.fn.Name)
		}
		node := types.NewASTNode(types.NodeCall, m.pos)
		node.Fn = m.fn
		node.Arguments = make([]*types.ASTNode, m.fn.Arity)
		for i := m.fn.Arity - 1; i >= 0; i-- {
			node.Arguments[i] = p.popNode()
		}
		p.output = append(p.output, node)

	default:
		return types.NewError(types.ErrInvalidStructure, "invalid expression structure", m.pos)
	}
	return nil
}

func (p *parser) top() *marker {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) pop() marker {
	m := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return m
}

func (p *parser) popNode() *types.ASTNode {
	n := p.output[len(p.output)-1]
	p.output = p.output[:len(p.output)-1]
	return n
}
