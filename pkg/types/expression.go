// Package types defines the core types shared across the module:
//   - ASTNode: the closed expression tree produced by the parser
//   - Expression: a compiled, immutable expression
//   - Error: structured errors with codes and source positions
package types

// Expression represents a compiled expression.
//
// An Expression pairs the AST with the source text it was parsed from. It is
// immutable after construction and safe for concurrent use by multiple
// goroutines; both codegen backends read the same tree.
type Expression struct {
	ast    *ASTNode
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast *ASTNode, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the root of the expression tree.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
