package types

import "github.com/helicoid/zplot/pkg/symbols"

// NodeType identifies the variant of an AST node. The set is closed: the
// two codegen backends switch exhaustively over it.
type NodeType uint8

const (
	// NodeConstant is a numeric literal; NumValue holds the real value.
	NodeConstant NodeType = iota

	// NodeVariable is the free variable or a named constant. StrValue holds
	// the name; Const is non-nil for named constants and nil for the free
	// variable.
	NodeVariable

	// NodeBinary is a binary operation; Op selects the table entry and
	// LHS/RHS are the exclusively-owned operands.
	NodeBinary

	// NodeCall is a function call; Fn is the resolved table entry and
	// Arguments holds exactly Fn.Arity operands in source order.
	NodeCall

	// NodeNeg is prefix unary minus over LHS.
	NodeNeg
)

// String returns a readable name for the node type.
func (nt NodeType) String() string {
	switch nt {
	case NodeConstant:
		return "constant"
	case NodeVariable:
		return "variable"
	case NodeBinary:
		return "binary"
	case NodeCall:
		return "call"
	case NodeNeg:
		return "negate"
	default:
		return "(unknown)"
	}
}

// ASTNode is a node of the parsed expression tree.
//
// The tree is acyclic and finite; children are exclusively owned by their
// parent and fully formed — the parser never lets a partial node escape.
// Operator and function references are resolved to their symbol-table
// entries at parse time, so consumers never look names up again.
type ASTNode struct {
	Type     NodeType
	Position int

	NumValue float64           // NodeConstant
	StrValue string            // NodeVariable: the identifier as written
	Op       symbols.Op        // NodeBinary
	Fn       *symbols.FuncDef  // NodeCall
	Const    *symbols.ConstDef // NodeVariable: nil for the free variable

	LHS       *ASTNode   // NodeBinary left operand; NodeNeg operand
	RHS       *ASTNode   // NodeBinary right operand
	Arguments []*ASTNode // NodeCall operands
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}

// String returns a string representation of the node type.
func (n *ASTNode) String() string {
	return n.Type.String()
}
