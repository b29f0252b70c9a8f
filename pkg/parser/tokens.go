package parser

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals and names
	TokenNumber // 123, 3.14
	TokenIdent  // z, pi, sin

	// Operators and punctuation
	TokenOperator   // + - * / ^
	TokenParenOpen  // (
	TokenParenClose // )
	TokenComma      // ,
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenNumber:
		return "(number)"
	case TokenIdent:
		return "(identifier)"
	case TokenOperator:
		return "(operator)"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	case TokenComma:
		return ","
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in an expression.
//
// Classification is purely lexical: an identifier token is emitted for any
// name-shaped lexeme whether or not the symbol tables know it. Unknown
// identifiers are rejected later by the parser.
type Token struct {
	Type     TokenType // Type of the token
	Value    string    // Literal value of the token
	Position int       // Starting position in the input string
}

// isOperatorRune reports whether r is one of the single-character operators.
func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^':
		return true
	default:
		return false
	}
}
