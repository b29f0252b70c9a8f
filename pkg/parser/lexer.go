package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/helicoid/zplot/pkg/types"
)

const eof = -1

// Lexer converts an expression string into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Tokenize scans the whole input and returns its tokens in order.
// It fails with an empty-input error when the trimmed input has zero length,
// and with an invalid-character error on the first byte no pattern consumes.
func Tokenize(input string) ([]Token, error) {
	if strings.TrimSpace(input) == "" {
		return nil, types.NewError(types.ErrEmptyInput, "empty expression", 0)
	}

	l := NewLexer(input)
	var tokens []Token
	for {
		t := l.Next()
		if t.Type == TokenError {
			return nil, l.err
		}
		if t.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
func (l *Lexer) Next() Token {
	l.acceptAll(isWhitespace)
	l.ignore()

	ch := l.nextRune()
	if ch == eof {
		return l.eofToken()
	}

	switch {
	case isOperatorRune(ch):
		return l.newToken(TokenOperator)
	case ch == '(':
		return l.newToken(TokenParenOpen)
	case ch == ')':
		return l.newToken(TokenParenClose)
	case ch == ',':
		return l.newToken(TokenComma)
	case isDigit(ch):
		l.backup()
		return l.scanNumber()
	case isIdentStart(ch):
		l.backup()
		return l.scanIdent()
	default:
		return l.error(types.ErrInvalidChar, fmt.Sprintf("invalid character %q", ch))
	}
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// scanNumber reads a numeric literal from the current position.
// Format: digits with an optional single decimal point followed by digits.
// There is no exponent notation and no leading sign; sign is handled
// structurally as unary minus by the parser.
func (l *Lexer) scanNumber() Token {
	l.acceptAll(isDigit)

	if l.acceptRune('.') {
		if !l.acceptAll(isDigit) {
			// A dot with no digits after it is not part of the number.
			l.current--
		}
	}

	return l.newToken(TokenNumber)
}

// scanIdent reads an identifier from the current position.
// Format: letter or underscore followed by letters, digits or underscores.
func (l *Lexer) scanIdent() Token {
	l.accept(isIdentStart)
	l.acceptAll(isIdentPart)
	return l.newToken(TokenIdent)
}

// Helper methods

func (l *Lexer) eofToken() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) error(code types.ErrorCode, message string) Token {
	t := l.newToken(TokenError)
	l.err = &types.Error{
		Code:     code,
		Message:  message,
		Position: t.Position,
		Token:    t.Value,
	}
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.err != nil || l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

// Character classification functions

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
