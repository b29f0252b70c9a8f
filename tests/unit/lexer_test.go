package unit_test

import (
	"errors"
	"testing"

	"github.com/helicoid/zplot/pkg/parser"
	"github.com/helicoid/zplot/pkg/types"
)

type lexerTestCase struct {
	name     string
	input    string
	expected []parser.Token
	errCode  types.ErrorCode // non-empty means Tokenize must fail with this code
}

func runLexerTests(t *testing.T, tests []lexerTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := parser.Tokenize(tt.input)
			if tt.errCode != "" {
				if err == nil {
					t.Fatalf("Tokenize(%q) succeeded, want error %s", tt.input, tt.errCode)
				}
				var terr *types.Error
				if !errors.As(err, &terr) {
					t.Fatalf("Tokenize(%q) error %v is not a *types.Error", tt.input, err)
				}
				if terr.Code != tt.errCode {
					t.Fatalf("Tokenize(%q) error code = %s, want %s", tt.input, terr.Code, tt.errCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Tokenize(%q) failed: %v", tt.input, err)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, tokens, tt.expected)
			}
			for i, tok := range tokens {
				if tok != tt.expected[i] {
					t.Errorf("token %d = %+v, want %+v", i, tok, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerBasics(t *testing.T) {
	tests := []lexerTestCase{
		{
			name:  "single variable",
			input: "z",
			expected: []parser.Token{
				{Type: parser.TokenIdent, Value: "z", Position: 0},
			},
		},
		{
			name:  "number and operator",
			input: "2+z",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "2", Position: 0},
				{Type: parser.TokenOperator, Value: "+", Position: 1},
				{Type: parser.TokenIdent, Value: "z", Position: 2},
			},
		},
		{
			name:  "whitespace is stripped",
			input: " \t2 *\n z ",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "2", Position: 2},
				{Type: parser.TokenOperator, Value: "*", Position: 4},
				{Type: parser.TokenIdent, Value: "z", Position: 7},
			},
		},
		{
			name:  "call with comma",
			input: "pow(z,2)",
			expected: []parser.Token{
				{Type: parser.TokenIdent, Value: "pow", Position: 0},
				{Type: parser.TokenParenOpen, Value: "(", Position: 3},
				{Type: parser.TokenIdent, Value: "z", Position: 4},
				{Type: parser.TokenComma, Value: ",", Position: 5},
				{Type: parser.TokenNumber, Value: "2", Position: 6},
				{Type: parser.TokenParenClose, Value: ")", Position: 7},
			},
		},
		{
			name:  "all operators",
			input: "+-*/^",
			expected: []parser.Token{
				{Type: parser.TokenOperator, Value: "+", Position: 0},
				{Type: parser.TokenOperator, Value: "-", Position: 1},
				{Type: parser.TokenOperator, Value: "*", Position: 2},
				{Type: parser.TokenOperator, Value: "/", Position: 3},
				{Type: parser.TokenOperator, Value: "^", Position: 4},
			},
		},
	}

	runLexerTests(t, tests)
}

func TestLexerNumbers(t *testing.T) {
	tests := []lexerTestCase{
		{
			name:  "integer",
			input: "123",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "123", Position: 0},
			},
		},
		{
			name:  "decimal",
			input: "3.14",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "3.14", Position: 0},
			},
		},
		{
			name:  "leading zero",
			input: "0.5",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "0.5", Position: 0},
			},
		},
		{
			name:    "second decimal point is not consumed",
			input:   "1.2.3",
			errCode: types.ErrInvalidChar,
		},
		{
			name:    "bare decimal point",
			input:   ".5",
			errCode: types.ErrInvalidChar,
		},
		{
			name:  "no exponent notation",
			input: "1e3",
			expected: []parser.Token{
				// 'e' starts an identifier; exponents are not part of the
				// numeric grammar.
				{Type: parser.TokenNumber, Value: "1", Position: 0},
				{Type: parser.TokenIdent, Value: "e3", Position: 1},
			},
		},
	}

	runLexerTests(t, tests)
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []lexerTestCase{
		{
			name:  "underscore start",
			input: "_w1",
			expected: []parser.Token{
				{Type: parser.TokenIdent, Value: "_w1", Position: 0},
			},
		},
		{
			name:  "unknown name is still lexed",
			input: "foo",
			expected: []parser.Token{
				// Classification is purely lexical; the parser rejects
				// unknown identifiers.
				{Type: parser.TokenIdent, Value: "foo", Position: 0},
			},
		},
	}

	runLexerTests(t, tests)
}

func TestLexerErrors(t *testing.T) {
	tests := []lexerTestCase{
		{name: "empty input", input: "", errCode: types.ErrEmptyInput},
		{name: "whitespace only", input: "   \t\n", errCode: types.ErrEmptyInput},
		{name: "invalid character", input: "2 $ 3", errCode: types.ErrInvalidChar},
		{name: "invalid unicode character", input: "z·2", errCode: types.ErrInvalidChar},
	}

	runLexerTests(t, tests)
}
