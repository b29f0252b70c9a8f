package types

import "fmt"

// ErrorCode classifies a compilation error.
type ErrorCode string

// Error codes. L01xx are lexical, S02xx are syntactic. All are local,
// recoverable conditions: a malformed expression is rejected with a
// message, never a crash, and a previously compiled expression stays in
// effect.
const (
	// L01xx: lexical errors
	ErrEmptyInput  ErrorCode = "L0101"
	ErrInvalidChar ErrorCode = "L0102"

	// S02xx: syntax errors
	ErrValueAdjacency    ErrorCode = "S0201" // value token directly after a value token
	ErrOperatorSequence  ErrorCode = "S0202" // operator directly after an operator
	ErrUnknownIdentifier ErrorCode = "S0203"
	ErrMismatchedParens  ErrorCode = "S0204"
	ErrMissingOperand    ErrorCode = "S0205"
	ErrInvalidUnary      ErrorCode = "S0206"
	ErrFunctionArity     ErrorCode = "S0207"
	ErrInvalidStructure  ErrorCode = "S0208" // not exactly one result at end of parse
	ErrBadNumber         ErrorCode = "S0209"
)

// Error represents a structured compilation error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new error with the given code, message and position.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
