package lower

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is returned when an expression contains a
	// character that starts no token.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidExpression is returned when an operator lacks a left or
	// right operand.
	ErrInvalidExpression = errors.New("invalid expression")
)

// CharError reports an unrecognized character in an expression.
type CharError struct {
	Expr string
	Char rune
	Pos  int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%v %q at position %d in %q", ErrInvalidCharacter, e.Char, e.Pos, e.Expr)
}

func (e *CharError) Unwrap() error { return ErrInvalidCharacter }

// ExprError reports an expression whose shape cannot be reduced.
type ExprError struct {
	Expr   string
	Pos    int // rune offset of the offending token, -1 when not applicable
	Reason string
}

func (e *ExprError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%v %q: %s", ErrInvalidExpression, e.Expr, e.Reason)
	}
	return fmt.Sprintf("%v %q: %s at position %d", ErrInvalidExpression, e.Expr, e.Reason, e.Pos)
}

func (e *ExprError) Unwrap() error { return ErrInvalidExpression }
