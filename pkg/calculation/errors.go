package calculation

import "errors"

var (
	ErrBracketPairing  = errors.New("bracket pairing error")
	ErrSyntax          = errors.New("expression syntax error")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrDivisionByZero  = errors.New("division by zero")
)
