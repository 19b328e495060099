package lexer

import "errors"

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedByte     = errors.New("unexpected byte")
)
