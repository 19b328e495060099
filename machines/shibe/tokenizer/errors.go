package tokenizer

import "errors"

var (
	ErrMalformedNumber    = errors.New("malformed number")
	ErrInvalidEscape      = errors.New("invalid escape")
	ErrUnknownOperator    = errors.New("unknown operator")
	ErrUnexpectedArtifact = errors.New("unexpected lexeme artifact")
)
