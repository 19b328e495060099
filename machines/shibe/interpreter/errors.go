package interpreter

import "errors"

var (
	ErrUndefined          = errors.New("undefined variable")
	ErrRedeclared         = errors.New("variable already declared")
	ErrType               = errors.New("type mismatch")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrStepLimit          = errors.New("step limit exceeded")
	ErrOutput             = errors.New("failed to write output")
	ErrUnexpectedArtifact = errors.New("unexpected syntax tree artifact")
)
