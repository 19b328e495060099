package starlark

import "errors"

var (
	ErrInvalidUTF8        = errors.New("source is not valid UTF-8")
	ErrSyntax             = errors.New("starlark syntax error")
	ErrResolve            = errors.New("starlark resolve error")
	ErrExecution          = errors.New("starlark execution error")
	ErrOutput             = errors.New("unable to write output")
	ErrUnexpectedArtifact = errors.New("unexpected artifact type")
)
