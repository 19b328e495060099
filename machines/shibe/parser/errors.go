package parser

import "errors"

var (
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedArtifact = errors.New("unexpected token artifact")
)
