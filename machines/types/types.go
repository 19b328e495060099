package types

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies a language dialect: a set of lexer, tokenizer, parser and
// interpreter stages.
type Type string

const (
	Shibe    Type = "shibe"
	Starlark Type = "starlark"
)

// Default is the dialect used when none is configured.
const Default = Shibe

var ErrUnknownType = errors.New("unknown dialect")

// Parse converts a configuration string into a Type. Empty means Default.
func Parse(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return Default, nil
	case Shibe, Starlark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

func (t Type) String() string {
	return string(t)
}
