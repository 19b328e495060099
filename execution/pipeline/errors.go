package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/robbyt/go-shibe/execution/source"
)

var (
	ErrInputOpen              = errors.New("error opening input")
	ErrInputClose             = errors.New("error closing input")
	ErrEmptyOrUnreadableInput = errors.New("empty or unreadable input")
	ErrNormalize              = errors.New("normalization failed")
	ErrLex                    = errors.New("lex error")
	ErrTokenize               = errors.New("tokenize error")
	ErrParse                  = errors.New("parse error")
	ErrInterpret              = errors.New("interpret error")
	ErrCanceled               = errors.New("canceled")

	ErrInvalidStages = errors.New("invalid pipeline stages")
	ErrNoArtifact    = errors.New("stage returned no artifact")
)

// Kind classifies an input failure. Every kind is terminal for its input.
type Kind int

const (
	KindInputOpen Kind = iota + 1
	KindInputClose
	KindEmptyOrUnreadableInput
	KindNormalize
	KindLex
	KindTokenize
	KindParse
	KindInterpret
	KindCanceled
)

func (k Kind) sentinel() error {
	switch k {
	case KindInputOpen:
		return ErrInputOpen
	case KindInputClose:
		return ErrInputClose
	case KindEmptyOrUnreadableInput:
		return ErrEmptyOrUnreadableInput
	case KindNormalize:
		return ErrNormalize
	case KindLex:
		return ErrLex
	case KindTokenize:
		return ErrTokenize
	case KindParse:
		return ErrParse
	case KindInterpret:
		return ErrInterpret
	case KindCanceled:
		return ErrCanceled
	default:
		return errors.New("unknown failure")
	}
}

func (k Kind) String() string {
	return k.sentinel().Error()
}

// InputError reports the failure of one input. errors.Is matches both the
// kind sentinel (ErrParse, ...) and the underlying cause.
type InputError struct {
	Source string
	Kind   Kind
	State  State
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *InputError) Unwrap() []error {
	return []error{e.Kind.sentinel(), e.Err}
}

// readKind maps a Source Reader failure onto the taxonomy.
func readKind(err error) Kind {
	switch {
	case errors.Is(err, source.ErrInputOpen):
		return KindInputOpen
	case errors.Is(err, source.ErrInputClose):
		return KindInputClose
	default:
		return KindEmptyOrUnreadableInput
	}
}

// stageKind maps a stage failure onto the taxonomy; context errors win.
func stageKind(state State, err error) Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	switch state {
	case StateLexing:
		return KindLex
	case StateTokenizing:
		return KindTokenize
	case StateParsing:
		return KindParse
	default:
		return KindInterpret
	}
}
