package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Artifact is an intermediate pipeline product. The orchestrator owns each
// artifact between stages and calls Release exactly once, right after the
// consuming stage returns. Implementations must tolerate a nil receiver.
type Artifact interface {
	Release()
}

// Lexemes is the opaque product of a Lexer.
type Lexemes interface {
	Artifact
}

// Tokens is the opaque product of a Tokenizer.
type Tokens interface {
	Artifact
}

// Tree is the opaque syntax tree produced by a Parser.
type Tree interface {
	Artifact
}

// Lexer splits normalized source text into lexemes. src is only valid for
// the duration of the call: the buffer behind it is released when Lex
// returns, so anything kept must be copied.
type Lexer interface {
	Lex(ctx context.Context, src []byte, name string) (Lexemes, error)
}

// Tokenizer classifies lexemes into tokens. It must not retain lexemes.
type Tokenizer interface {
	Tokenize(ctx context.Context, lexemes Lexemes) (Tokens, error)
}

// Parser builds a syntax tree from tokens. It must not retain tokens.
type Parser interface {
	Parse(ctx context.Context, tokens Tokens) (Tree, error)
}

// Interpreter executes a syntax tree. All user-visible output is its own.
type Interpreter interface {
	Interpret(ctx context.Context, tree Tree) error
}

// Stages bundles the four adapters that make up one language dialect.
type Stages struct {
	Lexer       Lexer
	Tokenizer   Tokenizer
	Parser      Parser
	Interpreter Interpreter
}

// Dialect builds the stages of one language, with interpreter output going
// to out.
type Dialect func(handler slog.Handler, out io.Writer) Stages

// Validate checks that every stage is present.
func (s Stages) Validate() error {
	var errs []error
	if s.Lexer == nil {
		errs = append(errs, errors.New("lexer is nil"))
	}
	if s.Tokenizer == nil {
		errs = append(errs, errors.New("tokenizer is nil"))
	}
	if s.Parser == nil {
		errs = append(errs, errors.New("parser is nil"))
	}
	if s.Interpreter == nil {
		errs = append(errs, errors.New("interpreter is nil"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidStages}, errs...)...)
	}
	return nil
}

// release frees a possibly missing artifact.
func release(a Artifact) {
	if a != nil {
		a.Release()
	}
}
