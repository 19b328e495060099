// Package starlark runs Starlark source through the pipeline stages.
package starlark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"go.starlark.net/syntax"

	"github.com/robbyt/go-shibe/execution/normalize"
	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/internal/helpers"

	starlarkLib "go.starlark.net/starlark"
)

// fileOptions enables the dialect extensions scripts commonly expect from a
// standalone interpreter.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// NewStages returns the Starlark dialect. print() output goes to out.
func NewStages(handler slog.Handler, out io.Writer, opts ...Option) pipeline.Stages {
	return pipeline.Stages{
		Lexer:       NewLexer(handler),
		Tokenizer:   NewTokenizer(handler),
		Parser:      NewParser(handler),
		Interpreter: NewInterpreter(handler, out, opts...),
	}
}

type Lexer struct {
	logger *slog.Logger
}

func NewLexer(handler slog.Handler) *Lexer {
	_, logger := helpers.SetupLogger(handler, "starlark", "Lexer")
	return &Lexer{logger: logger}
}

func (l *Lexer) String() string {
	return "starlark.Lexer"
}

// Lex copies src into a Chunk after checking it is valid UTF-8. When ctx reports
// a removed byte-order mark, the blanks it left on the first line are dropped so
// that the first statement does not read as indented. Columns on that line then
// shift left by the number of blanks dropped.
func (l *Lexer) Lex(ctx context.Context, src []byte, name string) (pipeline.Lexemes, error) {
	if line, col, ok := invalidUTF8(src); ok {
		return nil, fmt.Errorf("%s:%d:%d: %w", name, line, col, ErrInvalidUTF8)
	}
	if report, ok := normalize.ReportFrom(ctx); ok && report.BOMDetected {
		src = trimMarkBlanks(src)
	}
	chunk := &Chunk{name: name, src: bytes.Clone(src)}
	l.logger.DebugContext(ctx, "chunk ready", "file", name, "bytes", len(chunk.src))
	return chunk, nil
}

func trimMarkBlanks(src []byte) []byte {
	n := 0
	for n < len(normalize.ByteOrderMark) && n < len(src) && src[n] == ' ' {
		n++
	}
	if n == 0 || n == len(src) {
		return src
	}
	switch src[n] {
	case ' ', '\t', '\n', '\r':
		return src
	}
	return src[n:]
}

// invalidUTF8 reports the 1-based position of the first invalid sequence.
func invalidUTF8(src []byte) (line, col int, found bool) {
	if utf8.Valid(src) {
		return 0, 0, false
	}
	line, col = 1, 1
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError && size <= 1 {
			return line, col, true
		}
		if r == '\n' {
			line, col = line+1, 1
		} else {
			col++
		}
		src = src[size:]
	}
	return line, col, true
}

type Tokenizer struct {
	logger *slog.Logger
}

func NewTokenizer(handler slog.Handler) *Tokenizer {
	_, logger := helpers.SetupLogger(handler, "starlark", "Tokenizer")
	return &Tokenizer{logger: logger}
}

func (t *Tokenizer) String() string {
	return "starlark.Tokenizer"
}

// Tokenize hands the chunk on under a new owner; the input artifact stays
// releasable by the caller without affecting the result.
func (t *Tokenizer) Tokenize(ctx context.Context, lexemes pipeline.Lexemes) (pipeline.Tokens, error) {
	chunk, ok := lexemes.(*Chunk)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedArtifact, lexemes)
	}
	t.logger.DebugContext(ctx, "chunk passed through", "file", chunk.name)
	return &Chunk{name: chunk.name, src: chunk.src}, nil
}

type Parser struct {
	logger *slog.Logger
}

func NewParser(handler slog.Handler) *Parser {
	_, logger := helpers.SetupLogger(handler, "starlark", "Parser")
	return &Parser{logger: logger}
}

func (p *Parser) String() string {
	return "starlark.Parser"
}

// Parse parses the chunk and resolves it against the standard modules.
func (p *Parser) Parse(ctx context.Context, tokens pipeline.Tokens) (pipeline.Tree, error) {
	chunk, ok := tokens.(*Chunk)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedArtifact, tokens)
	}
	return p.Compile(ctx, chunk.name, chunk.src)
}

// Compile parses and resolves src.
func (p *Parser) Compile(ctx context.Context, name string, src []byte) (*Program, error) {
	f, err := fileOptions.Parse(name, src, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	prog, err := starlarkLib.FileProgram(f, standardModules().Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	p.logger.DebugContext(ctx, "compiled", "file", name, "statements", len(f.Stmts))
	return &Program{name: name, prog: prog}, nil
}
