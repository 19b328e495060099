// Package shibe wires the native lexer, tokenizer, parser and interpreter
// into pipeline stages.
package shibe

import (
	"io"
	"log/slog"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/machines/shibe/interpreter"
	"github.com/robbyt/go-shibe/machines/shibe/lexer"
	"github.com/robbyt/go-shibe/machines/shibe/parser"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

// NewStages returns the shibe dialect. Program output goes to out.
func NewStages(handler slog.Handler, out io.Writer, opts ...interpreter.Option) pipeline.Stages {
	return pipeline.Stages{
		Lexer:       lexer.New(handler),
		Tokenizer:   tokenizer.New(handler),
		Parser:      parser.New(handler),
		Interpreter: interpreter.New(handler, out, opts...),
	}
}
