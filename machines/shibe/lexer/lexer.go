// Package lexer scans shibe source text into lexemes.
package lexer

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/internal/helpers"
)

// Lexer adapts Scan to the pipeline.
type Lexer struct {
	logger *slog.Logger
}

// New creates a Lexer logging through handler.
func New(handler slog.Handler) *Lexer {
	_, logger := helpers.SetupLogger(handler, "shibe", "Lexer")
	return &Lexer{logger: logger}
}

func (l *Lexer) String() string {
	return "shibe.Lexer"
}

// Lex implements pipeline.Lexer.
func (l *Lexer) Lex(ctx context.Context, src []byte, name string) (pipeline.Lexemes, error) {
	lexemes, err := Scan(src, name)
	if err != nil {
		return nil, err
	}
	l.logger.DebugContext(ctx, "scanned", "file", name, "lexemes", lexemes.Len())
	return lexemes, nil
}
