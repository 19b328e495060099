// Package tokenizer classifies shibe lexemes into typed tokens.
package tokenizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/internal/helpers"
	"github.com/robbyt/go-shibe/machines/shibe/lexer"
)

// Tokenizer adapts Classify to the pipeline.
type Tokenizer struct {
	logger *slog.Logger
}

func New(handler slog.Handler) *Tokenizer {
	_, logger := helpers.SetupLogger(handler, "shibe", "Tokenizer")
	return &Tokenizer{logger: logger}
}

func (t *Tokenizer) String() string {
	return "shibe.Tokenizer"
}

// Tokenize implements pipeline.Tokenizer.
func (t *Tokenizer) Tokenize(ctx context.Context, lexemes pipeline.Lexemes) (pipeline.Tokens, error) {
	list, ok := lexemes.(*lexer.LexemeList)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedArtifact, lexemes)
	}

	tokens, err := Classify(list)
	if err != nil {
		return nil, err
	}
	t.logger.DebugContext(ctx, "classified", "file", list.File(), "tokens", tokens.Len())
	return tokens, nil
}

// Classify turns every lexeme into a token. Text is copied from the lexemes,
// so the list may be released afterwards.
func Classify(list *lexer.LexemeList) (*TokenList, error) {
	items := list.Items()
	tokens := make([]Token, 0, len(items)+1)
	for _, lx := range items {
		tok, err := classify(lx)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	eof := lexer.Position{File: list.File(), Line: 1, Column: 1}
	if n := len(items); n > 0 {
		last := items[n-1]
		eof = last.Pos
		eof.Column += len(last.Text)
	}
	tokens = append(tokens, Token{Kind: EOF, Pos: eof})
	return NewTokenList(list.File(), tokens), nil
}

func classify(lx lexer.Lexeme) (Token, error) {
	tok := Token{Text: lx.Text, Pos: lx.Pos}
	first := lx.Text[0]

	switch {
	case lx.Text == lexer.Newline:
		tok.Kind = Newline
	case first == '"':
		s, err := unquote(lx.Text)
		if err != nil {
			return Token{}, lx.Pos.Errorf(ErrInvalidEscape, "%v", err)
		}
		tok.Kind, tok.Value = String, s
	case first >= '0' && first <= '9':
		if i, err := strconv.ParseInt(lx.Text, 10, 64); err == nil {
			tok.Kind, tok.Value = Int, i
			break
		}
		f, err := strconv.ParseFloat(lx.Text, 64)
		if err != nil || strings.ContainsAny(lx.Text, "xXpP_") {
			return Token{}, lx.Pos.Errorf(ErrMalformedNumber, "%q", lx.Text)
		}
		tok.Kind, tok.Value = Float, f
	case isWordStart(first):
		if k, ok := keywords[lx.Text]; ok {
			tok.Kind = k
		} else {
			tok.Kind = Ident
		}
	default:
		k, ok := operators[lx.Text]
		if !ok {
			return Token{}, lx.Pos.Errorf(ErrUnknownOperator, "%q", lx.Text)
		}
		tok.Kind = k
	}
	return tok, nil
}

// unquote decodes a quoted string lexeme. Only \n, \t, \" and \\ are escapes.
func unquote(text string) (string, error) {
	body := text[1 : len(text)-1]
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New("trailing backslash")
		}
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			return "", fmt.Errorf(`\%c`, body[i])
		}
	}
	return sb.String(), nil
}

func isWordStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
