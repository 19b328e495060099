package tokenizer

import (
	"fmt"

	"github.com/robbyt/go-shibe/machines/shibe/lexer"
)

// Token is a lexeme classified with a kind. Value holds the decoded literal
// for Int (int64), Float (float64) and String (string) tokens.
type Token struct {
	Kind  Kind
	Text  string
	Value any
	Pos   lexer.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// TokenList is the Tokenizer's artifact. It always ends with an EOF token.
type TokenList struct {
	file  string
	items []Token
}

// NewTokenList builds a list from tokens, appending EOF when missing.
func NewTokenList(file string, tokens []Token) *TokenList {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != EOF {
		tokens = append(tokens, Token{Kind: EOF, Pos: lexer.Position{File: file}})
	}
	return &TokenList{file: file, items: tokens}
}

func (l *TokenList) File() string {
	if l == nil {
		return ""
	}
	return l.file
}

func (l *TokenList) Items() []Token {
	if l == nil {
		return nil
	}
	return l.items
}

func (l *TokenList) Len() int {
	return len(l.Items())
}

// Release drops the tokens.
func (l *TokenList) Release() {
	if l == nil {
		return
	}
	l.items = nil
}

func (l *TokenList) String() string {
	return fmt.Sprintf("tokenizer.TokenList{File: %s, Tokens: %d}", l.File(), l.Len())
}
