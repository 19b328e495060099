package lexer

import "fmt"

// Newline is the text of every line-break lexeme, whatever the source used.
const Newline = "\n"

// Lexeme is a raw substring of the source identified as a minimal unit.
type Lexeme struct {
	Text string
	Pos  Position
}

// LexemeList is the Lexer's artifact. It owns copies of the source text.
type LexemeList struct {
	file  string
	items []Lexeme
}

// File returns the source name the lexemes were scanned from.
func (l *LexemeList) File() string {
	if l == nil {
		return ""
	}
	return l.file
}

// Items returns the lexemes in source order.
func (l *LexemeList) Items() []Lexeme {
	if l == nil {
		return nil
	}
	return l.items
}

func (l *LexemeList) Len() int {
	return len(l.Items())
}

// Release drops the lexemes.
func (l *LexemeList) Release() {
	if l == nil {
		return
	}
	l.items = nil
}

func (l *LexemeList) String() string {
	return fmt.Sprintf("lexer.LexemeList{File: %s, Lexemes: %d}", l.File(), l.Len())
}
