// Package parser builds a shibe syntax tree from tokens by recursive descent.
//
// Grammar:
//
//	program    = { stmt | NEWLINE } EOF
//	stmt       = ( print | decl | assign | if | while ) ( NEWLINE | EOF )
//	print      = "print" expr { "," expr }
//	decl       = "very" IDENT "is" expr
//	assign     = IDENT "is" expr
//	if         = "rly" expr NEWLINE block [ "but" NEWLINE block ] "wow"
//	while      = "many" expr NEWLINE block "wow"
//	expr       = or
//	or         = and { "or" and }
//	and        = not { "and" not }
//	not        = "not" not | equality
//	equality   = comparison { ( "==" | "!=" ) comparison }
//	comparison = additive { ( "<" | "<=" | ">" | ">=" ) additive }
//	additive   = term { ( "+" | "-" ) term }
//	term       = unary { ( "*" | "/" | "%" ) unary }
//	unary      = "-" unary | primary
//	primary    = INT | FLOAT | STRING | "yes" | "no" | "nil" | IDENT | "(" expr ")"
package parser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/internal/helpers"
	"github.com/robbyt/go-shibe/machines/shibe/ast"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

// Parser adapts Build to the pipeline.
type Parser struct {
	logger *slog.Logger
}

func New(handler slog.Handler) *Parser {
	_, logger := helpers.SetupLogger(handler, "shibe", "Parser")
	return &Parser{logger: logger}
}

func (p *Parser) String() string {
	return "shibe.Parser"
}

// Parse implements pipeline.Parser.
func (p *Parser) Parse(ctx context.Context, tokens pipeline.Tokens) (pipeline.Tree, error) {
	list, ok := tokens.(*tokenizer.TokenList)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedArtifact, tokens)
	}

	prog, err := Build(list)
	if err != nil {
		return nil, err
	}
	p.logger.DebugContext(ctx, "parsed", "file", prog.File, "statements", len(prog.Stmts))
	return prog, nil
}

// Build parses a complete token list into a Program.
func Build(list *tokenizer.TokenList) (*ast.Program, error) {
	ps := &state{toks: tokenizer.NewTokenList(list.File(), list.Items()).Items()}
	stmts, err := ps.block(tokenizer.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Program{File: list.File(), Stmts: stmts}, nil
}

type state struct {
	toks []tokenizer.Token
	pos  int
}

func (s *state) peek() tokenizer.Token {
	return s.toks[s.pos]
}

func (s *state) next() tokenizer.Token {
	tok := s.toks[s.pos]
	if tok.Kind != tokenizer.EOF {
		s.pos++
	}
	return tok
}

func (s *state) match(kinds ...tokenizer.Kind) (tokenizer.Token, bool) {
	tok := s.peek()
	for _, k := range kinds {
		if tok.Kind == k {
			return s.next(), true
		}
	}
	return tok, false
}

func (s *state) expect(k tokenizer.Kind, where string) (tokenizer.Token, error) {
	if tok, ok := s.match(k); ok {
		return tok, nil
	}
	return tokenizer.Token{}, s.unexpected(fmt.Sprintf("expected %s %s", k, where))
}

func (s *state) unexpected(want string) error {
	tok := s.peek()
	return tok.Pos.Errorf(ErrUnexpectedToken, "%s, found %s", want, describe(tok))
}

func describe(tok tokenizer.Token) string {
	switch tok.Kind {
	case tokenizer.EOF, tokenizer.Newline:
		return tok.Kind.String()
	default:
		return fmt.Sprintf("%q", tok.Text)
	}
}

func (s *state) skipNewlines() {
	for {
		if _, ok := s.match(tokenizer.Newline); !ok {
			return
		}
	}
}

// block parses statements until one of the terminators, which is left unconsumed.
func (s *state) block(terminators ...tokenizer.Kind) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		s.skipNewlines()
		tok := s.peek()
		for _, k := range terminators {
			if tok.Kind == k {
				return stmts, nil
			}
		}
		if tok.Kind == tokenizer.EOF {
			return nil, s.unexpected(fmt.Sprintf("expected %s", terminators[0]))
		}

		stmt, err := s.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		if _, ok := s.match(tokenizer.Newline); !ok && s.peek().Kind != tokenizer.EOF {
			return nil, s.unexpected("expected end of statement")
		}
	}
}

func (s *state) statement() (ast.Stmt, error) {
	tok := s.peek()
	switch tok.Kind {
	case tokenizer.Print, tokenizer.Very, tokenizer.Ident, tokenizer.Rly, tokenizer.Many:
		s.next()
	default:
		return nil, s.unexpected("expected statement")
	}

	switch tok.Kind {
	case tokenizer.Print:
		return s.printStmt(tok)
	case tokenizer.Very:
		name, err := s.expect(tokenizer.Ident, "after very")
		if err != nil {
			return nil, err
		}
		value, err := s.isValue()
		if err != nil {
			return nil, err
		}
		return &ast.DeclStmt{Pos: tok.Pos, Name: name.Text, Value: value}, nil
	case tokenizer.Ident:
		value, err := s.isValue()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Pos: tok.Pos, Name: tok.Text, Value: value}, nil
	case tokenizer.Rly:
		return s.ifStmt(tok)
	default:
		return s.whileStmt(tok)
	}
}

func (s *state) printStmt(tok tokenizer.Token) (ast.Stmt, error) {
	stmt := &ast.PrintStmt{Pos: tok.Pos}
	for {
		arg, err := s.expr()
		if err != nil {
			return nil, err
		}
		stmt.Args = append(stmt.Args, arg)
		if _, ok := s.match(tokenizer.Comma); !ok {
			return stmt, nil
		}
	}
}

func (s *state) isValue() (ast.Expr, error) {
	if _, err := s.expect(tokenizer.Is, "in assignment"); err != nil {
		return nil, err
	}
	return s.expr()
}

func (s *state) condition() (ast.Expr, error) {
	cond, err := s.expr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(tokenizer.Newline, "after condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (s *state) ifStmt(tok tokenizer.Token) (ast.Stmt, error) {
	cond, err := s.condition()
	if err != nil {
		return nil, err
	}
	then, err := s.block(tokenizer.Wow, tokenizer.But)
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Pos: tok.Pos, Cond: cond, Then: then}

	if _, ok := s.match(tokenizer.But); ok {
		if _, err := s.expect(tokenizer.Newline, "after but"); err != nil {
			return nil, err
		}
		if stmt.Else, err = s.block(tokenizer.Wow); err != nil {
			return nil, err
		}
	}
	if _, err := s.expect(tokenizer.Wow, "to close rly"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *state) whileStmt(tok tokenizer.Token) (ast.Stmt, error) {
	cond, err := s.condition()
	if err != nil {
		return nil, err
	}
	body, err := s.block(tokenizer.Wow)
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(tokenizer.Wow, "to close many"); err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Pos: tok.Pos, Cond: cond, Body: body}, nil
}
