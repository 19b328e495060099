package parser

import (
	"github.com/robbyt/go-shibe/machines/shibe/ast"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

func (s *state) expr() (ast.Expr, error) {
	return s.binary(0)
}

// precedence lists binary operator levels from loosest to tightest.
var precedence = [][]tokenizer.Kind{
	{tokenizer.Or},
	{tokenizer.And},
	nil, // prefix not
	{tokenizer.Eq, tokenizer.NotEq},
	{tokenizer.Less, tokenizer.LessEq, tokenizer.Greater, tokenizer.GreaterEq},
	{tokenizer.Plus, tokenizer.Minus},
	{tokenizer.Star, tokenizer.Slash, tokenizer.Percent},
}

const notLevel = 2

func (s *state) binary(level int) (ast.Expr, error) {
	if level == len(precedence) {
		return s.unary()
	}
	if level == notLevel {
		if tok, ok := s.match(tokenizer.Not); ok {
			x, err := s.binary(level)
			if err != nil {
				return nil, err
			}
			return &ast.Unary{Pos: tok.Pos, Op: tok.Kind, X: x}, nil
		}
		return s.binary(level + 1)
	}

	left, err := s.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := s.match(precedence[level]...)
		if !ok {
			return left, nil
		}
		right, err := s.binary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: tok.Pos, Op: tok.Kind, Left: left, Right: right}
	}
}

func (s *state) unary() (ast.Expr, error) {
	if tok, ok := s.match(tokenizer.Minus); ok {
		x, err := s.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Pos: tok.Pos, Op: tok.Kind, X: x}, nil
	}
	return s.primary()
}

func (s *state) primary() (ast.Expr, error) {
	tok := s.peek()
	switch tok.Kind {
	case tokenizer.Int, tokenizer.Float, tokenizer.String:
		s.next()
		return &ast.Literal{Pos: tok.Pos, Value: tok.Value}, nil
	case tokenizer.Yes, tokenizer.No:
		s.next()
		return &ast.Literal{Pos: tok.Pos, Value: tok.Kind == tokenizer.Yes}, nil
	case tokenizer.Nil:
		s.next()
		return &ast.Literal{Pos: tok.Pos}, nil
	case tokenizer.Ident:
		s.next()
		return &ast.Ident{Pos: tok.Pos, Name: tok.Text}, nil
	case tokenizer.LParen:
		s.next()
		x, err := s.expr()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(tokenizer.RParen, "to close parenthesis"); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, s.unexpected("expected expression")
	}
}
