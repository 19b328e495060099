// Package ast defines the shibe syntax tree.
package ast

import (
	"fmt"

	"github.com/robbyt/go-shibe/machines/shibe/lexer"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

// Node is any syntax tree node.
type Node interface {
	Position() lexer.Position
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// Program is the Parser's artifact: the statements of one source file.
type Program struct {
	File  string
	Stmts []Stmt
}

// Release drops the statements.
func (p *Program) Release() {
	if p == nil {
		return
	}
	p.Stmts = nil
}

func (p *Program) String() string {
	if p == nil {
		return "ast.Program{}"
	}
	return fmt.Sprintf("ast.Program{File: %s, Stmts: %d}", p.File, len(p.Stmts))
}

// PrintStmt writes its arguments separated by spaces, then a newline.
type PrintStmt struct {
	Pos  lexer.Position
	Args []Expr
}

// DeclStmt introduces a variable: very NAME is VALUE.
type DeclStmt struct {
	Pos   lexer.Position
	Name  string
	Value Expr
}

// AssignStmt updates an existing variable: NAME is VALUE.
type AssignStmt struct {
	Pos   lexer.Position
	Name  string
	Value Expr
}

// IfStmt is rly COND ... [but ...] wow.
type IfStmt struct {
	Pos  lexer.Position
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// WhileStmt is many COND ... wow.
type WhileStmt struct {
	Pos  lexer.Position
	Cond Expr
	Body []Stmt
}

// Literal is an int64, float64, string, bool or nil constant.
type Literal struct {
	Pos   lexer.Position
	Value any
}

// Ident references a variable.
type Ident struct {
	Pos  lexer.Position
	Name string
}

// Unary applies - or not.
type Unary struct {
	Pos lexer.Position
	Op  tokenizer.Kind
	X   Expr
}

// Binary applies an arithmetic, comparison or logical operator.
type Binary struct {
	Pos   lexer.Position
	Op    tokenizer.Kind
	Left  Expr
	Right Expr
}

func (s *PrintStmt) Position() lexer.Position  { return s.Pos }
func (s *DeclStmt) Position() lexer.Position   { return s.Pos }
func (s *AssignStmt) Position() lexer.Position { return s.Pos }
func (s *IfStmt) Position() lexer.Position     { return s.Pos }
func (s *WhileStmt) Position() lexer.Position  { return s.Pos }
func (e *Literal) Position() lexer.Position    { return e.Pos }
func (e *Ident) Position() lexer.Position      { return e.Pos }
func (e *Unary) Position() lexer.Position      { return e.Pos }
func (e *Binary) Position() lexer.Position     { return e.Pos }

func (*PrintStmt) stmt()  {}
func (*DeclStmt) stmt()   {}
func (*AssignStmt) stmt() {}
func (*IfStmt) stmt()     {}
func (*WhileStmt) stmt()  {}
func (*Literal) expr()    {}
func (*Ident) expr()      {}
func (*Unary) expr()      {}
func (*Binary) expr()     {}
