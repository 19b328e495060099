// Package interpreter executes a shibe syntax tree.
package interpreter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/internal/helpers"
	"github.com/robbyt/go-shibe/machines/shibe/ast"
	"github.com/robbyt/go-shibe/machines/shibe/lexer"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

// Interpreter runs programs, writing print output to out.
type Interpreter struct {
	out      io.Writer
	maxSteps int
	logger   *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxSteps bounds the number of statements one program may execute.
// Zero means unbounded.
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) {
		i.maxSteps = n
	}
}

func New(handler slog.Handler, out io.Writer, opts ...Option) *Interpreter {
	_, logger := helpers.SetupLogger(handler, "shibe", "Interpreter")
	i := &Interpreter{out: out, logger: logger}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interpreter) String() string {
	return "shibe.Interpreter"
}

// Interpret implements pipeline.Interpreter.
func (i *Interpreter) Interpret(ctx context.Context, tree pipeline.Tree) error {
	prog, ok := tree.(*ast.Program)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedArtifact, tree)
	}
	return i.Exec(ctx, prog)
}

// Exec runs prog in a fresh global scope.
func (i *Interpreter) Exec(ctx context.Context, prog *ast.Program) error {
	m := &machine{
		ctx:      ctx,
		out:      i.out,
		vars:     make(map[string]any),
		maxSteps: i.maxSteps,
	}
	err := m.block(prog.Stmts)
	i.logger.DebugContext(ctx, "executed", "file", prog.File, "steps", m.steps, "error", err)
	return err
}

type machine struct {
	ctx      context.Context
	out      io.Writer
	vars     map[string]any
	steps    int
	maxSteps int
}

func (m *machine) block(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := m.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (m *machine) step(pos lexer.Position) error {
	if err := m.ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", pos, err)
	}
	m.steps++
	if m.maxSteps > 0 && m.steps > m.maxSteps {
		return pos.Errorf(ErrStepLimit, "more than %d statements", m.maxSteps)
	}
	return nil
}

func (m *machine) exec(stmt ast.Stmt) error {
	if err := m.step(stmt.Position()); err != nil {
		return err
	}

	switch s := stmt.(type) {
	case *ast.PrintStmt:
		parts := make([]string, 0, len(s.Args))
		for _, arg := range s.Args {
			v, err := m.eval(arg)
			if err != nil {
				return err
			}
			parts = append(parts, Format(v))
		}
		if _, err := io.WriteString(m.out, strings.Join(parts, " ")+"\n"); err != nil {
			return s.Pos.Errorf(ErrOutput, "%v", err)
		}
		return nil

	case *ast.DeclStmt:
		if _, ok := m.vars[s.Name]; ok {
			return s.Pos.Errorf(ErrRedeclared, "%s", s.Name)
		}
		v, err := m.eval(s.Value)
		if err != nil {
			return err
		}
		m.vars[s.Name] = v
		return nil

	case *ast.AssignStmt:
		if _, ok := m.vars[s.Name]; !ok {
			return s.Pos.Errorf(ErrUndefined, "%s", s.Name)
		}
		v, err := m.eval(s.Value)
		if err != nil {
			return err
		}
		m.vars[s.Name] = v
		return nil

	case *ast.IfStmt:
		ok, err := m.condition(s.Cond)
		if err != nil {
			return err
		}
		if ok {
			return m.block(s.Then)
		}
		return m.block(s.Else)

	case *ast.WhileStmt:
		for {
			ok, err := m.condition(s.Cond)
			if err != nil || !ok {
				return err
			}
			if err := m.block(s.Body); err != nil {
				return err
			}
			if err := m.step(s.Pos); err != nil {
				return err
			}
		}

	default:
		return stmt.Position().Errorf(ErrUnexpectedArtifact, "statement %T", stmt)
	}
}

func (m *machine) condition(e ast.Expr) (bool, error) {
	v, err := m.eval(e)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, e.Position().Errorf(ErrType, "condition is %s, not bool", typeName(v))
	}
	return b, nil
}

func (m *machine) eval(e ast.Expr) (any, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Ident:
		v, ok := m.vars[e.Name]
		if !ok {
			return nil, e.Pos.Errorf(ErrUndefined, "%s", e.Name)
		}
		return v, nil

	case *ast.Unary:
		x, err := m.eval(e.X)
		if err != nil {
			return nil, err
		}
		switch v := x.(type) {
		case int64:
			if e.Op == tokenizer.Minus {
				return -v, nil
			}
		case float64:
			if e.Op == tokenizer.Minus {
				return -v, nil
			}
		case bool:
			if e.Op == tokenizer.Not {
				return !v, nil
			}
		}
		return nil, e.Pos.Errorf(ErrType, "%s %s", e.Op, typeName(x))

	case *ast.Binary:
		return m.binary(e)

	default:
		return nil, e.Position().Errorf(ErrUnexpectedArtifact, "expression %T", e)
	}
}

func (m *machine) binary(e *ast.Binary) (any, error) {
	if e.Op == tokenizer.And || e.Op == tokenizer.Or {
		l, err := m.condition(e.Left)
		if err != nil {
			return nil, err
		}
		if (e.Op == tokenizer.And) != l {
			return l, nil
		}
		return m.condition(e.Right)
	}

	l, err := m.eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := m.eval(e.Right)
	if err != nil {
		return nil, err
	}

	var result any
	switch e.Op {
	case tokenizer.Eq:
		return equal(l, r), nil
	case tokenizer.NotEq:
		return !equal(l, r), nil
	case tokenizer.Less, tokenizer.LessEq, tokenizer.Greater, tokenizer.GreaterEq:
		result, err = compare(e.Op, l, r)
	default:
		result, err = arith(e.Op, l, r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Pos, err)
	}
	return result, nil
}

func mismatch(op tokenizer.Kind, l, r any) error {
	return fmt.Errorf("%w: %s %s %s", ErrType, typeName(l), op, typeName(r))
}
