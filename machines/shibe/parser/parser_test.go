package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/machines/shibe/ast"
	"github.com/robbyt/go-shibe/machines/shibe/lexer"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

func parseSource(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	lexemes, err := lexer.Scan([]byte(src), "p.shibe")
	require.NoError(t, err)
	tokens, err := tokenizer.Classify(lexemes)
	require.NoError(t, err)
	return Build(tokens)
}

func TestBuildStatements(t *testing.T) {
	t.Parallel()

	prog, err := parseSource(t, `
very x is 1
x is x + 1
print "x is", x

rly x > 1
  print "big"
but
  print "small"
wow
many x < 5
  x is x + 1
wow
`)
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 5)
	assert.Equal(t, "p.shibe", prog.File)

	decl, ok := prog.Stmts[0].(*ast.DeclStmt)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, &ast.Literal{Pos: lexer.Position{File: "p.shibe", Line: 2, Column: 11}, Value: int64(1)}, decl.Value)

	assign, ok := prog.Stmts[1].(*ast.AssignStmt)
	require.True(t, ok)
	assert.IsType(t, &ast.Binary{}, assign.Value)

	printStmt, ok := prog.Stmts[2].(*ast.PrintStmt)
	require.True(t, ok)
	assert.Len(t, printStmt.Args, 2)

	ifStmt, ok := prog.Stmts[3].(*ast.IfStmt)
	require.True(t, ok)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
	assert.Equal(t, 6, ifStmt.Pos.Line)

	loop, ok := prog.Stmts[4].(*ast.WhileStmt)
	require.True(t, ok)
	assert.Len(t, loop.Body, 1)
}

func TestBuildPrecedence(t *testing.T) {
	t.Parallel()

	prog, err := parseSource(t, "print 1 + 2 * 3 == 7 and not no or -(1)")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	expr := prog.Stmts[0].(*ast.PrintStmt).Args[0]

	or, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, tokenizer.Or, or.Op)
	assert.IsType(t, &ast.Unary{}, or.Right)

	and := or.Left.(*ast.Binary)
	assert.Equal(t, tokenizer.And, and.Op)
	not := and.Right.(*ast.Unary)
	assert.Equal(t, tokenizer.Not, not.Op)

	eq := and.Left.(*ast.Binary)
	assert.Equal(t, tokenizer.Eq, eq.Op)
	plus := eq.Left.(*ast.Binary)
	assert.Equal(t, tokenizer.Plus, plus.Op)
	mul := plus.Right.(*ast.Binary)
	assert.Equal(t, tokenizer.Star, mul.Op)
}

func TestBuildLiterals(t *testing.T) {
	t.Parallel()

	prog, err := parseSource(t, `print 1, 2.5, "s", yes, no, nil, name`)
	require.NoError(t, err)
	args := prog.Stmts[0].(*ast.PrintStmt).Args
	require.Len(t, args, 7)

	values := []any{int64(1), 2.5, "s", true, false, nil}
	for i, want := range values {
		lit, ok := args[i].(*ast.Literal)
		require.True(t, ok, "arg %d", i)
		assert.Equal(t, want, lit.Value, "arg %d", i)
	}
	assert.Equal(t, &ast.Ident{Pos: lexer.Position{File: "p.shibe", Line: 1, Column: 34}, Name: "name"}, args[6])
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "\n\n", "shh only a comment\n"} {
		prog, err := parseSource(t, src)
		require.NoError(t, err)
		assert.Empty(t, prog.Stmts)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{name: "missing expression", src: "print", wantMsg: "p.shibe:1:6: unexpected token: expected expression, found end of input"},
		{name: "unclosed paren", src: "print (1", wantMsg: "expected ) to close parenthesis"},
		{name: "missing is", src: "very x 1", wantMsg: "expected is in assignment"},
		{name: "missing name", src: "very is 1", wantMsg: "expected identifier after very"},
		{name: "two statements on a line", src: "print 1 print 2", wantMsg: "expected end of statement"},
		{name: "unclosed rly", src: "rly yes\nprint 1\n", wantMsg: "expected wow"},
		{name: "unclosed many", src: "many yes\n", wantMsg: "expected wow"},
		{name: "condition needs newline", src: "rly yes print 1\nwow", wantMsg: "expected newline after condition"},
		{name: "stray wow", src: "wow", wantMsg: "expected statement, found \"wow\""},
		{name: "stray operator", src: "+ 1", wantMsg: "expected statement"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := parseSource(t, tc.src)
			require.ErrorIs(t, err, ErrUnexpectedToken)
			require.Nil(t, prog)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestParserAdapter(t *testing.T) {
	t.Parallel()

	p := New(nil)
	assert.Equal(t, "shibe.Parser", p.String())

	lexemes, err := lexer.Scan([]byte(`print "hi"`), "a.shibe")
	require.NoError(t, err)
	tokens, err := tokenizer.Classify(lexemes)
	require.NoError(t, err)

	tree, err := p.Parse(context.Background(), tokens)
	require.NoError(t, err)
	prog, ok := tree.(*ast.Program)
	require.True(t, ok)
	assert.Equal(t, "ast.Program{File: a.shibe, Stmts: 1}", prog.String())

	tokens.Release()
	require.Len(t, prog.Stmts, 1)

	prog.Release()
	assert.Empty(t, prog.Stmts)

	_, err = p.Parse(context.Background(), new(pipeline.MockArtifact))
	require.ErrorIs(t, err, ErrUnexpectedArtifact)
}
