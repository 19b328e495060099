package interpreter

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/machines/shibe/ast"
	"github.com/robbyt/go-shibe/machines/shibe/lexer"
	"github.com/robbyt/go-shibe/machines/shibe/parser"
	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

func build(t *testing.T, src string) *ast.Program {
	t.Helper()
	lexemes, err := lexer.Scan([]byte(src), "i.shibe")
	require.NoError(t, err)
	tokens, err := tokenizer.Classify(lexemes)
	require.NoError(t, err)
	prog, err := parser.Build(tokens)
	require.NoError(t, err)
	return prog
}

func run(t *testing.T, src string, opts ...Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(nil, &out, opts...).Exec(context.Background(), build(t, src))
	return out.String(), err
}

func TestExecOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "hello", src: `print "hi"`, want: "hi\n"},
		{name: "several args", src: `print "a", 1, 2.5, yes, no, nil`, want: "a 1 2.5 yes no nil\n"},
		{name: "integer arithmetic", src: "print 7 / 2, 7 % 3, 2 * 3 + 1, -4 - 1", want: "3 1 7 -5\n"},
		{name: "float arithmetic", src: "print 7 / 2.0, 0.5 + 1, 7.5 % 2", want: "3.5 1.5 1.5\n"},
		{name: "string concat", src: `print "wow" + " " + "doge"`, want: "wow doge\n"},
		{name: "comparisons", src: `print 1 < 2, 2 <= 2, 3 > 4, "a" < "b", 1 == 1.0, "1" == 1, nil == nil, 1 != 2`, want: "yes yes no yes yes no yes yes\n"},
		{name: "logic", src: "print yes and no, yes or no, not yes, not 1 > 2", want: "no yes no yes\n"},
		{name: "short circuit skips undefined", src: "print no and missing, yes or missing", want: "no yes\n"},
		{
			name: "variables",
			src:  "very x is 2\nx is x * 10\nprint x",
			want: "20\n",
		},
		{
			name: "if else",
			src:  "very x is 5\nrly x > 3\nprint \"big\"\nbut\nprint \"small\"\nwow\nrly x < 3\nprint \"never\"\nwow",
			want: "big\n",
		},
		{
			name: "loop",
			src:  "very i is 0\nmany i < 3\nprint i\ni is i + 1\nwow",
			want: "0\n1\n2\n",
		},
		{name: "empty program", src: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExecErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
		wantPos string
	}{
		{name: "undefined read", src: "print x", wantErr: ErrUndefined, wantPos: "i.shibe:1:7"},
		{name: "undefined assign", src: "x is 1", wantErr: ErrUndefined, wantPos: "i.shibe:1:1"},
		{name: "redeclare", src: "very x is 1\nvery x is 2", wantErr: ErrRedeclared, wantPos: "i.shibe:2:1"},
		{name: "int division by zero", src: "print 1 / 0", wantErr: ErrDivisionByZero, wantPos: "i.shibe:1:9"},
		{name: "int modulo by zero", src: "print 1 % 0", wantErr: ErrDivisionByZero},
		{name: "float division by zero", src: "print 1.5 / 0", wantErr: ErrDivisionByZero},
		{name: "string plus int", src: `print "a" + 1`, wantErr: ErrType},
		{name: "compare mixed", src: `print "a" < 1`, wantErr: ErrType},
		{name: "negate string", src: `print -"a"`, wantErr: ErrType},
		{name: "not int", src: "print not 1", wantErr: ErrType},
		{name: "non bool condition", src: "rly 1\nprint 1\nwow", wantErr: ErrType, wantPos: "i.shibe:1:5"},
		{name: "non bool and", src: "print 1 and yes", wantErr: ErrType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.src)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantPos != "" {
				assert.Contains(t, err.Error(), tc.wantPos)
			}
		})
	}
}

func TestExecOutputBeforeError(t *testing.T) {
	t.Parallel()

	got, err := run(t, "print 1\nprint missing\nprint 2")
	require.ErrorIs(t, err, ErrUndefined)
	assert.Equal(t, "1\n", got)
}

func TestExecStepLimit(t *testing.T) {
	t.Parallel()

	_, err := run(t, "many yes\nprint 1\nwow", WithMaxSteps(10))
	require.ErrorIs(t, err, ErrStepLimit)
}

func TestExecCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(nil, &out).Exec(ctx, build(t, "many yes\nwow"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("mock write error")
}

func TestExecWriteFailure(t *testing.T) {
	t.Parallel()

	err := New(nil, failingWriter{}).Exec(context.Background(), build(t, `print "hi"`))
	require.ErrorIs(t, err, ErrOutput)
}

func TestInterpreterAdapter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	i := New(nil, &out)
	assert.Equal(t, "shibe.Interpreter", i.String())

	require.NoError(t, i.Interpret(context.Background(), build(t, `print "hi"`)))
	assert.Equal(t, "hi\n", out.String())

	err := i.Interpret(context.Background(), new(pipeline.MockArtifact))
	require.ErrorIs(t, err, ErrUnexpectedArtifact)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1e+21", Format(1e21))
	assert.Equal(t, "0.1", Format(0.1))
	assert.Equal(t, "?", Format(struct{}{}))
}
