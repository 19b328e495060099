package tokenizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/machines/shibe/lexer"
)

func classifySource(t *testing.T, src string) (*TokenList, error) {
	t.Helper()
	lexemes, err := lexer.Scan([]byte(src), "t.shibe")
	require.NoError(t, err)
	return Classify(lexemes)
}

func kinds(l *TokenList) []Kind {
	out := make([]Kind, 0, l.Len())
	for _, tok := range l.Items() {
		out = append(out, tok.Kind)
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{
			name: "print string",
			src:  `print "hi"`,
			want: []Kind{Print, String, EOF},
		},
		{
			name: "declaration",
			src:  "very x is 1 + 2.5\n",
			want: []Kind{Very, Ident, Is, Int, Plus, Float, Newline, EOF},
		},
		{
			name: "control flow keywords",
			src:  "rly yes and not no or nil\nbut\nwow\nmany",
			want: []Kind{Rly, Yes, And, Not, No, Or, Nil, Newline, But, Newline, Wow, Newline, Many, EOF},
		},
		{
			name: "operators",
			src:  "- * / % == != < <= > >= ( ) ,",
			want: []Kind{Minus, Star, Slash, Percent, Eq, NotEq, Less, LessEq, Greater, GreaterEq, LParen, RParen, Comma, EOF},
		},
		{
			name: "empty",
			src:  "",
			want: []Kind{EOF},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := classifySource(t, tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, kinds(tokens))
		})
	}
}

func TestClassifyValues(t *testing.T) {
	t.Parallel()

	tokens, err := classifySource(t, `42 3.25 1e3 "a\tb\n\"c\"\\"`)
	require.NoError(t, err)
	items := tokens.Items()
	require.Len(t, items, 5)

	assert.Equal(t, int64(42), items[0].Value)
	assert.Equal(t, 3.25, items[1].Value)
	assert.Equal(t, 1000.0, items[2].Value)
	assert.Equal(t, "a\tb\n\"c\"\\", items[3].Value)
	assert.Equal(t, "t.shibe:1:28", items[4].Pos.String())
}

func TestClassifyErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "letters in number", src: "12ab", wantErr: ErrMalformedNumber},
		{name: "two dots", src: "1.2.3", wantErr: ErrMalformedNumber},
		{name: "underscore", src: "1_000", wantErr: ErrMalformedNumber},
		{name: "bad escape", src: `"\q"`, wantErr: ErrInvalidEscape},
		{name: "lone equals", src: "x = 1", wantErr: ErrUnknownOperator},
		{name: "bang", src: "!x", wantErr: ErrUnknownOperator},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := classifySource(t, tc.src)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, tokens)
			assert.Contains(t, err.Error(), "t.shibe:1:")
		})
	}
}

func TestTokenizerAdapter(t *testing.T) {
	t.Parallel()

	tk := New(nil)
	assert.Equal(t, "shibe.Tokenizer", tk.String())

	lexemes, err := lexer.Scan([]byte("print 1"), "a.shibe")
	require.NoError(t, err)

	got, err := tk.Tokenize(context.Background(), lexemes)
	require.NoError(t, err)
	list, ok := got.(*TokenList)
	require.True(t, ok)
	assert.Equal(t, "a.shibe", list.File())
	assert.Equal(t, 3, list.Len())

	// Tokens survive the release of their lexemes.
	lexemes.Release()
	assert.Equal(t, "print", list.Items()[0].Text)

	list.Release()
	assert.Zero(t, list.Len())

	_, err = tk.Tokenize(context.Background(), new(pipeline.MockArtifact))
	require.ErrorIs(t, err, ErrUnexpectedArtifact)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "print", Print.String())
	assert.Equal(t, "<=", LessEq.String())
	assert.Equal(t, "end of input", EOF.String())
	assert.Equal(t, "unknown", Kind(-1).String())
}
