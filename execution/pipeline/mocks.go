package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockArtifact is a mock implementation of every artifact interface.
// ID keeps distinct artifacts from matching each other in expectations.
type MockArtifact struct {
	mock.Mock
	ID string
}

// Release mocks the Release method of the Artifact interface.
func (m *MockArtifact) Release() {
	m.Called()
}

// NewMockArtifact returns an artifact expecting exactly one Release.
func NewMockArtifact(id string) *MockArtifact {
	m := &MockArtifact{ID: id}
	m.On("Release").Return().Once()
	return m
}

// MockLexer is a mock implementation of the Lexer interface.
type MockLexer struct {
	mock.Mock
}

func (m *MockLexer) Lex(ctx context.Context, src []byte, name string) (Lexemes, error) {
	args := m.Called(ctx, src, name)
	lexemes, ok := args.Get(0).(Lexemes)
	if !ok {
		return nil, args.Error(1)
	}
	return lexemes, args.Error(1)
}

// MockTokenizer is a mock implementation of the Tokenizer interface.
type MockTokenizer struct {
	mock.Mock
}

func (m *MockTokenizer) Tokenize(ctx context.Context, lexemes Lexemes) (Tokens, error) {
	args := m.Called(ctx, lexemes)
	tokens, ok := args.Get(0).(Tokens)
	if !ok {
		return nil, args.Error(1)
	}
	return tokens, args.Error(1)
}

// MockParser is a mock implementation of the Parser interface.
type MockParser struct {
	mock.Mock
}

func (m *MockParser) Parse(ctx context.Context, tokens Tokens) (Tree, error) {
	args := m.Called(ctx, tokens)
	tree, ok := args.Get(0).(Tree)
	if !ok {
		return nil, args.Error(1)
	}
	return tree, args.Error(1)
}

// MockInterpreter is a mock implementation of the Interpreter interface.
type MockInterpreter struct {
	mock.Mock
}

func (m *MockInterpreter) Interpret(ctx context.Context, tree Tree) error {
	args := m.Called(ctx, tree)
	return args.Error(0)
}
