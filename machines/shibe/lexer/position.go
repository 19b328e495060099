package lexer

import "fmt"

// Position locates a lexeme in its source. Line and Column are 1-based;
// Column counts bytes.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Errorf formats an error prefixed with the position.
func (p Position) Errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", p, sentinel, fmt.Sprintf(format, args...))
}
