package lexer

// commentWord starts a comment running to the end of the line.
const commentWord = "shh"

// twoByteOperators are matched before their one-byte prefixes.
var twoByteOperators = map[string]bool{
	"==": true,
	"!=": true,
	"<=": true,
	">=": true,
}

const oneByteOperators = "+-*/%<>()=,!"

type scanner struct {
	src   []byte
	file  string
	off   int
	line  int
	col   int
	items []Lexeme
}

// Scan splits src into lexemes. Text is copied, so src may be released
// as soon as Scan returns.
func Scan(src []byte, file string) (*LexemeList, error) {
	s := &scanner{src: src, file: file, line: 1, col: 1}
	if err := s.run(); err != nil {
		return nil, err
	}
	return &LexemeList{file: file, items: s.items}, nil
}

func (s *scanner) pos() Position {
	return Position{File: s.file, Line: s.line, Column: s.col}
}

func (s *scanner) emit(start int, pos Position) {
	s.items = append(s.items, Lexeme{Text: string(s.src[start:s.off]), Pos: pos})
}

func (s *scanner) advance() {
	s.off++
	s.col++
}

func (s *scanner) newline(pos Position, width int) {
	s.items = append(s.items, Lexeme{Text: Newline, Pos: pos})
	s.off += width
	s.line++
	s.col = 1
}

func (s *scanner) run() error {
	for s.off < len(s.src) {
		b := s.src[s.off]
		pos := s.pos()

		switch {
		case b == ' ' || b == '\t':
			s.advance()
		case b == '\n':
			s.newline(pos, 1)
		case b == '\r':
			width := 1
			if s.off+1 < len(s.src) && s.src[s.off+1] == '\n' {
				width = 2
			}
			s.newline(pos, width)
		case b == '"':
			if err := s.scanString(pos); err != nil {
				return err
			}
		case isDigit(b):
			start := s.off
			for s.off < len(s.src) && (isWordByte(s.src[s.off]) || s.src[s.off] == '.') {
				s.advance()
			}
			s.emit(start, pos)
		case isWordStart(b):
			start := s.off
			for s.off < len(s.src) && isWordByte(s.src[s.off]) {
				s.advance()
			}
			if string(s.src[start:s.off]) == commentWord {
				s.skipLine()
				continue
			}
			s.emit(start, pos)
		default:
			if err := s.scanOperator(pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *scanner) scanString(pos Position) error {
	start := s.off
	s.advance()
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '"':
			s.advance()
			s.emit(start, pos)
			return nil
		case '\\':
			s.advance()
			if s.off < len(s.src) && s.src[s.off] != '\n' && s.src[s.off] != '\r' {
				s.advance()
			}
		case '\n', '\r':
			return pos.Errorf(ErrUnterminatedString, "line ends before closing quote")
		default:
			s.advance()
		}
	}
	return pos.Errorf(ErrUnterminatedString, "input ends before closing quote")
}

func (s *scanner) scanOperator(pos Position) error {
	if s.off+1 < len(s.src) && twoByteOperators[string(s.src[s.off:s.off+2])] {
		start := s.off
		s.advance()
		s.advance()
		s.emit(start, pos)
		return nil
	}

	b := s.src[s.off]
	for i := 0; i < len(oneByteOperators); i++ {
		if oneByteOperators[i] == b {
			start := s.off
			s.advance()
			s.emit(start, pos)
			return nil
		}
	}
	return pos.Errorf(ErrUnexpectedByte, "0x%02X", b)
}

func (s *scanner) skipLine() {
	for s.off < len(s.src) && s.src[s.off] != '\n' && s.src[s.off] != '\r' {
		s.advance()
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isWordByte(b byte) bool { return isWordStart(b) || isDigit(b) }
