package tokenizer

// Kind is the grammatical category of a token.
type Kind int

const (
	EOF Kind = iota
	Newline
	Ident
	Int
	Float
	String

	// keywords
	Print
	Very
	Is
	Rly
	But
	Wow
	Many
	And
	Or
	Not
	Yes
	No
	Nil

	// operators
	Plus
	Minus
	Star
	Slash
	Percent
	Eq
	NotEq
	Less
	LessEq
	Greater
	GreaterEq
	LParen
	RParen
	Comma
)

var keywords = map[string]Kind{
	"print": Print,
	"very":  Very,
	"is":    Is,
	"rly":   Rly,
	"but":   But,
	"wow":   Wow,
	"many":  Many,
	"and":   And,
	"or":    Or,
	"not":   Not,
	"yes":   Yes,
	"no":    No,
	"nil":   Nil,
}

var operators = map[string]Kind{
	"+":  Plus,
	"-":  Minus,
	"*":  Star,
	"/":  Slash,
	"%":  Percent,
	"==": Eq,
	"!=": NotEq,
	"<":  Less,
	"<=": LessEq,
	">":  Greater,
	">=": GreaterEq,
	"(":  LParen,
	")":  RParen,
	",":  Comma,
}

var names = map[Kind]string{
	EOF:     "end of input",
	Newline: "newline",
	Ident:   "identifier",
	Int:     "integer",
	Float:   "float",
	String:  "string",
}

func init() {
	for text, k := range keywords {
		names[k] = text
	}
	for text, k := range operators {
		names[k] = text
	}
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "unknown"
}
