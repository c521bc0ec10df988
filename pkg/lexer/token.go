package lexer

import "fmt"

// Category is the coarse class a token is listed under.
type Category int

const (
	EOF Category = iota
	Keyword
	Identifier
	Literal
	Operator
	Separator
)

var categoryNames = map[Category]string{
	EOF:        "EOF",
	Keyword:    "KEYWORD",
	Identifier: "IDENTIFIER",
	Literal:    "LITERAL",
	Operator:   "OPERATOR",
	Separator:  "SEPARATOR",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

var keywords = map[string]bool{
	"int":    true,
	"float":  true,
	"void":   true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"return": true,
	"char":   true,
	"double": true,
}

// LookupIdent tells keywords apart from identifiers.
func LookupIdent(ident string) Category {
	if keywords[ident] {
		return Keyword
	}
	return Identifier
}

// two-character operators are tried before single ones
var operators2 = []string{"==", "!=", "<=", ">=", "++", "--"}

const (
	operators1 = "+-*/=><"
	separators = ";,(){}[]"
)

// Token represents a classified lexeme. Pos is a byte offset into the
// input; Line and Column are 1-based.
type Token struct {
	Category Category
	Literal  string
	Pos      int
	Line     int
	Column   int
}

// String renders the token the way the listing prints it.
func (t Token) String() string {
	return fmt.Sprintf("%-12s: '%s'", t.Category, t.Literal)
}

// Error reports a character no token class accepts. The lexer skips it and
// carries on.
type Error struct {
	Char   rune
	Pos    int
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected character '%c' at position %d (line %d, column %d)",
		e.Char, e.Pos, e.Line, e.Column)
}
