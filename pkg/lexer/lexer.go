package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer classifies C-like source into keywords, identifiers, literals,
// operators and separators. Comments and whitespace are skipped.
type Lexer struct {
	input  string
	pos    int // current position in input
	line   int
	column int
	errors []*Error
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Errors returns the unexpected characters seen so far.
func (l *Lexer) Errors() []*Error {
	return l.errors
}

func (l *Lexer) peekChar(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

// NextToken returns the next token from the input. Unexpected characters
// are recorded in Errors and skipped.
func (l *Lexer) NextToken() Token {
	for {
		l.skipTrivia()
		if l.pos >= len(l.input) {
			return Token{Category: EOF, Pos: l.pos, Line: l.line, Column: l.column}
		}
		if tok, ok := l.scan(); ok {
			return tok
		}
	}
}

func (l *Lexer) scan() (Token, bool) {
	rest := l.input[l.pos:]
	ch := rest[0]

	var n int
	var cat Category
	switch {
	case ch == '"':
		n, cat = stringLen(rest), Literal
	case isDigit(ch):
		n, cat = numberLen(rest), Literal
	case isLetter(ch):
		n = identLen(rest)
		cat = LookupIdent(rest[:n])
	default:
		n, cat = punctLen(rest)
	}

	if n == 0 {
		r, size := utf8.DecodeRuneInString(rest)
		l.errors = append(l.errors, &Error{Char: r, Pos: l.pos, Line: l.line, Column: l.column})
		l.advance(size)
		return Token{}, false
	}

	tok := Token{Category: cat, Literal: rest[:n], Pos: l.pos, Line: l.line, Column: l.column}
	l.advance(n)
	return tok, true
}

// skipTrivia skips whitespace, // comments up to the newline and closed /*
// comments. An unclosed /* is not a comment.
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case unicode.IsSpace(r):
			l.advance(size)
		case r == '/' && l.peekChar(1) == '/':
			end := strings.IndexByte(l.input[l.pos:], '\n')
			if end < 0 {
				end = len(l.input) - l.pos
			}
			l.advance(end)
		case r == '/' && l.peekChar(1) == '*':
			end := strings.Index(l.input[l.pos+2:], "*/")
			if end < 0 {
				return
			}
			l.advance(end + 4)
		default:
			return
		}
	}
}

// stringLen returns the length of a double-quoted literal with backslash
// escapes at the start of s, or 0 if it is not terminated.
func stringLen(s string) int {
	for i := 1; i < len(s); {
		switch s[i] {
		case '"':
			return i + 1
		case '\\':
			if i+1 >= len(s) || s[i+1] == '\n' {
				return 0
			}
			i += 2
		default:
			i++
		}
	}
	return 0
}

// numberLen matches digits, optionally followed by '.' and more digits.
func numberLen(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func identLen(s string) int {
	i := 1
	for i < len(s) && (isLetter(s[i]) || isDigit(s[i])) {
		i++
	}
	return i
}

func punctLen(s string) (int, Category) {
	for _, op := range operators2 {
		if strings.HasPrefix(s, op) {
			return len(op), Operator
		}
	}
	if strings.IndexByte(operators1, s[0]) >= 0 {
		return 1, Operator
	}
	if strings.IndexByte(separators, s[0]) >= 0 {
		return 1, Separator
	}
	return 0, EOF
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize runs a lexer over the whole input.
func Tokenize(input string) ([]Token, []*Error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Category == EOF {
			return tokens, l.Errors()
		}
		tokens = append(tokens, tok)
	}
}
