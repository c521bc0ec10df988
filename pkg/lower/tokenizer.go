package lower

// tokenizer splits one expression into tokens.
type tokenizer struct {
	input   []rune
	pos     int  // current position in input
	readPos int  // next reading position
	ch      rune // current character
}

func newTokenizer(expr string) *tokenizer {
	t := &tokenizer{input: []rune(expr)}
	t.readChar()
	return t
}

func (t *tokenizer) readChar() {
	if t.readPos >= len(t.input) {
		t.ch = 0 // EOF
	} else {
		t.ch = t.input[t.readPos]
	}
	t.pos = t.readPos
	t.readPos++
}

// Tokenize splits expr into identifiers, integer literals, the four
// arithmetic operators and parentheses. Whitespace is dropped. The first
// character that starts none of these fails with a *CharError.
func Tokenize(expr string) ([]Token, error) {
	t := newTokenizer(expr)
	var toks []Token
	for {
		for isSpace(t.ch) {
			t.readChar()
		}
		if t.pos >= len(t.input) {
			return toks, nil
		}

		start := t.pos
		switch {
		case isLetter(t.ch):
			for isLetter(t.ch) || isDigit(t.ch) {
				t.readChar()
			}
			toks = append(toks, Token{Kind: Ident, Text: string(t.input[start:t.pos]), Pos: start})
		case isDigit(t.ch):
			for isDigit(t.ch) {
				t.readChar()
			}
			toks = append(toks, Token{Kind: IntLit, Text: string(t.input[start:t.pos]), Pos: start})
		case t.ch == '+' || t.ch == '-' || t.ch == '*' || t.ch == '/':
			toks = append(toks, Token{Kind: Operator, Text: string(t.ch), Pos: start})
			t.readChar()
		case t.ch == '(':
			toks = append(toks, Token{Kind: LParen, Text: "(", Pos: start})
			t.readChar()
		case t.ch == ')':
			toks = append(toks, Token{Kind: RParen, Text: ")", Pos: start})
			t.readChar()
		default:
			return nil, &CharError{Expr: expr, Char: t.ch, Pos: start}
		}
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
