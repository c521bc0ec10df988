package source

import "strings"

// DefaultTypeKeywords start a declaration.
var DefaultTypeKeywords = []string{"int", "float", "char", "double"}

// Text is source text with the source line number of every byte, so that
// diagnostics still point at the right line after comments are removed.
type Text struct {
	s     string
	lines []int
}

// NewText wraps src, numbering lines from 1.
func NewText(src string) Text {
	lines := make([]int, len(src))
	line := 1
	for i := 0; i < len(src); i++ {
		lines[i] = line
		if src[i] == '\n' {
			line++
		}
	}
	return Text{s: src, lines: lines}
}

func (t Text) String() string { return t.s }

// Len returns the length in bytes.
func (t Text) Len() int { return len(t.s) }

// Line returns the source line of byte i.
func (t Text) Line(i int) int {
	if len(t.lines) == 0 {
		return 1
	}
	if i >= len(t.lines) {
		return t.lines[len(t.lines)-1]
	}
	return t.lines[i]
}

// builder accumulates kept bytes together with their line numbers.
type builder struct {
	sb    strings.Builder
	lines []int
}

func (b *builder) keep(t Text, from, to int) {
	b.sb.WriteString(t.s[from:to])
	b.lines = append(b.lines, t.lines[from:to]...)
}

func (b *builder) text() Text {
	return Text{s: b.sb.String(), lines: b.lines}
}

type stripState int

const (
	stateCode stripState = iota
	stateLineComment
	stateBlockComment
)

// StripComments removes // comments up to (not including) the end of the
// line and /* */ comments entirely. Block comments do not nest, and a /*
// with no closing */ is left as ordinary text.
func StripComments(t Text) Text {
	var b builder
	state := stateCode
	keepFrom := 0
	s := t.s

	for i := 0; i < len(s); i++ {
		switch state {
		case stateCode:
			if s[i] != '/' || i+1 >= len(s) {
				continue
			}
			switch s[i+1] {
			case '/':
				b.keep(t, keepFrom, i)
				state = stateLineComment
				i++
			case '*':
				if strings.Index(s[i+2:], "*/") < 0 {
					continue
				}
				b.keep(t, keepFrom, i)
				state = stateBlockComment
				i++
			}
		case stateLineComment:
			if s[i] == '\n' {
				keepFrom = i
				state = stateCode
			}
		case stateBlockComment:
			if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
				i++
				keepFrom = i + 1
				state = stateCode
			}
		}
	}

	if state == stateCode {
		b.keep(t, keepFrom, len(s))
	}
	return b.text()
}

// StripDeclarations removes every declaration: a whole-word type keyword
// and everything after it through the next ';'. A keyword with no ';'
// after it is kept.
func StripDeclarations(t Text, keywords []string) Text {
	var b builder
	s := t.s
	keepFrom := 0

	for i := 0; i < len(s); i++ {
		kw := KeywordAt(s, i, keywords)
		if kw == "" {
			continue
		}
		semi := strings.IndexByte(s[i+len(kw):], ';')
		if semi < 0 {
			i += len(kw) - 1
			continue
		}
		b.keep(t, keepFrom, i)
		i += len(kw) + semi
		keepFrom = i + 1
	}

	b.keep(t, keepFrom, len(s))
	return b.text()
}

// KeywordAt returns the keyword that occurs as a whole word at s[i:], or "".
func KeywordAt(s string, i int, keywords []string) string {
	if i > 0 && isWordByte(s[i-1]) {
		return ""
	}
	for _, kw := range keywords {
		end := i + len(kw)
		if kw == "" || end > len(s) || s[i:end] != kw {
			continue
		}
		if end < len(s) && isWordByte(s[end]) {
			continue
		}
		return kw
	}
	return ""
}

func isWordByte(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isSpaceByte(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
