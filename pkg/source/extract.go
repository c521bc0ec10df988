package source

import (
	"fmt"
	"strings"
)

// Assignment is one `target = expression;` statement.
type Assignment struct {
	Target string
	Expr   string
	Line   int
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Target, a.Expr)
}

// Extract splits t on ';' and returns one assignment per statement that
// has an identifier followed by '='. Text after the last ';' is not a
// statement. Within a statement the first such '=' wins and everything
// after it, trimmed, is the expression.
func Extract(t Text) []Assignment {
	var out []Assignment
	s := t.s
	start := 0
	for {
		semi := strings.IndexByte(s[start:], ';')
		if semi < 0 {
			return out
		}
		end := start + semi
		if a, ok := extractStatement(t, start, end); ok {
			out = append(out, a)
		}
		start = end + 1
	}
}

func extractStatement(t Text, start, end int) (Assignment, bool) {
	s := t.s
	for eq := start; eq < end; eq++ {
		if s[eq] != '=' || eq+1 == end {
			continue
		}

		k := eq
		for k > start && isSpaceByte(s[k-1]) {
			k--
		}
		identEnd := k
		for k > start && isWordByte(s[k-1]) {
			k--
		}
		// an identifier cannot start with a digit
		for k < identEnd && !isIdentStart(s[k]) {
			k++
		}
		if k == identEnd {
			continue
		}

		return Assignment{
			Target: s[k:identEnd],
			Expr:   strings.TrimSpace(s[eq+1 : end]),
			Line:   t.Line(k),
		}, true
	}
	return Assignment{}, false
}

// Assignments runs the whole extraction: comments are stripped first, then
// declarations, then the remaining statements are scanned.
func Assignments(src string, typeKeywords []string) []Assignment {
	if typeKeywords == nil {
		typeKeywords = DefaultTypeKeywords
	}
	t := StripComments(NewText(src))
	t = StripDeclarations(t, typeKeywords)
	return Extract(t)
}
