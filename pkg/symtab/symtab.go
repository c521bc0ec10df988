// Package symtab collects the variables declared in C-like source.
package symtab

import (
	"strconv"
	"strings"

	"github.com/raymyers/tacc/pkg/source"
)

// Uninitialized is the value of a symbol declared without an initializer.
const Uninitialized = "uninitialized"

// Symbol is one declared variable.
type Symbol struct {
	Name  string
	Type  string
	Value string
}

// Initialized reports whether the declaration had an initializer.
func (s Symbol) Initialized() bool {
	return s.Value != Uninitialized
}

// Int returns the initializer as an integer, if it is one.
func (s Symbol) Int() (int64, bool) {
	v, err := strconv.ParseInt(s.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Table is the list of symbols in declaration order.
type Table []Symbol

// Lookup returns the first symbol with the given name.
func (t Table) Lookup(name string) (Symbol, bool) {
	for _, s := range t {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}

// Build returns every variable declared in src. Comments are ignored and
// function headers such as `int main() {` are not declarations. Each
// comma-separated item of `type a, b = 5;` becomes one symbol. A nil types
// slice means source.DefaultTypeKeywords.
func Build(src string, types []string) Table {
	if types == nil {
		types = source.DefaultTypeKeywords
	}
	s := source.StripComments(source.NewText(src)).String()
	s = stripFunctionHeaders(s, types)

	var table Table
	for i := 0; i < len(s); i++ {
		kw := source.KeywordAt(s, i, types)
		if kw == "" {
			continue
		}
		start := i + len(kw)
		k := skipSpace(s, start)
		if k == start {
			continue
		}
		semi := strings.IndexByte(s[k:], ';')
		if semi <= 0 {
			continue
		}
		table = append(table, declared(kw, s[k:k+semi])...)
		i = k + semi
	}
	return table
}

func declared(typ, list string) []Symbol {
	var out []Symbol
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		sym := Symbol{Name: item, Type: typ, Value: Uninitialized}
		if name, value, ok := strings.Cut(item, "="); ok {
			sym.Name = strings.TrimSpace(name)
			sym.Value = strings.TrimSpace(value)
		}
		out = append(out, sym)
	}
	return out
}

// stripFunctionHeaders removes `type name ( params ) {` sequences.
func stripFunctionHeaders(s string, types []string) string {
	var sb strings.Builder
	keep := 0
	for i := 0; i < len(s); i++ {
		kw := source.KeywordAt(s, i, types)
		if kw == "" {
			continue
		}
		end := functionHeaderEnd(s, i+len(kw))
		if end < 0 {
			continue
		}
		sb.WriteString(s[keep:i])
		keep = end
		i = end - 1
	}
	sb.WriteString(s[keep:])
	return sb.String()
}

func functionHeaderEnd(s string, i int) int {
	j := skipSpace(s, i)
	if j == i {
		return -1
	}
	k := j
	for k < len(s) && isWordByte(s[k]) {
		k++
	}
	if k == j {
		return -1
	}
	k = skipSpace(s, k)
	if k >= len(s) || s[k] != '(' {
		return -1
	}
	closing := strings.IndexByte(s[k:], ')')
	if closing < 0 {
		return -1
	}
	k = skipSpace(s, k+closing+1)
	if k < len(s) && s[k] == '{' {
		k++
	}
	return k
}

func skipSpace(s string, i int) int {
	for i < len(s) && strings.IndexByte(" \t\n\r\f\v", s[i]) >= 0 {
		i++
	}
	return i
}

func isWordByte(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}
