// Package report prints the sections of a tacc run.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raymyers/tacc/pkg/lexer"
	"github.com/raymyers/tacc/pkg/symtab"
	"golang.org/x/term"
)

// DefaultWidth is the width of section banners.
const DefaultWidth = 40

// Section titles.
const (
	TitleTokens  = "LEXICAL ANALYSIS OUTPUT"
	TitleSymbols = "SYMBOL TABLE"
	TitleTAC     = "THREE ADDRESS CODE (TAC)"
	TitleAsm     = "ASSEMBLY CODE"
	TitleQBE     = "QBE IL"
	TitleNative  = "NATIVE ASSEMBLY"
)

// Options control how sections look.
type Options struct {
	Width  int // DefaultWidth when zero
	Color  bool
	Digest bool
}

// Writer prints report sections to w.
type Writer struct {
	w    io.Writer
	opts Options
}

// New creates a Writer.
func New(w io.Writer, opts Options) *Writer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Writer{w: w, opts: opts}
}

// Banner prints a blank line and title between two rules.
func (r *Writer) Banner(title string) {
	rule := strings.Repeat("=", r.opts.Width)
	line := title
	if pad := (r.opts.Width - len(title)) / 2; pad > 0 {
		line = strings.Repeat(" ", pad) + title
	}
	if r.opts.Color {
		rule = text.Bold.Sprint(rule)
		line = text.Colors{text.Bold, text.FgCyan}.Sprint(line)
	}
	fmt.Fprintf(r.w, "\n%s\n%s\n%s\n", rule, line, rule)
}

// Tokens prints one `CATEGORY    : 'lexeme'` line per token.
func (r *Writer) Tokens(tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(r.w, tok.String())
	}
}

// Symbols prints the symbol table in three columns.
func (r *Writer) Symbols(symbols symtab.Table) {
	tw := table.NewWriter()
	tw.SetStyle(symbolStyle(r.opts.Color))
	tw.AppendHeader(table.Row{"Name", "Type", "Value"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 10},
		{Number: 2, WidthMin: 10},
		{Number: 3, WidthMin: 15},
	})
	for _, s := range symbols {
		tw.AppendRow(table.Row{s.Name, s.Type, s.Value})
	}
	fmt.Fprintln(r.w, tw.Render())
}

func symbolStyle(color bool) table.Style {
	style := table.StyleDefault
	style.Name = "tacc"
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = " "
	style.Box.MiddleHorizontal = "-"
	style.Box.MiddleSeparator = "-"
	style.Options = table.Options{SeparateHeader: true}
	style.Format.Header = text.FormatDefault
	if color {
		style.Color.Header = text.Colors{text.Bold}
	}
	return style
}

// Lines prints a listing, followed by its digest when enabled.
func (r *Writer) Lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(r.w, l)
	}
	if r.opts.Digest {
		fmt.Fprintf(r.w, "digest: %016x\n", Digest(lines))
	}
}

// Text prints s as is, adding a final newline when missing.
func (r *Writer) Text(s string) {
	fmt.Fprint(r.w, s)
	if s != "" && !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(r.w)
	}
}

// Digest hashes a listing so two runs can be compared at a glance.
func Digest(lines []string) uint64 {
	return xxhash.Sum64String(strings.Join(lines, "\n"))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns DefaultWidth, narrowed to the terminal when f is a terminal
// smaller than that.
func Width(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width >= DefaultWidth {
		return DefaultWidth
	}
	if width < 20 {
		return 20
	}
	return width
}
