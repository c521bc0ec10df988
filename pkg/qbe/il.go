// Package qbe renders reduced expressions as QBE intermediate language and
// compiles that IL to native assembly.
package qbe

import (
	"fmt"
	"io"
	"strings"
)

// Instr is one word-sized QBE instruction: Dest =w Op Args.
type Instr struct {
	Dest string
	Op   string
	Args []string
}

func (i Instr) String() string {
	return fmt.Sprintf("%s =w %s %s", i.Dest, i.Op, strings.Join(i.Args, ", "))
}

// Function is a parameterless function returning a word.
type Function struct {
	Name   string
	Export bool
	Body   []string
	Ret    string // empty returns 0
}

// Printer outputs QBE IL.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new QBE printer.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintFunction writes fn as a single block labelled @start.
func (p *Printer) PrintFunction(fn *Function) {
	if fn.Export {
		fmt.Fprint(p.w, "export ")
	}
	fmt.Fprintf(p.w, "function w $%s() {\n", fn.Name)
	fmt.Fprintln(p.w, "@start")
	for _, line := range fn.Body {
		fmt.Fprintf(p.w, "\t%s\n", line)
	}
	ret := fn.Ret
	if ret == "" {
		ret = "0"
	}
	fmt.Fprintf(p.w, "\tret %s\n", ret)
	fmt.Fprintln(p.w, "}")
}

// String returns the IL text of fn.
func (fn *Function) String() string {
	var sb strings.Builder
	NewPrinter(&sb).PrintFunction(fn)
	return sb.String()
}

// Targets are the QBE target names accepted by Compile.
var Targets = []string{"amd64_sysv", "amd64_apple", "arm64", "arm64_apple", "rv64"}

// ValidTarget reports whether name is one of Targets.
func ValidTarget(name string) bool {
	for _, t := range Targets {
		if t == name {
			return true
		}
	}
	return false
}
