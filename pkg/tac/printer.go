package tac

import (
	"fmt"
	"io"
)

// Printer outputs TAC one instruction per line
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new TAC printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram prints every instruction of prog
func (p *Printer) PrintProgram(prog *Program) {
	for _, in := range prog.Code {
		fmt.Fprintln(p.w, Format(in))
	}
}

// Format renders one instruction without a trailing newline.
func Format(in Instr) string {
	switch i := in.(type) {
	case Binop:
		return fmt.Sprintf("%s = %s %s %s", i.Dest, i.Left, i.Op, i.Right)
	case Copy:
		return fmt.Sprintf("%s = %s", i.Dest, i.Src)
	default:
		return fmt.Sprintf("# unknown instruction %T", in)
	}
}
