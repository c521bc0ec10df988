package asm

import (
	"fmt"
	"io"
)

// Printer outputs pseudo-assembly, one instruction per line
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new assembly printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram outputs an entire program
func (p *Printer) PrintProgram(prog *Program) {
	for _, inst := range prog.Code {
		p.printInstruction(inst)
	}
}

func (p *Printer) printInstruction(inst Instruction) {
	fmt.Fprintln(p.w, Format(inst))
}

// Format renders one instruction without a trailing newline.
func Format(inst Instruction) string {
	switch i := inst.(type) {
	case MOV:
		return fmt.Sprintf("MOV %s, %s", i.Dst, i.Src)
	case ADD:
		return fmt.Sprintf("ADD %s, %s", i.Dst, i.Src)
	case SUB:
		return fmt.Sprintf("SUB %s, %s", i.Dst, i.Src)
	case MUL:
		return fmt.Sprintf("MUL %s, %s", i.Dst, i.Src)
	case DIV:
		return fmt.Sprintf("DIV %s, %s", i.Dst, i.Src)
	default:
		return fmt.Sprintf("; unknown instruction %T", inst)
	}
}
