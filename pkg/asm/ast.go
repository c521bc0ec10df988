// Package asm defines the pseudo-assembly representation.
// It is a two-address register machine: every arithmetic instruction
// combines its destination with one source and writes the destination.
package asm

// Program is a flat instruction listing.
type Program struct {
	Code []Instruction
}

// --- Instruction Interface ---

// Instruction is the interface for pseudo-assembly instructions
type Instruction interface {
	implInstruction()
}

// MOV - Copy Src into Dst
type MOV struct {
	Dst, Src string
}

// ADD - Dst = Dst + Src
type ADD struct {
	Dst, Src string
}

// SUB - Dst = Dst - Src
type SUB struct {
	Dst, Src string
}

// MUL - Dst = Dst * Src
type MUL struct {
	Dst, Src string
}

// DIV - Dst = Dst / Src
type DIV struct {
	Dst, Src string
}

func (MOV) implInstruction() {}
func (ADD) implInstruction() {}
func (SUB) implInstruction() {}
func (MUL) implInstruction() {}
func (DIV) implInstruction() {}
