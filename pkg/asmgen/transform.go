// Package asmgen transforms reduced expressions to pseudo-assembly.
// Each operation loads its left operand into the result register and then
// applies the operator with the right operand.
package asmgen

import (
	"github.com/raymyers/tacc/pkg/asm"
	"github.com/raymyers/tacc/pkg/lower"
)

// DefaultPrefix names registers R1, R2, ...
const DefaultPrefix = "R"

// Translate lowers one assignment: the operations of red followed by the
// final move into target.
func Translate(target string, red *lower.Reduction) []asm.Instruction {
	code := make([]asm.Instruction, 0, 2*len(red.Ops)+1)
	for _, op := range red.Ops {
		code = append(code, translateOperation(op)...)
	}
	code = append(code, asm.MOV{Dst: target, Src: red.Final()})
	return code
}

func translateOperation(op lower.Operation) []asm.Instruction {
	dst := op.Result.String()
	src := op.Right.String()
	load := asm.MOV{Dst: dst, Src: op.Left.String()}

	switch op.Op {
	case lower.Add:
		return []asm.Instruction{load, asm.ADD{Dst: dst, Src: src}}
	case lower.Sub:
		return []asm.Instruction{load, asm.SUB{Dst: dst, Src: src}}
	case lower.Mul:
		return []asm.Instruction{load, asm.MUL{Dst: dst, Src: src}}
	case lower.Div:
		return []asm.Instruction{load, asm.DIV{Dst: dst, Src: src}}
	default:
		return []asm.Instruction{load}
	}
}

// Backend renders reductions as assembly lines.
type Backend struct {
	prefix string
}

// NewBackend creates an assembly backend whose registers use prefix.
func NewBackend(prefix string) *Backend {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Backend{prefix: prefix}
}

func (b *Backend) Name() string       { return "asm" }
func (b *Backend) SlotPrefix() string { return b.prefix }

// Render returns the printed instructions for one assignment.
func (b *Backend) Render(target string, red *lower.Reduction) ([]string, error) {
	code := Translate(target, red)
	lines := make([]string, len(code))
	for i, inst := range code {
		lines[i] = asm.Format(inst)
	}
	return lines, nil
}
