// Package tacgen transforms reduced expressions to three-address code.
package tacgen

import (
	"github.com/raymyers/tacc/pkg/lower"
	"github.com/raymyers/tacc/pkg/tac"
)

// DefaultPrefix names temporaries t1, t2, ...
const DefaultPrefix = "t"

// Translate lowers one assignment to TAC: one Binop per operation and a
// final Copy into target.
func Translate(target string, red *lower.Reduction) []tac.Instr {
	code := make([]tac.Instr, 0, len(red.Ops)+1)
	for _, op := range red.Ops {
		code = append(code, tac.Binop{
			Dest:  op.Result.String(),
			Left:  op.Left.String(),
			Op:    op.Op.String(),
			Right: op.Right.String(),
		})
	}
	return append(code, tac.Copy{Dest: target, Src: red.Final()})
}

// Backend renders reductions as TAC lines.
type Backend struct {
	prefix string
}

// NewBackend creates a TAC backend whose temporaries use prefix.
func NewBackend(prefix string) *Backend {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Backend{prefix: prefix}
}

func (b *Backend) Name() string       { return "tac" }
func (b *Backend) SlotPrefix() string { return b.prefix }

func (b *Backend) Render(target string, red *lower.Reduction) ([]string, error) {
	code := Translate(target, red)
	lines := make([]string, len(code))
	for i, in := range code {
		lines[i] = tac.Format(in)
	}
	return lines, nil
}
