package qbe

import (
	"errors"
	"fmt"

	"github.com/raymyers/tacc/pkg/lower"
	"github.com/raymyers/tacc/pkg/symtab"
)

// DefaultPrefix names temporaries %.t1, %.t2, ... The dot keeps them apart
// from source identifiers, which become %name.
const DefaultPrefix = "%.t"

// ErrUnsupported is returned for expressions QBE cannot express: anything
// whose operands and operators do not strictly alternate, parentheses
// included.
var ErrUnsupported = errors.New("not expressible in QBE")

// ErrCompile wraps failures of the QBE compiler itself.
var ErrCompile = errors.New("qbe compilation failed")

var opcodes = map[lower.Op]string{
	lower.Add: "add",
	lower.Sub: "sub",
	lower.Mul: "mul",
	lower.Div: "div",
}

// Backend renders reductions as QBE instructions and remembers which source
// identifiers were read, so that Function can give them initial values.
type Backend struct {
	prefix string
	idents []string
	seen   map[string]bool
	last   string
}

// NewBackend creates a QBE backend whose temporaries use prefix.
func NewBackend(prefix string) *Backend {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Backend{prefix: prefix, seen: make(map[string]bool)}
}

func (b *Backend) Name() string       { return "qbe" }
func (b *Backend) SlotPrefix() string { return b.prefix }

// Check rejects token sequences that would not reduce to a single value.
// It runs before any slot is allocated.
func (b *Backend) Check(tokens []lower.Token) error {
	wantOperand := true
	for _, tok := range tokens {
		switch tok.Kind {
		case lower.LParen, lower.RParen:
			return fmt.Errorf("%w: parenthesis at position %d", ErrUnsupported, tok.Pos)
		case lower.Operator:
			if wantOperand {
				return fmt.Errorf("%w: operator %q at position %d", ErrUnsupported, tok.Text, tok.Pos)
			}
		default:
			if !wantOperand {
				return fmt.Errorf("%w: operand %q at position %d follows an operand", ErrUnsupported, tok.Text, tok.Pos)
			}
		}
		wantOperand = !wantOperand
	}
	return nil
}

// Render returns the instructions for one assignment.
func (b *Backend) Render(target string, red *lower.Reduction) ([]string, error) {
	if !red.Single() {
		return nil, fmt.Errorf("%w: value %q", ErrUnsupported, red.Final())
	}

	lines := make([]string, 0, len(red.Ops)+1)
	for _, op := range red.Ops {
		in := Instr{
			Dest: op.Result.String(),
			Op:   opcodes[op.Op],
			Args: []string{b.operand(op.Left), b.operand(op.Right)},
		}
		lines = append(lines, in.String())
	}
	dest := "%" + target
	lines = append(lines, Instr{Dest: dest, Op: "copy", Args: []string{b.operand(red.Value[0])}}.String())
	b.last = dest
	return lines, nil
}

func (b *Backend) operand(o lower.Operand) string {
	if o.IsSlot() {
		return o.Slot.String()
	}
	if o.Token.Kind == lower.IntLit {
		return o.Token.Text
	}
	if !b.seen[o.Token.Text] {
		b.seen[o.Token.Text] = true
		b.idents = append(b.idents, o.Token.Text)
	}
	return "%" + o.Token.Text
}

// Idents returns the source identifiers read so far, in first-use order.
func (b *Backend) Idents() []string {
	return append([]string(nil), b.idents...)
}

// Function wraps body, the lines rendered so far, into an exported $main.
// Every identifier that was read is first copied from its integer
// initializer in symbols, or from 0. The last assigned target is returned.
func (b *Backend) Function(symbols symtab.Table, body []string) *Function {
	fn := &Function{Name: "main", Export: true, Ret: b.last}
	for _, name := range b.idents {
		init := "0"
		if sym, ok := symbols.Lookup(name); ok {
			if v, ok := sym.Int(); ok {
				init = fmt.Sprint(v)
			}
		}
		fn.Body = append(fn.Body, Instr{Dest: "%" + name, Op: "copy", Args: []string{init}}.String())
	}
	fn.Body = append(fn.Body, body...)
	return fn
}

// Reset forgets the identifiers and target seen so far.
func (b *Backend) Reset() {
	b.idents = nil
	b.seen = make(map[string]bool)
	b.last = ""
}
