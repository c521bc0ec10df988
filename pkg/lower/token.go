// Package lower turns the right-hand side of an arithmetic assignment into a
// flat sequence of binary operations whose results live in numbered slots.
// Backends (TAC, pseudo-assembly, QBE) render the operations; this package
// knows nothing about their text formats.
package lower

import "fmt"

// Kind classifies an expression token.
type Kind int

const (
	Ident    Kind = iota // a, total_2
	IntLit               // 42
	Operator             // + - * /
	LParen               // (
	RParen               // )
)

var kindNames = map[Kind]string{
	Ident:    "IDENT",
	IntLit:   "INT",
	Operator: "OP",
	LParen:   "(",
	RParen:   ")",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one lexeme of an expression.
type Token struct {
	Kind Kind
	Text string
	Pos  int // rune offset in the expression
}

func (t Token) String() string {
	return t.Text
}

// Op returns the operator carried by an Operator token.
func (t Token) Op() Op {
	if t.Kind != Operator || len(t.Text) != 1 {
		return 0
	}
	return Op(t.Text[0])
}

// Op is a binary arithmetic operator.
type Op byte

const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

func (o Op) String() string {
	return string(rune(o))
}

// Tier returns the precedence group of the operator: 1 is resolved before 2.
func (o Op) Tier() int {
	switch o {
	case Mul, Div:
		return 1
	case Add, Sub:
		return 2
	default:
		return 0
	}
}

// tiers lists the operator groups in the order they are reduced.
var tiers = [][]Op{
	{Mul, Div},
	{Add, Sub},
}

func inTier(op Op, tier []Op) bool {
	for _, o := range tier {
		if o == op {
			return true
		}
	}
	return false
}

// Slot names an intermediate value: a TAC temporary (t1) or a register (R1).
type Slot struct {
	Prefix string
	Index  int
}

func (s Slot) String() string {
	return fmt.Sprintf("%s%d", s.Prefix, s.Index)
}

// IsZero reports whether s was never allocated.
func (s Slot) IsZero() bool {
	return s.Index == 0
}

// Operand is either a token taken from the source expression or a Slot
// produced by an earlier operation.
type Operand struct {
	Token Token
	Slot  Slot
}

// SlotOperand wraps a slot as an operand.
func SlotOperand(s Slot) Operand {
	return Operand{Slot: s}
}

// TokenOperand wraps a source token as an operand.
func TokenOperand(t Token) Operand {
	return Operand{Token: t}
}

// IsSlot reports whether the operand refers to a computed slot.
func (o Operand) IsSlot() bool {
	return !o.Slot.IsZero()
}

func (o Operand) String() string {
	if o.IsSlot() {
		return o.Slot.String()
	}
	return o.Token.Text
}

// Operation is one binary step: Result = Left Op Right.
type Operation struct {
	Result Slot
	Left   Operand
	Op     Op
	Right  Operand
}

func (o Operation) String() string {
	return fmt.Sprintf("%s = %s %s %s", o.Result, o.Left, o.Op, o.Right)
}
