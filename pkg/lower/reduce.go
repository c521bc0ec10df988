package lower

import "strings"

// Reduction is the result of lowering one expression.
type Reduction struct {
	Ops []Operation
	// Value is what remains after every operator has been reduced. It holds
	// a single operand unless the expression contained parentheses, which
	// are carried along as plain operands.
	Value []Operand
}

// Final returns the value as it is rendered on the terminal line.
func (r *Reduction) Final() string {
	parts := make([]string, len(r.Value))
	for i, v := range r.Value {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Single reports whether the value collapsed to exactly one operand.
func (r *Reduction) Single() bool {
	return len(r.Value) == 1
}

// element is one entry of the working sequence: an operator or an operand.
type element struct {
	op      Op
	operand Operand
}

func (e element) isOp() bool { return e.op != 0 }

// Reduce collapses tokens into operations, tier by tier. Within a tier the
// leftmost operator is reduced first, its neighbours are replaced by a fresh
// slot and the scan starts over from the beginning of the sequence.
//
// The shape of the expression is checked before any slot is allocated, so a
// rejected expression leaves alloc untouched.
func Reduce(expr string, tokens []Token, alloc *SlotAllocator) (*Reduction, error) {
	if err := CheckShape(expr, tokens); err != nil {
		return nil, err
	}

	seq := make([]element, len(tokens))
	for i, tok := range tokens {
		if tok.Kind == Operator {
			seq[i] = element{op: tok.Op()}
		} else {
			seq[i] = element{operand: TokenOperand(tok)}
		}
	}

	red := &Reduction{}
	for _, tier := range tiers {
		i := 0
		for i < len(seq) {
			if !seq[i].isOp() || !inTier(seq[i].op, tier) {
				i++
				continue
			}
			slot := alloc.Fresh()
			red.Ops = append(red.Ops, Operation{
				Result: slot,
				Left:   seq[i-1].operand,
				Op:     seq[i].op,
				Right:  seq[i+1].operand,
			})
			spliced := make([]element, 0, len(seq)-2)
			spliced = append(spliced, seq[:i-1]...)
			spliced = append(spliced, element{operand: SlotOperand(slot)})
			spliced = append(spliced, seq[i+2:]...)
			seq = spliced
			i = 0
		}
	}

	red.Value = make([]Operand, len(seq))
	for i, e := range seq {
		red.Value[i] = e.operand
	}
	return red, nil
}

// CheckShape rejects sequences in which some operator would have no operand
// on one of its sides. Splicing never moves an operator next to another
// operator or to either end, so checking once up front is enough.
func CheckShape(expr string, tokens []Token) error {
	if len(tokens) == 0 {
		return &ExprError{Expr: expr, Pos: -1, Reason: "empty expression"}
	}
	for i, tok := range tokens {
		if tok.Kind != Operator {
			continue
		}
		if i == 0 || tokens[i-1].Kind == Operator {
			return &ExprError{Expr: expr, Pos: tok.Pos, Reason: "operator '" + tok.Text + "' has no left operand"}
		}
		if i == len(tokens)-1 || tokens[i+1].Kind == Operator {
			return &ExprError{Expr: expr, Pos: tok.Pos, Reason: "operator '" + tok.Text + "' has no right operand"}
		}
	}
	return nil
}

// Lower tokenizes and reduces expr in one step.
func Lower(expr string, alloc *SlotAllocator) (*Reduction, error) {
	toks, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return Reduce(expr, toks, alloc)
}
