// Package tac defines the three-address code listing.
// Every instruction has at most one operator and assigns one name.
package tac

// Program is an ordered list of TAC instructions.
type Program struct {
	Code []Instr
}

// Instr is the interface for TAC instructions
type Instr interface {
	implInstr()
}

// Binop - Dest = Left Op Right
type Binop struct {
	Dest  string
	Left  string
	Op    string
	Right string
}

// Copy - Dest = Src
type Copy struct {
	Dest string
	Src  string
}

func (Binop) implInstr() {}
func (Copy) implInstr()  {}
