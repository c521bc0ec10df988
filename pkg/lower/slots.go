// Slot allocation for the reducer.
// Every backend owns one allocator so TAC temporaries and assembly
// registers are numbered independently.

package lower

// SlotAllocator hands out fresh slots with a fixed prefix.
// Numbering starts at 1 and only ever increases until Reset.
type SlotAllocator struct {
	prefix string
	next   int // next index to hand out
}

// NewSlotAllocator creates an allocator producing prefix1, prefix2, ...
func NewSlotAllocator(prefix string) *SlotAllocator {
	return &SlotAllocator{prefix: prefix, next: 1}
}

// Prefix returns the name prefix of allocated slots.
func (a *SlotAllocator) Prefix() string {
	return a.prefix
}

// Fresh allocates a fresh slot.
func (a *SlotAllocator) Fresh() Slot {
	s := Slot{Prefix: a.prefix, Index: a.next}
	a.next++
	return s
}

// Peek returns the slot the next call to Fresh will return.
func (a *SlotAllocator) Peek() Slot {
	return Slot{Prefix: a.prefix, Index: a.next}
}

// Allocated returns how many slots have been handed out.
func (a *SlotAllocator) Allocated() int {
	return a.next - 1
}

// Reset restarts numbering at 1.
func (a *SlotAllocator) Reset() {
	a.next = 1
}
