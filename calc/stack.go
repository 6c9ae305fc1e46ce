package calc

import (
	"github.com/rogpeppe/rpn/num"
)

// Stack holds the calculator's stack of numbers.
// Reading below the bottom of the stack yields zero.
type Stack struct {
	// items holds the stack with the top (x) last.
	items []num.Number
}

// NewStack returns a stack holding the given
// numbers, top first.
func NewStack(top ...num.Number) *Stack {
	s := &Stack{}
	s.SetItems(top)
	return s
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Push pushes n onto the top of the stack.
func (s *Stack) Push(n num.Number) {
	s.items = append(s.items, n)
}

// Pop removes and returns the top of the stack.
// It returns zero if the stack is empty.
func (s *Stack) Pop() num.Number {
	if len(s.items) == 0 {
		return num.Zero
	}
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n
}

// Peek returns the value at depth i, where x is at depth 0.
func (s *Stack) Peek(i int) num.Number {
	if i < 0 || i >= len(s.items) {
		return num.Zero
	}
	return s.items[len(s.items)-1-i]
}

// Set sets the value at depth i, growing the stack
// with zeros if needed.
func (s *Stack) Set(i int, n num.Number) {
	s.Pad(i + 1)
	s.items[len(s.items)-1-i] = n
}

// Pad adds zeros to the bottom of the stack
// until it holds at least n values.
func (s *Stack) Pad(n int) {
	if len(s.items) >= n {
		return
	}
	items := make([]num.Number, n-len(s.items), n)
	s.items = append(items, s.items...)
}

// Items returns a copy of the stack, top first.
func (s *Stack) Items() []num.Number {
	top := make([]num.Number, len(s.items))
	for i := range top {
		top[i] = s.items[len(s.items)-1-i]
	}
	return top
}

// SetItems replaces the contents of the stack
// with the given values, top first.
func (s *Stack) SetItems(top []num.Number) {
	s.items = make([]num.Number, len(top))
	for i, n := range top {
		s.items[len(top)-1-i] = n
	}
}

// Clear leaves the stack holding four zeros.
func (s *Stack) Clear() {
	s.items = make([]num.Number, 4)
}

// Drop removes the top of the stack.
func (s *Stack) Drop() {
	s.Pop()
}

// Dup pushes a copy of the top of the stack.
func (s *Stack) Dup() {
	s.Push(s.Peek(0))
}

// Swap exchanges x and y.
func (s *Stack) Swap() {
	s.Pad(2)
	n := len(s.items)
	s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
}

// RollUp moves x to y, y to z and z to t.
// The old t becomes x.
func (s *Stack) RollUp() {
	s.rotate(func(x, y, z, t num.Number) (num.Number, num.Number, num.Number, num.Number) {
		return t, x, y, z
	})
}

// RollDown moves t to z, z to y and y to x.
// The old x becomes t.
func (s *Stack) RollDown() {
	s.rotate(func(x, y, z, t num.Number) (num.Number, num.Number, num.Number, num.Number) {
		return y, z, t, x
	})
}

func (s *Stack) rotate(f func(x, y, z, t num.Number) (num.Number, num.Number, num.Number, num.Number)) {
	s.Pad(4)
	x, y, z, t := f(s.Peek(0), s.Peek(1), s.Peek(2), s.Peek(3))
	s.Set(0, x)
	s.Set(1, y)
	s.Set(2, z)
	s.Set(3, t)
}

// Trim removes everything below t.
func (s *Stack) Trim() {
	if len(s.items) > 4 {
		s.items = append([]num.Number(nil), s.items[len(s.items)-4:]...)
	}
}
