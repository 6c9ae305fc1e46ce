package calc

import "github.com/rogpeppe/rpn/num"

// History remembers the value of x at the start
// of each of the two most recent operations.
type History struct {
	prev, cur num.Number
}

// Record records x as the value of the x register
// at the start of an operation.
func (h *History) Record(x num.Number) {
	h.prev, h.cur = h.cur, x
}

// LastX returns the value recorded before the most recent one.
// When called from an operator, that is the value x held at the
// start of the previous operation.
func (h *History) LastX() num.Number {
	return h.prev
}
