// Package memreg implements the calculator's memory registers:
// a sparse set of values indexed by positive integer.
package memreg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/btree"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/num"
)

var (
	ErrNotFound  = errors.New("memory register does not exist")
	ErrInvalidID = errors.New("register numbers are positive integers only")
)

type register struct {
	id  int64
	val num.Number
}

func (r register) Less(than btree.Item) bool {
	return r.id < than.(register).id
}

// Registers holds a set of memory registers.
// The zero value is not usable; use New.
type Registers struct {
	t *btree.BTree
}

// Entry holds a register and its value.
type Entry struct {
	ID    int64
	Value num.Number
}

// New returns an empty set of registers.
func New() *Registers {
	return &Registers{
		t: btree.New(4),
	}
}

func checkID(id int64) error {
	if id <= 0 {
		return errors.Becausef(nil, ErrInvalidID, "invalid register %d", id)
	}
	return nil
}

// Add adds v to register id, creating the register
// if it does not already exist.
func (r *Registers) Add(id int64, v num.Number) error {
	return r.update(id, v, num.Add)
}

// Sub subtracts v from register id. As with Add, a register
// that does not exist is created, holding v itself.
func (r *Registers) Sub(id int64, v num.Number) error {
	return r.update(id, v, num.Sub)
}

func (r *Registers) update(id int64, v num.Number, f func(x, y num.Number) (num.Number, error)) error {
	if err := checkID(id); err != nil {
		return errors.Note(err, errors.Is(ErrInvalidID), "")
	}
	item := r.t.Get(register{id: id})
	if item == nil {
		r.t.ReplaceOrInsert(register{id: id, val: v})
		return nil
	}
	nv, err := f(item.(register).val, v)
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	r.t.ReplaceOrInsert(register{id: id, val: nv})
	return nil
}

// Recall returns the value of register id.
func (r *Registers) Recall(id int64) (num.Number, error) {
	if err := checkID(id); err != nil {
		return num.Number{}, errors.Note(err, errors.Is(ErrInvalidID), "")
	}
	item := r.t.Get(register{id: id})
	if item == nil {
		return num.Number{}, errors.Becausef(nil, ErrNotFound, "memory register %d does not exist", id)
	}
	return item.(register).val, nil
}

// Delete removes register id.
func (r *Registers) Delete(id int64) error {
	if r.t.Delete(register{id: id}) == nil {
		return errors.Becausef(nil, ErrNotFound, "memory register %d does not exist", id)
	}
	return nil
}

// Report describes the result of DeleteRange.
type Report struct {
	Lo, Hi int64
	// Deleted holds the registers that were deleted, in order.
	Deleted []int64
	// Stopped reports whether deletion stopped early
	// at a register that does not exist.
	Stopped bool
	// Missing holds the register that stopped the deletion.
	Missing int64
}

func (rep Report) String() string {
	if !rep.Stopped {
		return fmt.Sprintf("Registers %d to %d were deleted.", rep.Lo, rep.Hi)
	}
	if len(rep.Deleted) == 0 {
		return "No registers were deleted. Use ML to inspect a list of the memory registers."
	}
	ids := make([]string, len(rep.Deleted))
	for i, id := range rep.Deleted {
		ids[i] = strconv.FormatInt(id, 10)
	}
	what := "Registers " + strings.Join(ids, ", ") + " were deleted."
	if len(ids) == 1 {
		what = "Register " + ids[0] + " was deleted."
	}
	return fmt.Sprintf("%s\nOne or more memory registers between %d and %d do not exist.\nUse ML to inspect a list of the memory registers.", what, rep.Lo, rep.Hi)
}

// DeleteRange deletes the registers from lo to hi inclusive.
// The bounds may be given in either order. Deletion stops at
// the first register in the range that does not exist, so
// a mistyped upper bound cannot remove more than the run
// of registers that starts at the lower bound.
func (r *Registers) DeleteRange(lo, hi int64) Report {
	if lo > hi {
		lo, hi = hi, lo
	}
	rep := Report{Lo: lo, Hi: hi}
	for id := lo; ; id++ {
		if r.t.Delete(register{id: id}) == nil {
			rep.Stopped, rep.Missing = true, id
			break
		}
		rep.Deleted = append(rep.Deleted, id)
		if id == hi {
			break
		}
	}
	return rep
}

// List returns all the registers in ascending order of id.
func (r *Registers) List() []Entry {
	entries := make([]Entry, 0, r.t.Len())
	r.t.Ascend(func(item btree.Item) bool {
		reg := item.(register)
		entries = append(entries, Entry{ID: reg.id, Value: reg.val})
		return true
	})
	return entries
}

// Len returns the number of registers.
func (r *Registers) Len() int {
	return r.t.Len()
}

// Map returns the registers encoded as a map from
// decimal register number to decimal value, suitable
// for saving in a store.
func (r *Registers) Map() map[string]string {
	m := make(map[string]string)
	r.t.Ascend(func(item btree.Item) bool {
		reg := item.(register)
		m[strconv.FormatInt(reg.id, 10)] = reg.val.String()
		return true
	})
	return m
}

// FromMap returns the registers encoded in m by Map.
func FromMap(m map[string]string) (*Registers, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := New()
	for _, k := range keys {
		id, err := parseID(k)
		if err != nil {
			return nil, errors.Note(err, errors.Is(ErrInvalidID), "")
		}
		v, err := num.Parse(m[k])
		if err != nil {
			return nil, errors.Notef(err, errors.Any, "bad value for register %d", id)
		}
		r.t.ReplaceOrInsert(register{id: id, val: v})
	}
	return r, nil
}

// parseID parses a register number. Saved register numbers
// may carry a zero fractional part, so "3.0" is accepted as 3.
func parseID(s string) (int64, error) {
	n, err := num.Parse(s)
	if err != nil {
		return 0, errors.Becausef(nil, ErrInvalidID, "invalid register %q", s)
	}
	id, ok := n.Int64()
	if !ok || id <= 0 {
		return 0, errors.Becausef(nil, ErrInvalidID, "invalid register %q", s)
	}
	return id, nil
}
