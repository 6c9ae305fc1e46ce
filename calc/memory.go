package calc

import (
	"fmt"
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/memreg"
	"github.com/rogpeppe/rpn/num"
	"github.com/rogpeppe/rpn/store"
)

// registerID returns the register number held in n.
func registerID(n num.Number) (int64, error) {
	id, ok := n.Int64()
	if !ok || !n.IsInt() || id <= 0 {
		return 0, errors.Becausef(nil, ErrRegistry, "Register numbers are positive integers, only.")
	}
	return id, nil
}

func memAdd(c *Calc) error {
	return c.memUpdate("M+", c.Memory.Add)
}

func memSub(c *Calc) error {
	return c.memUpdate("M-", c.Memory.Sub)
}

// memUpdate applies f to the register in y with the value in x,
// popping both.
func (c *Calc) memUpdate(name string, f func(id int64, v num.Number) error) error {
	if c.Stack.Len() < 2 {
		return errors.Becausef(nil, ErrStackUnderflow, "%s needs a value in x: and a register number in y:.\nExample: 1 453 %s", name, name)
	}
	id, err := registerID(c.Stack.Peek(1))
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	if err := f(id, c.Stack.Peek(0)); err != nil {
		return errors.Note(err, errors.Any, "")
	}
	c.Stack.Pop()
	c.Stack.Pop()
	return c.saveMemory()
}

func memRecall(c *Calc) error {
	if c.Stack.Len() < 1 {
		return errors.Becausef(nil, ErrStackUnderflow, "MR needs a register number in x:.")
	}
	id, err := registerID(c.Stack.Peek(0))
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	v, err := c.Memory.Recall(id)
	if err != nil {
		return notFound(id)
	}
	c.Stack.Set(0, v)
	return nil
}

func notFound(id int64) error {
	return errors.Becausef(nil, ErrRegistry, "Memory register %d does not exist. Use ML to list registers.", id)
}

func memList(c *Calc) error {
	entries := c.Memory.List()
	if len(entries) == 0 {
		c.ui.Print(boxed("MEMORY REGISTERS", "No memory registers exist at this time.\nFor help creating them, enter: h M+ or h M-"))
		return nil
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "Register %d: %s\n", e.ID, c.Settings.Format(e.Value))
	}
	c.ui.Print(boxed("MEMORY REGISTERS", b.String()))
	return nil
}

// memDelete deletes the register in x or, when y is non-zero,
// all the registers between x and y. Signs and fractional
// parts are ignored. It asks for confirmation first.
func memDelete(c *Calc) error {
	lo, ok1 := c.Stack.Peek(0).Abs().Trunc().Int64()
	hi, ok2 := c.Stack.Peek(1).Abs().Trunc().Int64()
	if !ok1 || !ok2 {
		return errors.Becausef(nil, ErrRegistry, "Register numbers are positive integers, only.")
	}
	if lo > hi && hi != 0 {
		lo, hi = hi, lo
	}
	if hi == 0 {
		if lo == 0 {
			return errors.Becausef(nil, ErrRegistry, "Register numbers are positive integers, only.")
		}
		if !c.confirm(fmt.Sprintf("Are you sure you want to delete register %d? (Y/N) ", lo)) {
			return nil
		}
		if err := c.Memory.Delete(lo); err != nil {
			if errors.Cause(err) == memreg.ErrNotFound {
				return notFound(lo)
			}
			return errors.Note(err, errors.Any, "")
		}
		c.ui.Print(fmt.Sprintf("Register %d was deleted.", lo))
		return c.saveMemory()
	}
	if !c.confirm(fmt.Sprintf("Are you sure you want to delete all registers between register %d and register %d, inclusive? (Y/N) ", lo, hi)) {
		return nil
	}
	rep := c.Memory.DeleteRange(lo, hi)
	c.ui.Print(rep.String())
	if len(rep.Deleted) == 0 {
		return nil
	}
	return c.saveMemory()
}

func (c *Calc) saveMemory() error {
	return c.save(store.MemoryRegisters, c.Memory.Map())
}

// confirm asks a yes/no question, treating anything
// other than an answer starting with y as no.
func (c *Calc) confirm(question string) bool {
	ans, err := c.ui.Prompt(question)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ans)), "y")
}
