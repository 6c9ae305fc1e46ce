package calc

import (
	"fmt"

	"fortio.org/log"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/num"
	"github.com/rogpeppe/rpn/token"
)

// Evaluate evaluates the tokens against the stack. An error from
// one token is reported to the UI and evaluation continues with
// the next; all such errors are returned together as Errors.
//
// Parentheses only group tokens visually: the tokens inside
// a group are evaluated against the same stack as any other.
// The symbol q stops evaluation of the remaining tokens.
// The symbol h takes the following token as the name
// to give help for.
func (c *Calc) Evaluate(toks []token.Token) error {
	if log.LogDebug() {
		log.Debugf("evaluating %s", spew.Sdump(toks))
	}
	var errs Errors
	depth := 0
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Kind {
		case token.Number:
			c.Stack.Push(tok.Num)
			continue
		case token.GroupOpen:
			depth++
			log.LogVf("group %d opened", depth)
			continue
		case token.GroupClose:
			log.LogVf("group %d closed", depth)
			depth--
			continue
		}
		c.History.Record(c.Stack.Peek(0))
		var err error
		switch tok.Text {
		case "q":
			log.LogVf("q: skipping %d tokens", len(toks)-i-1)
			return errs.err()
		case "h":
			name := ""
			if i+1 < len(toks) {
				i++
				name = toks[i].Text
			}
			err = c.help(name)
		default:
			err = c.apply(tok.Text)
		}
		if err != nil {
			c.ui.Notify(err.Error())
			errs = append(errs, err)
		}
	}
	return errs.err()
}

func (errs Errors) err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// apply applies the named operator to the stack.
// The stack is unchanged if it returns an error.
func (c *Calc) apply(name string) error {
	op, ok := c.reg.Lookup(name)
	if !ok {
		return c.unknown(name)
	}
	log.LogVf("apply %s operator %q", op.Kind, op.Name)
	switch op.Kind {
	case Unary:
		r, err := op.unary(c.Stack.Peek(0))
		if err != nil {
			return userError(err)
		}
		c.Stack.Set(0, r)
	case Binary:
		r, err := op.binary(c.Stack.Peek(1), c.Stack.Peek(0))
		if err != nil {
			return userError(err)
		}
		c.Stack.Pop()
		c.Stack.Pop()
		c.Stack.Push(r)
	case Constant:
		c.Stack.Push(op.value)
	case Command, Memory:
		if err := op.command(c); err != nil {
			return userError(err)
		}
	default:
		panic(fmt.Errorf("unexpected operator kind %v", op.Kind))
	}
	return nil
}

func (c *Calc) unknown(name string) error {
	if _, ok := c.Macros.Lookup(name); ok {
		return errors.Becausef(nil, ErrUnknownSymbol, "%s is a user-defined operation and must be on a line by itself.", name)
	}
	msg := fmt.Sprintf("Unknown command %q.", name)
	if hint := c.reg.Hint(name); hint != "" {
		msg += "\n" + hint
	}
	return errors.Becausef(nil, ErrUnknownSymbol, "%s", msg)
}

// userError converts errors from the num package into
// errors fit to show the user. Other errors are
// returned unchanged.
func userError(err error) error {
	switch errors.Cause(err) {
	case num.ErrDivisionByZero, num.ErrUndefined:
		return mathError(err)
	}
	return err
}
