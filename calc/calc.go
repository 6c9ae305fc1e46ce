// Package calc implements an RPN calculator: the stack,
// the operators and the evaluation of input lines.
//
// A line is first checked for balanced parentheses. If the whole
// line is a phrase such as "grams to ounces" or the name of a
// user-defined operation, it is replaced by what that stands for.
// The line is then split into tokens, which are evaluated in
// turn against the stack. An error from one token is reported
// and evaluation carries on with the next.
package calc

import (
	"io/ioutil"
	"math/rand"
	"strings"
	"time"

	"fortio.org/log"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/display"
	"github.com/rogpeppe/rpn/macro"
	"github.com/rogpeppe/rpn/memreg"
	"github.com/rogpeppe/rpn/num"
	"github.com/rogpeppe/rpn/store"
	"github.com/rogpeppe/rpn/token"
)

// UI is the calculator's view of the user.
type UI interface {
	// Notify reports an error.
	Notify(msg string)
	// Print shows some output.
	Print(text string)
	// Prompt asks a question and returns the answer.
	Prompt(question string) (string, error)
}

// Config holds the parameters for New.
// All fields are optional.
type Config struct {
	// UI receives output. If it is nil, output is discarded
	// and prompts are answered with the empty string.
	UI UI
	// Store holds the persistent state. If it is nil,
	// nothing persists beyond the life of the Calc.
	Store store.Store
	// Registry holds the operators. If it is nil,
	// NewRegistry is used.
	Registry *Registry
	// Rand is used by the rand operator.
	Rand *rand.Rand
}

// Calc is a calculator session.
type Calc struct {
	Stack    *Stack
	History  History
	Memory   *memreg.Registers
	Macros   *macro.Table
	Settings display.Settings

	ui    UI
	store store.Store
	reg   *Registry
	lexer *token.Lexer
	rand  *rand.Rand
	tape  []string
}

// New returns a new calculator, loading its settings, memory
// registers and user-defined operations from cfg.Store.
// Stored data that cannot be read is logged and ignored.
func New(cfg Config) (*Calc, error) {
	c := &Calc{
		Stack:    NewStack(num.Zero),
		Memory:   memreg.New(),
		Settings: display.DefaultSettings,
		ui:       cfg.UI,
		store:    cfg.Store,
		reg:      cfg.Registry,
		rand:     cfg.Rand,
	}
	if c.ui == nil {
		c.ui = display.NewPlain(ioutil.Discard, nil)
	}
	if c.store == nil {
		c.store = store.NewMem()
	}
	if c.reg == nil {
		c.reg = NewRegistry()
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.lexer = token.NewLexer(c.reg.OpChars())
	c.Macros = macro.NewTable(c.reg.Reserved)
	if err := c.load(); err != nil {
		return nil, errors.Note(err, errors.Any, "")
	}
	return c, nil
}

func (c *Calc) load() error {
	m, err := c.store.Load(store.Settings)
	if err != nil {
		return errors.Notef(err, errors.Any, "cannot load settings")
	}
	if c.Settings, err = display.ParseSettings(m); err != nil {
		log.Warnf("ignoring bad settings: %v", err)
		c.Settings = display.DefaultSettings
	}
	m, err = c.store.Load(store.MemoryRegisters)
	if err != nil {
		return errors.Notef(err, errors.Any, "cannot load memory registers")
	}
	if regs, err := memreg.FromMap(m); err != nil {
		log.Warnf("ignoring bad memory registers: %v", err)
	} else {
		c.Memory = regs
	}
	m, err = c.store.Load(store.UserMacros)
	if err != nil {
		return errors.Notef(err, errors.Any, "cannot load user-defined operations")
	}
	if err := c.Macros.Load(m); err != nil {
		log.Warnf("ignoring bad user-defined operations: %v", err)
	}
	log.LogVf("loaded %d memory registers, %d user-defined operations", c.Memory.Len(), c.Macros.Len())
	return nil
}

// save saves m to the store under the given name.
func (c *Calc) save(name string, m map[string]string) error {
	if err := c.store.Save(name, m); err != nil {
		log.Warnf("cannot save %s: %v", name, err)
		return errors.Becausef(err, ErrRegistry, "cannot save %s", name)
	}
	return nil
}

// Registry returns the operators known to the calculator.
func (c *Calc) Registry() *Registry {
	return c.reg
}

// Tape returns the lines entered so far.
func (c *Calc) Tape() []string {
	return append([]string(nil), c.tape...)
}

// Exec evaluates a line of input. Errors are reported to the UI
// as they happen; the returned error is for the caller's
// information. Exec returns ErrQuit if the line asks to quit.
func (c *Calc) Exec(line string) error {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return ErrQuit
	}
	if !token.Balanced(line) {
		return c.report(errors.Becausef(nil, ErrSyntax, "Parentheses are not balanced."))
	}
	if line == "" {
		c.Stack.Dup()
		return nil
	}
	c.tape = append(c.tape, line)
	if name, ok := c.reg.Phrase(line); ok {
		log.LogVf("phrase %q stands for %q", line, name)
		line = name
	}
	if m, ok := c.Macros.Lookup(line); ok {
		log.LogVf("expanding %q to %q", line, m.Expansion)
		line = m.Expansion
		if !token.Balanced(line) {
			return c.report(errors.Becausef(nil, ErrSyntax, "Parentheses are not balanced in %s.", m.Name))
		}
	}
	switch {
	case strings.HasPrefix(line, "#"):
		return c.report(c.pushColor(line))
	case strings.HasPrefix(line, "0x"), strings.HasPrefix(line, "0b"):
		return c.report(c.pushInt(line))
	}
	toks, consumed := c.lexer.Tokenize(line, c.Stack.Items())
	for _, i := range consumed {
		if i < c.Stack.Len() {
			c.Stack.Set(i, num.Zero)
		}
	}
	return c.Evaluate(toks)
}

// report notifies the UI of err, if any, and returns it.
func (c *Calc) report(err error) error {
	if err != nil {
		c.ui.Notify(err.Error())
	}
	return err
}
