package main

import (
	"bytes"
	"strings"

	"9fans.net/go/acme"
	"fortio.org/log"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/calc"
	"github.com/rogpeppe/rpn/store"
)

var errNoPrompt = errors.New("cannot ask questions in acme")

// acmeBuiltins holds the acme commands that are passed
// back to acme rather than evaluated.
var acmeBuiltins = map[string]bool{
	"Del":    true,
	"Delete": true,
	"Dump":   true,
	"Edit":   true,
	"Font":   true,
	"Get":    true,
	"ID":     true,
	"Incl":   true,
	"Indent": true,
	"Kill":   true,
	"Load":   true,
	"Look":   true,
	"New":    true,
	"Put":    true,
	"Redo":   true,
	"Snarf":  true,
	"Sort":   true,
	"Tab":    true,
	"Undo":   true,
	"Zerox":  true,
}

// isBuiltin reports whether cmd should be left to acme.
func isBuiltin(cmd string) bool {
	fields := strings.Fields(cmd)
	return len(fields) > 0 && acmeBuiltins[fields[0]]
}

// acmeUI shows calculator output in an acme window.
// Errors go to a separate /rpn/+Errors window.
type acmeUI struct {
	win  *acme.Win
	errs *acme.Win
	out  bytes.Buffer
}

func (u *acmeUI) Notify(msg string) {
	u.writeErr(msg + "\n")
}

func (u *acmeUI) Print(text string) {
	u.out.WriteString(text)
	if text != "" && text[len(text)-1] != '\n' {
		u.out.WriteByte('\n')
	}
}

func (u *acmeUI) Prompt(question string) (string, error) {
	u.writeErr(question + "(no answer possible in acme)\n")
	return "", errNoPrompt
}

// writeErr appends text to the errors window, opening
// it again if the user has deleted it.
func (u *acmeUI) writeErr(text string) {
	for i := 0; i < 2; i++ {
		if u.errs == nil {
			w, err := acme.New()
			if err != nil {
				log.Errf("cannot open errors window: %v", err)
				return
			}
			w.Name("/rpn/+Errors")
			u.errs = w
		}
		if _, err := u.errs.Write("body", []byte(text)); err == nil {
			u.errs.Ctl("clean")
			return
		}
		u.errs.CloseFiles()
		u.errs = nil
	}
}

// redraw replaces the window body with any output
// followed by the registers.
func (u *acmeUI) redraw(c *calc.Calc) {
	u.out.WriteString(registers(c))
	defer u.out.Reset()
	if err := u.win.Addr(","); err != nil {
		log.Errf("cannot set window address: %v", err)
		return
	}
	if _, err := u.win.Write("data", u.out.Bytes()); err != nil {
		log.Errf("cannot write window: %v", err)
		return
	}
	u.win.Ctl("clean")
}

// runAcme runs the calculator in a new acme window
// named /rpn/+stack. Text executed with the middle
// button is evaluated as a line.
func runAcme(st store.Store) error {
	win, err := acme.New()
	if err != nil {
		return errors.Notef(err, nil, "cannot open acme window")
	}
	win.Name("/rpn/+stack")
	ui := &acmeUI{win: win}
	c, err := newCalc(ui, st)
	if err != nil {
		win.Del(true)
		return errors.Wrap(err)
	}
	ui.redraw(c)
	for e := range win.EventChan() {
		switch e.C2 {
		case 'x', 'X':
			cmd := strings.TrimSpace(string(e.Text))
			if len(e.Arg) > 0 {
				cmd += " " + string(e.Arg)
			}
			if isBuiltin(cmd) {
				win.WriteEvent(e)
				continue
			}
			log.LogVf("acme: execute %q", cmd)
			if err := c.Exec(cmd); errors.Cause(err) == calc.ErrQuit {
				win.Del(true)
				return nil
			}
			ui.redraw(c)
		case 'l', 'L':
			win.WriteEvent(e)
		}
	}
	return nil
}
