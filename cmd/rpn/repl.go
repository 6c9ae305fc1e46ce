package main

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/chzyer/readline"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/calc"
	"github.com/rogpeppe/rpn/display"
	"github.com/rogpeppe/rpn/numfile"
	"github.com/rogpeppe/rpn/store"
)

const prompt = "> "

// readlineUI is a calc.UI that asks its questions
// through the same readline instance as the main loop.
type readlineUI struct {
	*display.Plain
	rl *readline.Instance
}

func (u *readlineUI) Prompt(question string) (string, error) {
	u.rl.SetPrompt(question)
	defer u.rl.SetPrompt(prompt)
	line, err := u.rl.Readline()
	if err != nil {
		return "", errors.Note(err, errors.Any, "")
	}
	return line, nil
}

// interact runs the calculator interactively,
// showing the registers after every line.
func interact(st store.Store, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
	})
	if err != nil {
		return errors.Wrap(err)
	}
	defer rl.Close()
	out := rl.Stdout()
	c, err := newCalc(&readlineUI{
		Plain: display.NewPlain(out, nil),
		rl:    rl,
	}, st)
	if err != nil {
		return errors.Wrap(err)
	}
	fmt.Fprint(out, registers(c))
	for {
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			if line == "" {
				return nil
			}
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return errors.Wrap(err)
		}
		if err := c.Exec(line); errors.Cause(err) == calc.ErrQuit {
			return nil
		} else if err != nil {
			log.LogVf("line %q: %v", line, err)
		}
		fmt.Fprint(out, registers(c))
	}
}

var errQuit = errors.New("quit")

// evalLines evaluates each line read from standard input,
// printing the registers at the end.
func evalLines(st store.Store) error {
	c, err := newCalc(display.NewPlain(os.Stdout, nil), st)
	if err != nil {
		return errors.Wrap(err)
	}
	failed := false
	err = numfile.Lines(os.Stdin, numfile.MaxLineSize, func(line string) error {
		err := c.Exec(line)
		if errors.Cause(err) == calc.ErrQuit {
			return errQuit
		}
		if err != nil {
			failed = true
		}
		return nil
	})
	if err != nil && err != errQuit {
		return errors.Wrap(err)
	}
	fmt.Print(registers(c))
	if failed {
		return errReported
	}
	return nil
}
