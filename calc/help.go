package calc

import (
	"fmt"
	"runtime/debug"
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"
)

const ruleWidth = 45

// banner returns a rule of '=' characters
// with title centred in it.
func banner(title string) string {
	if title == "" {
		return strings.Repeat("=", ruleWidth)
	}
	title = " " + title + " "
	left := (ruleWidth - len(title)) / 2
	if left < 3 {
		left = 3
	}
	right := ruleWidth - len(title) - left
	if right < 3 {
		right = 3
	}
	return strings.Repeat("=", left) + title + strings.Repeat("=", right)
}

// boxed returns body between a titled banner and a plain rule.
func boxed(title, body string) string {
	return banner(title) + "\n" + strings.TrimRight(body, "\n") + "\n" + banner("")
}

func text(s string) func(c *Calc) error {
	return func(c *Calc) error {
		c.ui.Print(s)
		return nil
	}
}

// help shows the one-line help for name, or
// the introductory help if name is empty.
func (c *Calc) help(name string) error {
	if name == "" {
		c.ui.Print(helpText)
		return nil
	}
	if op, ok := c.reg.Lookup(name); ok {
		what := op.Help
		if op.Name != name {
			what += fmt.Sprintf("\n(%s is short for %s)", name, op.Name)
		}
		c.ui.Print(boxed(name, what))
		return nil
	}
	for _, s := range c.reg.Shortcuts() {
		if s.Name == name {
			c.ui.Print(boxed(name, s.Help))
			return nil
		}
	}
	if m, ok := c.Macros.Lookup(name); ok {
		what := m.Expansion
		if m.Description != "" {
			what += "\n" + m.Description
		}
		c.ui.Print(boxed(name, what))
		return nil
	}
	return errors.Becausef(nil, ErrUnknownSymbol, "Help not found for %q. Enter com to list all commands.", name)
}

func listSections(title string, sections []Section) string {
	var b strings.Builder
	b.WriteString(banner(title))
	b.WriteString("\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "\n%s\n", s.Title)
		for _, op := range s.Ops {
			fmt.Fprintf(&b, "  %-12s %s\n", op.Name, op.Help)
		}
	}
	b.WriteString(banner(""))
	return b.String()
}

func listCommands(c *Calc) error {
	c.ui.Print(listSections("COMMANDS", c.reg.Commands()))
	c.ui.Print(listSections("MATH OPERATIONS", c.reg.Math()))
	return nil
}

func listMath(c *Calc) error {
	c.ui.Print(listSections("MATH OPERATIONS", c.reg.Math()))
	return nil
}

func listConstants(c *Calc) error {
	var b strings.Builder
	for _, op := range c.reg.Constants() {
		fmt.Fprintf(&b, "  %-13s %s\n  %13s %s\n", op.Name, op.Help, "", op.Value())
	}
	c.ui.Print(boxed("CONSTANTS", b.String()))
	return nil
}

func listShortcuts(c *Calc) error {
	var b strings.Builder
	for _, s := range c.reg.Shortcuts() {
		fmt.Fprintf(&b, "  %-4s %s\n", s.Name, s.Help)
	}
	c.ui.Print(boxed("SHORTCUTS", b.String()))
	return nil
}

func listPhrases(c *Calc) error {
	var b strings.Builder
	for _, p := range c.reg.Phrases() {
		if p.Help == "" {
			continue
		}
		fmt.Fprintf(&b, "  %-26s %s\n", p.Text, p.Help)
	}
	b.WriteString("\nPhrases must be entered on a line by themselves.")
	c.ui.Print(boxed("PHRASES", b.String()))
	return nil
}

func about(c *Calc) error {
	c.ui.Print(boxed("ABOUT", "rpn - an RPN calculator\n\nNumbers are held as decimals with 28 significant digits.\nEnter help to get started."))
	return nil
}

func version(c *Calc) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		c.ui.Print(boxed("VERSION", "Version information is not available."))
		return nil
	}
	var b strings.Builder
	v := info.Main.Version
	if v == "" {
		v = "(devel)"
	}
	fmt.Fprintf(&b, "%s %s\n%s\n", info.Main.Path, v, info.GoVersion)
	if len(info.Deps) > 0 {
		b.WriteString("\nModules:\n")
	}
	for _, dep := range info.Deps {
		fmt.Fprintf(&b, "  %s %s\n", dep.Path, dep.Version)
	}
	c.ui.Print(boxed("VERSION", b.String()))
	return nil
}

var helpText = boxed("HELP", `
Enter numbers and operators separated by spaces,
then press Enter. For example:

    3 4 +

leaves 7 in x:. Spaces may be left out where the
meaning is clear, so 3 4+ does the same thing.

  h [command]  help for a single command
  index        the help index
  com          list all commands
  q            quit
`)

var indexText = boxed("INDEX", `
  basics     the basics of RPN
  advanced   getting the most from the calculator
  com        all commands and math operations
  math       math operations only
  con        constants
  short      shortcuts
  phrases    phrases that stand for commands
  userhelp   user-defined operations
  h [name]   help for a single command
`)

var basicsText = boxed("BASICS", `
RPN (Reverse Polish Notation) puts the operator
after its operands. Numbers are pushed onto a stack
whose top four values are shown as x:, y:, z: and t:.

To work out (3 + 4) * 5, enter:

    3 4 + 5 *

Binary operators take y: and x: and leave the result
in x:, so 10 4 - gives 6 and 10 4 / gives 2.5.
Unary operators such as sqrt replace x: with the result.

Pressing Enter on an empty line duplicates x:.
`)

var advancedText = boxed("ADVANCED", `
Parentheses may be used to group a calculation for
readability. They do not change the result:

    (145 5 +)(111 20 +) *

x:, y:, z: and t: in a line stand for the value in
that register, which is then reset to zero:

    y: x: /

divides x: by y:.

lastx puts back the value x: held before the last
operator. Memory registers keep values between
sessions: 1 453 M+ adds 453 to register 1 and
1 MR recalls it. ML lists the registers and MD
deletes them.

Lines starting with 0x or 0b are read as hex or binary.
A line starting with # is read as an RGB hex color.
`)

var userHelpText = boxed("USER-DEFINED OPERATIONS", `
A user-defined operation gives a name to a whole line.
Enter user to create, change or delete one, and
userop to list them.

Names must be lower case and must not be the name of
a built-in command. For example, defining

    tip   as   .18 *

means that entering tip on its own line multiplies x:
by 0.18. A user-defined operation must be entered on
a line by itself.
`)
