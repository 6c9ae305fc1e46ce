package calc

import (
	"fmt"
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/macro"
	"github.com/rogpeppe/rpn/store"
)

func listMacros(c *Calc) error {
	ms := c.Macros.List()
	if len(ms) == 0 {
		c.ui.Print(boxed("USER-DEFINED OPERATIONS", "No user-defined operations exist.\nEnter user to create one."))
		return nil
	}
	var b strings.Builder
	for _, m := range ms {
		fmt.Fprintf(&b, "  %-12s %s\n", m.Name, m.Expansion)
		if m.Description != "" {
			fmt.Fprintf(&b, "  %-12s %s\n", "", m.Description)
		}
	}
	c.ui.Print(boxed("USER-DEFINED OPERATIONS", b.String()))
	return nil
}

// editMacros asks the user for operations to define,
// redefine or delete until they have had enough.
func editMacros(c *Calc) error {
	for {
		name, err := c.ui.Prompt("Name of operation/constant: ")
		if err != nil {
			return errors.Note(err, errors.Any, "")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}
		if err := c.editMacro(name); err != nil {
			return errors.Note(err, errors.Any, "")
		}
		if !c.confirm("Add or edit another user-defined operation? (Y/N) ") {
			break
		}
	}
	return listMacros(c)
}

func (c *Calc) editMacro(name string) error {
	_, exists := c.Macros.Lookup(name)
	if exists {
		c.ui.Print(fmt.Sprintf("Enter new value to redefine %s.\nEnter no value to delete %s.", name, name))
	} else if err := c.Macros.CheckName(name); err != nil {
		if errors.Cause(err) == macro.ErrNameInUse {
			c.ui.Notify("Name already in use. Choose another.")
		} else {
			c.ui.Notify("That name cannot be used: " + err.Error())
		}
		return nil
	}
	value, err := c.ui.Prompt("Value or operation: ")
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	if value = strings.TrimSpace(value); value == "" {
		if !exists {
			c.ui.Notify(fmt.Sprintf("No value given and no operation named %s exists.", name))
			return nil
		}
		if !c.confirm(fmt.Sprintf("Delete %s? (Y/N) ", name)) {
			return nil
		}
		if err := c.Macros.Delete(name); err != nil {
			return errors.Note(err, errors.Any, "")
		}
		c.ui.Print(name + " was deleted.")
		return c.saveMacros()
	}
	desc, err := c.ui.Prompt("Description (optional): ")
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	if err := c.Macros.Define(name, value, strings.TrimSpace(desc)); err != nil {
		c.ui.Notify(err.Error())
		return nil
	}
	return c.saveMacros()
}

func (c *Calc) saveMacros() error {
	return c.save(store.UserMacros, c.Macros.Map())
}
