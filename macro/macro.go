// Package macro holds user-defined operations: names that stand
// for a whole command line.
//
// A macro is expanded only when it makes up the entire input line.
// The expansion is then read as if the user had typed it.
package macro

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/errgo.v2/fmt/errors"
)

var (
	ErrNameInUse   = errors.New("name is already in use")
	ErrInvalidName = errors.New("invalid name")
	ErrNotFound    = errors.New("no such user-defined operation")
)

// Macro is a single user-defined operation.
type Macro struct {
	Name        string
	Expansion   string
	Description string
}

// Table holds a set of macros.
type Table struct {
	reserved func(name string) bool
	m        map[string]Macro
}

// NewTable returns an empty table. Names for which
// reserved returns true cannot be defined; reserved may be nil.
func NewTable(reserved func(name string) bool) *Table {
	if reserved == nil {
		reserved = func(string) bool { return false }
	}
	return &Table{
		reserved: reserved,
		m:        make(map[string]Macro),
	}
}

// CheckName checks whether name may be used for a new macro.
// Names must be lower case, must not contain spaces
// and must not clash with a built-in operation.
func (t *Table) CheckName(name string) error {
	switch {
	case name == "":
		return errors.Becausef(nil, ErrInvalidName, "empty name")
	case strings.IndexFunc(name, unicode.IsUpper) >= 0:
		return errors.Becausef(nil, ErrInvalidName, "name %q must be lower case", name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return errors.Becausef(nil, ErrInvalidName, "name %q contains spaces", name)
	case t.reserved(name):
		return errors.Becausef(nil, ErrNameInUse, "%q is used by the system", name)
	}
	return nil
}

// Define defines or redefines the macro with the given name.
func (t *Table) Define(name, expansion, description string) error {
	if err := t.CheckName(name); err != nil {
		return errors.Note(err, errors.Any, "")
	}
	if strings.TrimSpace(expansion) == "" {
		return errors.Becausef(nil, ErrInvalidName, "empty definition for %q", name)
	}
	t.m[name] = Macro{
		Name:        name,
		Expansion:   strings.TrimSpace(expansion),
		Description: description,
	}
	return nil
}

// Delete removes the named macro.
func (t *Table) Delete(name string) error {
	if _, ok := t.m[name]; !ok {
		return errors.Becausef(nil, ErrNotFound, "%q not found", name)
	}
	delete(t.m, name)
	return nil
}

// Lookup returns the named macro.
func (t *Table) Lookup(name string) (Macro, bool) {
	m, ok := t.m[name]
	return m, ok
}

// List returns all the macros ordered by name.
func (t *Table) List() []Macro {
	ms := make([]Macro, 0, len(t.m))
	for _, m := range t.m {
		ms = append(ms, m)
	}
	sort.Slice(ms, func(i, j int) bool {
		return ms[i].Name < ms[j].Name
	})
	return ms
}

// Len returns the number of macros.
func (t *Table) Len() int {
	return len(t.m)
}

// Map encodes the table for saving in a store. Each value
// is a JSON array holding the expansion and the description.
func (t *Table) Map() map[string]string {
	out := make(map[string]string)
	for name, m := range t.m {
		data, err := json.Marshal([]string{m.Expansion, m.Description})
		if err != nil {
			panic(err)
		}
		out[name] = string(data)
	}
	return out
}

// Load adds the macros encoded in m by Map to the table.
// Names that are no longer valid are skipped and reported
// in the returned error after the rest have been loaded.
func (t *Table) Load(m map[string]string) error {
	var bad []string
	for name, v := range m {
		var fields []string
		if err := json.Unmarshal([]byte(v), &fields); err != nil || len(fields) == 0 {
			bad = append(bad, name)
			continue
		}
		desc := ""
		if len(fields) > 1 {
			desc = fields[1]
		}
		if err := t.Define(name, fields[0], desc); err != nil {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return errors.Newf("cannot load user-defined operations %s", strings.Join(bad, ", "))
	}
	return nil
}
