package calc

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/rogpeppe/rpn/num"
)

// Kind classifies operators by what they do to the stack.
type Kind int

const (
	// Unary operators replace x with a function of x.
	Unary Kind = iota
	// Binary operators pop x and y and push y OP x.
	Binary
	// Command operators act on the calculator directly.
	Command
	// Constant operators push a fixed value.
	Constant
	// Memory operators act on the memory registers,
	// saving them after any change.
	Memory
)

var kindNames = []string{
	Unary:    "unary",
	Binary:   "binary",
	Command:  "command",
	Constant: "constant",
	Memory:   "memory",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind%d", int(k))
	}
	return kindNames[k]
}

// Op is a built-in operator.
type Op struct {
	Name string
	Kind Kind
	// Help holds a one-line description of the operator.
	Help string

	unary   func(x num.Number) (num.Number, error)
	binary  func(y, x num.Number) (num.Number, error)
	command func(c *Calc) error
	value   num.Number
}

// Value returns the value pushed by a Constant operator.
func (op *Op) Value() num.Number {
	return op.value
}

// Section is a titled group of operators, used for listings.
type Section struct {
	Title string
	Ops   []*Op
}

// Shortcut is an abbreviation for an operator.
type Shortcut struct {
	Name string
	// For holds the name of the operator, or the empty
	// string for the shortcuts h and q which are handled
	// by the evaluator itself.
	For  string
	Help string
}

// Phrase is a piece of English that may be typed
// on its own line in place of an operator name.
type Phrase struct {
	Text string
	For  string
	Help string
}

// Registry holds the built-in operators. It is not
// modified after it has been created and may be shared.
type Registry struct {
	ops       map[string]*Op
	aliases   map[string]string
	math      []Section
	commands  []Section
	constants []*Op
	shortcuts []Shortcut
	phrases   []Phrase
	alpha     []alphaCode
}

// NewRegistry returns a registry holding all
// the built-in operators.
func NewRegistry() *Registry {
	r := &Registry{
		ops:       make(map[string]*Op),
		aliases:   make(map[string]string),
		math:      mathSections(),
		commands:  commandSections(),
		constants: constants(),
		shortcuts: shortcuts,
		phrases:   phrases,
		alpha:     alphaCodes,
	}
	add := func(op *Op) {
		if r.ops[op.Name] != nil {
			panic(fmt.Errorf("operator %q defined twice", op.Name))
		}
		r.ops[op.Name] = op
	}
	for _, s := range r.math {
		for _, op := range s.Ops {
			add(op)
		}
	}
	for _, s := range r.commands {
		for _, op := range s.Ops {
			add(op)
		}
	}
	for _, op := range r.constants {
		add(op)
	}
	for _, a := range aliases {
		r.aliases[a.name] = a.to
	}
	for _, s := range r.shortcuts {
		if s.For != "" {
			r.aliases[s.Name] = s.For
		}
	}
	for name, to := range r.aliases {
		if r.ops[to] == nil {
			panic(fmt.Errorf("alias %q refers to unknown operator %q", name, to))
		}
	}
	return r
}

// Lookup returns the operator with the given name or alias.
func (r *Registry) Lookup(name string) (*Op, bool) {
	if to, ok := r.aliases[name]; ok {
		name = to
	}
	op, ok := r.ops[name]
	return op, ok
}

// Reserved reports whether name is used by the calculator
// itself and so may not name a user-defined operation.
func (r *Registry) Reserved(name string) bool {
	if _, ok := r.Lookup(name); ok {
		return true
	}
	for _, s := range r.shortcuts {
		if s.Name == name {
			return true
		}
	}
	if _, ok := r.Phrase(name); ok {
		return true
	}
	for _, a := range r.alpha {
		if a.percent == name {
			return true
		}
	}
	return false
}

// Names returns the names of all operators and
// shortcuts in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops)+len(r.aliases))
	for name := range r.ops {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	names = append(names, "h", "q")
	sort.Strings(names)
	return names
}

// OpChars returns all the names that are a single
// character long, concatenated. It is suitable
// for passing to token.NewLexer.
func (r *Registry) OpChars() string {
	var chars []string
	for _, name := range r.Names() {
		if len(name) == 1 {
			chars = append(chars, name)
		}
	}
	return strings.Join(chars, "")
}

// Phrase returns the operator name for the given phrase.
// Case is ignored.
func (r *Registry) Phrase(text string) (string, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, p := range r.phrases {
		if p.Text == text {
			return p.For, true
		}
	}
	return "", false
}

// Hint returns a suggestion for a name that was not
// recognised, or the empty string if there is none.
func (r *Registry) Hint(name string) string {
	if name == "m" || len(name) == 2 && name[0] == 'm' && r.ops[strings.ToUpper(name)] != nil {
		return "Commands related to memory registers require capitalization."
	}
	if len(name) < 3 || strings.IndexFunc(name, unicode.IsLetter) < 0 {
		return ""
	}
	best, bestDist := "", 3
	for _, cand := range r.Names() {
		if d := fuzzy.LevenshteinDistance(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	if best != "" {
		return fmt.Sprintf("Did you mean %q?", best)
	}
	return ""
}

// Math returns the math operators grouped by section.
func (r *Registry) Math() []Section {
	return r.math
}

// Commands returns the commands grouped by section.
func (r *Registry) Commands() []Section {
	return r.commands
}

// Constants returns the named constants.
func (r *Registry) Constants() []*Op {
	return r.constants
}

// Shortcuts returns the shortcuts.
func (r *Registry) Shortcuts() []Shortcut {
	return r.shortcuts
}

// Phrases returns the phrases.
func (r *Registry) Phrases() []Phrase {
	return r.phrases
}
