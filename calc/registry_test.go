package calc_test

import (
	"sort"
	"strings"

	gc "gopkg.in/check.v1"

	"github.com/rogpeppe/rpn/calc"
)

type registrySuite struct {
	reg *calc.Registry
}

var _ = gc.Suite(&registrySuite{})

func (s *registrySuite) SetUpSuite(c *gc.C) {
	s.reg = calc.NewRegistry()
}

var lookupTests = []struct {
	name   string
	expect string
	kind   calc.Kind
}{
	{"sqrt", "sqrt", calc.Unary},
	{"+", "+", calc.Binary},
	{"x", "*", calc.Binary},
	{"s", "swap", calc.Command},
	{"rd", "rolldown", calc.Command},
	{"negate", "neg", calc.Unary},
	{"pi", "pi", calc.Constant},
	{"avogadro", "avogadro", calc.Constant},
	{"MR", "MR", calc.Memory},
	{"userop", "userop", calc.Command},
}

func (s *registrySuite) TestLookup(c *gc.C) {
	for _, test := range lookupTests {
		op, ok := s.reg.Lookup(test.name)
		c.Assert(ok, gc.Equals, true, gc.Commentf("name %q", test.name))
		c.Check(op.Name, gc.Equals, test.expect)
		c.Check(op.Kind, gc.Equals, test.kind)
		c.Check(op.Help, gc.Not(gc.Equals), "")
	}
	for _, name := range []string{"h", "q", "mr", "tip", ""} {
		_, ok := s.reg.Lookup(name)
		c.Check(ok, gc.Equals, false, gc.Commentf("name %q", name))
	}
}

func (s *registrySuite) TestReserved(c *gc.C) {
	for _, name := range []string{"sqrt", "x", "h", "q", "grams to ounces", "userops", "75"} {
		c.Check(s.reg.Reserved(name), gc.Equals, true, gc.Commentf("name %q", name))
	}
	for _, name := range []string{"tip", "area", "76"} {
		c.Check(s.reg.Reserved(name), gc.Equals, false, gc.Commentf("name %q", name))
	}
}

func (s *registrySuite) TestNames(c *gc.C) {
	names := s.reg.Names()
	c.Assert(sort.StringsAreSorted(names), gc.Equals, true)
	for _, name := range []string{"h", "q", "ru", "M+", "stats"} {
		i := sort.SearchStrings(names, name)
		c.Check(i < len(names) && names[i] == name, gc.Equals, true, gc.Commentf("name %q", name))
	}
	chars := s.reg.OpChars()
	for _, ch := range []string{"+", "-", "*", "/", "%", "^", "!", "i", "x", "d", "s"} {
		c.Check(strings.Contains(chars, ch), gc.Equals, true, gc.Commentf("char %q", ch))
	}
}

func (s *registrySuite) TestPhrase(c *gc.C) {
	name, ok := s.reg.Phrase(" Grams to Ounces ")
	c.Assert(ok, gc.Equals, true)
	c.Assert(name, gc.Equals, "go")
	_, ok = s.reg.Phrase("grams to pounds")
	c.Assert(ok, gc.Equals, false)
	for _, p := range s.reg.Phrases() {
		_, ok := s.reg.Lookup(p.For)
		c.Check(ok, gc.Equals, true, gc.Commentf("phrase %q", p.Text))
	}
}

var hintTests = []struct {
	name   string
	expect string
}{
	{"m+", "Commands related to memory registers require capitalization."},
	{"md", "Commands related to memory registers require capitalization."},
	{"m", "Commands related to memory registers require capitalization."},
	{"sqr", `Did you mean "sqrt"?`},
	{"stat", `Did you mean "stats"?`},
	{"zzzzzz", ""},
	{"qq", ""},
	{"123", ""},
}

func (s *registrySuite) TestHint(c *gc.C) {
	for _, test := range hintTests {
		c.Check(s.reg.Hint(test.name), gc.Equals, test.expect, gc.Commentf("name %q", test.name))
	}
}

func (s *registrySuite) TestListings(c *gc.C) {
	titles := func(sections []calc.Section) []string {
		var ts []string
		for _, s := range sections {
			ts = append(ts, s.Title)
		}
		return ts
	}
	c.Assert(titles(s.reg.Math()), gc.DeepEquals, []string{"GENERAL", "TRIGONOMETRY", "CONVERSIONS", "STANDARD OPERATORS"})
	c.Assert(titles(s.reg.Commands()), gc.DeepEquals, []string{"GENERAL", "COLOR", "HELP", "MEMORY REGISTERS", "STACK MANIPULATION", "USER-DEFINED"})
	c.Assert(s.reg.Constants(), gc.HasLen, 8)
	c.Assert(s.reg.Shortcuts(), gc.HasLen, 9)
	c.Assert(calc.Memory.String(), gc.Equals, "memory")
}
