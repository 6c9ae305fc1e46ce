package macro_test

import (
	"testing"

	gc "gopkg.in/check.v1"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/macro"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type macroSuite struct{}

var _ = gc.Suite(&macroSuite{})

func reserved(name string) bool {
	return name == "dup" || name == "pi"
}

func (*macroSuite) TestDefineAndLookup(c *gc.C) {
	t := macro.NewTable(reserved)
	err := t.Define("tip", " .15 * ", "add a tip")
	c.Assert(err, gc.IsNil)
	m, ok := t.Lookup("tip")
	c.Assert(ok, gc.Equals, true)
	c.Assert(m, gc.DeepEquals, macro.Macro{
		Name:        "tip",
		Expansion:   ".15 *",
		Description: "add a tip",
	})

	err = t.Define("tip", ".2 *", "bigger tip")
	c.Assert(err, gc.IsNil)
	m, _ = t.Lookup("tip")
	c.Assert(m.Expansion, gc.Equals, ".2 *")
	c.Assert(t.Len(), gc.Equals, 1)
}

var badNameTests = []struct {
	name  string
	cause error
}{
	{"", macro.ErrInvalidName},
	{"Tip", macro.ErrInvalidName},
	{"my tip", macro.ErrInvalidName},
	{"dup", macro.ErrNameInUse},
	{"pi", macro.ErrNameInUse},
}

func (*macroSuite) TestBadNames(c *gc.C) {
	t := macro.NewTable(reserved)
	for _, test := range badNameTests {
		err := t.Define(test.name, "1 +", "")
		c.Check(errors.Cause(err), gc.Equals, test.cause, gc.Commentf("name %q", test.name))
	}
	c.Assert(t.Len(), gc.Equals, 0)
}

func (*macroSuite) TestEmptyExpansion(c *gc.C) {
	t := macro.NewTable(nil)
	err := t.Define("nothing", "  ", "")
	c.Assert(errors.Cause(err), gc.Equals, macro.ErrInvalidName)
}

func (*macroSuite) TestDelete(c *gc.C) {
	t := macro.NewTable(nil)
	c.Assert(t.Define("a", "1", ""), gc.IsNil)
	c.Assert(t.Delete("a"), gc.IsNil)
	_, ok := t.Lookup("a")
	c.Assert(ok, gc.Equals, false)
	c.Assert(errors.Cause(t.Delete("a")), gc.Equals, macro.ErrNotFound)
}

func (*macroSuite) TestList(c *gc.C) {
	t := macro.NewTable(nil)
	for _, name := range []string{"zz", "aa", "mm"} {
		c.Assert(t.Define(name, "1", ""), gc.IsNil)
	}
	var names []string
	for _, m := range t.List() {
		names = append(names, m.Name)
	}
	c.Assert(names, gc.DeepEquals, []string{"aa", "mm", "zz"})
}

func (*macroSuite) TestMapRoundTrip(c *gc.C) {
	t := macro.NewTable(reserved)
	c.Assert(t.Define("tip", ".15 *", "add a \"tip\""), gc.IsNil)
	m := t.Map()
	c.Assert(m, gc.DeepEquals, map[string]string{
		"tip": `[".15 *","add a \"tip\""]`,
	})
	t1 := macro.NewTable(reserved)
	c.Assert(t1.Load(m), gc.IsNil)
	c.Assert(t1.List(), gc.DeepEquals, t.List())
}

func (*macroSuite) TestLoadSkipsBadEntries(c *gc.C) {
	t := macro.NewTable(reserved)
	err := t.Load(map[string]string{
		"ok":  `["1 +", ""]`,
		"dup": `["2 +", ""]`,
		"bad": `not json`,
	})
	c.Assert(err, gc.ErrorMatches, "cannot load user-defined operations bad, dup")
	_, ok := t.Lookup("ok")
	c.Assert(ok, gc.Equals, true)
	c.Assert(t.Len(), gc.Equals, 1)
}
