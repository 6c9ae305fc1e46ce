package memreg_test

import (
	"math"
	"testing"

	gc "gopkg.in/check.v1"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/memreg"
	"github.com/rogpeppe/rpn/num"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type memregSuite struct{}

var _ = gc.Suite(&memregSuite{})

func (*memregSuite) TestAddCreatesRegister(c *gc.C) {
	r := memreg.New()
	err := r.Add(1, num.FromInt(453))
	c.Assert(err, gc.IsNil)
	v, err := r.Recall(1)
	c.Assert(err, gc.IsNil)
	c.Assert(v.String(), gc.Equals, "453")

	err = r.Add(1, num.FromInt(10))
	c.Assert(err, gc.IsNil)
	v, err = r.Recall(1)
	c.Assert(err, gc.IsNil)
	c.Assert(v.String(), gc.Equals, "463")
}

func (*memregSuite) TestSub(c *gc.C) {
	r := memreg.New()
	err := r.Sub(2, num.MustParse("1.5"))
	c.Assert(err, gc.IsNil)
	v, err := r.Recall(2)
	c.Assert(err, gc.IsNil)
	c.Assert(v.String(), gc.Equals, "1.5")

	err = r.Sub(2, num.MustParse("4"))
	c.Assert(err, gc.IsNil)
	v, err = r.Recall(2)
	c.Assert(err, gc.IsNil)
	c.Assert(v.String(), gc.Equals, "-2.5")
}

func (*memregSuite) TestInvalidID(c *gc.C) {
	r := memreg.New()
	err := r.Add(0, num.FromInt(1))
	c.Assert(errors.Cause(err), gc.Equals, memreg.ErrInvalidID)
	c.Assert(err, gc.ErrorMatches, "invalid register 0")
	err = r.Sub(-1, num.FromInt(1))
	c.Assert(errors.Cause(err), gc.Equals, memreg.ErrInvalidID)
	_, err = r.Recall(-3)
	c.Assert(errors.Cause(err), gc.Equals, memreg.ErrInvalidID)
	c.Assert(r.Len(), gc.Equals, 0)
}

func (*memregSuite) TestRecallIsIdempotent(c *gc.C) {
	r := memreg.New()
	c.Assert(r.Add(7, num.FromInt(42)), gc.IsNil)
	for i := 0; i < 3; i++ {
		v, err := r.Recall(7)
		c.Assert(err, gc.IsNil)
		c.Assert(v.String(), gc.Equals, "42")
	}
	c.Assert(r.Len(), gc.Equals, 1)
}

func (*memregSuite) TestRecallNotFound(c *gc.C) {
	r := memreg.New()
	_, err := r.Recall(4)
	c.Assert(errors.Cause(err), gc.Equals, memreg.ErrNotFound)
	c.Assert(err, gc.ErrorMatches, "memory register 4 does not exist")
}

func (*memregSuite) TestDelete(c *gc.C) {
	r := memreg.New()
	c.Assert(r.Add(1, num.FromInt(1)), gc.IsNil)
	c.Assert(r.Delete(1), gc.IsNil)
	c.Assert(errors.Cause(r.Delete(1)), gc.Equals, memreg.ErrNotFound)
}

var deleteRangeTests = []struct {
	about   string
	regs    []int64
	lo, hi  int64
	deleted []int64
	stopped bool
	missing int64
	left    []int64
	report  string
}{{
	about:   "stops at first missing register",
	regs:    []int64{1, 3},
	lo:      1,
	hi:      5,
	deleted: []int64{1},
	stopped: true,
	missing: 2,
	left:    []int64{3},
	report:  "Register 1 was deleted.\nOne or more memory registers between 1 and 5 do not exist.\nUse ML to inspect a list of the memory registers.",
}, {
	about:   "bounds in either order",
	regs:    []int64{3, 4, 5, 9},
	lo:      5,
	hi:      3,
	deleted: []int64{3, 4, 5},
	left:    []int64{9},
	report:  "Registers 3 to 5 were deleted.",
}, {
	about:   "nothing in range",
	regs:    []int64{10},
	lo:      1,
	hi:      4,
	stopped: true,
	missing: 1,
	left:    []int64{10},
	report:  "No registers were deleted. Use ML to inspect a list of the memory registers.",
}, {
	about:   "several deleted then missing",
	regs:    []int64{2, 3, 4, 6},
	lo:      2,
	hi:      8,
	deleted: []int64{2, 3, 4},
	stopped: true,
	missing: 5,
	left:    []int64{6},
	report:  "Registers 2, 3, 4 were deleted.\nOne or more memory registers between 2 and 8 do not exist.\nUse ML to inspect a list of the memory registers.",
}, {
	about:   "register zero never exists",
	regs:    []int64{1, 2},
	lo:      0,
	hi:      2,
	stopped: true,
	left:    []int64{1, 2},
	report:  "No registers were deleted. Use ML to inspect a list of the memory registers.",
}, {
	about:   "range ending at the largest register",
	regs:    []int64{math.MaxInt64 - 1, math.MaxInt64},
	lo:      math.MaxInt64 - 1,
	hi:      math.MaxInt64,
	deleted: []int64{math.MaxInt64 - 1, math.MaxInt64},
	report:  "Registers 9223372036854775806 to 9223372036854775807 were deleted.",
}}

func (*memregSuite) TestDeleteRange(c *gc.C) {
	for i, test := range deleteRangeTests {
		c.Logf("test %d: %s", i, test.about)
		r := memreg.New()
		for _, id := range test.regs {
			c.Assert(r.Add(id, num.FromInt(id*10)), gc.IsNil)
		}
		rep := r.DeleteRange(test.lo, test.hi)
		c.Assert(rep.Deleted, gc.DeepEquals, test.deleted)
		c.Assert(rep.Stopped, gc.Equals, test.stopped)
		c.Assert(rep.Missing, gc.Equals, test.missing)
		c.Assert(rep.String(), gc.Equals, test.report)
		var left []int64
		for _, e := range r.List() {
			left = append(left, e.ID)
		}
		c.Assert(left, gc.DeepEquals, test.left)
	}
}

func (*memregSuite) TestListSorted(c *gc.C) {
	r := memreg.New()
	for _, id := range []int64{12, 3, 7, 1} {
		c.Assert(r.Add(id, num.FromInt(id)), gc.IsNil)
	}
	var ids []int64
	for _, e := range r.List() {
		ids = append(ids, e.ID)
		c.Assert(e.Value.String(), gc.Equals, num.FromInt(e.ID).String())
	}
	c.Assert(ids, gc.DeepEquals, []int64{1, 3, 7, 12})
}

func (*memregSuite) TestMapRoundTrip(c *gc.C) {
	r := memreg.New()
	c.Assert(r.Add(1, num.MustParse("0.1000000000000000000000000001")), gc.IsNil)
	c.Assert(r.Add(20, num.MustParse("-3.25")), gc.IsNil)
	m := r.Map()
	c.Assert(m, gc.DeepEquals, map[string]string{
		"1":  "0.1000000000000000000000000001",
		"20": "-3.25",
	})
	r1, err := memreg.FromMap(m)
	c.Assert(err, gc.IsNil)
	c.Assert(r1.List(), gc.HasLen, 2)
	for _, e := range r.List() {
		v, err := r1.Recall(e.ID)
		c.Assert(err, gc.IsNil)
		c.Assert(v.String(), gc.Equals, e.Value.String())
	}
}

func (*memregSuite) TestFromMapDecimalKeys(c *gc.C) {
	r, err := memreg.FromMap(map[string]string{"3.0": "5"})
	c.Assert(err, gc.IsNil)
	v, err := r.Recall(3)
	c.Assert(err, gc.IsNil)
	c.Assert(v.String(), gc.Equals, "5")
}

func (*memregSuite) TestFromMapErrors(c *gc.C) {
	_, err := memreg.FromMap(map[string]string{"0": "5"})
	c.Assert(errors.Cause(err), gc.Equals, memreg.ErrInvalidID)
	_, err = memreg.FromMap(map[string]string{"1.5": "5"})
	c.Assert(errors.Cause(err), gc.Equals, memreg.ErrInvalidID)
	_, err = memreg.FromMap(map[string]string{"1": "five"})
	c.Assert(err, gc.ErrorMatches, `bad value for register 1: invalid number "five"`)
}
