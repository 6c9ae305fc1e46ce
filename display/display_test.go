package display_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/display"
	"github.com/rogpeppe/rpn/num"
)

var formatTests = []struct {
	settings display.Settings
	n        string
	expect   string
}{
	{display.DefaultSettings, "0", "0.0000"},
	{display.DefaultSettings, "1234567.891", "1,234,567.8910"},
	{display.DefaultSettings, "-1234", "-1,234.0000"},
	{display.DefaultSettings, "-123", "-123.0000"},
	{display.Settings{Places: 2}, "1234567.891", "1234567.89"},
	{display.Settings{Places: 0, Separator: true}, "999999.5", "1,000,000"},
	{display.Settings{Places: 4, Separator: true, Notation: display.Scientific}, "573230", "5.7323e+5"},
	{display.Settings{Places: 4, Separator: true, Notation: display.Scientific}, "456", "456.0000"},
	{display.Settings{Places: 2, Notation: display.Scientific}, "-50000", "-50000.00"},
}

func TestFormat(t *testing.T) {
	for i, test := range formatTests {
		got := test.settings.Format(num.MustParse(test.n))
		if got != test.expect {
			t.Errorf("test %d: Format(%s) with %+v: want %q; got %q", i, test.n, test.settings, test.expect, got)
		}
	}
}

func nums(ss ...string) []num.Number {
	ns := make([]num.Number, len(ss))
	for i, s := range ss {
		ns[i] = num.MustParse(s)
	}
	return ns
}

func TestRegisters(t *testing.T) {
	got := display.DefaultSettings.Registers(nums("45", "456"))
	want := `
 t:   0.0000
 z:   0.0000
 y: 456.0000
 x:  45.0000
`[1:]
	if got != want {
		t.Errorf("unexpected registers; want\n%s\ngot\n%s", want, got)
	}

	got = display.DefaultSettings.Registers(nums("45", "45624562456546234523"))
	want = `
 t:                          0.0000
 z:                          0.0000
 y: 45,624,562,456,546,234,523.0000
 x:                         45.0000
`[1:]
	if got != want {
		t.Errorf("unexpected registers; want\n%s\ngot\n%s", want, got)
	}

	sci := display.Settings{Places: 4, Separator: true, Notation: display.Scientific}
	got = sci.Registers(nums("6.9932", "573230", "456"))
	want = `
 t:   0.0000
 z: 456.0000
 y:   5.7323e+5
 x:   6.9932
`[1:]
	if got != want {
		t.Errorf("unexpected registers; want\n%s\ngot\n%s", want, got)
	}
}

func TestStack(t *testing.T) {
	got := display.Settings{Places: 1}.Stack(nums("1", "20", "3"))
	want := `
 2:  3.0
 1: 20.0
 0:  1.0
`[1:]
	if got != want {
		t.Errorf("unexpected stack; want\n%s\ngot\n%s", want, got)
	}
}

func TestSettingsMap(t *testing.T) {
	s := display.Settings{Places: 2, Separator: false, Notation: display.Scientific}
	m := s.Map()
	want := map[string]string{"dec_point": "2", "separator": "", "notation": "scientific"}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("key %q: want %q; got %q", k, v, m[k])
		}
	}
	s1, err := display.ParseSettings(m)
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s {
		t.Errorf("round trip: want %+v; got %+v", s, s1)
	}
	s1, err = display.ParseSettings(nil)
	if err != nil || s1 != display.DefaultSettings {
		t.Errorf("defaults: got %+v, %v", s1, err)
	}
	if _, err := display.ParseSettings(map[string]string{"dec_point": "29"}); err == nil {
		t.Errorf("expected error for 29 places")
	}
}

func TestSetters(t *testing.T) {
	var s display.Settings
	for _, bad := range []string{"-1", "x", "29"} {
		if err := s.SetPlaces(bad); err == nil {
			t.Errorf("SetPlaces(%q) succeeded", bad)
		}
	}
	if err := s.SetPlaces(" 28 "); err != nil || s.Places != 28 {
		t.Errorf("SetPlaces(28): %v, %d", err, s.Places)
	}
	if err := s.SetSeparator("NONE"); err != nil || s.Separator {
		t.Errorf("SetSeparator(none): %v, %v", err, s.Separator)
	}
	if err := s.SetSeparator(";"); err == nil {
		t.Errorf("SetSeparator(;) succeeded")
	}
	if err := s.SetNotation("s"); err != nil || s.Notation != display.Scientific {
		t.Errorf("SetNotation(s): %v, %v", err, s.Notation)
	}
	if err := s.SetNotation("n"); err != nil || s.Notation != display.Normal {
		t.Errorf("SetNotation(n): %v, %v", err, s.Notation)
	}
	if err := s.SetNotation(""); err == nil {
		t.Errorf("SetNotation(\"\") succeeded")
	}
}

func TestPlain(t *testing.T) {
	var buf bytes.Buffer
	p := display.NewPlain(&buf, strings.NewReader("yes\nlast"))
	p.Print("hello")
	p.Notify("something went wrong")
	ans, err := p.Prompt("sure? ")
	if err != nil || ans != "yes" {
		t.Fatalf("first prompt: %q, %v", ans, err)
	}
	ans, err = p.Prompt("again? ")
	if err != nil || ans != "last" {
		t.Fatalf("second prompt: %q, %v", ans, err)
	}
	_, err = p.Prompt("more? ")
	if errors.Cause(err) != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
	rule := strings.Repeat("=", 45)
	want := "hello\n" + rule + "\nsomething went wrong\n" + rule + "\nsure? again? more? "
	if buf.String() != want {
		t.Errorf("unexpected output %q", buf.String())
	}
}
