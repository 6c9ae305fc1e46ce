// Package display formats calculator values for people to read.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/num"
)

// MaxPlaces holds the largest number of decimal places
// that may be displayed.
const MaxPlaces = num.Precision

// Notation says how numbers are written.
type Notation string

const (
	Normal     Notation = "normal"
	Scientific Notation = "scientific"
)

// Settings holds the display settings.
type Settings struct {
	// Places holds the number of decimal places shown.
	Places int
	// Separator reports whether thousands are separated by commas.
	Separator bool
	// Notation holds the notation used for large numbers.
	Notation Notation
}

// DefaultSettings holds the settings used when none have been saved.
var DefaultSettings = Settings{
	Places:    4,
	Separator: true,
	Notation:  Normal,
}

// Keys used in the settings map.
const (
	keyPlaces    = "dec_point"
	keySeparator = "separator"
	keyNotation  = "notation"
)

// ParseSettings decodes settings saved with Settings.Map.
// Missing entries take their default values.
func ParseSettings(m map[string]string) (Settings, error) {
	s := DefaultSettings
	if v, ok := m[keyPlaces]; ok {
		if err := s.SetPlaces(v); err != nil {
			return DefaultSettings, errors.Note(err, errors.Any, "")
		}
	}
	if v, ok := m[keySeparator]; ok {
		if err := s.SetSeparator(v); err != nil {
			return DefaultSettings, errors.Note(err, errors.Any, "")
		}
	}
	if v, ok := m[keyNotation]; ok {
		if err := s.SetNotation(v); err != nil {
			return DefaultSettings, errors.Note(err, errors.Any, "")
		}
	}
	return s, nil
}

// Map encodes the settings for saving.
func (s Settings) Map() map[string]string {
	sep := ""
	if s.Separator {
		sep = ","
	}
	return map[string]string{
		keyPlaces:    strconv.Itoa(s.Places),
		keySeparator: sep,
		keyNotation:  string(s.Notation),
	}
}

// SetPlaces sets the number of decimal places from a string
// holding an integer between 0 and MaxPlaces.
func (s *Settings) SetPlaces(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 || n > MaxPlaces {
		return errors.Newf("enter an integer between 0 and %d, inclusive", MaxPlaces)
	}
	s.Places = n
	return nil
}

// SetSeparator sets the thousands separator from a string:
// "," turns it on, "none" or the empty string turns it off.
func (s *Settings) SetSeparator(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case ",":
		s.Separator = true
	case "", "none":
		s.Separator = false
	default:
		return errors.Newf("thousands separator must be 'none' or ','")
	}
	return nil
}

// SetNotation sets the notation from a string. Any prefix
// of "normal" or "scientific" is accepted.
func (s *Settings) SetNotation(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v != "" && strings.HasPrefix(string(Normal), v):
		s.Notation = Normal
	case v != "" && strings.HasPrefix(string(Scientific), v):
		s.Notation = Scientific
	default:
		return errors.Newf("notation must be normal or scientific")
	}
	return nil
}

func (s Settings) String() string {
	sep := "none"
	if s.Separator {
		sep = ","
	}
	return fmt.Sprintf("Decimal places (0-%d): %d\n           Separator: %s\n            Notation: %s", MaxPlaces, s.Places, sep, s.Notation)
}

var thousand = num.FromInt(1000)

// Format formats a single number. In scientific notation,
// numbers below 1000 are still written in normal notation.
func (s Settings) Format(n num.Number) string {
	if s.Notation == Scientific && n.Cmp(thousand) >= 0 {
		return n.Sci(s.Places)
	}
	f := n.Fixed(s.Places)
	if !s.Separator {
		return f
	}
	i, frac := splitPoint(f)
	return group(i) + frac
}

// RegisterNames holds the names of the displayed stack entries.
var RegisterNames = []string{"x", "y", "z", "t"}

// Registers returns the stack registers t, z, y, x, one per line
// with x last, formatted so that their decimal points line up.
// The stack is given top first. Missing entries are shown as zero.
func (s Settings) Registers(stack []num.Number) string {
	return s.lines(stack, RegisterNames)
}

// Stack returns all of the given stack entries, formatted as for
// Registers, with the deepest entry first and each line labelled
// with its depth.
func (s Settings) Stack(stack []num.Number) string {
	names := make([]string, len(stack))
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return s.lines(stack, names)
}

func (s Settings) lines(stack []num.Number, names []string) string {
	type line struct {
		name, i, frac string
	}
	lines := make([]line, len(names))
	width, nameWidth := 0, 0
	for j, name := range names {
		var n num.Number
		if j < len(stack) {
			n = stack[j]
		}
		i, frac := splitPoint(s.Format(n))
		lines[j] = line{name, i, frac}
		if len(i) > width {
			width = len(i)
		}
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}
	var b strings.Builder
	for j := len(lines) - 1; j >= 0; j-- {
		l := lines[j]
		fmt.Fprintf(&b, "%*s: %*s%s\n", nameWidth+1, l.name, width, l.i, l.frac)
	}
	return b.String()
}

// splitPoint splits a formatted number into the part before
// the decimal point and the rest.
func splitPoint(f string) (string, string) {
	if i := strings.IndexAny(f, ".e"); i >= 0 {
		return f[:i], f[i:]
	}
	return f, ""
}

// group inserts commas between groups of three digits.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.WriteString(sign)
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(s[:first])
	for i := first; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
