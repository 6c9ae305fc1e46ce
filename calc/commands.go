package calc

import (
	"fmt"
	"math/big"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/num"
	"github.com/rogpeppe/rpn/numfile"
	"github.com/rogpeppe/rpn/store"
)

func commandSections() []Section {
	return []Section{{
		Title: "GENERAL",
		Ops: []*Op{
			command("about", "Info about the author and product.", about),
			command("import", "Import data from a text file.", importFile),
			command("set", "Access and edit settings.", editSettings),
			command("version", "Program and module version info.", version),
		},
	}, {
		Title: "COLOR",
		Ops: []*Op{
			command("alpha", "Hex equivalent of RGB alpha value.", alpha),
			command("hex", "Convert rgb color (z:, y:, x:) to hex color.", rgbToHex),
			command("list_alpha", "List all alpha values.", listAlpha),
			command("rgb", "Convert hex color to rgb.", hexToRGB),
		},
	}, {
		Title: "HELP",
		Ops: []*Op{
			command("help", "How to get help.", text(helpText)),
			command("index", "Menu to access parts of the manual.", text(indexText)),
			command("basics", "The basics of RPN.", text(basicsText)),
			command("advanced", "Advanced help: how to use this calculator.", text(advancedText)),
			command("com", "List all commands and math operations.", listCommands),
			command("math", "List math operations.", listMath),
			command("con", "List constants.", listConstants),
			command("short", "Available shortcuts.", listShortcuts),
			command("userhelp", "How to create user-defined operations.", text(userHelpText)),
			command("phrases", "List available phrases.", listPhrases),
		},
	}, {
		Title: "MEMORY REGISTERS",
		Ops: []*Op{
			memory("M+", "Add x: to y: memory register.", memAdd),
			memory("M-", "Subtract x: from y: memory register.", memSub),
			memory("MR", "Put x: register value on stack.", memRecall),
			memory("MD", "Delete one or a range of memory registers.", memDelete),
			memory("ML", "List elements of memory register.", memList),
		},
	}, {
		Title: "STACK MANIPULATION",
		Ops: []*Op{
			command("clear", "Clear all elements from the stack.", stackOp((*Stack).Clear)),
			command("drop", "Drop the last element off the stack.", stackOp((*Stack).Drop)),
			command("dup", "Duplicate the last stack element.", stackOp((*Stack).Dup)),
			command("lastx", "Put the last x: value on the stack.", lastX),
			command("list", "Show the entire stack.", listStack),
			command("rolldown", "Roll stack down.", stackOp((*Stack).RollDown)),
			command("rollup", "Roll stack up.", stackOp((*Stack).RollUp)),
			command("split", "Splits x: into integer and decimal parts.", split),
			command("stats", "Summary stats (non-destructive).", stats),
			command("swap", "Swap x: and y: values on the stack.", stackOp((*Stack).Swap)),
			command("tape", "Display tape from current session.", tape),
			command("trim", "Remove stack, except the x:, y:, z:, and t:.", stackOp((*Stack).Trim)),
		},
	}, {
		Title: "USER-DEFINED",
		Ops: []*Op{
			command("userop", "List user-defined operations.", listMacros),
			command("user", "Add/edit user-defined operations.", editMacros),
		},
	}}
}

func stackOp(f func(s *Stack)) func(c *Calc) error {
	return func(c *Calc) error {
		f(c.Stack)
		return nil
	}
}

func lastX(c *Calc) error {
	c.Stack.Push(c.History.LastX())
	return nil
}

// split leaves x in place and pushes its
// integer and fractional parts.
func split(c *Calc) error {
	x := c.Stack.Peek(0)
	c.Stack.Push(x.Trunc())
	c.Stack.Push(x.Frac())
	return nil
}

// random pushes a random integer between y and x inclusive,
// leaving both bounds on the stack.
func random(c *Calc) error {
	if c.Stack.Len() < 2 {
		return errors.Becausef(nil, ErrStackUnderflow, "Enter the bounds of the range first. Example: 1 100 rand")
	}
	lo, hi := c.Stack.Peek(1).BigInt(), c.Stack.Peek(0).BigInt()
	switch lo.Cmp(hi) {
	case 0:
		return domainf("Must have a range of numbers.")
	case 1:
		lo, hi = hi, lo
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	r := new(big.Int).Rand(c.rand, span)
	c.Stack.Push(num.FromBigInt(r.Add(r, lo)))
	return nil
}

// roundY pops x and rounds y to x decimal places.
func roundY(c *Calc) error {
	x, y := c.Stack.Peek(0), c.Stack.Peek(1)
	if x.Sign() < 0 {
		return domainf("Cannot round by a negative number.")
	}
	places, ok := x.Trunc().Int64()
	if !ok || places > num.Precision {
		return domainf("Cannot round to more than %d places.", num.Precision)
	}
	r, err := num.Round(y, int32(places))
	if err != nil {
		return domainf("Cannot round %v to %d places.", y, places)
	}
	c.Stack.Pop()
	c.Stack.Set(0, r)
	return nil
}

// fraction expresses the fractional part of y as a number of
// x-ths. It pops x and pushes the integer part of y, the
// numerator and x, so that 2.25 8 i gives 2 2 8.
func fraction(c *Calc) error {
	x, y := c.Stack.Peek(0), c.Stack.Peek(1)
	if x.IsZero() {
		return usagef("Enter: 3.25 then 8i\nReturns: 3.25 3 2 8, meaning 3.25\" = 3 2/8\"")
	}
	part, err := num.Mul(y.Frac(), x)
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	c.Stack.Pop()
	c.Stack.Push(y.Trunc())
	c.Stack.Push(part)
	c.Stack.Push(x)
	return nil
}

func formatInt(i *big.Int, prefix string, base int) string {
	s := strings.ToUpper(i.Text(base))
	if strings.HasPrefix(s, "-") {
		return "-" + prefix + s[1:]
	}
	return prefix + s
}

func decToBin(c *Calc) error {
	c.ui.Print(boxed("", formatInt(c.Stack.Peek(0).BigInt(), "0b", 2)))
	return nil
}

func decToHex(c *Calc) error {
	c.ui.Print(boxed("", formatInt(c.Stack.Peek(0).BigInt(), "0x", 16)))
	return nil
}

func binToDec(c *Calc) error {
	return usagef("Enter binary values preceded with \"0b\".\nExample: 0b1000")
}

func hexToDec(c *Calc) error {
	return usagef("Enter hex values preceded with \"0x\".\nExample: 0xA")
}

// pushInt pushes the integer written at the start of line
// in hexadecimal ("0x") or binary ("0b").
func (c *Calc) pushInt(line string) error {
	word := strings.Fields(line)[0]
	base, what, example := 16, "hex", "0xA"
	if strings.HasPrefix(word, "0b") {
		base, what, example = 2, "binary", "0b1000"
	}
	i, ok := new(big.Int).SetString(word[2:], base)
	if !ok {
		return domainf("Not a valid %s value.\nExample: %s", what, example)
	}
	c.Stack.Push(num.FromBigInt(i))
	return nil
}

// pushColor pushes the red, green and blue components
// of a colour written as #rrggbb.
func (c *Calc) pushColor(line string) error {
	fields := strings.Fields(strings.TrimPrefix(line, "#"))
	if len(fields) == 0 || len(fields[0]) < 6 {
		return domainf("Not a valid hex color.")
	}
	var rgb [3]num.Number
	for i := range rgb {
		v, err := strconv.ParseUint(fields[0][2*i:2*i+2], 16, 8)
		if err != nil {
			return domainf("Not a valid hex color.")
		}
		rgb[i] = num.FromInt(int64(v))
	}
	for _, v := range rgb {
		c.Stack.Push(v)
	}
	return nil
}

func hexToRGB(c *Calc) error {
	return usagef("You must provide a hex value.\nExample: #b31b1b")
}

// rgbToHex shows z, y and x as a hex colour.
func rgbToHex(c *Calc) error {
	var rgb [3]interface{}
	for i := range rgb {
		v, ok := c.Stack.Peek(2 - i).Trunc().Int64()
		if !ok || v < 0 || v > 255 {
			return domainf("r, g, or b not in the range of 0 to 255.")
		}
		rgb[i] = v
	}
	c.ui.Print(boxed("", fmt.Sprintf("#%02x%02x%02x", rgb[:]...)))
	return nil
}

type alphaCode struct {
	percent, code string
}

// alphaCodes maps percentage opacity to the
// alpha component of a hex colour.
var alphaCodes = []alphaCode{
	{"100", "FF"},
	{"95", "F2"},
	{"90", "E6"},
	{"85", "D9"},
	{"80", "CC"},
	{"75", "BF"},
	{"70", "B3"},
	{"65", "A6"},
	{"60", "99"},
	{"55", "8C"},
	{"50", "80"},
	{"45", "73"},
	{"40", "66"},
	{"35", "59"},
	{"30", "4D"},
	{"25", "40"},
	{"20", "33"},
	{"15", "26"},
	{"10", "1A"},
	{"5", "0D"},
	{"0", "00"},
}

var hundred = num.FromInt(100)

func alpha(c *Calc) error {
	x := c.Stack.Peek(0)
	if x.Sign() < 0 || x.Cmp(hundred) > 0 {
		return domainf("Alpha value must be between 0 and 100.")
	}
	pc, _ := x.Trunc().Int64()
	key := strconv.FormatInt(pc, 10)
	for _, a := range alphaCodes {
		if a.percent == key {
			c.ui.Print(boxed("", "alpha: "+a.code))
			return nil
		}
	}
	return domainf("No alpha value for %s%%. Use list_alpha to see the values available.", key)
}

func listAlpha(c *Calc) error {
	var b strings.Builder
	for _, a := range alphaCodes {
		fmt.Fprintf(&b, "%3s: %s\n", a.percent, a.code)
	}
	c.ui.Print(boxed("ALPHA VALUES", b.String()))
	return nil
}

func listStack(c *Calc) error {
	items := c.Stack.Items()
	for len(items) < 4 {
		items = append(items, num.Zero)
	}
	c.ui.Print(boxed("CURRENT STACK", c.Settings.Stack(items)))
	return nil
}

// stats shows summary statistics for the stack. Zeros at the
// bottom of the stack are left out, but x is always included.
func stats(c *Calc) error {
	vals := c.Stack.Items()
	n := len(vals)
	for n > 1 && vals[n-1].IsZero() {
		n--
	}
	vals = vals[:n]
	if len(vals) == 0 {
		vals = []num.Number{num.Zero}
	}
	count := num.FromInt(int64(len(vals)))
	sum := num.Zero
	for _, v := range vals {
		var err error
		if sum, err = num.Add(sum, v); err != nil {
			return errors.Note(err, errors.Any, "")
		}
	}
	mean, err := num.Quo(sum, count)
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	sorted := append([]num.Number(nil), vals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Cmp(sorted[j]) < 0
	})
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median, err = num.Add(sorted[len(sorted)/2-1], median)
		if err == nil {
			median, err = num.Quo(median, num.FromInt(2))
		}
		if err != nil {
			return errors.Note(err, errors.Any, "")
		}
	}
	format := c.Settings.Format
	var b strings.Builder
	fmt.Fprintf(&b, "        Count: %d\n", len(vals))
	fmt.Fprintf(&b, "         Mean: %s\n", format(mean))
	fmt.Fprintf(&b, "       Median: %s\n", format(median))
	note := ""
	if sd, err := stdDev(vals, mean); err != nil {
		fmt.Fprintf(&b, "      Std Dev: not computed\n")
		note = "\nStandard deviation requires at least two non-zero data points.\n"
	} else {
		fmt.Fprintf(&b, "      Std Dev: %s\n", format(sd))
	}
	fmt.Fprintf(&b, "      Minimum: %s\n", format(sorted[0]))
	fmt.Fprintf(&b, "      Maximum: %s\n", format(sorted[len(sorted)-1]))
	fmt.Fprintf(&b, "          Sum: %s\n", format(sum))
	b.WriteString(note)
	c.ui.Print(boxed("SUMMARY STATISTICS", b.String()) +
		"\nZero values 'above' the first (top) non-zero element in\nthe stack were ignored. Use list to inspect the stack.")
	return nil
}

// stdDev returns the sample standard deviation of vals.
func stdDev(vals []num.Number, mean num.Number) (num.Number, error) {
	if len(vals) < 2 {
		return num.Number{}, errors.Newf("too few values")
	}
	ss := num.Zero
	for _, v := range vals {
		d, err := num.Sub(v, mean)
		if err == nil {
			d, err = num.Mul(d, d)
		}
		if err == nil {
			ss, err = num.Add(ss, d)
		}
		if err != nil {
			return num.Number{}, errors.Note(err, errors.Any, "")
		}
	}
	variance, err := num.Quo(ss, num.FromInt(int64(len(vals)-1)))
	if err != nil {
		return num.Number{}, errors.Note(err, errors.Any, "")
	}
	return num.Sqrt(variance)
}

func tape(c *Calc) error {
	if len(c.tape) == 0 {
		c.ui.Print(boxed("TAPE", "Nothing has been entered yet."))
		return nil
	}
	var b strings.Builder
	for i, line := range c.tape {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	c.ui.Print(boxed("TAPE", b.String()))
	return nil
}

// importFile replaces the stack with the numbers read
// from a file, the first number becoming x.
func importFile(c *Calc) error {
	path, err := c.ui.Prompt("File name: ")
	if err != nil {
		return errors.Note(err, errors.Any, "")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	res, err := numfile.ReadFile(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return errors.Becausef(nil, ErrUsage, "File not found. Stack unmodified.")
		}
		return errors.Note(err, errors.Any, "")
	}
	if len(res.Numbers) > 0 {
		c.Stack.SetItems(res.Numbers)
	}
	c.ui.Print(boxed("REPORT", res.String()))
	return nil
}

// editSettings lets the user change the display settings,
// saving them when done.
func editSettings(c *Calc) error {
	err := c.settingsMenu()
	if saveErr := c.save(store.Settings, c.Settings.Map()); err == nil {
		err = saveErr
	}
	return err
}

func (c *Calc) settingsMenu() error {
	for {
		c.ui.Print(boxed("CURRENT SETTINGS", c.Settings.String()))
		choice, err := c.ui.Prompt("Set decimal <p>oint, thousands <s>eparator, number <n>otation or <e>xit: ")
		if err != nil {
			return errors.Note(err, errors.Any, "")
		}
		var question string
		var set func(string) error
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "p":
			question, set = fmt.Sprintf("Enter number of decimal points (0-%d): ", num.Precision), c.Settings.SetPlaces
		case "s":
			question, set = "Thousands separator ('none' or ','): ", c.Settings.SetSeparator
		case "n":
			question, set = "Number notation ('<n>ormal' or '<s>cientific'): ", c.Settings.SetNotation
		default:
			return nil
		}
		v, err := c.ui.Prompt(question)
		if err != nil {
			return errors.Note(err, errors.Any, "")
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		if err := set(v); err != nil {
			c.ui.Notify(err.Error())
		}
	}
}
