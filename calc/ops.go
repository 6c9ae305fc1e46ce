package calc

import (
	"math"
	"math/big"

	"github.com/rogpeppe/rpn/num"
)

func unary(name, help string, f func(x num.Number) (num.Number, error)) *Op {
	return &Op{Name: name, Kind: Unary, Help: help, unary: f}
}

func binary(name, help string, f func(y, x num.Number) (num.Number, error)) *Op {
	return &Op{Name: name, Kind: Binary, Help: help, binary: f}
}

func command(name, help string, f func(c *Calc) error) *Op {
	return &Op{Name: name, Kind: Command, Help: help, command: f}
}

func memory(name, help string, f func(c *Calc) error) *Op {
	return &Op{Name: name, Kind: Memory, Help: help, command: f}
}

func constant(name, help, value string) *Op {
	return &Op{Name: name, Kind: Constant, Help: help, value: num.MustParse(value)}
}

var (
	pi    = num.MustParse("3.141592653589793238462643383")
	inch  = num.MustParse("2.54")
	pound = num.MustParse("2.2046226218")
	mile  = num.MustParse("0.62137119224")
	ounce = num.MustParse("453.59237")
	cmH2O = num.MustParse("1.3595100263597")
	n5    = num.FromInt(5)
	n9    = num.FromInt(9)
	n16   = num.FromInt(16)
	n32   = num.FromInt(32)
	n180  = num.FromInt(180)
	one   = num.FromInt(1)
)

// maxFactorial holds the largest argument accepted by "!".
const maxFactorial = 10000

func mathSections() []Section {
	return []Section{{
		Title: "GENERAL",
		Ops: []*Op{
			unary("abs", "absolute value of x:", absolute),
			unary("ceil", "6.3->7", ceil),
			unary("!", "x: factorial", factorial),
			unary("floor", "6.9->6", floor),
			unary("log", "log10(x:)", log10),
			unary("ln", "natural log of x:", ln),
			unary("exp", "e to the power in x:", num.Exp),
			unary("inv", "1/x:", inverse),
			unary("neg", "negative of x:", negate),
			&Op{Name: "pi", Kind: Constant, Help: "pi", value: pi},
			command("rand", "random int between x: and y:", random),
			command("round", "round y: by x:", roundY),
			unary("sqrt", "sqrt(x:)", sqrt),
		},
	}, {
		Title: "TRIGONOMETRY",
		Ops: []*Op{
			unary("cos", "cos(x:) -- x: must be radians", floatFunc(math.Cos)),
			unary("sin", "sin(x:) -- x: must be radians", floatFunc(math.Sin)),
			unary("tan", "tan(x:) -- x: must be radians", floatFunc(math.Tan)),
			unary("acos", "acos(x:) -- result in radians", floatFunc(math.Acos)),
			unary("asin", "asin(x:) -- result in radians", floatFunc(math.Asin)),
			unary("atan", "atan(x:) -- result in radians", floatFunc(math.Atan)),
			unary("deg", "convert angle x: in radians to degrees", degrees),
			unary("rad", "convert angle x: in degrees to radians", radians),
		},
	}, {
		Title: "CONVERSIONS",
		Ops: []*Op{
			command("decbin", "Convert x: from decimal to binary.", decToBin),
			command("bindec", `Convert "0b..." from binary to decimal.`, binToDec),
			command("dechex", "Convert x: from decimal to hex.", decToHex),
			command("hexdec", `Convert "0x..." from hex to decimal.`, hexToDec),
			unary("ic", "Convert inches to centimeters.", scale(inch, true)),
			unary("ci", "Convert centimeters to inches.", scale(inch, false)),
			unary("cf", "Convert centigrade to Fahrenheit.", celsiusToFahrenheit),
			unary("fc", "Convert Fahrenheit to centigrade.", fahrenheitToCelsius),
			unary("go", "Convert weight from grams to ounces.", gramsToOunces),
			unary("og", "Convert weight from ounces to grams.", ouncesToGrams),
			command("i", "Convert decimal measure to fraction.", fraction),
			unary("kp", "Convert kilograms to pounds.", scale(pound, true)),
			unary("pk", "Convert pounds to kilograms.", scale(pound, false)),
			unary("km", "Convert kilometers to miles.", scale(mile, true)),
			unary("mk", "Convert miles to kilometers.", scale(mile, false)),
			unary("cm", "Convert cmH2O to mmHg.", scale(cmH2O, false)),
			unary("mc", "Convert mmHg to cmH2O.", scale(cmH2O, true)),
		},
	}, {
		Title: "STANDARD OPERATORS",
		Ops: []*Op{
			binary("+", "y: + x:", num.Add),
			binary("-", "y: - x:", num.Sub),
			binary("*", "y: * x:", num.Mul),
			binary("/", "y: / x:", quo),
			binary("%", "modulo; remainder after division", rem),
			binary("^", "y: to the power in x:", power),
		},
	}}
}

func constants() []*Op {
	return []*Op{
		constant("e", "e (Euler's number)", "2.7182818284590452353602874714"),
		constant("avogadro", "Avogadro's number", "6.0221409e+23"),
		constant("golden_ratio", "golden ratio", "1.61803398874989484820"),
		constant("gram", "ounces in a gram", "0.03527396195"),
		constant("inches_hg", "inches of Hg in a mmHg", "25.399999705"),
		constant("light", "speed of light, m/s", "299792458"),
		constant("mmhg", "inches of water in a mmHg", "0.53524017145"),
		constant("parsec", "miles in a parsec", "19173510995000"),
	}
}

var aliases = []struct {
	name, to string
}{
	{"x", "*"},
	{"negate", "neg"},
}

var shortcuts = []Shortcut{
	{"c", "clear", "Clear all elements from the stack"},
	{"d", "drop", "Drop the last element off the stack"},
	{"h", "", "Help for a single command"},
	{"n", "neg", "Negative of x:"},
	{"q", "", "Quit"},
	{"r", "round", "round y by x:"},
	{"rd", "rolldown", "Roll the stack down"},
	{"ru", "rollup", "Roll the stack up"},
	{"s", "swap", "Swap x: and y: values on the stack"},
}

var phrases = []Phrase{
	{"decimal to binary", "decbin", "Convert decimal to binary."},
	{"decimal to hex", "dechex", "Convert decimal to hex."},
	{"inches to centimeters", "ic", "Convert inches to centimeters."},
	{"centimeters to inches", "ci", "Convert centimeters to inches."},
	{"centigrade to fahrenheit", "cf", "Convert centigrade to Fahrenheit."},
	{"fahrenheit to centigrade", "fc", "Convert Fahrenheit to centigrade."},
	{"grams to ounces", "go", "Convert from grams to ounces."},
	{"ounces to grams", "og", "Convert from ounces to grams."},
	{"decimal to fraction", "i", "Convert decimal to fraction."},
	{"kilograms to pounds", "kp", "Convert kilograms to pounds."},
	{"pounds to kilograms", "pk", "Convert pounds to kilograms."},
	{"kilometers to miles", "km", "Convert kilometers to miles."},
	{"miles to kilometers", "mk", "Convert miles to kilometers."},
	{"cm water to mmhg", "cm", "Convert cm water to mmHg."},
	{"mmhg to cm water", "mc", "Convert mmHg to cm water."},
	{"userops", "userop", ""},
	{"user operations", "userop", ""},
	{"useroperations", "userop", ""},
}

func absolute(x num.Number) (num.Number, error) {
	return x.Abs(), nil
}

func negate(x num.Number) (num.Number, error) {
	return x.Neg(), nil
}

func ceil(x num.Number) (num.Number, error) {
	return num.Ceil(x), nil
}

func floor(x num.Number) (num.Number, error) {
	return num.Floor(x), nil
}

func factorial(x num.Number) (num.Number, error) {
	if x.Sign() < 0 {
		return num.Number{}, domainf("Factorial not defined for negative numbers.")
	}
	n, ok := x.Trunc().Int64()
	if !ok || n > maxFactorial {
		return num.Number{}, domainf("Factorial of %v is too large to compute.", x.Trunc())
	}
	return num.FromBigInt(new(big.Int).MulRange(1, n)), nil
}

func log10(x num.Number) (num.Number, error) {
	if x.Sign() <= 0 {
		return num.Number{}, domainf("Cannot return log of numbers <= 0.")
	}
	return num.Log10(x)
}

func ln(x num.Number) (num.Number, error) {
	if x.Sign() <= 0 {
		return num.Number{}, domainf("Cannot return log of numbers <= 0.")
	}
	return num.Ln(x)
}

func inverse(x num.Number) (num.Number, error) {
	return quo(one, x)
}

func sqrt(x num.Number) (num.Number, error) {
	if x.Sign() < 0 {
		return num.Number{}, domainf("Square root of a negative number is undefined.")
	}
	return num.Sqrt(x)
}

func floatFunc(f func(float64) float64) func(num.Number) (num.Number, error) {
	return func(x num.Number) (num.Number, error) {
		return num.Float(f, x)
	}
}

func degrees(x num.Number) (num.Number, error) {
	d, err := num.Mul(x, n180)
	if err != nil {
		return num.Number{}, err
	}
	return num.Quo(d, pi)
}

func radians(x num.Number) (num.Number, error) {
	r, err := num.Mul(x, pi)
	if err != nil {
		return num.Number{}, err
	}
	return num.Quo(r, n180)
}

// scale returns a function that multiplies by factor
// or, if mul is false, divides by it.
func scale(factor num.Number, mul bool) func(num.Number) (num.Number, error) {
	return func(x num.Number) (num.Number, error) {
		if mul {
			return num.Mul(x, factor)
		}
		return num.Quo(x, factor)
	}
}

// celsiusToFahrenheit returns (9/5)x + 32, to one decimal place.
func celsiusToFahrenheit(x num.Number) (num.Number, error) {
	f, err := num.Mul(x, n9)
	if err == nil {
		f, err = num.Quo(f, n5)
	}
	if err == nil {
		f, err = num.Add(f, n32)
	}
	if err != nil {
		return num.Number{}, err
	}
	return num.Round(f, 1)
}

// fahrenheitToCelsius returns (5/9)(x - 32), to one decimal place.
func fahrenheitToCelsius(x num.Number) (num.Number, error) {
	c, err := num.Sub(x, n32)
	if err == nil {
		c, err = num.Mul(c, n5)
	}
	if err == nil {
		c, err = num.Quo(c, n9)
	}
	if err != nil {
		return num.Number{}, err
	}
	return num.Round(c, 1)
}

func gramsToOunces(x num.Number) (num.Number, error) {
	g, err := num.Mul(x, n16)
	if err != nil {
		return num.Number{}, err
	}
	return num.Quo(g, ounce)
}

func ouncesToGrams(x num.Number) (num.Number, error) {
	g, err := num.Mul(x, ounce)
	if err != nil {
		return num.Number{}, err
	}
	return num.Quo(g, n16)
}

func quo(y, x num.Number) (num.Number, error) {
	if x.IsZero() {
		return num.Number{}, domainf("Cannot divide by zero.")
	}
	return num.Quo(y, x)
}

func rem(y, x num.Number) (num.Number, error) {
	if x.IsZero() {
		return num.Number{}, domainf("Cannot divide by zero.")
	}
	return num.Rem(y, x)
}

func power(y, x num.Number) (num.Number, error) {
	if y.Sign() < 0 && !x.IsInt() {
		return num.Number{}, domainf("Cannot find root of a negative number.")
	}
	return num.Pow(y, x)
}
