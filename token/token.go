// Package token splits calculator input lines into tokens.
//
// Input is free-form: spaces between tokens are optional, so
// "3 4+" and "3 4 +" are read the same way. A digit run ends at
// the first character that cannot continue a number, and a name
// run continues only while the following characters are lower
// case letters. Thus "3d" is the number 3 followed by the name d,
// while "dup" is a single name.
package token

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rogpeppe/rpn/num"
)

// Kind says what sort of token a Token is.
type Kind int

const (
	Number Kind = iota
	Symbol
	GroupOpen
	GroupClose
)

var kindNames = []string{
	Number:     "number",
	Symbol:     "symbol",
	GroupOpen:  "(",
	GroupClose: ")",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind%d", int(k))
	}
	return kindNames[k]
}

// Token is a single element of an input line.
type Token struct {
	Kind Kind
	// Text holds the text that the token was read from.
	// For a register reference, it holds the reference itself,
	// such as "y:".
	Text string
	// Num holds the value of a Number token.
	Num num.Number
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return t.Num.String()
	case GroupOpen:
		return "("
	case GroupClose:
		return ")"
	}
	return t.Text
}

// Num returns a number token.
func Num(n num.Number) Token {
	return Token{Kind: Number, Text: n.String(), Num: n}
}

// Sym returns a symbol token.
func Sym(s string) Token {
	return Token{Kind: Symbol, Text: s}
}

// Registers holds the names of the stack slots that can be
// referred to from an input line, in stack order.
var Registers = []string{"x:", "y:", "z:", "t:"}

// Lexer tokenizes input lines. The zero value is usable but
// treats no punctuation as an operator.
type Lexer struct {
	opChars string
}

// NewLexer returns a Lexer that treats any character in opChars
// as the possible start of a symbol. Typically opChars holds
// the single-character operator names, such as "+-*/".
func NewLexer(opChars string) *Lexer {
	return &Lexer{opChars: opChars}
}

// Balanced reports whether line holds as many
// opening as closing parentheses.
func Balanced(line string) bool {
	return strings.Count(line, "(") == strings.Count(line, ")")
}

// Tokenize splits line into tokens. Commas are removed before
// scanning, so "3,545" is the number 3545.
//
// A register reference such as "y:" is replaced by a Number token
// holding the value of the corresponding entry in regs (x at index 0).
// The indexes of all registers referenced are returned in consumed,
// in order of first reference; the caller is expected to reset those
// stack slots once the line has been read.
//
// Tokenize never fails: text that cannot be classified becomes a
// Symbol token, to be rejected when it is evaluated.
func (l *Lexer) Tokenize(line string, regs []num.Number) (toks []Token, consumed []int) {
	s := []rune(strings.Replace(line, ",", "", -1))
	for i := 0; i < len(s); {
		c := s[i]
		start := i
		i++
		switch {
		case c == '(' || c == ')':
		case isNumberChar(c):
			for i < len(s) && isNumberChar(s[i]) {
				i++
			}
		case c == 'M' && i < len(s) && strings.ContainsRune("+-DLR", s[i]):
			i++
		case isNameStart(c) || l.isOpChar(c):
			for i < len(s) && isNameChar(s[i]) {
				i++
			}
		case unicode.IsSpace(c) || c == ';':
			continue
		}
		run := string(s[start:i])
		if run == ":" {
			continue
		}
		if r := registerIndex(run); r >= 0 {
			var n num.Number
			if r < len(regs) {
				n = regs[r]
			}
			toks = append(toks, Token{Kind: Number, Text: run, Num: n})
			consumed = addIndex(consumed, r)
			continue
		}
		toks = append(toks, classify(run))
	}
	return toks, consumed
}

func classify(run string) Token {
	if n, err := num.Parse(run); err == nil && isNumberChar(rune(run[0])) {
		return Token{Kind: Number, Text: run, Num: n}
	}
	switch run {
	case "(":
		return Token{Kind: GroupOpen, Text: run}
	case ")":
		return Token{Kind: GroupClose, Text: run}
	}
	return Sym(run)
}

func (l *Lexer) isOpChar(c rune) bool {
	return strings.ContainsRune(l.opChars, c)
}

func registerIndex(run string) int {
	for i, r := range Registers {
		if r == run {
			return i
		}
	}
	return -1
}

func addIndex(xs []int, x int) []int {
	for _, y := range xs {
		if y == x {
			return xs
		}
	}
	return append(xs, x)
}

func isNumberChar(c rune) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

func isNameStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_' || c == ':'
}

func isNameChar(c rune) bool {
	return unicode.IsLower(c) || c == '_' || c == ':'
}
