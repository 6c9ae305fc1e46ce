package calc

import (
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/num"
)

// Error causes. Every error returned by the calculator
// has one of these as its cause, except that an error from
// the UI's Prompt method is returned with its own cause.
var (
	// ErrSyntax is returned for lines that cannot be read,
	// such as those with unbalanced parentheses. Nothing
	// on the line is evaluated.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownSymbol is returned for a name that
	// is not an operator, command or constant.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrDomain is returned when an operator cannot be
	// applied to its operands, for example when dividing by zero.
	ErrDomain = errors.New("domain error")

	// ErrStackUnderflow is returned by operators that need
	// more values than there are on the stack and for which
	// treating the missing values as zero would be misleading.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrRegistry is returned when a memory register or
	// user-defined operation cannot be used as asked, or
	// when saved state cannot be written to the store.
	ErrRegistry = errors.New("registry error")

	// ErrUsage is returned when a command is used in a way
	// that it does not support.
	ErrUsage = errors.New("usage error")

	// ErrQuit is returned by Exec when the user asks to quit.
	ErrQuit = errors.New("quit")
)

// Errors holds the errors from evaluating a single line.
// Each error has already been reported to the user.
type Errors []error

func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// mathError converts an error from the num package into
// an error suitable for showing to the user.
func mathError(err error) error {
	if errors.Cause(err) == num.ErrDivisionByZero {
		return errors.Becausef(nil, ErrDomain, "Cannot divide by zero.")
	}
	return errors.Becausef(nil, ErrDomain, "Math domain error: the result is not a real number.")
}

func domainf(f string, a ...interface{}) error {
	return errors.Becausef(nil, ErrDomain, f, a...)
}

func usagef(f string, a ...interface{}) error {
	return errors.Becausef(nil, ErrUsage, f, a...)
}
