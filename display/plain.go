package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/errgo.v2/fmt/errors"
)

// Plain is a user interface that writes to an io.Writer
// and reads answers to prompts from an io.Reader.
type Plain struct {
	w io.Writer
	r *bufio.Reader
}

// NewPlain returns a Plain that writes to w and reads from r.
// If r is nil, all prompts are answered with the empty string.
func NewPlain(w io.Writer, r io.Reader) *Plain {
	p := &Plain{w: w}
	if r != nil {
		p.r = bufio.NewReader(r)
	}
	return p
}

// Notify writes an error notice, framed so that it
// stands out from ordinary output.
func (p *Plain) Notify(msg string) {
	rule := strings.Repeat("=", 45)
	fmt.Fprintf(p.w, "%s\n%s\n%s\n", rule, strings.TrimRight(msg, "\n"), rule)
}

// Print writes text, adding a final newline if needed.
func (p *Plain) Print(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	io.WriteString(p.w, text)
}

// Prompt writes the question and returns the next line read,
// without its trailing newline.
func (p *Plain) Prompt(question string) (string, error) {
	io.WriteString(p.w, question)
	if p.r == nil {
		return "", nil
	}
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Note(err, errors.Is(io.EOF), "")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
