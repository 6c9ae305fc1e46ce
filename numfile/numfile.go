// Package numfile reads columns of numbers from text files.
package numfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/num"
)

// MaxLineSize holds the longest line that will be read.
// Longer lines are truncated.
const MaxLineSize = 1024

// Result holds the numbers read from a file.
type Result struct {
	// Lines holds the number of lines read.
	Lines int
	// Numbers holds the numbers found, in file order.
	Numbers []num.Number
}

// String returns a report of the import suitable for
// showing to the user.
func (r Result) String() string {
	return fmt.Sprintf("   Lines in file: %d\nNumbers imported: %d", r.Lines, len(r.Numbers))
}

// Read reads numbers from r, one to a line. Lines that do not
// hold a number, including blank lines, are skipped.
func Read(r io.Reader) (Result, error) {
	var res Result
	err := Lines(r, MaxLineSize, func(line string) error {
		res.Lines++
		n, err := num.Parse(strings.TrimSpace(line))
		if err == nil {
			res.Numbers = append(res.Numbers, n)
		}
		return nil
	})
	if err != nil {
		return Result{}, errors.Wrap(err)
	}
	return res, nil
}

// ReadFile is like Read but reads from the named file.
func ReadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Notef(err, os.IsNotExist, "cannot import")
	}
	defer f.Close()
	return Read(f)
}

// Lines calls fn with each line read from r, without its line
// terminator. Lines longer than maxSize bytes are cut short
// at a rune boundary. If fn returns an error, Lines stops
// and returns that error unchanged.
func Lines(r io.Reader, maxSize int, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := readLine(br, maxSize)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// readLine reads the next line from br, keeping at most
// maxSize bytes of it. It returns io.EOF only when there
// is nothing left to read.
func readLine(br *bufio.Reader, maxSize int) (string, error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		if len(buf) <= maxSize {
			buf = append(buf, chunk...)
		}
		switch err {
		case nil:
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(buf) == 0 {
				return "", io.EOF
			}
		default:
			return "", err
		}
		return clip(buf, maxSize), nil
	}
}

// clip removes the line terminator from p and cuts it
// to size bytes without splitting a UTF-8 sequence.
func clip(p []byte, size int) string {
	p = bytes.TrimSuffix(p, []byte("\n"))
	p = bytes.TrimSuffix(p, []byte("\r"))
	if len(p) > size {
		n := size
		for n > 0 && !utf8.RuneStart(p[n]) {
			n--
		}
		p = p[:n]
	}
	return string(p)
}
