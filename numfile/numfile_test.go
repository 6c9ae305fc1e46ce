package numfile_test

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/numfile"
)

var linesTests = []struct {
	input     string
	bufioSize int
	maxSize   int
	lines     []string
}{{
	input: `
one
two
three
`[1:],
	maxSize: 10,
	lines:   []string{"one", "two", "three"},
}, {
	input: `
01234567890123456789
01234567890123456
0123
`[1:],
	bufioSize: 16,
	maxSize:   18,
	lines:     []string{"012345678901234567", "01234567890123456", "0123"},
}, {
	input: `
0123456789abcdefghijklmnopqrstuvwxyz!@#$%%^&*
0123456789abcdefghijklmnopqrstuvwxyz!@#$%%^&*
`[1:],
	maxSize: 10,
	lines:   []string{"0123456789", "0123456789"},
}, {
	input:   "oneline",
	maxSize: 20,
	lines:   []string{"oneline"},
}, {
	input:   "\n\n",
	maxSize: 20,
	lines:   []string{"", ""},
}, {
	input:   "Peppé",
	maxSize: 5,
	lines:   []string{"Pepp"},
}, {
	input:   "1.5\r\n2\r\n",
	maxSize: 10,
	lines:   []string{"1.5", "2"},
}, {
	input:   "Peppé\nx",
	maxSize: 6,
	lines:   []string{"Peppé", "x"},
}, {
	input:   strings.Repeat("a", 5000) + "\nb\n",
	maxSize: 4100,
	lines:   []string{strings.Repeat("a", 4100), "b"},
}, {
	input:   strings.Repeat("a", 9000) + "\nb",
	maxSize: 10,
	lines:   []string{strings.Repeat("a", 10), "b"},
}}

func TestLines(t *testing.T) {
	for i, test := range linesTests {
		var r io.Reader = strings.NewReader(test.input)
		if test.bufioSize > 0 {
			r = bufio.NewReaderSize(r, test.bufioSize)
		}
		var lines []string
		err := numfile.Lines(r, test.maxSize, func(line string) error {
			lines = append(lines, line)
			return nil
		})
		if err != nil {
			t.Errorf("test %d; unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(lines, test.lines) {
			t.Errorf("test %d; want %q; got %q", i, test.lines, lines)
		}
	}
}

func TestLinesStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := numfile.Lines(strings.NewReader("a\nb\nc\n"), 10, func(string) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop || n != 2 {
		t.Fatalf("unexpected result %v after %d lines", err, n)
	}
}

func TestRead(t *testing.T) {
	res, err := numfile.Read(strings.NewReader("1\n  2.5 \n\nabc\n-3\n1,000\n"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, n := range res.Numbers {
		got = append(got, n.String())
	}
	if want := []string{"1", "2.5", "-3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %v; got %v", want, got)
	}
	if res.Lines != 6 {
		t.Errorf("want 6 lines; got %d", res.Lines)
	}
	if want := "   Lines in file: 6\nNumbers imported: 3"; res.String() != want {
		t.Errorf("unexpected report %q", res.String())
	}
}

func TestReadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "numfile")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "data.txt")
	if err := ioutil.WriteFile(path, []byte("10\n20\n"), 0666); err != nil {
		t.Fatal(err)
	}
	res, err := numfile.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Numbers) != 2 {
		t.Errorf("unexpected numbers %v", res.Numbers)
	}
	_, err = numfile.ReadFile(filepath.Join(dir, "missing"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("unexpected error %v", err)
	}
}

func ExampleLines() {
	input := `one two
three
four

five`
	r := strings.NewReader(input)
	numfile.Lines(r, 1024*1024, func(line string) error {
		fmt.Printf("%q\n", line)
		return nil
	})
	// Output:
	// "one two"
	// "three"
	// "four"
	// ""
	// "five"
}
