package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"golang.org/x/term"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/calc"
	"github.com/rogpeppe/rpn/display"
	"github.com/rogpeppe/rpn/store"
)

var (
	configFile = flag.String("config", filepath.Join(configDir(), "config.yaml"), "configuration file")
	storeDir   = flag.String("dir", "", "directory for saved state (overrides config)")
	storeFmt   = flag.String("format", "", "format of saved state files, json or yaml (overrides config)")
	mysqlDSN   = flag.String("mysql", "", "save state in the MySQL database with this data source name")
	acmeMode   = flag.Bool("acme", false, "run in an acme window")
	debug      = flag.Bool("debug", false, "print debugging information")
	logLevel   = flag.String("loglevel", "", "log level: debug, verbose, info, warning or error")
)

// errReported is returned by run when the errors
// have already been shown to the user.
var errReported = errors.New("errors reported")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: rpn [flags] [expression...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		if err == errReported {
			os.Exit(1)
		}
		log.Fatalf("rpn: %v", err)
	}
}

func run(args []string) error {
	cfg, err := readConfig(*configFile)
	if err != nil {
		return errors.Wrap(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Store.Dir = *storeDir
		case "format":
			cfg.Store.Format = *storeFmt
		case "mysql":
			cfg.Store.MySQL = *mysqlDSN
		case "acme":
			cfg.Acme = *acmeMode
		case "loglevel":
			cfg.LogLevel = *logLevel
		}
	})
	if *debug {
		cfg.LogLevel = "debug"
	}
	level, err := log.ValidateLevel(cfg.LogLevel)
	if err != nil {
		return errors.Notef(err, nil, "bad log level %q", cfg.LogLevel)
	}
	log.SetLogLevel(level)

	st, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return errors.Wrap(err)
	}
	defer closeStore()
	log.LogVf("store %#v", cfg.Store)

	switch {
	case len(args) > 0:
		return evalArgs(st, args)
	case cfg.Acme:
		return runAcme(st)
	case term.IsTerminal(int(os.Stdin.Fd())):
		return interact(st, cfg.HistoryFile)
	}
	return evalLines(st)
}

func newCalc(ui calc.UI, st store.Store) (*calc.Calc, error) {
	c, err := calc.New(calc.Config{
		UI:    ui,
		Store: st,
	})
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return c, nil
}

// evalArgs evaluates the command line arguments
// as a single line and prints the registers.
func evalArgs(st store.Store, args []string) error {
	c, err := newCalc(display.NewPlain(os.Stdout, nil), st)
	if err != nil {
		return errors.Wrap(err)
	}
	err = c.Exec(strings.Join(args, " "))
	fmt.Print(registers(c))
	if err != nil && errors.Cause(err) != calc.ErrQuit {
		return errReported
	}
	return nil
}

// registers returns the registers of c formatted for display,
// cut to the terminal width when it is narrower than the registers.
func registers(c *calc.Calc) string {
	text := c.Settings.Registers(c.Stack.Items())
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return text
	}
	return fitWidth(text, width)
}

// fitWidth cuts each line of text that is wider than width,
// keeping the register name and the low digits.
func fitWidth(text string, width int) string {
	if width <= 8 {
		return text
	}
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		r := []rune(strings.TrimSuffix(line, "\n"))
		if len(r) > width {
			r = append(append(r[:3:3], '.', '.', '.'), r[len(r)-width+6:]...)
		}
		b.WriteString(string(r))
		if strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
