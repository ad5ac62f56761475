// Command coldb inspects and edits a coldb store from the shell.
//
// Each invocation opens the store, runs one command and exits; every
// mutating command rewrites the file before returning. Configuration comes
// from flags and an optional YAML file (-config).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jpl-au/coldb"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const usage = `usage: coldb [flags] <command> [args]

commands:
  header KEY COLUMN...        set the header row
  insert KEY COLUMN VALUE     write one cell
  get KEY COLUMN              read one cell
  add-row KEY [CELL...]       add or replace a row
  delete KEY                  delete a row
  rename OLD NEW              change a row key
  add-col NAME [DEFAULT]      append a column
  select [-rows A:B] [-cols a,b] [-out FILE]
  search [-col NAME] [-case] PATTERN
  show                        dump every row
  sum                         print the content checksum
  snapshot FILE               write a compressed snapshot
  restore FILE                replace rows from a snapshot
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "coldb: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("coldb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	dbPath := fs.String("db", "coldb.db", "Store file")
	configPath := fs.String("config", "", "YAML config file (optional)")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, *logLevel)
	if err != nil {
		return err
	}

	var cfg coldb.Config
	if *configPath != "" {
		if cfg, err = coldb.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	cfg.Logger = logger

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	s, err := coldb.Open(*dbPath, cfg)
	if err != nil {
		return err
	}
	logger.Debug("opened store", "path", s.Path(), "rows", s.Len())

	cmd, args := rest[0], rest[1:]
	switch cmd {
	case "header":
		if len(args) < 2 {
			return fmt.Errorf("%w: header KEY COLUMN...", errUsage)
		}
		return s.SetHeader(args[0], args[1:])
	case "insert":
		if len(args) != 3 {
			return fmt.Errorf("%w: insert KEY COLUMN VALUE", errUsage)
		}
		return s.Insert(args[0], args[1], args[2])
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("%w: get KEY COLUMN", errUsage)
		}
		v, err := s.Get(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, v)
		return nil
	case "add-row":
		if len(args) < 1 {
			return fmt.Errorf("%w: add-row KEY [CELL...]", errUsage)
		}
		return s.AddRow(args[0], args[1:])
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("%w: delete KEY", errUsage)
		}
		return s.DeleteRow(args[0])
	case "rename":
		if len(args) != 2 {
			return fmt.Errorf("%w: rename OLD NEW", errUsage)
		}
		return s.Rename(args[0], args[1])
	case "add-col":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: add-col NAME [DEFAULT]", errUsage)
		}
		def := ""
		if len(args) == 2 {
			def = args[1]
		}
		return s.AddColumn(args[0], def)
	case "select":
		return selectCmd(s, args, stdout, stderr)
	case "search":
		return searchCmd(s, args, stdout, stderr)
	case "show":
		return s.Display(stdout)
	case "sum":
		sum, err := s.Checksum()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, sum)
		return nil
	case "snapshot":
		if len(args) != 1 {
			return fmt.Errorf("%w: snapshot FILE", errUsage)
		}
		return snapshot(s, args[0])
	case "restore":
		if len(args) != 1 {
			return fmt.Errorf("%w: restore FILE", errUsage)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return s.Restore(f)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func selectCmd(s *coldb.Store, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rows := fs.String("rows", "", "Half-open row range A:B")
	cols := fs.String("cols", "", "Comma-separated column names")
	out := fs.String("out", "", "Write the selection to this file instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r *coldb.Range
	if *rows != "" {
		parsed, err := parseRange(*rows)
		if err != nil {
			return err
		}
		r = &parsed
	}
	var columns []string
	if *cols != "" {
		columns = strings.Split(*cols, ",")
	}

	sel, err := s.Select(r, columns)
	if err != nil {
		return err
	}
	if *out != "" {
		return sel.SaveAs(*out)
	}
	return sel.Display(stdout)
}

func searchCmd(s *coldb.Store, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	col := fs.String("col", "", "Only match this column")
	caseSensitive := fs.Bool("case", false, "Case-sensitive matching")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: search [-col NAME] [-case] PATTERN", errUsage)
	}

	opts := coldb.SearchOptions{CaseSensitive: *caseSensitive, Column: *col}
	for m, err := range s.Search(fs.Arg(0), opts) {
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", m.Key, m.Column, m.Value)
	}
	return nil
}

func snapshot(s *coldb.Store, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Snapshot(f)
}

// parseRange parses "A:B" into a half-open Range.
func parseRange(v string) (coldb.Range, error) {
	a, b, ok := strings.Cut(v, ":")
	if !ok {
		return coldb.Range{}, fmt.Errorf("%w: range %q must be A:B", errUsage, v)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return coldb.Range{}, fmt.Errorf("%w: range start %q: %w", errUsage, a, err)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return coldb.Range{}, fmt.Errorf("%w: range end %q: %w", errUsage, b, err)
	}
	return coldb.Range{Start: start, End: end}, nil
}

// newLogger returns a tint logger. Colour is enabled only when w is a
// terminal.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", errUsage, level)
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})), nil
}
