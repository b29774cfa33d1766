// Package main is the entry point for attrdump, which prints the attribute
// runs of a fixture file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/attrtext/internal/attrstr"
	"github.com/dshills/attrtext/internal/fixture"
	"github.com/dshills/attrtext/internal/logging"
)

// Version information (set via ldflags during build).
var version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitLoad  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// keyList collects repeated -key flags.
type keyList []attrstr.Key

func (k *keyList) String() string {
	parts := make([]string, len(*k))
	for i, key := range *k {
		parts[i] = string(key)
	}
	return strings.Join(parts, ",")
}

func (k *keyList) Set(s string) error {
	if s == "" {
		return errors.New("empty key")
	}
	*k = append(*k, attrstr.Key(s))
	return nil
}

type options struct {
	logLevel    string
	keys        keyList
	showVersion bool
	path        string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("attrdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.Var(&opts.keys, "key", "Attribute key to print forward extents for (repeatable)")
	fs.Var(&opts.keys, "k", "Attribute key (shorthand)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "attrdump - print attribute runs of a fixture\n\n")
		fmt.Fprintf(stderr, "Usage: attrdump [options] fixture.toml\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("expected exactly one fixture path")
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "attrdump %s\n", version)
		return exitOK
	}

	level, ok := logging.ParseLevel(opts.logLevel)
	if !ok {
		fmt.Fprintf(stderr, "Error: invalid log level %q\n", opts.logLevel)
		return exitUsage
	}
	log := logging.New(logging.Config{Level: level, Output: stderr, Prefix: "attrdump"})

	s, err := fixture.NewLoader(fixture.WithLogger(log)).Load(opts.path)
	if err != nil {
		log.Error("%v", err)
		return exitLoad
	}

	dump(stdout, attrstr.NewView(s), opts.keys)
	return exitOK
}

// dump writes the whole-set runs of v and the forward extents of each key.
func dump(w io.Writer, v *attrstr.View, keys []attrstr.Key) {
	fmt.Fprintln(w, "runs:")
	for r, attrs := range v.Runs() {
		fmt.Fprintf(w, "  %s %q %s\n", r, v.Text().Slice(r), attrs)
	}

	for _, key := range keys {
		fmt.Fprintf(w, "key %s:\n", key)
		for r, l := range v.AttributeRuns(key) {
			fmt.Fprintf(w, "  %s %s\n", r, l)
		}
	}
}
