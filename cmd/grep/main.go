// Command grep is a small grep-alike built on package regrep: it compiles
// a single POSIX-ERE-subset pattern and applies it line-by-line to stdin,
// files, or (with -r) whole directory trees.
//
// Usage:
//
//	grep -E PATTERN [PATH...]
//	grep -E -r PATTERN DIR [DIR...]
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/coregx/regrep"
)

// options mirrors original_source's ProgramArgs, except -E is actually
// enforced here: go-flags' required tag can't express "this bool must be
// set" (false is its own valid zero value), so presence is checked by hand
// in run after parsing.
type options struct {
	Extended  bool `short:"E" description:"use extended regular expression syntax (required)"`
	Recursive bool `short:"r" description:"recurse into directories"`

	Positional struct {
		Pattern string   `positional-arg-name:"PATTERN"`
		Paths   []string `positional-arg-name:"PATH"`
	} `positional-args:"yes"`
}

const (
	exitMatched    = 0
	exitNoMatch    = 1
	exitArgError   = 2
	exitRuntimeErr = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		fmt.Fprintln(stderr, err)
		return exitArgError
	}
	if !opts.Extended {
		fmt.Fprintln(stderr, "grep: -E is required")
		return exitArgError
	}
	if opts.Positional.Pattern == "" {
		fmt.Fprintln(stderr, "grep: PATTERN is required")
		return exitArgError
	}

	pattern, err := regrep.Compile(opts.Positional.Pattern)
	if err != nil {
		fmt.Fprintf(stderr, "grep: bad pattern: %v\n", err)
		return exitArgError
	}

	inputs, err := openInputs(opts.Positional.Paths, opts.Recursive, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "grep: %v\n", errors.Cause(err))
		var argErr *argError
		if errors.As(err, &argErr) {
			return exitArgError
		}
		return exitRuntimeErr
	}
	defer closeInputs(inputs)

	matched, err := scanAll(inputs, pattern, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "grep: %v\n", errors.Cause(err))
		return exitRuntimeErr
	}

	if matched {
		return exitMatched
	}
	return exitNoMatch
}
