package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// argError marks a failure in the arguments themselves (e.g. a directory
// given without -r), distinct from an I/O failure while honoring them.
type argError struct {
	msg string
}

func (e *argError) Error() string { return e.msg }

// namedInput pairs a readable source with the name printed as its
// "<name>:" prefix when more than one input is active.
type namedInput struct {
	name   string
	r      io.Reader
	closer io.Closer
}

// openInputs resolves paths into a flat list of namedInputs, expanding any
// directory (only permitted when recursive is set) into the files beneath
// it. An empty paths list means read stdin, matching original_source's
// "no paths given" fallback.
func openInputs(paths []string, recursive bool, stdin io.Reader) ([]namedInput, error) {
	var inputs []namedInput

	for _, p := range paths {
		if p == "-" {
			inputs = append(inputs, namedInput{name: "-", r: stdin})
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %q", p)
		}

		if info.IsDir() {
			if !recursive {
				return nil, &argError{msg: "is a directory: " + p + " (use -r to search directories)"}
			}
			dirInputs, err := walkDir(p)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, dirInputs...)
			continue
		}

		f, err := os.Open(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open file %q", p)
		}
		inputs = append(inputs, namedInput{name: p, r: f, closer: f})
	}

	if len(inputs) == 0 {
		inputs = append(inputs, namedInput{name: "-", r: stdin})
	}
	return inputs, nil
}

// walkDir mirrors original_source's traversal: a stack of directories,
// each file's name made relative to the parent of the root directory
// argument, so `grep -E -r foo somedir` prints `somedir/file.txt:...`
// rather than an absolute or root-relative path.
func walkDir(root string) ([]namedInput, error) {
	base, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve path %q", root)
	}
	parent := filepath.Dir(base)

	var inputs []namedInput
	stack := []string{base}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read directory %q", dir)
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				stack = append(stack, full)
				continue
			}
			rel, err := filepath.Rel(parent, full)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to make path %q relative to %q", full, parent)
			}
			f, err := os.Open(full)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to open file %q", full)
			}
			inputs = append(inputs, namedInput{name: rel, r: f, closer: f})
		}
	}
	return inputs, nil
}

func closeInputs(inputs []namedInput) {
	for _, in := range inputs {
		if in.closer != nil {
			in.closer.Close()
		}
	}
}
