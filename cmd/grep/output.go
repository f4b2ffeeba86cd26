package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/coregx/regrep"
)

// scanAll applies pattern to every line of every input, printing matching
// lines (name-prefixed when more than one input is active, per
// original_source's has_multiple_inputs) and reporting whether anything
// matched at all.
func scanAll(inputs []namedInput, pattern *regrep.Pattern, w io.Writer) (matched bool, err error) {
	multiple := len(inputs) > 1

	for _, in := range inputs {
		scanner := bufio.NewScanner(in.r)
		for scanner.Scan() {
			line := scanner.Text()
			if !pattern.Test(line) {
				continue
			}
			matched = true
			if multiple {
				fmt.Fprintf(w, "%s:%s\n", in.name, line)
			} else {
				fmt.Fprintln(w, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return matched, errors.Wrapf(err, "failed to read %q", in.name)
		}
	}
	return matched, nil
}
