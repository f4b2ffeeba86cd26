// Package regrep implements a small POSIX-ERE-subset regular expression
// engine: a self-contained parser and resumable backtracking matcher
// supporting capture groups, alternation, greedy quantifiers, and
// back-references.
//
// Unlike package regexp, correctness here depends on the matcher being
// able to unwind a quantifier's greedy choice and re-enter it at a
// shallower position — required for patterns where a capture group is
// later re-matched via a back-reference. That resumable-evaluation core
// lives in package matcher; this package wires parser, literal prefilter,
// and matcher together behind Pattern's Compile/Test/Run surface.
//
// Basic usage:
//
//	re, err := regrep.Compile(`(\w+) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Test("cat and cat") {
//	    fmt.Println("matched")
//	}
//
// Non-goals: Unicode-aware character classes (ASCII semantics suffice),
// anchors other than ^ and $, non-greedy quantifiers, lookaround
// assertions, bounded {m,n} quantifiers, and named captures.
package regrep
