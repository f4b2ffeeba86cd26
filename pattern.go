package regrep

import (
	"github.com/coregx/regrep/literal"
	"github.com/coregx/regrep/matcher"
	"github.com/coregx/regrep/parser"
)

// Pattern is a compiled regular expression.
//
// A Pattern is immutable once built and safe to share across goroutines
// for concurrent read-only matching (spec.md §5's scheduling model: no
// locks required, since no state is shared between evaluations).
type Pattern struct {
	source      string
	seq         []matcher.Node
	numCaptures int
	prefilter   *literal.Prefilter
	required    *literal.Prefilter
}

// Compile parses pattern and builds a Pattern using DefaultConfig.
//
// Example:
//
//	re, err := regrep.Compile(`(\w+) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns known to be valid at compile time, e.g. package-level vars.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("regrep: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// CompileWithConfig parses pattern and builds a Pattern using cfg.
func CompileWithConfig(pattern string, cfg Config) (*Pattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seq, n, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	p := &Pattern{source: pattern, seq: seq, numCaptures: n}
	if cfg.EnablePrefilter {
		start, required := literal.Extract(seq)
		if pf, ok := literal.NewPrefilter(start, cfg.MinPrefixLen); ok {
			p.prefilter = pf
		}
		if pf, ok := literal.NewPrefilter(required, cfg.MinPrefixLen); ok {
			p.required = pf
		}
	}
	return p, nil
}

// String returns the source pattern p was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// NumSubexp returns the number of capture groups in the pattern, not
// counting the whole match.
func (p *Pattern) NumSubexp() int {
	return p.numCaptures
}

// Test reports whether the pattern matches anywhere in line.
func (p *Pattern) Test(line string) bool {
	ok, _, _ := p.Run(line)
	return ok
}

// Run performs unanchored search (spec.md §4.5): try the compiled
// sequence at position 0, then each successive position, until one
// succeeds or the input is exhausted. On success it returns the matched
// substring and the captures from the successful attempt, excluding the
// implicit whole-match entry (spec.md §9 Open Question (b)). On failure
// the other return values are the zero value.
//
// When the pattern has a qualifying literal prefilter, positions that
// cannot possibly start a match are skipped via Aho-Corasick rather than
// probed one at a time; the result is identical either way.
//
// A required-substring check runs first when available: it rejects the
// whole line in one Aho-Corasick pass if a literal every match must
// contain is absent, without ever positioning a candidate start from it
// (that literal's own offset need not coincide with the match's start).
func (p *Pattern) Run(line string) (matched bool, substr string, captures []string) {
	input := []byte(line)

	if p.required != nil && !p.required.IsMatch(input) {
		return false, "", nil
	}

	pos := 0
	for {
		start := pos
		if p.prefilter != nil {
			cand, ok := p.prefilter.NextCandidate(input, pos)
			if !ok {
				return false, "", nil
			}
			start = cand
		}
		if start > len(input) {
			return false, "", nil
		}

		if ok, end, caps := matcher.MatchSequence(p.seq, p.numCaptures, input, start); ok {
			return true, string(input[start:end]), caps
		}

		pos = start + 1
	}
}
