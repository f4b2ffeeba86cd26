package literal

import "github.com/coregx/ahocorasick"

// Prefilter locates candidate match-start offsets for a Seq of required
// literals using an Aho-Corasick automaton, the same library the teacher
// reaches for once a pattern has too many literal alternatives to probe
// one at a time (meta/compile.go's UseAhoCorasick strategy). Here it backs
// every qualifying pattern, single-literal or alternation alike, since the
// backtracking evaluator this prefilter feeds has no DFA fast path of its
// own to fall back on.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// NewPrefilter builds a Prefilter from seq, or returns (nil, false) if seq
// is empty or any literal in it is shorter than minLen — in either case
// the caller should fall back to probing every input position directly.
// Every literal must qualify: an automaton missing one alternative would
// skip past positions where that alternative starts a match.
func NewPrefilter(seq *Seq, minLen int) (*Prefilter, bool) {
	if seq.IsEmpty() {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		if lit.Len() < minLen {
			return nil, false
		}
		builder.AddPattern(lit.Bytes)
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{automaton: automaton}, true
}

// NextCandidate reports the next offset at or after at where one of the
// Prefilter's literals occurs in haystack, or (0, false) if none remain.
func (p *Prefilter) NextCandidate(haystack []byte, at int) (int, bool) {
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}

// IsMatch reports whether any of the Prefilter's literals occurs anywhere
// in haystack. Used as a cheap pre-check before running the evaluator.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}
