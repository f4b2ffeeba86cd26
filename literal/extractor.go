package literal

import (
	"github.com/coregx/regrep/charclass"
	"github.com/coregx/regrep/matcher"
)

// Extract returns two Seqs for a parsed top-level sequence:
//
//   - start: literals that can anchor a candidate match-start position,
//     because the literal's own start coincides with the match's start.
//     Either a Complete literal per alternative (every branch of a
//     top-level alternation is a bare literal run, e.g. the parser's fold
//     of "cat|dog" into one implicit Group) or the longest
//     unconditionally-required run of leading literal bytes (see
//     requiredPrefix), or — when every branch of an alternation begins
//     with a literal run but isn't one all the way through — their
//     longest common leading literal run (see alternationRequiredPrefix).
//   - required: a literal that every match must contain somewhere, but
//     whose own position floats with preceding variable-width text (see
//     alternationRequiredSuffix), so it cannot anchor a candidate start —
//     only rule out a haystack outright.
//
// Either Seq may come back empty if nothing qualifies.
func Extract(seq []matcher.Node) (start *Seq, required *Seq) {
	if lits, ok := alternationLiterals(seq); ok {
		s := NewSeq(lits...)
		s.Minimize()
		return s, NewSeq()
	}
	if prefix, ok := requiredPrefix(seq); ok {
		return NewSeq(NewLiteral([]byte(prefix), false)), NewSeq()
	}
	if prefix, ok := alternationRequiredPrefix(seq); ok {
		return NewSeq(NewLiteral([]byte(prefix), false)), NewSeq()
	}
	if suffix, ok := alternationRequiredSuffix(seq); ok {
		return NewSeq(), NewSeq(NewLiteral([]byte(suffix), false))
	}
	return NewSeq(), NewSeq()
}

// alternationLiterals recognizes seq == [Group{alts...}] where every
// alternative is a flat run of plain Char(Literal) nodes, and returns one
// Literal per alternative.
func alternationLiterals(seq []matcher.Node) ([]Literal, bool) {
	if len(seq) != 1 || seq[0].Kind() != matcher.KindGroup {
		return nil, false
	}
	alts := seq[0].Alternatives()
	if len(alts) < 2 {
		return nil, false
	}

	lits := make([]Literal, 0, len(alts))
	for _, alt := range alts {
		buf, ok := pureLiteralRun(alt)
		if !ok || len(buf) == 0 {
			return nil, false
		}
		lits = append(lits, NewLiteral(buf, true))
	}
	return lits, true
}

// alternationRequiredPrefix handles alternations where every branch
// starts with a literal run but isn't a bare literal run all the way
// through (so alternationLiterals doesn't apply) — e.g. `cat\d+|cathouse`.
// Any match must start with whichever prefix is common to every branch.
func alternationRequiredPrefix(seq []matcher.Node) (string, bool) {
	if len(seq) != 1 || seq[0].Kind() != matcher.KindGroup {
		return "", false
	}
	alts := seq[0].Alternatives()
	if len(alts) < 2 {
		return "", false
	}

	lits := make([]Literal, 0, len(alts))
	for _, alt := range alts {
		buf, ok := leadingLiteralRun(alt)
		if !ok {
			return "", false
		}
		lits = append(lits, NewLiteral(buf, false))
	}

	prefix := NewSeq(lits...).LongestCommonPrefix()
	if len(prefix) == 0 {
		return "", false
	}
	return string(prefix), true
}

// alternationRequiredSuffix handles alternations where every branch ends
// with a literal run — e.g. `\d+cat|\d+hat` both end in "at" once you
// look past the digits each branch actually requires ("cat" vs "hat"
// share no common prefix, but a shared suffix can still rule out a
// haystack that lacks it entirely).
func alternationRequiredSuffix(seq []matcher.Node) (string, bool) {
	if len(seq) != 1 || seq[0].Kind() != matcher.KindGroup {
		return "", false
	}
	alts := seq[0].Alternatives()
	if len(alts) < 2 {
		return "", false
	}

	lits := make([]Literal, 0, len(alts))
	for _, alt := range alts {
		buf, ok := trailingLiteralRun(alt)
		if !ok {
			return "", false
		}
		lits = append(lits, NewLiteral(buf, false))
	}

	suffix := NewSeq(lits...).LongestCommonSuffix()
	if len(suffix) == 0 {
		return "", false
	}
	return string(suffix), true
}

// pureLiteralRun reports whether every node in alt is a bare
// Char(Literal), returning the concatenated bytes if so.
func pureLiteralRun(alt []matcher.Node) ([]byte, bool) {
	buf := make([]byte, 0, len(alt))
	for _, n := range alt {
		if n.Kind() != matcher.KindChar {
			return nil, false
		}
		cls := n.Class()
		if cls.Kind() != charclass.KindLiteral {
			return nil, false
		}
		buf = append(buf, cls.Byte())
	}
	return buf, true
}

// leadingLiteralRun returns the run of bare Char(Literal) nodes at the
// start of alt, stopping (not failing) at the first node that isn't one.
// Unlike pureLiteralRun this doesn't require the whole alternative to be
// literal, only that it starts with at least one literal byte.
func leadingLiteralRun(alt []matcher.Node) ([]byte, bool) {
	var buf []byte
	for _, n := range alt {
		if n.Kind() != matcher.KindChar {
			break
		}
		cls := n.Class()
		if cls.Kind() != charclass.KindLiteral {
			break
		}
		buf = append(buf, cls.Byte())
	}
	if len(buf) == 0 {
		return nil, false
	}
	return buf, true
}

// trailingLiteralRun returns the run of bare Char(Literal) nodes at the
// end of alt, the mirror image of leadingLiteralRun.
func trailingLiteralRun(alt []matcher.Node) ([]byte, bool) {
	j := len(alt)
	for j > 0 {
		n := alt[j-1]
		if n.Kind() != matcher.KindChar {
			break
		}
		cls := n.Class()
		if cls.Kind() != charclass.KindLiteral {
			break
		}
		j--
	}
	if j == len(alt) {
		return nil, false
	}
	buf := make([]byte, 0, len(alt)-j)
	for _, n := range alt[j:] {
		buf = append(buf, n.Class().Byte())
	}
	return buf, true
}

// requiredPrefix returns the longest run of unconditionally-required
// literal bytes at the start of seq, skipping a leading StartAnchor
// (which constrains where a match may begin but contributes no bytes of
// its own).
//
// The walk stops at the first node that is not a bare Char(Literal): a
// class, a Group, a Repeat (even over a literal — '*' and '?' allow
// zero repetitions, so it is never unconditionally required), a
// back-reference, or the end anchor.
func requiredPrefix(seq []matcher.Node) (string, bool) {
	i := 0
	if i < len(seq) && seq[i].Kind() == matcher.KindStartAnchor {
		i++
	}

	// pureLiteralRun fails all-or-nothing on the first non-literal node;
	// a prefix needs the run up to that point instead, so walk manually.
	var buf []byte
	for ; i < len(seq); i++ {
		n := seq[i]
		if n.Kind() != matcher.KindChar {
			break
		}
		cls := n.Class()
		if cls.Kind() != charclass.KindLiteral {
			break
		}
		buf = append(buf, cls.Byte())
	}

	if len(buf) == 0 {
		return "", false
	}
	return string(buf), true
}
