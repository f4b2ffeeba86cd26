package matcher

// MatchSequence attempts to match seq — a flat top-level matcher sequence
// with no Alt siblings (spec.md §3's invariant) — against input starting
// at the given byte offset.
//
// It implements spec.md §4.5's test_section: seq is wrapped in an
// implicit Group so the same evaluator that drives nested groups drives
// the top level too (this is what lets a quantifier at the top level give
// back characters for a matcher that follows it, as in spec.md §8
// scenario 9). The implicit group is not a real capture, so its own
// consumed text is reported directly as the match rather than through
// the Captures it returns.
func MatchSequence(seq []Node, numCaptures int, input []byte, start int) (ok bool, end int, captures []string) {
	wrapper := newImplicitGroup(seq)
	cur := NewCursor(input).At(start)

	matched, next, caps, _ := eval(wrapper, cur, NewCaptures(numCaptures), nil)
	if !matched {
		return false, 0, nil
	}
	return true, next.Pos(), caps.Strings()
}
