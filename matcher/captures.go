package matcher

// Captures holds the text captured by every group in a pattern, indexed by
// the group's 0-based pattern-order index (spec.md §3's "capture indices
// are assigned by pattern-order opening parenthesis").
//
// It is threaded functionally through evaluation rather than mutated in
// place and spliced by the caller (as spec.md §4.3 describes new_captures):
// Set returns an updated copy, so a backtrack frame can hold the Captures
// value from before a matcher ran and restore it verbatim on retry,
// automatically discarding whatever a failed path accumulated (spec.md
// §3's "a failed match discards all captures it accumulated").
type Captures struct {
	text   []string
	closed []bool
}

// NewCaptures returns an empty Captures sized for n groups.
func NewCaptures(n int) Captures {
	return Captures{text: make([]string, n), closed: make([]bool, n)}
}

// Get returns the text captured at idx and true, or ("", false) if idx is
// out of range or that group has not closed in this match attempt yet.
// This is also how a back-reference to a not-yet-closed enclosing group
// (including a self-reference) fails per spec.md §4.4 and §9 Open
// Question (a): the index simply reads as not-yet-closed.
func (c Captures) Get(idx int) (string, bool) {
	if idx < 0 || idx >= len(c.text) || !c.closed[idx] {
		return "", false
	}
	return c.text[idx], true
}

// Set returns a copy of c with group idx recorded as closed with text s.
// Re-setting an already-closed index (a group inside a Repeat matching
// more than once) overwrites it: the last repetition's capture wins.
func (c Captures) Set(idx int, s string) Captures {
	text := append([]string(nil), c.text...)
	closed := append([]bool(nil), c.closed...)
	text[idx] = s
	closed[idx] = true
	return Captures{text: text, closed: closed}
}

// Strings returns the captured text for every group, in pattern order,
// with unclosed groups reported as the empty string. This is the slice
// Pattern.Run exposes to callers (spec.md §6).
func (c Captures) Strings() []string {
	out := make([]string, len(c.text))
	copy(out, c.text)
	return out
}
