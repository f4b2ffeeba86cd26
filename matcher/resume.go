package matcher

// resume is the resumption handle threaded through eval: an opaque value
// that, handed back to the matcher that produced it, asks for the next
// alternative result instead of the first. Only Repeat and Group ever
// produce one (spec.md §4.3); every other node kind fails outright if it
// is asked to resume, since it has nothing else to offer.
type resume interface {
	isResume()
}

// repeatResume lets a Repeat node give back one repetition at a time. n is
// the repetition count that was taken on the attempt this handle came
// from; resuming re-runs the greedy loop capped at n-1 repetitions.
type repeatResume struct {
	n int
}

func (repeatResume) isResume() {}

// frame is a backtrack point recorded while evaluating one alternative of
// a Group: the state (sequence index, cursor, captures) immediately
// before a child matcher ran, plus the resumption handle that lets that
// same child produce a different result when retried.
type frame struct {
	idx    int
	cur    Cursor
	caps   Captures
	resume resume
}

// groupResume lets an outer caller ask a Group for its next match: which
// alternative was in progress and the backtrack-frame stack still
// available within it.
type groupResume struct {
	altIndex int
	frames   []frame
}

func (groupResume) isResume() {}
