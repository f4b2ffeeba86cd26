package matcher

// eval is the engine's one primitive operation (spec.md §4.3):
// given a node, a cursor, the captures closed so far, and an optional
// resumption handle, it reports whether the node matches, the cursor
// advanced past whatever it consumed, the captures updated with anything
// it closed, and a resumption handle for producing a different result
// later (nil if none exists).
//
// Go has no implicit mutable-reference cursor or capture list, so both
// are threaded through the return value rather than mutated behind the
// caller's back; the contract is otherwise exactly spec.md §4.3's.
func eval(n Node, cur Cursor, caps Captures, r resume) (ok bool, next Cursor, nextCaps Captures, nr resume) {
	switch n.kind {
	case KindChar:
		return evalChar(n, cur, caps, r)
	case KindStartAnchor:
		return evalStartAnchor(cur, caps, r)
	case KindEndAnchor:
		return evalEndAnchor(cur, caps, r)
	case KindBackref:
		return evalBackref(n, cur, caps, r)
	case KindRepeat:
		return evalRepeat(n, cur, caps, r)
	case KindGroup:
		return evalGroup(n, cur, caps, r)
	default:
		return false, cur, caps, nil
	}
}

// evalChar consumes one byte accepted by n's class. It never produces a
// resumption handle, so any resume request fails outright (spec.md §4.3's
// "Never produces a resumption handle").
func evalChar(n Node, cur Cursor, caps Captures, r resume) (bool, Cursor, Captures, resume) {
	if r != nil {
		return false, cur, caps, nil
	}
	b, ok := cur.Peek()
	if !ok || !n.class.Test(b) {
		return false, cur, caps, nil
	}
	return true, cur.Advance(1), caps, nil
}

func evalStartAnchor(cur Cursor, caps Captures, r resume) (bool, Cursor, Captures, resume) {
	if r != nil || cur.Pos() != 0 {
		return false, cur, caps, nil
	}
	return true, cur, caps, nil
}

func evalEndAnchor(cur Cursor, caps Captures, r resume) (bool, Cursor, Captures, resume) {
	if r != nil || !cur.AtEnd() {
		return false, cur, caps, nil
	}
	return true, cur, caps, nil
}

// evalBackref requires the cursor to be immediately followed by the text
// previously captured by n's group. A group that has not yet closed
// (including the group that defines this very back-reference, spec.md §9
// Open Question (a)) makes the back-reference fail, not error.
func evalBackref(n Node, cur Cursor, caps Captures, r resume) (bool, Cursor, Captures, resume) {
	if r != nil {
		return false, cur, caps, nil
	}
	s, ok := caps.Get(n.backrefIndex)
	if !ok || !cur.HasPrefix(s) {
		return false, cur, caps, nil
	}
	return true, cur.Advance(len(s)), caps, nil
}

// evalRepeat implements greedy-with-give-back (spec.md §4.3).
//
// On a fresh call it consumes inner as many times as possible (bounded by
// max), succeeding iff it took at least min repetitions. On a resume call
// carrying a previous repetition count n, it re-runs the same greedy walk
// capped at n-1 repetitions — since inner's own behavior at a given
// cursor is deterministic, this reproduces exactly n-1 of the repetitions
// the original walk took, "giving back" the last one.
func evalRepeat(n Node, cur Cursor, caps Captures, r resume) (bool, Cursor, Captures, resume) {
	giveBackCap := -1
	switch rr := r.(type) {
	case nil:
		// fresh attempt, no cap
	case repeatResume:
		giveBackCap = rr.n - 1
	default:
		return false, cur, caps, nil
	}

	c := cur
	out := caps
	count := 0
	for n.max == unboundedMax || count < n.max {
		if giveBackCap >= 0 && count >= giveBackCap {
			break
		}
		ok, next, nextCaps, _ := eval(*n.inner, c, out, nil)
		if !ok {
			break
		}
		zeroWidth := next.Pos() == c.Pos()
		c, out = next, nextCaps
		count++
		if zeroWidth {
			// inner matched without consuming input; repeating it further
			// would loop forever for no additional effect.
			break
		}
	}

	if count < n.min {
		return false, cur, caps, nil
	}
	var nr resume
	if count > 0 {
		nr = repeatResume{n: count}
	}
	return true, c, out, nr
}
