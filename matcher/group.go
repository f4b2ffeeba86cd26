package matcher

// evalGroup implements spec.md §4.4: split-on-Alt alternation, each
// alternative backtracking internally over a stack of frames, and a
// group-level resumption handle so an outer matcher can ask this group
// for its next match.
//
// A fresh call (r == nil) tries alternatives from the first. A resume
// call (r is a groupResume) re-enters the alternative named by the
// handle: if it still has a frame stack, attemptAlt pops and retries the
// top frame; if the stack is empty, that alternative is abandoned and the
// next one is tried fresh (spec.md §4.4's resumption rule).
func evalGroup(n Node, cur Cursor, caps Captures, r resume) (bool, Cursor, Captures, resume) {
	alts := n.alts
	startAlt := 0
	var startFrames []frame
	retryStart := false

	switch gr := r.(type) {
	case nil:
		// fresh attempt from the first alternative
	case groupResume:
		startAlt = gr.altIndex
		startFrames = gr.frames
		retryStart = true
	default:
		return false, cur, caps, nil
	}

	for altIdx := startAlt; altIdx < len(alts); altIdx++ {
		retry := retryStart && altIdx == startAlt
		frames := startFrames
		if !retry {
			frames = nil
		}

		ok, ourCaps, end, outFrames := attemptAlt(alts[altIdx], cur, caps, frames, retry)
		if ok {
			text := end.Slice(cur.Pos())
			if n.groupIndex >= 0 {
				ourCaps = ourCaps.Set(n.groupIndex, text)
			}
			var nr resume
			if len(outFrames) > 0 || altIdx < len(alts)-1 {
				nr = groupResume{altIndex: altIdx, frames: outFrames}
			}
			return true, end, ourCaps, nr
		}
	}
	return false, cur, caps, nil
}

// attemptAlt runs one alternative (a flat sequence of Node) of a Group.
//
// With retry == false it starts the sequence fresh at idx 0. With retry
// == true it treats "no current attempt" as if the sequence had just
// failed, so the very first thing it does is pop frames and retry stored
// resumption handles — which is exactly spec.md §4.4's external-resume
// case, requiring no separate code path from an internal backtrack.
//
// On success it returns the alternative's own accumulated captures (not
// yet including the enclosing Group's own capture, which the caller
// attaches), the cursor past everything consumed, and whatever frames
// remain for a later resume.
func attemptAlt(alt []Node, start Cursor, baseCaps Captures, frames []frame, retry bool) (ok bool, caps Captures, end Cursor, outFrames []frame) {
	idx := 0
	cur := start
	caps = baseCaps

	for {
		var stepOK bool
		var next Cursor
		var nextCaps Captures
		var childResume resume

		if retry {
			if len(frames) == 0 {
				return false, baseCaps, start, nil
			}
			top := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			idx, cur, caps = top.idx, top.cur, top.caps
			stepOK, next, nextCaps, childResume = eval(alt[idx], cur, caps, top.resume)
			retry = false
		} else if idx >= len(alt) {
			return true, caps, cur, frames
		} else {
			stepOK, next, nextCaps, childResume = eval(alt[idx], cur, caps, nil)
		}

		if stepOK {
			if childResume != nil {
				frames = append(frames, frame{idx: idx, cur: cur, caps: caps, resume: childResume})
			}
			cur, caps = next, nextCaps
			idx++
			continue
		}
		retry = true
	}
}
