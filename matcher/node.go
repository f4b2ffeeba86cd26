// Package matcher implements the resumable backtracking evaluator described
// in the engine design: a tree of Node values built by package parser is
// evaluated byte-by-byte against an input Cursor, with Group and Repeat
// nodes able to hand back a resumption handle so a failing sibling can ask
// them to retry with their next alternative.
//
// This mirrors the teacher's nfa.State: a small tagged union (Kind plus a
// set of per-kind accessors that return zero values for the wrong kind)
// instead of an interface hierarchy, so dispatch stays a single switch.
package matcher

import "github.com/coregx/regrep/charclass"

// Kind identifies a Node's variant.
type Kind uint8

const (
	// KindChar consumes one byte accepted by a charclass.Class.
	KindChar Kind = iota

	// KindStartAnchor succeeds only at input position 0, consuming nothing.
	KindStartAnchor

	// KindEndAnchor succeeds only when no input remains, consuming nothing.
	KindEndAnchor

	// KindGroup is a capturing group: one or more alternatives, each a
	// sequence of Node, tried left to right with backtracking within an
	// alternative and resumable alternation across them.
	//
	// Alt (spec.md's alternation separator) has no runtime representation:
	// the parser splits a group's children on Alt into Node.alts at parse
	// time, so the evaluator never sees it as a node to dispatch on.
	KindGroup

	// KindRepeat wraps exactly one Char or Group node with a {min,max}
	// bound, evaluated greedily with give-back on resume.
	KindRepeat

	// KindBackref consumes the text previously captured by a group,
	// identified by its 0-based (normalized from 1-based surface syntax)
	// index.
	KindBackref
)

// Unbounded marks a Repeat with no upper bound ('*' and '+'), i.e. max = None.
const Unbounded = -1

const unboundedMax = Unbounded

// Node is one element of a parsed pattern: either a leaf (Char, the two
// anchors, Backref) or an interior node (Group, Repeat) holding further
// Nodes. The zero Node is a KindChar matching nothing meaningful; always
// build one via the constructors below.
type Node struct {
	kind Kind

	class charclass.Class // KindChar

	alts       [][]Node // KindGroup
	groupIndex int      // KindGroup; negative for the implicit top-level wrapper

	inner    *Node // KindRepeat
	min, max int    // KindRepeat

	backrefIndex int // KindBackref, 0-based
}

// NewChar returns a Node consuming one byte matching cls.
func NewChar(cls charclass.Class) Node {
	return Node{kind: KindChar, class: cls}
}

// NewStartAnchor returns the ^ anchor Node.
func NewStartAnchor() Node {
	return Node{kind: KindStartAnchor}
}

// NewEndAnchor returns the $ anchor Node.
func NewEndAnchor() Node {
	return Node{kind: KindEndAnchor}
}

// NewGroup returns a capturing Group node. alts is the group's body split
// on Alt into its alternatives (a group with no '|' has exactly one
// alternative). groupIndex is this group's 0-based position in
// pattern-order opening-parenthesis numbering.
func NewGroup(alts [][]Node, groupIndex int) Node {
	return Node{kind: KindGroup, alts: alts, groupIndex: groupIndex}
}

// newImplicitGroup wraps a flat top-level sequence (which by invariant
// contains no Alt) so MatchSequence can drive it through the same
// evaluator as any other Group, per spec.md §4.5's test_section.
func newImplicitGroup(seq []Node) Node {
	return Node{kind: KindGroup, alts: [][]Node{seq}, groupIndex: -1}
}

// NewRepeat returns a quantifier Node wrapping inner (which must itself be
// a KindChar or KindGroup node, per the invariant in spec.md §3). max ==
// unboundedMax represents an unbounded upper bound ('*' and '+').
func NewRepeat(inner Node, min, max int) Node {
	return Node{kind: KindRepeat, inner: &inner, min: min, max: max}
}

// NewBackref returns a Node re-matching the text captured by the group at
// the given 0-based index.
func NewBackref(index int) Node {
	return Node{kind: KindBackref, backrefIndex: index}
}

// Kind returns the node's variant.
func (n Node) Kind() Kind {
	return n.kind
}

// Class returns the charclass.Class for a KindChar node.
// Returns the zero Class for any other kind.
func (n Node) Class() charclass.Class {
	return n.class
}

// Alternatives returns the split-on-Alt alternatives of a KindGroup node.
// Returns nil for any other kind.
func (n Node) Alternatives() [][]Node {
	if n.kind != KindGroup {
		return nil
	}
	return n.alts
}

// GroupIndex returns the 0-based capture index of a KindGroup node, or -1
// if n is not a real capture (the implicit top-level wrapper, or the
// parser's fold of a bare top-level alternation) or not a KindGroup node.
func (n Node) GroupIndex() int {
	if n.kind != KindGroup {
		return -1
	}
	return n.groupIndex
}

// Inner returns the wrapped node of a KindRepeat node.
// Returns nil for any other kind.
func (n Node) Inner() *Node {
	if n.kind != KindRepeat {
		return nil
	}
	return n.inner
}

// Bounds returns the (min, max) repetition bounds of a KindRepeat node.
// max == unboundedMax means no upper bound. Returns (0, 0) for any other
// kind.
func (n Node) Bounds() (min, max int) {
	if n.kind != KindRepeat {
		return 0, 0
	}
	return n.min, n.max
}

// BackrefIndex returns the 0-based group index of a KindBackref node.
// Returns -1 for any other kind.
func (n Node) BackrefIndex() int {
	if n.kind != KindBackref {
		return -1
	}
	return n.backrefIndex
}
