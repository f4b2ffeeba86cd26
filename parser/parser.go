// Package parser turns a pattern string into the ordered sequence of
// matcher.Node values package matcher evaluates.
//
// It consumes the pattern one byte at a time with a single byte of
// lookahead, recursive-descent style: a group recurses into the parser for
// its body and returns control once it hits its closing ')'. Capture
// indices are assigned depth-first in pattern order as each '(' is seen,
// matching spec.md §3's "pattern-order opening parenthesis" rule.
package parser

import (
	"github.com/coregx/regrep/charclass"
	"github.com/coregx/regrep/matcher"
)

// terminator reports why parseOneAlt stopped consuming a sequence.
type terminator uint8

const (
	termEOF terminator = iota
	termClose
	termPipe
)

type parser struct {
	pattern        string
	pos            int
	nextGroupIndex int
}

// Parse compiles pattern into a flat top-level sequence plus the total
// number of capture groups it contains. A bare top-level alternation (no
// enclosing parentheses) is folded into a single non-capturing Group node
// so the returned sequence still satisfies the "top-level sequence
// contains no Alt" invariant.
func Parse(pattern string) ([]matcher.Node, int, error) {
	p := &parser{pattern: pattern}
	alts, err := p.parseAlternatives(false)
	if err != nil {
		return nil, 0, err
	}
	if len(alts) == 1 {
		return alts[0], p.nextGroupIndex, nil
	}
	return []matcher.Node{matcher.NewGroup(alts, -1)}, p.nextGroupIndex, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peekByte() byte {
	return p.pattern[p.pos]
}

func (p *parser) advance() byte {
	c := p.pattern[p.pos]
	p.pos++
	return c
}

func (p *parser) errorAt(pos int, err error) *SyntaxError {
	return &SyntaxError{Pattern: p.pattern, Pos: pos, Err: err}
}

// parseAlternatives parses a '|'-separated list of alternatives, each a
// flat sequence of Node, stopping at ')' (if inGroup) or end of input.
func (p *parser) parseAlternatives(inGroup bool) ([][]matcher.Node, error) {
	var alts [][]matcher.Node
	for {
		seq, term, err := p.parseOneAlt(inGroup)
		if err != nil {
			return nil, err
		}
		alts = append(alts, seq)
		if term == termPipe {
			continue
		}
		if inGroup && term != termClose {
			return nil, errGroupEOF
		}
		return alts, nil
	}
}

// errGroupEOF is a private sentinel that parsePrimary catches to attach the
// opening '(' position to the UnterminatedGroup error. It never escapes
// this package.
var errGroupEOF = &SyntaxError{Err: ErrUnterminatedGroup}

// parseOneAlt parses one alternative: a flat run of primaries, each
// optionally wrapped in a trailing quantifier, up to '|', ')', or EOF.
func (p *parser) parseOneAlt(inGroup bool) (seq []matcher.Node, term terminator, err error) {
	for {
		if p.atEnd() {
			return seq, termEOF, nil
		}
		switch p.peekByte() {
		case '|':
			p.advance()
			return seq, termPipe, nil
		case ')':
			if inGroup {
				p.advance()
				return seq, termClose, nil
			}
			// Unbalanced ')' with no enclosing group: accepted
			// permissively as a literal (spec.md §4.1's leniency).
			p.advance()
			seq = append(seq, matcher.NewChar(charclass.Literal(')')))
			continue
		}

		node, perr := p.parsePrimary()
		if perr != nil {
			return nil, 0, perr
		}
		seq = append(seq, p.maybeWrapRepeat(node))
	}
}

// parsePrimary consumes exactly one primary matcher: an anchor, a literal
// character, a class (bracket expression or `.`/`\d`/`\w`), a
// back-reference, or a parenthesized group.
func (p *parser) parsePrimary() (matcher.Node, error) {
	start := p.pos
	c := p.advance()
	switch c {
	case '^':
		return matcher.NewStartAnchor(), nil
	case '$':
		return matcher.NewEndAnchor(), nil
	case '.':
		return matcher.NewChar(charclass.Any()), nil
	case '(':
		groupIdx := p.nextGroupIndex
		p.nextGroupIndex++
		alts, err := p.parseAlternatives(true)
		if err != nil {
			if err == errGroupEOF {
				return matcher.Node{}, p.errorAt(start, ErrUnterminatedGroup)
			}
			return matcher.Node{}, err
		}
		return matcher.NewGroup(alts, groupIdx), nil
	case '\\':
		return p.parseEscape()
	case '[':
		return p.parseBracket(start)
	default:
		return matcher.NewChar(charclass.Literal(c)), nil
	}
}

// parseEscape parses the tail of a `\` escape: \d, \w, \<digit> (a
// back-reference), or \<other> (a literal escape of a non-alphanumeric
// character).
func (p *parser) parseEscape() (matcher.Node, error) {
	if p.atEnd() {
		return matcher.Node{}, p.errorAt(p.pos, ErrUnexpectedEnd)
	}
	pos := p.pos
	c := p.advance()
	switch {
	case c == 'd':
		return matcher.NewChar(charclass.Digit()), nil
	case c == 'w':
		return matcher.NewChar(charclass.Word()), nil
	case c >= '1' && c <= '9':
		return matcher.NewBackref(int(c-'0') - 1), nil
	case isAlnum(c):
		return matcher.Node{}, p.errorAt(pos, &unknownClassError{class: c})
	default:
		return matcher.NewChar(charclass.Literal(c)), nil
	}
}

// parseBracket parses a `[...]` bracket expression starting just after the
// `[`. Only literals and `\d`/`\w` shorthands are legal inside; a nested
// `[` is itself treated as a literal per spec.md §4.1.
func (p *parser) parseBracket(start int) (matcher.Node, error) {
	negate := false
	if !p.atEnd() && p.peekByte() == '^' {
		negate = true
		p.advance()
	}

	var members []charclass.Class
	for {
		if p.atEnd() {
			return matcher.Node{}, p.errorAt(start, ErrUnexpectedEnd)
		}
		c := p.advance()
		if c == ']' {
			break
		}
		if c == '\\' {
			if p.atEnd() {
				return matcher.Node{}, p.errorAt(start, ErrUnexpectedEnd)
			}
			ec := p.advance()
			switch ec {
			case 'd':
				members = append(members, charclass.Digit())
			case 'w':
				members = append(members, charclass.Word())
			default:
				members = append(members, charclass.Literal(ec))
			}
			continue
		}
		members = append(members, charclass.Literal(c))
	}

	if negate {
		return matcher.NewChar(charclass.NegSet(members)), nil
	}
	return matcher.NewChar(charclass.Set(members)), nil
}

// maybeWrapRepeat peeks for a trailing +, *, or ? and, if present, wraps n
// in a Repeat node. Only Char and Group nodes may be quantified (spec.md
// §3's invariant); anything else is returned unchanged.
func (p *parser) maybeWrapRepeat(n matcher.Node) matcher.Node {
	if n.Kind() != matcher.KindChar && n.Kind() != matcher.KindGroup {
		return n
	}
	if p.atEnd() {
		return n
	}
	switch p.peekByte() {
	case '+':
		p.advance()
		return matcher.NewRepeat(n, 1, matcher.Unbounded)
	case '*':
		p.advance()
		return matcher.NewRepeat(n, 0, matcher.Unbounded)
	case '?':
		p.advance()
		return matcher.NewRepeat(n, 0, 1)
	default:
		return n
	}
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
