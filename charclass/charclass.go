// Package charclass provides predicates over a single ASCII input byte.
//
// A Class is the leaf of the matcher tree: every Char node in package
// matcher wraps exactly one Class. Classes nest (a Set or NegSet holds
// further Classes), but the parser only ever builds one level of nesting
// from surface syntax — the nesting support here exists because the data
// model permits it and Test recurses regardless of depth.
package charclass

// Kind identifies which predicate a Class applies.
type Kind uint8

const (
	// KindLiteral matches exactly one byte.
	KindLiteral Kind = iota

	// KindAny matches any byte.
	KindAny

	// KindDigit matches ASCII '0'-'9'.
	KindDigit

	// KindWord matches ASCII letters, digits, or underscore.
	KindWord

	// KindSet matches if any inner Class matches.
	KindSet

	// KindNegSet matches if no inner Class matches.
	KindNegSet
)

// Class is a predicate over a single input byte.
//
// The zero Class is KindLiteral matching byte 0; callers should always
// construct one of the package-level constructors instead.
type Class struct {
	kind    Kind
	literal byte
	set     []Class // for KindSet / KindNegSet
}

// Literal returns a Class matching exactly c.
func Literal(c byte) Class {
	return Class{kind: KindLiteral, literal: c}
}

// Any returns a Class matching any byte.
func Any() Class {
	return Class{kind: KindAny}
}

// Digit returns a Class matching ASCII digits.
func Digit() Class {
	return Class{kind: KindDigit}
}

// Word returns a Class matching ASCII word characters (letters, digits, underscore).
func Word() Class {
	return Class{kind: KindWord}
}

// Set returns a Class matching any byte accepted by one of members.
// The parser preserves member order for determinism even though the
// predicate itself is order-independent.
func Set(members []Class) Class {
	return Class{kind: KindSet, set: members}
}

// NegSet returns a Class matching any byte accepted by none of members.
func NegSet(members []Class) Class {
	return Class{kind: KindNegSet, set: members}
}

// Kind returns the class's variant.
func (c Class) Kind() Kind {
	return c.kind
}

// Members returns the inner classes of a Set or NegSet.
// Returns nil for other kinds.
func (c Class) Members() []Class {
	if c.kind == KindSet || c.kind == KindNegSet {
		return c.set
	}
	return nil
}

// Byte returns the exact byte matched by a KindLiteral class. Returns 0
// for any other kind; callers should check Kind() first.
func (c Class) Byte() byte {
	if c.kind != KindLiteral {
		return 0
	}
	return c.literal
}

// Test reports whether b is accepted by the class.
//
// For Set and NegSet, evaluation short-circuits on the first matching (or,
// for NegSet, first non-matching) member; member order is otherwise
// semantically irrelevant.
func (c Class) Test(b byte) bool {
	switch c.kind {
	case KindLiteral:
		return b == c.literal
	case KindAny:
		return true
	case KindDigit:
		return isDigit(b)
	case KindWord:
		return isWord(b)
	case KindSet:
		for _, m := range c.set {
			if m.Test(b) {
				return true
			}
		}
		return false
	case KindNegSet:
		for _, m := range c.set {
			if m.Test(b) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWord(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
