package regrep

import "github.com/coregx/regrep/parser"

// Re-exported so callers of this package never need to import package
// parser directly to inspect a compile error with errors.Is.
var (
	ErrUnexpectedEnd     = parser.ErrUnexpectedEnd
	ErrUnknownClass      = parser.ErrUnknownClass
	ErrUnterminatedGroup = parser.ErrUnterminatedGroup
)

// SyntaxError is the error type Compile returns on a malformed pattern.
type SyntaxError = parser.SyntaxError
