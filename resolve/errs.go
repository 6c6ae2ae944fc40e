package resolve

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/hocon/token"
)

var (
	ErrUnresolved = errors.New("unresolved reference")
	ErrCycle      = errors.New("circular reference")
)

// RefErr reports a reference with no value in scope. It is both an
// ErrUnresolved and a token.ErrFormat.
type RefErr struct {
	Ref string
}

func (e *RefErr) Error() string {
	return "no value to replace ${" + e.Ref + "}"
}

func (e *RefErr) Unwrap() []error {
	return []error{ErrUnresolved, token.ErrFormat}
}

// CycleErr reports a reference that refers back to itself, directly or
// through other references, or a chain deeper than MaxDepth.
type CycleErr struct {
	Ref   string
	Depth bool
}

func (e *CycleErr) Error() string {
	if e.Depth {
		return "reference depth exceeded at ${" + e.Ref + "}"
	}
	return "circular reference ${" + e.Ref + "}"
}

func (e *CycleErr) Unwrap() []error {
	return []error{ErrCycle, token.ErrFormat}
}

// ConcatErr reports an array or object inside a concatenation.
type ConcatErr struct {
	Ref  string
	Type fmt.Stringer
}

func (e *ConcatErr) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("cannot concatenate %s value", e.Type)
	}
	return fmt.Sprintf("cannot concatenate %s value of ${%s}", e.Type, e.Ref)
}

func (e *ConcatErr) Unwrap() error {
	return token.ErrFormat
}
