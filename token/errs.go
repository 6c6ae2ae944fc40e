package token

import (
	"errors"
)

var (
	ErrFormat = errors.New("hocon format error")
)

// FormatErr reports a grammar violation. Error returns exactly Msg so that
// callers can rely on the rule text; Pos locates the violation when known.
type FormatErr struct {
	Msg string
	Pos *Pos
}

func (e *FormatErr) Unwrap() error {
	return ErrFormat
}

func (e *FormatErr) Error() string {
	return e.Msg
}

// Where renders the message together with its position, if any.
func (e *FormatErr) Where() string {
	if e.Pos == nil {
		return e.Msg
	}
	return e.Msg + " at " + e.Pos.String()
}

func NewFormatErr(msg string, p *Pos) *FormatErr {
	return &FormatErr{Msg: msg, Pos: p}
}
