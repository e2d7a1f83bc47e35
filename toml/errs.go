package toml

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrBadKey       = fmt.Errorf("%w: bad key", ErrParse)
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrRedefined    = fmt.Errorf("%w: redefined", ErrParse)
	ErrUnterminated = fmt.Errorf("%w: unterminated", ErrParse)
	ErrBadEscape    = fmt.Errorf("%w: bad escape", ErrParse)
	ErrControl      = fmt.Errorf("%w: control character", ErrParse)
	ErrNumber       = fmt.Errorf("%w: bad number", ErrParse)
	ErrLeadingZero  = fmt.Errorf("%w: leading zero", ErrParse)
	ErrDateTime     = fmt.Errorf("%w: bad date-time", ErrParse)
	ErrValue        = fmt.Errorf("%w: bad value", ErrParse)
	ErrSyntax       = fmt.Errorf("%w: bad syntax", ErrParse)
)

// Pos is a 1-based source position.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}

// Error ties a parse failure to its position in the source text.
type Error struct {
	Err error
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v at %s", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v: %s at %s", e.Err, e.Msg, e.Pos)
}

func (e *Error) Unwrap() error { return e.Err }
