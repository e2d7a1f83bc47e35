package ir

import "errors"

var (
	ErrKind = errors.New("bad kind")
)
