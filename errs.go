package doctree

import "errors"

var (
	// ErrValueKind reports a source value whose kind is outside the
	// closed set the materializer understands.
	ErrValueKind = errors.New("doctree: bad value kind")
	// ErrNodeID reports a destination identity outside the tree.
	ErrNodeID = errors.New("doctree: bad node id")
)
