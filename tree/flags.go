package tree

import "strings"

// NodeType is a bitset describing what a node is and what it carries.
type NodeType uint32

const (
	NoType NodeType = 0
	// Key marks a node named within its parent map.
	Key NodeType = 1 << 0
	// Val marks a node carrying scalar text.
	Val NodeType = 1 << 1
	Map NodeType = 1 << 2
	Seq NodeType = 1 << 3
	// ValQuo marks scalar text that came from a quoted string literal,
	// so emitters can reproduce quoting.
	ValQuo NodeType = 1 << 4
)

func (t NodeType) Has(f NodeType) bool { return t&f == f }

func (t NodeType) String() string {
	if t == NoType {
		return "NOTYPE"
	}
	parts := []string{}
	for _, fl := range []struct {
		f NodeType
		s string
	}{
		{Key, "KEY"},
		{Val, "VAL"},
		{Map, "MAP"},
		{Seq, "SEQ"},
		{ValQuo, "VALQUO"},
	} {
		if t.Has(fl.f) {
			parts = append(parts, fl.s)
		}
	}
	return strings.Join(parts, "|")
}
