// Package tree implements a compact, index-addressed document tree.  Node
// identities are indices into a flat node table; all key and value text is
// owned by the tree's arena, never by caller memory.  A tree is not safe
// for concurrent mutation; callers serialize access.
package tree

import (
	"fmt"
	"io"
)

// NodeID identifies a node within one Tree.
type NodeID int32

// None is the null node identity.
const None NodeID = -1

type node struct {
	flags    NodeType
	key      []byte
	val      []byte
	parent   NodeID
	children []NodeID
}

type Tree struct {
	nodes []node
	arena Arena
}

// New returns a tree holding a single untyped root node.
func New() *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, node{parent: None})
	return t
}

func (t *Tree) Root() NodeID  { return 0 }
func (t *Tree) Len() int      { return len(t.nodes) }
func (t *Tree) Arena() *Arena { return &t.arena }

// AppendChild allocates a new untyped node as the last child of parent.
func (t *Tree) AppendChild(parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent})
	p := &t.nodes[parent]
	p.children = append(p.children, id)
	return id
}

func (t *Tree) Flags(id NodeID) NodeType { return t.nodes[id].flags }
func (t *Tree) Parent(id NodeID) NodeID  { return t.nodes[id].parent }

func (t *Tree) HasKey(id NodeID) bool { return t.nodes[id].flags.Has(Key) }
func (t *Tree) HasVal(id NodeID) bool { return t.nodes[id].flags.Has(Val) }
func (t *Tree) IsMap(id NodeID) bool  { return t.nodes[id].flags.Has(Map) }
func (t *Tree) IsSeq(id NodeID) bool  { return t.nodes[id].flags.Has(Seq) }

// Key returns the node's key span.  The span is arena-owned; callers must
// not modify it.
func (t *Tree) Key(id NodeID) []byte { return t.nodes[id].key }

// Value returns the node's scalar text span, arena-owned.
func (t *Tree) Value(id NodeID) []byte { return t.nodes[id].val }

func (t *Tree) NumChildren(id NodeID) int { return len(t.nodes[id].children) }

// Children returns the node's children in order.  The returned slice is
// owned by the tree.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

func (t *Tree) Child(id NodeID, i int) NodeID { return t.nodes[id].children[i] }

// Get returns the child of id keyed by name, or None.
func (t *Tree) Get(id NodeID, name string) NodeID {
	for _, c := range t.nodes[id].children {
		if string(t.nodes[c].key) == name {
			return c
		}
	}
	return None
}

// The reassignment operations below set a node's kind in place.  During
// materialization each node is reassigned exactly once per visit; the
// keyed variants exist so a pre-existing key survives the reassignment.

func (t *Tree) ToMap(id NodeID) {
	n := &t.nodes[id]
	n.flags = Map
	n.key = nil
	n.val = nil
}

func (t *Tree) ToKeyMap(id NodeID, key []byte) {
	n := &t.nodes[id]
	n.flags = Key | Map
	n.key = key
	n.val = nil
}

func (t *Tree) ToSeq(id NodeID) {
	n := &t.nodes[id]
	n.flags = Seq
	n.key = nil
	n.val = nil
}

func (t *Tree) ToKeySeq(id NodeID, key []byte) {
	n := &t.nodes[id]
	n.flags = Key | Seq
	n.key = key
	n.val = nil
}

func (t *Tree) ToVal(id NodeID, val []byte) {
	n := &t.nodes[id]
	n.flags = Val
	n.key = nil
	n.val = val
}

func (t *Tree) ToKeyVal(id NodeID, key, val []byte) {
	n := &t.nodes[id]
	n.flags = Key | Val
	n.key = key
	n.val = val
}

func (t *Tree) AddFlags(id NodeID, f NodeType) {
	t.nodes[id].flags |= f
}

// Dump writes a plain structural rendering of the subtree at id, one node
// per line, for debugging.
func (t *Tree) Dump(w io.Writer, id NodeID) error {
	return t.dump(w, id, 0)
}

func (t *Tree) dump(w io.Writer, id NodeID, depth int) error {
	n := &t.nodes[id]
	line := fmt.Sprintf("%*s[%d] %s", 2*depth, "", id, n.flags)
	if n.flags.Has(Key) {
		line += fmt.Sprintf(" key=%q", n.key)
	}
	if n.flags.Has(Val) {
		line += fmt.Sprintf(" val=%q", n.val)
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := t.dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
