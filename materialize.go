// Package doctree materializes parsed configuration documents into a
// compact, arena-backed document tree shared across serialization
// formats.  Front ends (TOML, YAML) produce an ir value hierarchy; the
// materializer walks it and deposits equivalent nodes into a tree.Tree,
// copying every key and scalar text into the tree's arena.
package doctree

import (
	"fmt"

	"github.com/doctree-format/doctree/debug"
	"github.com/doctree-format/doctree/ir"
	"github.com/doctree-format/doctree/tree"
)

type workItem struct {
	src *ir.Value
	dst tree.NodeID
}

// Materialize writes the value hierarchy rooted at src into t at node id.
// Each source value maps to exactly one destination node, member order
// preserved.  If the destination node already carries a key, the key
// survives the node's kind reassignment.  The walk runs on an explicit
// work stack, so source nesting depth costs heap, not call stack.
func Materialize(src *ir.Value, t *tree.Tree, id tree.NodeID) error {
	if src == nil {
		return fmt.Errorf("%w: nil value", ErrValueKind)
	}
	if id < 0 || int(id) >= t.Len() {
		return fmt.Errorf("%w: %d", ErrNodeID, id)
	}
	stack := make([]workItem, 0, 16)
	stack = append(stack, workItem{src: src, dst: id})
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v, dst := it.src, it.dst
		if debug.Materialize() {
			debug.Logf("materialize %s -> node %d\n", v.Kind, dst)
		}
		switch v.Kind {
		case ir.TableKind:
			if t.HasKey(dst) {
				t.ToKeyMap(dst, t.Key(dst))
			} else {
				t.ToMap(dst)
			}
			n := len(v.Entries)
			// children are created in source order; pushing them
			// reversed makes the stack pop them in that order too
			items := make([]workItem, n)
			for i := range v.Entries {
				e := &v.Entries[i]
				child := t.AppendChild(dst)
				t.ToKeyVal(child, t.Arena().CopyString(e.Key), nil)
				items[i] = workItem{src: e.Value, dst: child}
			}
			for i := n - 1; i >= 0; i-- {
				stack = append(stack, items[i])
			}
		case ir.ArrayKind:
			if t.HasKey(dst) {
				t.ToKeySeq(dst, t.Key(dst))
			} else {
				t.ToSeq(dst)
			}
			n := len(v.Elems)
			items := make([]workItem, n)
			for i, e := range v.Elems {
				items[i] = workItem{src: e, dst: t.AppendChild(dst)}
			}
			for i := n - 1; i >= 0; i-- {
				stack = append(stack, items[i])
			}
		default:
			if err := materializeScalar(v, t, dst); err != nil {
				return err
			}
		}
	}
	return nil
}
