package doctree

import (
	"fmt"
	"os"

	"github.com/doctree-format/doctree/toml"
	"github.com/doctree-format/doctree/tree"
)

// The entry points below differ only in where the source text lives
// relative to the tree's arena; all of them funnel into Materialize.
// Either the whole document materializes or the error is returned before
// any destination content is committed.

// ParseTOML parses src and materializes it into a new tree.
func ParseTOML(src []byte) (*tree.Tree, error) {
	t := tree.New()
	if err := ParseTOMLInto(src, t, t.Root()); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTOMLInto parses src and materializes it at node id of t.  A key
// already present on the node is preserved.
func ParseTOMLInto(src []byte, t *tree.Tree, id tree.NodeID) error {
	v, err := toml.Parse(src)
	if err != nil {
		return err
	}
	return Materialize(v, t, id)
}

// ParseTOMLInArena first duplicates src into the tree's arena and parses
// the duplicate, for callers that cannot guarantee the source buffer
// outlives the tree.
func ParseTOMLInArena(src []byte, t *tree.Tree, id tree.NodeID) error {
	cp := t.Arena().Copy(src)
	return ParseTOMLInto(cp, t, id)
}

// ParseTOMLFile reads and materializes the named file into a new tree.
// Read failures surface on the same error path as parse failures.
func ParseTOMLFile(path string) (*tree.Tree, error) {
	t := tree.New()
	if err := ParseTOMLFileInto(path, t, t.Root()); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTOMLFileInto reads and materializes the named file at node id of t.
func ParseTOMLFileInto(path string, t *tree.Tree, id tree.NodeID) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("doctree: reading %q: %w", path, err)
	}
	return ParseTOMLInto(d, t, id)
}
