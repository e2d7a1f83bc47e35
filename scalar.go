package doctree

import (
	"fmt"
	"math"
	"strconv"

	"github.com/doctree-format/doctree/ir"
	"github.com/doctree-format/doctree/tree"
)

// materializeScalar commits the canonical text of a scalar value into the
// tree's arena and attaches it to the node, preserving any pre-existing
// key.  String scalars get the ValQuo flag so emitters can reproduce
// quoting; canonical text is the only data committed.
func materializeScalar(v *ir.Value, t *tree.Tree, id tree.NodeID) error {
	var flags tree.NodeType
	var text []byte
	switch v.Kind {
	case ir.StringKind:
		text = t.Arena().CopyString(v.Str)
		flags = tree.ValQuo
	case ir.IntegerKind:
		text = t.Arena().CopyString(strconv.FormatInt(v.Int64, 10))
	case ir.FloatKind:
		text = t.Arena().CopyString(floatText(v.Float64))
	case ir.BoolKind:
		if v.Bool {
			text = t.Arena().CopyString("true")
		} else {
			text = t.Arena().CopyString("false")
		}
	case ir.DateKind, ir.TimeKind, ir.DateTimeKind:
		text = t.Arena().CopyString(v.TemporalString())
	case ir.NullKind:
		text = t.Arena().CopyString("null")
	default:
		return fmt.Errorf("%w: %s", ErrValueKind, v.Kind)
	}
	if t.HasKey(id) {
		t.ToKeyVal(id, t.Key(id), text)
	} else {
		t.ToVal(id, text)
	}
	if flags != tree.NoType {
		t.AddFlags(id, flags)
	}
	return nil
}

// floatText renders a float the way the host formats it, except for the
// three canonical specials.
func floatText(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
