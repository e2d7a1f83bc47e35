package doctree

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/doctree-format/doctree/ir"
	"github.com/doctree-format/doctree/tree"
)

// ParseYAML parses a YAML (or JSON) document and materializes it into a
// new tree.  The same materializer serves both front ends; only the value
// decoding differs.
func ParseYAML(src []byte) (*tree.Tree, error) {
	t := tree.New()
	if err := ParseYAMLInto(src, t, t.Root()); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseYAMLInto parses src and materializes it at node id of t.
func ParseYAMLInto(src []byte, t *tree.Tree, id tree.NodeID) error {
	v, err := YAMLValue(src)
	if err != nil {
		return err
	}
	return Materialize(v, t, id)
}

// YAMLValue decodes a YAML document into the ir value model, mapping
// order preserved.
func YAMLValue(src []byte) (*ir.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src), yaml.UseOrderedMap())
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("doctree: yaml: %w", err)
	}
	return fromYAML(doc)
}

func fromYAML(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.Table()
		for _, item := range x {
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Put(fmt.Sprintf("%v", item.Key), child)
		}
		return res, nil
	case []any:
		res := ir.Array()
		for _, e := range x {
			child, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case bool:
		return ir.FromBool(x), nil
	case time.Time:
		return ir.FromDateTime(x, true), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrValueKind, v)
	}
}
