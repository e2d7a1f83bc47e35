// Package eval evaluates expressions against parsed documents.
// Expressions are evaluated with expr-lang; the document's tables and
// arrays become the evaluation environment.
package eval

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/doctree-format/doctree/ir"
)

var ErrResult = errors.New("eval: bad result")

// Query compiles src and runs it with doc's members as the environment.
func Query(src string, doc *ir.Value) (any, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("eval: compile: %w", err)
	}
	out, err := vm.Run(program, ToAny(doc))
	if err != nil {
		return nil, fmt.Errorf("eval: run: %w", err)
	}
	return out, nil
}

// ToAny converts a source value into plain Go data for expression
// evaluation.  Temporal scalars stay time.Time so expressions can
// compare them.
func ToAny(v *ir.Value) any {
	switch v.Kind {
	case ir.TableKind:
		m := make(map[string]any, len(v.Entries))
		for i := range v.Entries {
			e := &v.Entries[i]
			m[e.Key] = ToAny(e.Value)
		}
		return m
	case ir.ArrayKind:
		s := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			s[i] = ToAny(e)
		}
		return s
	case ir.StringKind:
		return v.Str
	case ir.IntegerKind:
		return v.Int64
	case ir.FloatKind:
		return v.Float64
	case ir.BoolKind:
		return v.Bool
	case ir.DateKind, ir.TimeKind, ir.DateTimeKind:
		return v.Time
	default:
		return nil
	}
}

// FromAny converts an expression result back into a source value so it
// can be materialized and encoded like any document.  Map keys come out
// sorted for determinism.
func FromAny(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromDateTime(x, true), nil
	case []any:
		res := ir.Array()
		for _, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(c)
		}
		return res, nil
	case map[string]any:
		res := ir.Table()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Put(k, c)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrResult, v)
	}
}
