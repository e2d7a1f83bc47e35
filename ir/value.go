// Package ir holds the typed value hierarchy produced by the front-end
// parsers.  A Value is read-only from the point of view of everything
// downstream of a parser: materialization walks it, it never mutates it.
package ir

import "time"

// Entry is one (key, value) member of a table.  Tables keep their members
// in source order.
type Entry struct {
	Key   string
	Value *Value
}

type Value struct {
	Kind Kind

	Entries []Entry  // TableKind
	Elems   []*Value // ArrayKind

	Str     string
	Int64   int64
	Float64 float64
	Bool    bool

	// Time carries Date, Time and DateTime scalars.  HasOffset records
	// whether a DateTime came with a zone offset, so canonical text keeps
	// or omits the zone exactly as the source wrote it.
	Time      time.Time
	HasOffset bool
}

func Table() *Value { return &Value{Kind: TableKind} }
func Array() *Value { return &Value{Kind: ArrayKind} }
func Null() *Value  { return &Value{Kind: NullKind} }

func FromString(v string) *Value {
	return &Value{Kind: StringKind, Str: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntegerKind, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Kind: FloatKind, Float64: v}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromDate(t time.Time) *Value {
	return &Value{Kind: DateKind, Time: t}
}

func FromTime(t time.Time) *Value {
	return &Value{Kind: TimeKind, Time: t}
}

func FromDateTime(t time.Time, hasOffset bool) *Value {
	return &Value{Kind: DateTimeKind, Time: t, HasOffset: hasOffset}
}

// Put appends a table member.  It does not check for duplicates; parsers
// enforce their own duplicate-key rules.
func (v *Value) Put(key string, val *Value) {
	v.Entries = append(v.Entries, Entry{Key: key, Value: val})
}

// Append appends an array element.
func (v *Value) Append(e *Value) {
	v.Elems = append(v.Elems, e)
}

// Get returns the value at field in a table, or nil.
func (v *Value) Get(field string) *Value {
	for i := range v.Entries {
		if v.Entries[i].Key == field {
			return v.Entries[i].Value
		}
	}
	return nil
}

// Len returns the number of members of a composite value.
func (v *Value) Len() int {
	switch v.Kind {
	case TableKind:
		return len(v.Entries)
	case ArrayKind:
		return len(v.Elems)
	default:
		return 0
	}
}

// Visit calls f on v and, when f returns true on the pre-order call, on
// every member of composite values, members in source order.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for i := range v.Entries {
			if err := v.Entries[i].Value.Visit(f); err != nil {
				return err
			}
		}
		for _, e := range v.Elems {
			if err := e.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05.999999999"
	localDTLayout   = "2006-01-02T15:04:05.999999999"
	offsetDTLayout  = "2006-01-02T15:04:05.999999999Z07:00"
)

// TemporalString is the canonical text of Date, Time and DateTime values.
// It is the value's own stringification; nothing downstream re-parses or
// reformats it.
func (v *Value) TemporalString() string {
	switch v.Kind {
	case DateKind:
		return v.Time.Format(dateLayout)
	case TimeKind:
		return v.Time.Format(timeLayout)
	case DateTimeKind:
		if v.HasOffset {
			return v.Time.Format(offsetDTLayout)
		}
		return v.Time.Format(localDTLayout)
	}
	return ""
}
