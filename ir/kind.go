package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	StringKind
	IntegerKind
	FloatKind
	BoolKind
	DateKind
	TimeKind
	DateTimeKind
	TableKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "Null",
		StringKind:   "String",
		IntegerKind:  "Integer",
		FloatKind:    "Float",
		BoolKind:     "Bool",
		DateKind:     "Date",
		TimeKind:     "Time",
		DateTimeKind: "DateTime",
		TableKind:    "Table",
		ArrayKind:    "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":     NullKind,
		"String":   StringKind,
		"Integer":  IntegerKind,
		"Float":    FloatKind,
		"Bool":     BoolKind,
		"Date":     DateKind,
		"Time":     TimeKind,
		"DateTime": DateTimeKind,
		"Table":    TableKind,
		"Array":    ArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKind, d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		StringKind,
		IntegerKind,
		FloatKind,
		BoolKind,
		DateKind,
		TimeKind,
		DateTimeKind,
		TableKind,
		ArrayKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case TableKind, ArrayKind:
		return false
	default:
		return true
	}
}
