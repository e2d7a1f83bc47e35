package ir

func Truth(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case TableKind:
		return len(v.Entries) != 0
	case ArrayKind:
		return len(v.Elems) != 0
	case StringKind:
		return v.Str != ""
	case IntegerKind:
		return v.Int64 != 0
	case FloatKind:
		return v.Float64 != 0.0
	case BoolKind:
		return v.Bool
	case DateKind, TimeKind, DateTimeKind:
		return !v.Time.IsZero()
	case NullKind:
		return false
	default:
		return false
	}
}
