package schema

import "github.com/extprot-go/extprot"

// Default computes the inductive default value of t, per §4.5:
//
//   - bool -> false; byte/int/long -> 0; float -> 0.0
//   - string -> empty, unless t carries a [@default v] literal
//   - tuple -> tuple of each element's default; undefined if any lacks one
//   - list/array -> empty
//   - sum -> its first constant constructor if any, else the default of
//     the first non-constant constructor's field tuple (if total)
//   - record -> record of each field's type default (if total)
//
// A type with no computable default returns ErrMissingFieldNoDefault,
// surfaced by a reader at the point a missing value actually needs one.
func Default(t Type) (Value, error) {
	switch t.Kind {
	case Bool:
		return BoolValue(false), nil
	case Byte:
		return ByteValue(0), nil
	case Int:
		return IntValue(0), nil
	case Long:
		return LongValue(0), nil
	case Float:
		return FloatValue(0), nil
	case String:
		if t.DefaultLiteral != nil {
			return StringValue(*t.DefaultLiteral), nil
		}
		return StringValue(""), nil
	case List:
		return ListValue(), nil
	case Array:
		return ArrayValue(), nil
	case Tuple:
		elems := make([]Value, len(t.Elems))
		for i, et := range t.Elems {
			v, err := Default(et)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return TupleValue(elems...), nil
	case Sum:
		for i, c := range t.Constructors {
			if c.IsConstant() {
				return SumValue(uint64(i), c.Name), nil
			}
		}
		if len(t.Constructors) == 0 {
			return Value{}, extprot.ErrMissingFieldNoDefault
		}
		c := t.Constructors[0]
		if !c.IsConstant() {
			fields := make([]Value, len(c.Fields))
			for i, ft := range c.Fields {
				v, err := Default(ft)
				if err != nil {
					return Value{}, extprot.ErrMissingFieldNoDefault
				}
				fields[i] = v
			}
			return SumValue(0, c.Name, fields...), nil
		}
		return Value{}, extprot.ErrMissingFieldNoDefault
	case Record:
		fields := make(map[string]Value, len(t.Fields))
		for _, f := range t.Fields {
			v, err := Default(f.Type)
			if err != nil {
				return Value{}, extprot.ErrMissingFieldNoDefault
			}
			fields[f.Name] = v
		}
		return RecordValue(fields), nil
	default:
		return Value{}, extprot.ErrMissingFieldNoDefault
	}
}
