package schema

import "github.com/extprot-go/extprot"

// WriteDynamic writes v, of schema type t, to b under the given tag. It is
// the generic counterpart of the per-type write_T functions a real code
// generator would emit: every schema Kind maps onto exactly the toolkit
// calls in extprot's encode.go that generated code would make. Elements
// nested inside a tuple, list, array or sum payload are themselves written
// with tag 0, matching the invariant that only a tuple's own identity (or
// a sum constructor's index) carries a tag — the elements within it are
// positional.
func WriteDynamic(b *extprot.MsgBuffer, tag uint64, t Type, v Value) error {
	switch t.Kind {
	case Bool:
		extprot.WriteBoolValue(b, tag, v.B)
	case Byte:
		extprot.WriteByteValue(b, tag, v.Y)
	case Int:
		extprot.WriteIntValue(b, tag, v.I)
	case Long:
		extprot.WriteLongValue(b, tag, v.L)
	case Float:
		extprot.WriteFloatValue(b, tag, v.F)
	case String:
		extprot.WriteStringValue(b, tag, v.S)
	case Tuple:
		if len(v.Elems) != len(t.Elems) {
			return extprot.ErrMissingFieldNoDefault
		}
		var werr error
		extprot.WriteTuple(b, tag, uint64(len(t.Elems)), func(body *extprot.MsgBuffer) {
			for i, et := range t.Elems {
				if err := WriteDynamic(body, 0, et, v.Elems[i]); err != nil {
					werr = err
				}
			}
		})
		return werr
	case List, Array:
		if t.Elem == nil {
			return extprot.ErrBadWireType
		}
		var werr error
		extprot.WriteHtuple(b, tag, uint64(len(v.Elems)), func(body *extprot.MsgBuffer) {
			for _, e := range v.Elems {
				if err := WriteDynamic(body, 0, *t.Elem, e); err != nil {
					werr = err
				}
			}
		})
		return werr
	case Sum:
		if v.Tag >= uint64(len(t.Constructors)) {
			return extprot.ErrUnknownTag
		}
		c := t.Constructors[v.Tag]
		if c.IsConstant() {
			extprot.WriteEnumValue(b, v.Tag)
			return nil
		}
		if len(v.Elems) != len(c.Fields) {
			return extprot.ErrMissingFieldNoDefault
		}
		var werr error
		extprot.WriteTuple(b, v.Tag, uint64(len(c.Fields)), func(body *extprot.MsgBuffer) {
			for i, ft := range c.Fields {
				if err := WriteDynamic(body, 0, ft, v.Elems[i]); err != nil {
					werr = err
				}
			}
		})
		return werr
	case Record:
		var werr error
		extprot.WriteTuple(b, tag, uint64(len(t.Fields)), func(body *extprot.MsgBuffer) {
			for _, f := range t.Fields {
				if err := WriteDynamic(body, 0, f.Type, v.Fields[f.Name]); err != nil {
					werr = err
				}
			}
		})
		return werr
	default:
		return extprot.ErrBadWireType
	}
	return nil
}

// ReadDynamic reads a value of schema type t from r, applying the full
// type-directed decode contract of §4.3: primitive expansion and numeric
// widening (delegated to extprot's primitive readers), default
// substitution for tuple elements and record fields the writer omitted,
// and forward-compatible skipping of any elements beyond the declared
// arity (which falls out for free here, since a TUPLE/HTUPLE body is
// materialized as a bounded StringReader and simply discarded once the
// declared elements have been read from it).
func ReadDynamic(r extprot.Reader, t Type, ctx extprot.DecodeContext) (Value, error) {
	switch t.Kind {
	case Bool:
		v, err := extprot.ReadBoolValue(r, ctx)
		return BoolValue(v), err
	case Byte:
		v, err := extprot.ReadByteValue(r, ctx)
		return ByteValue(v), err
	case Int:
		v, err := extprot.ReadIntValue(r, ctx)
		return IntValue(v), err
	case Long:
		v, err := extprot.ReadLongValue(r, ctx)
		return LongValue(v), err
	case Float:
		v, err := extprot.ReadFloatValue(r, ctx)
		return FloatValue(v), err
	case String:
		v, err := extprot.ReadStringValue(r, ctx)
		return StringValue(v), err
	case Tuple:
		return readTuple(r, t, ctx)
	case List, Array:
		return readHtuple(r, t, ctx)
	case Sum:
		return readSum(r, t, ctx)
	case Record:
		return readRecord(r, t, ctx)
	default:
		return Value{}, extprot.WrapPath(extprot.ErrBadWireType, ctx.Path)
	}
}

// readTuple implements the §4.3 tuple reader contract, including the
// "promote primitive to tuple" extension (§6's compatibility table,
// exercised literally by the dim/variance scenario in §8.6): if the wire
// on the stream is a bare primitive rather than TUPLE, the whole value IS
// the tuple's first element — the schema has simply grown a new, defaulted
// tail since it was written. That requires peeking the prefix and
// rewinding before committing to either interpretation, which only a
// StringReader can do in O(1); a non-seekable Reader can still read
// ordinary (non-promoted) tuples, just not this promotion.
func readTuple(r extprot.Reader, t Type, ctx extprot.DecodeContext) (Value, error) {
	if sr, ok := r.(*extprot.StringReader); ok && len(t.Elems) > 0 {
		mark := sr.Pos()
		prefix, err := extprot.ReadPrefix(sr)
		if err != nil {
			return Value{}, extprot.WrapPath(err, ctx.Path)
		}
		if prefix.Wire != extprot.WireTuple {
			sr.Rewind(mark)
			return readPromotedTuple(sr, t, ctx)
		}
		return readTupleFrame(sr, prefix, t, ctx)
	}

	prefix, err := extprot.ReadPrefix(r)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	if prefix.Wire != extprot.WireTuple {
		return Value{}, extprot.WrapPath(extprot.ErrBadWireType, ctx.Path)
	}
	return readTupleFrame(r, prefix, t, ctx)
}

func readPromotedTuple(r extprot.Reader, t Type, ctx extprot.DecodeContext) (Value, error) {
	first, err := ReadDynamic(r, t.Elems[0], ctx)
	if err != nil {
		return Value{}, err
	}
	elems := make([]Value, len(t.Elems))
	elems[0] = first
	for i := 1; i < len(t.Elems); i++ {
		d, err := Default(t.Elems[i])
		if err != nil {
			return Value{}, extprot.WrapPath(extprot.ErrMissingFieldNoDefault, ctx.Path)
		}
		elems[i] = d
	}
	return TupleValue(elems...), nil
}

func readTupleFrame(r extprot.Reader, prefix extprot.Prefix, t Type, ctx extprot.DecodeContext) (Value, error) {
	frame, err := extprot.OpenTuple(r, prefix)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	nctx, err := ctx.Descend("tuple")
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	elems := make([]Value, len(t.Elems))
	for i, et := range t.Elems {
		if uint64(i) < frame.Present {
			v, err := ReadDynamic(frame.Body, et, nctx)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
			continue
		}
		d, err := Default(et)
		if err != nil {
			return Value{}, extprot.WrapPath(extprot.ErrMissingFieldNoDefault, nctx.Path)
		}
		elems[i] = d
	}
	return TupleValue(elems...), nil
}

func readHtuple(r extprot.Reader, t Type, ctx extprot.DecodeContext) (Value, error) {
	prefix, err := extprot.ReadPrefix(r)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	frame, err := extprot.OpenHtuple(r, prefix)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	nctx, err := ctx.Descend("elem")
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	elems := make([]Value, frame.Count)
	for i := range elems {
		v, err := ReadDynamic(frame.Body, *t.Elem, nctx)
		if err != nil {
			return Value{}, err
		}
		elems[i] = v
	}
	return Value{Kind: t.Kind, Elems: elems}, nil
}

func readSum(r extprot.Reader, t Type, ctx extprot.DecodeContext) (Value, error) {
	prefix, err := extprot.ReadPrefix(r)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	if prefix.Tag >= uint64(len(t.Constructors)) {
		return Value{}, extprot.WrapPath(extprot.ErrUnknownTag, ctx.Path)
	}
	c := t.Constructors[prefix.Tag]

	switch prefix.Wire {
	case extprot.WireEnum:
		if !c.IsConstant() {
			return Value{}, extprot.WrapPath(extprot.ErrBadWireType, ctx.Path)
		}
		return SumValue(prefix.Tag, c.Name), nil
	case extprot.WireTuple:
		if c.IsConstant() {
			return Value{}, extprot.WrapPath(extprot.ErrBadWireType, ctx.Path)
		}
		frame, err := extprot.OpenTuple(r, prefix)
		if err != nil {
			return Value{}, extprot.WrapPath(err, ctx.Path)
		}
		nctx, err := ctx.Descend(c.Name)
		if err != nil {
			return Value{}, extprot.WrapPath(err, ctx.Path)
		}
		fields := make([]Value, len(c.Fields))
		for i, ft := range c.Fields {
			if uint64(i) < frame.Present {
				v, err := ReadDynamic(frame.Body, ft, nctx)
				if err != nil {
					return Value{}, err
				}
				fields[i] = v
				continue
			}
			d, err := Default(ft)
			if err != nil {
				return Value{}, extprot.WrapPath(extprot.ErrMissingFieldNoDefault, nctx.Path)
			}
			fields[i] = d
		}
		return SumValue(prefix.Tag, c.Name, fields...), nil
	default:
		return Value{}, extprot.WrapPath(extprot.ErrBadWireType, ctx.Path)
	}
}

func readRecord(r extprot.Reader, t Type, ctx extprot.DecodeContext) (Value, error) {
	prefix, err := extprot.ReadPrefix(r)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	frame, err := extprot.OpenTuple(r, prefix)
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	nctx, err := ctx.Descend("record")
	if err != nil {
		return Value{}, extprot.WrapPath(err, ctx.Path)
	}
	fields := make(map[string]Value, len(t.Fields))
	for i, f := range t.Fields {
		if uint64(i) < frame.Present {
			v, err := ReadDynamic(frame.Body, f.Type, nctx)
			if err != nil {
				return Value{}, err
			}
			fields[f.Name] = v
			continue
		}
		d, err := Default(f.Type)
		if err != nil {
			return Value{}, extprot.WrapPath(extprot.ErrMissingFieldNoDefault, nctx.Path)
		}
		fields[f.Name] = d
	}
	return RecordValue(fields), nil
}
