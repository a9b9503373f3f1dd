package extprot

import "math"

// DecodeLimits bounds the resources a decode may consume, mirroring
// kungfusheep/glint's DecodeLimits/DefaultLimits pattern in decoder.go.
type DecodeLimits struct {
	// MaxDepth bounds recursion through nested tuples, sums and promoted
	// primitives. Exceeding it fails with ErrDepthExceeded.
	MaxDepth int
}

// DefaultLimits is used whenever a caller doesn't supply its own limits.
var DefaultLimits = DecodeLimits{MaxDepth: 64}

// DecodeContext carries the hint/level/path parameters every generated
// reader accepts per §4.3: level and path for recursion bookkeeping and
// error reporting, hint as a generator-defined optimization opaque to the
// runtime.
type DecodeContext struct {
	Hint   string
	Level  int
	Path   []string
	Limits DecodeLimits
}

// NewDecodeContext returns the root decode context (level 0, no path) for
// the given limits.
func NewDecodeContext(limits DecodeLimits) DecodeContext {
	return DecodeContext{Limits: limits}
}

// DefaultDecodeContext returns the root decode context with DefaultLimits.
func DefaultDecodeContext() DecodeContext {
	return NewDecodeContext(DefaultLimits)
}

// Descend returns a context for recursing one level deeper along step
// (a field name, tuple index or constructor tag), or ErrDepthExceeded if
// that would exceed Limits.MaxDepth.
func (c DecodeContext) Descend(step string) (DecodeContext, error) {
	if c.Level+1 > c.Limits.MaxDepth {
		return c, ErrDepthExceeded
	}
	path := make([]string, len(c.Path), len(c.Path)+1)
	copy(path, c.Path)
	path = append(path, step)
	return DecodeContext{Hint: c.Hint, Level: c.Level + 1, Path: path, Limits: c.Limits}, nil
}

// OpenTupleBody reads a TUPLE/HTUPLE/BYTES/ASSOC body's varint byte-length
// and materializes exactly that many bytes as a StringReader, bounding all
// subsequent reads to the body without either reader implementation having
// to track an end offset itself. Given an IOReader, the body read blocks
// until the whole body has arrived.
func OpenTupleBody(r Reader) (*StringReader, error) {
	length, err := ReadVint(r)
	if err != nil {
		return nil, err
	}
	body, err := r.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	return NewStringReader(body), nil
}

// TupleFrame is an opened TUPLE body positioned after its present-element
// count, ready for per-element reads.
type TupleFrame struct {
	Body    *StringReader
	Present uint64 // number of elements the writer actually emitted
}

// OpenTuple expects prefix.Wire == WireTuple and opens its frame.
func OpenTuple(r Reader, prefix Prefix) (TupleFrame, error) {
	if prefix.Wire != WireTuple {
		return TupleFrame{}, ErrBadWireType
	}
	body, err := OpenTupleBody(r)
	if err != nil {
		return TupleFrame{}, err
	}
	present, err := ReadVint(body)
	if err != nil {
		return TupleFrame{}, err
	}
	return TupleFrame{Body: body, Present: present}, nil
}

// HtupleFrame is an opened HTUPLE body positioned after its element count.
type HtupleFrame struct {
	Body  *StringReader
	Count uint64
}

// OpenHtuple expects prefix.Wire == WireHtuple and opens its frame.
func OpenHtuple(r Reader, prefix Prefix) (HtupleFrame, error) {
	if prefix.Wire != WireHtuple {
		return HtupleFrame{}, ErrBadWireType
	}
	body, err := OpenTupleBody(r)
	if err != nil {
		return HtupleFrame{}, err
	}
	count, err := ReadVint(body)
	if err != nil {
		return HtupleFrame{}, err
	}
	return HtupleFrame{Body: body, Count: count}, nil
}

// primitiveExpand implements the §4.3 "primitive expansion" contract shared
// by every primitive reader below: when the observed wire type doesn't
// match the primitive's canonical one, descend into a TUPLE's first
// element (recursively reading the same primitive from it and discarding
// the rest, since the element's sub-reader is bounded and simply dropped)
// or, for a constant sum constructor (ENUM) or any other incompatible
// wire, fall back to the type's default.
func primitiveExpand[T any](r Reader, prefix Prefix, ctx DecodeContext, zero T, read func(Reader, DecodeContext) (T, error)) (T, error) {
	switch prefix.Wire {
	case WireTuple:
		nctx, err := ctx.Descend("[0]")
		if err != nil {
			return zero, WrapPath(err, ctx.Path)
		}
		frame, err := OpenTuple(r, prefix)
		if err != nil {
			return zero, WrapPath(err, ctx.Path)
		}
		if frame.Present == 0 {
			return zero, nil
		}
		return read(frame.Body, nctx)
	case WireEnum:
		return zero, nil
	default:
		return zero, nil
	}
}

// ReadBoolValue reads a bool primitive, applying expansion when the wire
// type isn't VINT.
func ReadBoolValue(r Reader, ctx DecodeContext) (bool, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return false, WrapPath(err, ctx.Path)
	}
	if prefix.Wire == WireVint {
		v, err := ReadVint(r)
		if err != nil {
			return false, WrapPath(err, ctx.Path)
		}
		return v != 0, nil
	}
	return primitiveExpand(r, prefix, ctx, false, ReadBoolValue)
}

// ReadByteValue reads a byte primitive (canonical wire BITS8).
func ReadByteValue(r Reader, ctx DecodeContext) (byte, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return 0, WrapPath(err, ctx.Path)
	}
	if prefix.Wire == WireBits8 {
		v, err := ReadBits8(r)
		return v, WrapPath(err, ctx.Path)
	}
	return primitiveExpand(r, prefix, ctx, 0, ReadByteValue)
}

// ReadIntValue reads an int primitive (canonical wire VINT, zig-zag).
// A BITS64_LONG body is accepted for forward compatibility with a field
// that was widened from int to long: the value is read as a long and
// narrowed, failing with ErrOverflow if it doesn't fit in an int32 (a
// well-behaved sender that performed the widening is responsible for not
// actually producing out-of-range values for an old reader; this is a
// defensive bound, not a promise the runtime can keep on the writer side).
func ReadIntValue(r Reader, ctx DecodeContext) (int32, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return 0, WrapPath(err, ctx.Path)
	}
	switch prefix.Wire {
	case WireVint:
		v, err := ReadSignedVint(r)
		if err != nil {
			return 0, WrapPath(err, ctx.Path)
		}
		return int32(v), nil
	case WireBits64Long:
		v, err := ReadBits64(r)
		if err != nil {
			return 0, WrapPath(err, ctx.Path)
		}
		n := int64(v)
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, WrapPath(ErrOverflow, ctx.Path)
		}
		return int32(n), nil
	default:
		return primitiveExpand(r, prefix, ctx, 0, ReadIntValue)
	}
}

// ReadLongValue reads a long primitive (canonical wire BITS64_LONG, raw
// two's-complement bits — fixed width needs no zig-zag).
func ReadLongValue(r Reader, ctx DecodeContext) (int64, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return 0, WrapPath(err, ctx.Path)
	}
	if prefix.Wire == WireBits64Long {
		v, err := ReadBits64(r)
		return int64(v), WrapPath(err, ctx.Path)
	}
	return primitiveExpand(r, prefix, ctx, 0, ReadLongValue)
}

// ReadFloatValue reads a float primitive (canonical wire BITS64_FLOAT,
// IEEE-754 double bits).
func ReadFloatValue(r Reader, ctx DecodeContext) (float64, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return 0, WrapPath(err, ctx.Path)
	}
	if prefix.Wire == WireBits64Float {
		v, err := ReadBits64(r)
		if err != nil {
			return 0, WrapPath(err, ctx.Path)
		}
		return math.Float64frombits(v), nil
	}
	return primitiveExpand(r, prefix, ctx, 0, ReadFloatValue)
}

// ReadStringValue reads a string primitive (canonical wire BYTES).
func ReadStringValue(r Reader, ctx DecodeContext) (string, error) {
	prefix, err := ReadPrefix(r)
	if err != nil {
		return "", WrapPath(err, ctx.Path)
	}
	if prefix.Wire == WireBytes {
		n, err := ReadVint(r)
		if err != nil {
			return "", WrapPath(err, ctx.Path)
		}
		b, err := r.ReadBytes(n)
		if err != nil {
			return "", WrapPath(err, ctx.Path)
		}
		return string(b), nil
	}
	return primitiveExpand(r, prefix, ctx, "", ReadStringValue)
}
