package extprot

import "math"

// Writers always emit the declared arity of a tuple or record; adding
// extra elements for forward compatibility is a schema-level operation
// performed by generated code, not something this toolkit does on its own.

// WriteBoolValue writes a bool primitive: prefix(tag, VINT) then 0 or 1.
func WriteBoolValue(b *MsgBuffer, tag uint64, v bool) {
	b.AddPrefix(tag, WireVint)
	if v {
		b.AddVint(1)
	} else {
		b.AddVint(0)
	}
}

// WriteByteValue writes a byte primitive: prefix(tag, BITS8) then the byte.
func WriteByteValue(b *MsgBuffer, tag uint64, v byte) {
	b.AddPrefix(tag, WireBits8)
	b.AddByte(v)
}

// WriteIntValue writes an int primitive: prefix(tag, VINT) then zig-zag body.
func WriteIntValue(b *MsgBuffer, tag uint64, v int32) {
	b.AddPrefix(tag, WireVint)
	b.AddSignedVint(int64(v))
}

// WriteLongValue writes a long primitive: prefix(tag, BITS64_LONG) then raw
// two's-complement little-endian bits.
func WriteLongValue(b *MsgBuffer, tag uint64, v int64) {
	b.AddPrefix(tag, WireBits64Long)
	b.AddFixedI64LE(uint64(v))
}

// WriteFloatValue writes a float primitive: prefix(tag, BITS64_FLOAT) then
// IEEE-754 double bits.
func WriteFloatValue(b *MsgBuffer, tag uint64, v float64) {
	b.AddPrefix(tag, WireBits64Float)
	b.AddFixedI64LE(math.Float64bits(v))
}

// WriteStringValue writes a string primitive: prefix(tag, BYTES) then a
// varint length and the raw bytes.
func WriteStringValue(b *MsgBuffer, tag uint64, v string) {
	b.AddPrefix(tag, WireBytes)
	b.AddRawBytesWithLengthPrefix([]byte(v))
}

// WriteEnumValue writes a constant sum constructor: prefix(tag, ENUM), no
// body.
func WriteEnumValue(b *MsgBuffer, tag uint64) {
	b.AddPrefix(tag, WireEnum)
}

// WriteTuple writes a TUPLE-wire value: prefix(tag, TUPLE), then a
// length-prefixed body consisting of the element count followed by each
// element, emitted in turn by writeElements. Records and non-constant sum
// constructors are both TUPLE-wire and use this helper; count must equal
// the declared arity and the number of elements writeElements emits.
func WriteTuple(b *MsgBuffer, tag uint64, count uint64, writeElements func(*MsgBuffer)) {
	b.AddPrefix(tag, WireTuple)
	b.WriteLengthPrefixed(func(body *MsgBuffer) {
		body.AddVint(count)
		writeElements(body)
	})
}

// WriteHtuple writes an HTUPLE-wire value (the wire form of lists and
// arrays): prefix(tag, HTUPLE), then a length-prefixed body consisting of
// the element count followed by each element, emitted in turn by
// writeElements.
func WriteHtuple(b *MsgBuffer, tag uint64, count uint64, writeElements func(*MsgBuffer)) {
	b.AddPrefix(tag, WireHtuple)
	b.WriteLengthPrefixed(func(body *MsgBuffer) {
		body.AddVint(count)
		writeElements(body)
	})
}
