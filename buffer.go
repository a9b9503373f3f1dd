package extprot

import "sync"

// MsgBuffer accumulates encoded bytes during serialization. It supports only
// append operations, mirroring the append-only Buffer in kungfusheep/glint,
// adapted here to extprot's prefix/length-prefixed wire discipline instead
// of glint's named, schema-embedded one.
type MsgBuffer struct {
	Bytes []byte
}

// Clear empties the buffer but keeps its backing array, so a caller-supplied
// buffer can be reused across calls without reallocating.
func (b *MsgBuffer) Clear() {
	b.Bytes = b.Bytes[:0]
}

// Contents returns the bytes accumulated so far. The slice aliases the
// buffer's backing array and is only valid until the next mutation.
func (b *MsgBuffer) Contents() []byte {
	return b.Bytes
}

// Len reports the number of bytes accumulated so far.
func (b *MsgBuffer) Len() int {
	return len(b.Bytes)
}

var msgBufferPool = sync.Pool{
	New: func() any { return &MsgBuffer{} },
}

// NewMsgBuffer obtains a cleared MsgBuffer from the pool. Call Release when
// finished with it. Pooling is optional: a zero-value MsgBuffer is also
// ready to use.
func NewMsgBuffer() *MsgBuffer {
	b := msgBufferPool.Get().(*MsgBuffer)
	b.Clear()
	return b
}

// Release returns the buffer to the pool. The buffer must not be used
// afterwards.
func (b *MsgBuffer) Release() {
	msgBufferPool.Put(b)
}

// AddByte appends a single raw byte.
func (b *MsgBuffer) AddByte(v byte) {
	b.Bytes = append(b.Bytes, v)
}

// AddBytes appends raw bytes with no length prefix.
func (b *MsgBuffer) AddBytes(v []byte) {
	b.Bytes = append(b.Bytes, v...)
}

// AddRawBytesWithLengthPrefix appends a varint byte-length followed by the
// raw bytes, the BYTES wire-type body used for strings.
func (b *MsgBuffer) AddRawBytesWithLengthPrefix(v []byte) {
	b.AddVint(uint64(len(v)))
	b.Bytes = append(b.Bytes, v...)
}

// AddVint appends v as a base-128 little-endian varint: 7 payload bits per
// byte, continuation bit set on every byte but the last.
func (b *MsgBuffer) AddVint(v uint64) {
	b.Bytes = appendVint(b.Bytes, v)
}

func appendVint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AddSignedVint zig-zag encodes v, then appends it as a varint: (n<<1)^(n>>63).
func (b *MsgBuffer) AddSignedVint(v int64) {
	b.AddVint(zigzagEncode(v))
}

func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// AddFixedI32LE appends a 4-byte little-endian body.
func (b *MsgBuffer) AddFixedI32LE(v uint32) {
	b.Bytes = append(b.Bytes, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// AddFixedI64LE appends an 8-byte little-endian body.
func (b *MsgBuffer) AddFixedI64LE(v uint64) {
	b.Bytes = append(b.Bytes,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// AddPrefix writes the leading varint of a value: (tag<<4)|wire.
func (b *MsgBuffer) AddPrefix(tag uint64, wire WireType) {
	b.AddVint(EncodePrefix(tag, wire))
}

// WriteLengthPrefixed materializes body into a scratch buffer (drawn from
// the same pool as NewMsgBuffer), then appends the scratch buffer's length
// as a varint followed by its contents. This is how TUPLE and HTUPLE
// bodies get their leading byte-length (BYTES bodies use
// AddRawBytesWithLengthPrefix instead): the writer must know the
// length before the length can be written, so the body is written twice
// over (once to the scratch region, then copied) rather than patched in
// place.
func (b *MsgBuffer) WriteLengthPrefixed(body func(*MsgBuffer)) {
	scratch := NewMsgBuffer()
	defer scratch.Release()

	body(scratch)

	b.AddVint(uint64(scratch.Len()))
	b.AddBytes(scratch.Contents())
}
