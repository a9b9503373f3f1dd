package extprot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgBufferVint(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<64 - 1}
	for _, v := range cases {
		b := &MsgBuffer{}
		b.AddVint(v)
		r := NewStringReader(b.Contents())
		got, err := ReadVint(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.True(t, r.AtEnd())
	}
}

func TestMsgBufferSignedVint(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40)}
	for _, v := range cases {
		b := &MsgBuffer{}
		b.AddSignedVint(v)
		r := NewStringReader(b.Contents())
		got, err := ReadSignedVint(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestMsgBufferFixedWidth(t *testing.T) {
	b := &MsgBuffer{}
	b.AddFixedI32LE(0xdeadbeef)
	b.AddFixedI64LE(0x0123456789abcdef)
	r := NewStringReader(b.Contents())

	got32, err := ReadBits32(r)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), got32)

	got64, err := ReadBits64(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123456789abcdef), got64)
}

func TestMsgBufferWriteLengthPrefixed(t *testing.T) {
	b := &MsgBuffer{}
	b.WriteLengthPrefixed(func(body *MsgBuffer) {
		body.AddBytes([]byte("hello"))
	})
	r := NewStringReader(b.Contents())
	n, err := ReadVint(r)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
	got, err := r.ReadBytes(n)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))
}

func TestMsgBufferClearReusesBackingArray(t *testing.T) {
	b := &MsgBuffer{}
	b.AddBytes([]byte("abcdef"))
	backing := b.Bytes
	b.Clear()
	require.Equal(t, 0, b.Len())
	b.AddByte('x')
	require.Same(t, &backing[0], &b.Bytes[0])
}

func TestMsgBufferPool(t *testing.T) {
	b := NewMsgBuffer()
	b.AddByte(1)
	require.Equal(t, 1, b.Len())
	b.Release()

	b2 := NewMsgBuffer()
	require.Equal(t, 0, b2.Len())
	b2.Release()
}
