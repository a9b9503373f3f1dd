package extprot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIOReaderMatchesStringReader(t *testing.T) {
	wantBuf := &MsgBuffer{}
	WriteStringValue(wantBuf, 1, "a string long enough to span a couple of reads")

	sr := NewStringReader(wantBuf.Contents())
	viaString, err := ReadStringValue(sr, DefaultDecodeContext())
	require.NoError(t, err)

	ior := NewIOReader(bytes.NewReader(wantBuf.Contents()))
	viaIO, err := ReadStringValue(ior, DefaultDecodeContext())
	require.NoError(t, err)

	require.Equal(t, viaString, viaIO)
}

func TestIOReaderEOF(t *testing.T) {
	ior := NewIOReader(bytes.NewReader([]byte{0x01}))
	_, err := ior.ReadBytes(4)
	require.ErrorIs(t, err, ErrEndOfInput)
}

func TestIOReaderReadMessageSkipsUnknown(t *testing.T) {
	buf := &MsgBuffer{}
	WriteIntValue(buf, 7, 42)
	WriteStringValue(buf, 1, "tail")

	ior := NewIOReader(bytes.NewReader(buf.Contents()))
	frame, err := ior.ReadMessage()
	require.NoError(t, err)

	// The captured frame must decode to the same value as re-reading it in
	// isolation, and the stream must be left aligned for the next message.
	got, err := ReadIntValue(NewStringReader(frame), DefaultDecodeContext())
	require.NoError(t, err)
	require.EqualValues(t, 42, got)

	tail, err := ReadStringValue(ior, DefaultDecodeContext())
	require.NoError(t, err)
	require.Equal(t, "tail", tail)
}

func TestIOReaderReadMessageLengthPrefixed(t *testing.T) {
	buf := &MsgBuffer{}
	WriteTuple(buf, 0, 2, func(body *MsgBuffer) {
		WriteIntValue(body, 0, 1)
		WriteIntValue(body, 0, 2)
	})

	ior := NewIOReader(bytes.NewReader(buf.Contents()))
	frame, err := ior.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, buf.Contents(), frame)
}
