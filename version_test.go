package extprot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func intCodec() VersionedCodec {
	return VersionedCodec{
		Write: func(b *MsgBuffer, v any) error {
			WriteIntValue(b, 0, v.(int32))
			return nil
		},
		Read: func(r Reader, ctx DecodeContext) (any, error) {
			return ReadIntValue(r, ctx)
		},
	}
}

func stringCodec() VersionedCodec {
	return VersionedCodec{
		Write: func(b *MsgBuffer, v any) error {
			WriteStringValue(b, 0, v.(string))
			return nil
		},
		Read: func(r Reader, ctx DecodeContext) (any, error) {
			return ReadStringValue(r, ctx)
		},
	}
}

func TestSerializeDeserializeVersionedRoundTrip(t *testing.T) {
	fs := []VersionedCodec{intCodec(), stringCodec()}

	data, err := SerializeVersioned(fs, 0, int32(42), nil)
	require.NoError(t, err)
	got, err := DeserializeVersioned(fs, data)
	require.NoError(t, err)
	require.Equal(t, int32(42), got)

	data, err = SerializeVersioned(fs, 1, "hi", nil)
	require.NoError(t, err)
	got, err = DeserializeVersioned(fs, data)
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}

func TestSerializeVersionedRejectsUnknownVersion(t *testing.T) {
	fs := []VersionedCodec{intCodec()}
	_, err := SerializeVersioned(fs, 5, int32(1), nil)
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestDeserializeVersionedRejectsUnknown(t *testing.T) {
	fs := []VersionedCodec{intCodec()}
	var wrong *WrongProtocolVersionError
	_, err := DeserializeVersioned(fs, []byte{5, 0})
	require.ErrorAs(t, err, &wrong)
	require.Equal(t, 5, wrong.Found)
}

func TestDeserializeVersionedExplicit(t *testing.T) {
	fs := []VersionedCodec{intCodec(), stringCodec()}
	b := &MsgBuffer{}
	WriteStringValue(b, 0, "explicit")
	got, err := DeserializeVersionedExplicit(fs, 1, b.Contents())
	require.NoError(t, err)
	require.Equal(t, "explicit", got)
}

func TestWriteReadVersionedExternalFraming(t *testing.T) {
	fs := []VersionedCodec{intCodec()}
	var buf bytes.Buffer
	iow := NewIOWriter(&buf)

	require.NoError(t, WriteVersioned(fs, iow, 0, int32(7), nil, nil))

	ior := NewIOReader(&buf)
	got, err := ReadVersioned(fs, ior, nil)
	require.NoError(t, err)
	require.Equal(t, int32(7), got)
}

func TestReadVersionedSkipsUnknownVersion(t *testing.T) {
	fs := []VersionedCodec{intCodec()}
	known := []VersionedCodec{intCodec(), stringCodec()}

	var buf bytes.Buffer
	iow := NewIOWriter(&buf)
	require.NoError(t, WriteVersioned(known, iow, 1, "future", nil, nil))
	require.NoError(t, WriteVersioned(known, iow, 0, int32(11), nil, nil))

	// fs only knows version 0; reading the first (version 1) frame with it
	// must report the mismatch while leaving the stream aligned so the
	// second (version 0) frame still reads correctly.
	ior := NewIOReader(&buf)
	_, err := ReadVersioned(fs, ior, nil)
	var wrong *WrongProtocolVersionError
	require.ErrorAs(t, err, &wrong)

	got, err := ReadVersioned(fs, ior, nil)
	require.NoError(t, err)
	require.Equal(t, int32(11), got)
}

func TestReadFrame(t *testing.T) {
	fs := []VersionedCodec{intCodec()}
	var buf bytes.Buffer
	iow := NewIOWriter(&buf)
	require.NoError(t, WriteVersioned(fs, iow, 0, int32(9), nil, nil))

	ior := NewIOReader(&buf)
	version, raw, err := ReadFrame(ior)
	require.NoError(t, err)
	require.Equal(t, 0, version)

	got, err := ReadIntValue(NewStringReader(raw), DefaultDecodeContext())
	require.NoError(t, err)
	require.EqualValues(t, 9, got)
}
