package extprot

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// TestPrefixPacking mirrors the pack/round-trip table style of a bytewise
// wire-format test: each case's prefix is packed, decoded back, and
// compared structurally rather than byte-for-byte, since extprot's prefix
// varint width depends on the tag's magnitude.
func TestPrefixPacking(t *testing.T) {
	tests := []struct {
		tag  uint64
		wire WireType
	}{
		{0, WireVint},
		{1, WireTuple},
		{2, WireBits8},
		{3, WireEnum},
		{300, WireBytes},
		{1 << 20, WireBits64Long},
	}
	for _, test := range tests {
		want := &Prefix{Tag: test.tag, Wire: test.wire}
		raw := EncodePrefix(test.tag, test.wire)
		got := DecodePrefix(raw)
		if diff := pretty.Compare(&got, want); diff != "" {
			t.Errorf("prefix round trip for tag=%d wire=%v differs (-got, +want)\n%s", test.tag, test.wire, diff)
		}
	}
}
