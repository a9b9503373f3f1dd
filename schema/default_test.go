package schema

import (
	"testing"

	"github.com/extprot-go/extprot"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrimitives(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		want Value
	}{
		{"bool", NewBool(), BoolValue(false)},
		{"byte", NewByte(), ByteValue(0)},
		{"int", NewInt(), IntValue(0)},
		{"long", NewLong(), LongValue(0)},
		{"float", NewFloat(), FloatValue(0)},
		{"string", NewString(), StringValue("")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Default(c.t)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestDefaultStringLiteral(t *testing.T) {
	got, err := Default(NewStringWithDefault("n/a"))
	require.NoError(t, err)
	require.Equal(t, StringValue("n/a"), got)
}

func TestDefaultListArrayAreEmpty(t *testing.T) {
	got, err := Default(NewList(NewInt()))
	require.NoError(t, err)
	require.Equal(t, ListValue(), got)

	got, err = Default(NewArray(NewString()))
	require.NoError(t, err)
	require.Equal(t, ArrayValue(), got)
}

func TestDefaultTuple(t *testing.T) {
	got, err := Default(NewTuple(NewInt(), NewBool()))
	require.NoError(t, err)
	require.Equal(t, TupleValue(IntValue(0), BoolValue(false)), got)
}

func TestDefaultTupleWithoutDefaultablElement(t *testing.T) {
	// A sum with no constant constructor and a non-total field has no
	// inductive default.
	bad := NewSum(Constructor{Name: "Only", Fields: []Type{NewSum()}})
	_, err := Default(NewTuple(bad))
	require.ErrorIs(t, err, extprot.ErrMissingFieldNoDefault)
}

func TestDefaultSumPrefersConstantConstructor(t *testing.T) {
	sum := NewSum(
		Constructor{Name: "Known", Fields: []Type{NewInt()}},
		Constructor{Name: "Unknown"},
	)
	got, err := Default(sum)
	require.NoError(t, err)
	require.Equal(t, SumValue(1, "Unknown"), got)
}

func TestDefaultSumFallsBackToFirstConstructor(t *testing.T) {
	sum := NewSum(Constructor{Name: "Pair", Fields: []Type{NewInt(), NewBool()}})
	got, err := Default(sum)
	require.NoError(t, err)
	require.Equal(t, SumValue(0, "Pair", IntValue(0), BoolValue(false)), got)
}

func TestDefaultSumWithNoConstructorsHasNoDefault(t *testing.T) {
	_, err := Default(NewSum())
	require.ErrorIs(t, err, extprot.ErrMissingFieldNoDefault)
}

func TestDefaultRecord(t *testing.T) {
	rec := NewRecord(
		RecordField{Name: "x", Type: NewInt()},
		RecordField{Name: "y", Type: NewInt()},
	)
	got, err := Default(rec)
	require.NoError(t, err)
	require.Equal(t, RecordValue(map[string]Value{"x": IntValue(0), "y": IntValue(0)}), got)
}
