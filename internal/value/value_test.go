package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foppl-lang/foppl/internal/value"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"equal ints", value.Int(3), value.Int(3), true},
		{"different ints", value.Int(3), value.Int(4), false},
		{"int vs float never equal", value.Int(3), value.Flt(3.0), false},
		{"equal floats", value.Flt(1.5), value.Flt(1.5), true},
		{"equal bools", value.Bool(true), value.Bool(true), true},
		{"different bools", value.Bool(true), value.Bool(false), false},
		{"nulls always equal", value.Nil(), value.Nil(), true},
		{
			"equal vectors",
			value.Vec([]value.Value{value.Int(1), value.Int(2)}),
			value.Vec([]value.Value{value.Int(1), value.Int(2)}),
			true,
		},
		{
			"vectors differ by length",
			value.Vec([]value.Value{value.Int(1)}),
			value.Vec([]value.Value{value.Int(1), value.Int(2)}),
			false,
		},
		{
			"vectors differ by element",
			value.Vec([]value.Value{value.Int(1), value.Int(2)}),
			value.Vec([]value.Value{value.Int(1), value.Int(3)}),
			false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, value.Equal(tc.a, tc.b))
		})
	}
}

func TestAsFloat(t *testing.T) {
	t.Parallel()

	f, err := value.Int(2).AsFloat()
	require.NoError(t, err)
	require.Equal(t, 2.0, f)

	f, err = value.Flt(2.5).AsFloat()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	_, err = value.Bool(true).AsFloat()
	require.Error(t, err)
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	require.True(t, value.Int(1).IsNumeric())
	require.True(t, value.Flt(1).IsNumeric())
	require.False(t, value.Bool(true).IsNumeric())
	require.False(t, value.Nil().IsNumeric())
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "3", value.Int(3).String())
	require.Equal(t, "true", value.Bool(true).String())
	require.Equal(t, "null", value.Nil().String())
	require.Equal(t, "[1 2]", value.Vec([]value.Value{value.Int(1), value.Int(2)}).String())
}
