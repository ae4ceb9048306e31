package nestedtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks the property from spec §8: encoding a Value tree
// and decoding the result yields an order-equal Value tree, for values
// that do not require quoting rules this format doesn't have.
func TestRoundTrip(t *testing.T) {
	values := []Value{
		String("a plain string"),
		String("line one\nline two\nline three"),
		List{String("a"), String("b"), String("c")},
		List{List{String("nested")}, String("top")},
		func() Value {
			m := NewMapping()
			m.Set("name", String("Alice"))
			m.Set("role", String("admin"))
			return m
		}(),
		func() Value {
			m := NewMapping()
			m.Set("line one\nline two", String("multiline key value"))
			inner := NewMapping()
			inner.Set("a", String("1"))
			m.Set("nested", inner)
			return m
		}(),
		func() Value {
			m := NewMapping()
			m.Set("empty", String(""))
			m.Set("other", String("x"))
			return m
		}(),
	}

	for i, v := range values {
		encoded, err := MarshalValue(v)
		require.NoErrorf(t, err, "case %d", i)

		decoded, err := Parse(encoded)
		require.NoErrorf(t, err, "case %d: %s", i, encoded)

		assert.Truef(t, Equal(v, decoded), "case %d: re-decoded value differs\nencoded:\n%s\nwant: %s\ngot:  %s",
			i, encoded, v, decoded)
	}
}

func TestRoundTripEmptyContainersDecodeAsEmpty(t *testing.T) {
	m := NewMapping()
	m.Set("list", List{})
	m.Set("scalar", String("x"))

	encoded, err := MarshalValue(m)
	require.NoError(t, err)

	decoded, err := Parse(encoded)
	require.NoError(t, err)

	out := decoded.(*Mapping)
	listVal, ok := out.Get("list")
	require.True(t, ok)
	assert.Equal(t, String(""), listVal, "an empty list has no distinguishable on-disk form from an empty string")
}
