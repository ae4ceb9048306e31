package nestedtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalStruct(t *testing.T) {
	type Address struct {
		City string `nt:"city"`
	}
	type Person struct {
		Name    string `nt:"name"`
		Address Address
		Ignored string `nt:"-"`
	}

	p := Person{Name: "Alice", Address: Address{City: "Springfield"}, Ignored: "nope"}

	out, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "name: Alice\nAddress:\n    city: Springfield\n", string(out))
}

func TestMarshalSliceOfStrings(t *testing.T) {
	out, err := Marshal([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(out))
}

func TestMarshalRoundTripsThroughUnmarshal(t *testing.T) {
	type Config struct {
		Name  string   `nt:"name"`
		Ports []string `nt:"ports"`
	}
	in := Config{Name: "svc", Ports: []string{"80", "443"}}

	data, err := Marshal(in)
	require.NoError(t, err)

	var out Config
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestMarshalMapStringAny(t *testing.T) {
	out, err := Marshal(map[string]any{"a": "1"})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(out))
}

func TestMarshalRejectsNonStringMapKey(t *testing.T) {
	_, err := Marshal(map[int]string{1: "a"})
	require.Error(t, err)
}

func TestToInterface(t *testing.T) {
	v, err := Parse([]byte("a: 1\nb:\n  - x\n"))
	require.NoError(t, err)

	native, err := ToInterface(v)
	require.NoError(t, err)

	m := native.(map[string]any)
	assert.Equal(t, "1", m["a"])
	assert.Equal(t, []any{"x"}, m["b"])
}
