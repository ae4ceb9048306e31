package nestedtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalValueScalarString(t *testing.T) {
	out, err := MarshalValue(String("hello"))
	require.NoError(t, err)
	assert.Equal(t, "> hello\n", string(out))
}

func TestMarshalValueMultilineString(t *testing.T) {
	out, err := MarshalValue(String("hello\nworld"))
	require.NoError(t, err)
	assert.Equal(t, "> hello\n> world\n", string(out))
}

func TestMarshalValueList(t *testing.T) {
	out, err := MarshalValue(List{String("a"), String("b")})
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(out))
}

func TestMarshalValueNestedList(t *testing.T) {
	out, err := MarshalValue(List{List{String("a"), String("b")}}, WithIndent(2))
	require.NoError(t, err)
	assert.Equal(t, "-\n  - a\n  - b\n", string(out))
}

func TestMarshalValueMapping(t *testing.T) {
	m := NewMapping()
	m.Set("name", String("Alice"))
	m.Set("age", String("30"))

	out, err := MarshalValue(m)
	require.NoError(t, err)
	assert.Equal(t, "name: Alice\nage: 30\n", string(out))
}

func TestMarshalValueEmptyString(t *testing.T) {
	m := NewMapping()
	m.Set("key", String(""))

	out, err := MarshalValue(m)
	require.NoError(t, err)
	assert.Equal(t, "key:\n", string(out))
}

func TestMarshalValueSortedKeys(t *testing.T) {
	m := NewMapping()
	m.Set("zebra", String("1"))
	m.Set("apple", String("2"))

	out, err := MarshalValue(m, WithSortedKeys())
	require.NoError(t, err)
	assert.Equal(t, "apple: 2\nzebra: 1\n", string(out))
}

func TestMarshalValueKeyComparator(t *testing.T) {
	m := NewMapping()
	m.Set("a", String("1"))
	m.Set("b", String("2"))

	// Reverse order.
	out, err := MarshalValue(m, WithKeyComparator(func(a, b string) bool { return a > b }))
	require.NoError(t, err)
	assert.Equal(t, "b: 2\na: 1\n", string(out))
}

func TestMarshalValueMultilineKey(t *testing.T) {
	m := NewMapping()
	m.Set("line one\nline two", String("value"))

	out, err := MarshalValue(m, WithIndent(4))
	require.NoError(t, err)
	assert.Equal(t, ": line one\n: line two\n    > value\n", string(out))
}

func TestMarshalValueNilIsEmptyDocument(t *testing.T) {
	out, err := MarshalValue(nil)
	require.NoError(t, err)
	assert.Equal(t, "", string(out))
}
