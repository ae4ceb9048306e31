package nestedtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingOrderingAndLookup(t *testing.T) {
	m := NewMapping()
	assert.Equal(t, 0, m.Len())

	existed := m.Set("first", String("1"))
	assert.False(t, existed)
	m.Set("second", String("2"))
	m.Set("third", String("3"))

	assert.Equal(t, []string{"first", "second", "third"}, m.Keys())

	v, ok := m.Get("second")
	assert.True(t, ok)
	assert.Equal(t, String("2"), v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMappingSetPreservesPositionOnOverwrite(t *testing.T) {
	m := NewMapping()
	m.Set("a", String("1"))
	m.Set("b", String("2"))
	m.Set("c", String("3"))

	existed := m.Set("b", String("replaced"))
	assert.True(t, existed)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, _ := m.Get("b")
	assert.Equal(t, String("replaced"), v)
}

func TestMappingRangeStopsEarly(t *testing.T) {
	m := NewMapping()
	m.Set("a", String("1"))
	m.Set("b", String("2"))
	m.Set("c", String("3"))

	var seen []string
	m.Range(func(key string, _ Value) bool {
		seen = append(seen, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestEqual(t *testing.T) {
	m1 := NewMapping()
	m1.Set("a", String("1"))
	m1.Set("b", List{String("x"), String("y")})

	m2 := NewMapping()
	m2.Set("a", String("1"))
	m2.Set("b", List{String("x"), String("y")})

	m3 := NewMapping()
	m3.Set("b", List{String("x"), String("y")})
	m3.Set("a", String("1"))

	assert.True(t, Equal(m1, m2))
	assert.False(t, Equal(m1, m3), "key order must matter")

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(String(""), nil))
	assert.True(t, Equal(List{}, List{}))
	assert.False(t, Equal(List{String("a")}, List{String("b")}))
}

func TestValueStringers(t *testing.T) {
	assert.Equal(t, "hi", String("hi").String())
	assert.Equal(t, `["a", "b"]`, List{String("a"), String("b")}.String())

	m := NewMapping()
	m.Set("k", String("v"))
	assert.Equal(t, `{k: "v"}`, m.String())
}
