package nestedtext

import "strings"

// Value is a NestedText value tree node: a String, a List, or a *Mapping
// (spec §3). A nil Value represents the absent value produced by
// decoding an empty document; it is distinct from an empty String, an
// empty List, or an empty *Mapping.
type Value interface {
	isValue()
}

// String is a (possibly multi-line) NestedText string value. Internal
// newlines are part of the value; no trailing newline is appended by the
// decoder.
type String string

func (String) isValue() {}

// String implements fmt.Stringer by returning the underlying text. It
// is the same string conversion callers get from string(s); it exists
// so a String satisfies fmt.Stringer like List and *Mapping do.
func (s String) String() string { return string(s) }

// List is an ordered, duplicate-permitting sequence of values.
type List []Value

func (List) isValue() {}

// String renders l as a debug string; see debugString.
func (l List) String() string { return debugString(l) }

// entry is one (key, value) pair of a Mapping, in insertion order.
type entry struct {
	key   string
	value Value
}

// Mapping is an ordered sequence of (key, value) pairs with string keys.
// Key order is insertion order; after decoding, each key appears exactly
// once (spec §3). It keeps a parallel index for O(1) lookup alongside the
// ordered entry slice, per spec §9's "Duplicate-key container" note.
type Mapping struct {
	entries []entry
	index   map[string]int
}

func (*Mapping) isValue() {}

// String renders m as a debug string; see debugString.
func (m *Mapping) String() string { return debugString(m) }

// NewMapping returns an empty, ready-to-use Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Len returns the number of keys in the mapping.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value for key and whether it was present.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].value, true
}

// Keys returns the mapping's keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Set appends key/value if key is new, or overwrites the value in place
// (preserving the key's original position) if key already exists. It
// returns whether key already existed.
func (m *Mapping) Set(key string, value Value) (existed bool) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return true
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry{key: key, value: value})
	return false
}

// Range calls f for every (key, value) pair in insertion order, stopping
// early if f returns false.
func (m *Mapping) Range(f func(key string, value Value) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}

// Equal reports whether two values are deeply, order-sensitively equal.
// Two Mappings are equal only if their keys appear in the same order with
// equal values; this matches the round-trip property of spec §8.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Mapping:
		bv, ok := b.(*Mapping)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, e := range av.entries {
			if bv.entries[i].key != e.key || !Equal(e.value, bv.entries[i].value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// debugString renders v as a debug string; it is not the NestedText
// serialization (use Marshal/NewEncoder for that).
func debugString(v Value) string {
	var b strings.Builder
	writeDebug(&b, v)
	return b.String()
}

func writeDebug(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil:
		b.WriteString("<absent>")
	case String:
		b.WriteString(`"` + string(t) + `"`)
	case List:
		b.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDebug(b, e)
		}
		b.WriteByte(']')
	case *Mapping:
		b.WriteByte('{')
		first := true
		t.Range(func(k string, v Value) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(k + ": ")
			writeDebug(b, v)
			return true
		})
		b.WriteByte('}')
	}
}
