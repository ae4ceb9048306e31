package nestedtext

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"sync"
)

// defaultIndent is the number of spaces added per nesting level when no
// EncodeOption overrides it, matching the original NestedText writer's
// default (see original_source/nestedtext.py, dump's default_indent=4).
const defaultIndent = 4

// EncodeOption configures an Encoder.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	indent int
	sorted bool
	less   func(a, b string) bool
}

// WithIndent sets the number of spaces added per nesting level. The
// default is 4.
func WithIndent(n int) EncodeOption {
	return func(c *encodeConfig) { c.indent = n }
}

// WithSortedKeys renders every mapping's keys in ascending lexical order
// instead of insertion order.
func WithSortedKeys() EncodeOption {
	return func(c *encodeConfig) { c.sorted = true; c.less = nil }
}

// WithKeyComparator renders every mapping's keys ordered by less, which
// reports whether a should sort before b. It implies sorted output; this
// generalizes the original dump()'s sort_keys callable (spec §9).
func WithKeyComparator(less func(a, b string) bool) EncodeOption {
	return func(c *encodeConfig) { c.sorted = true; c.less = less }
}

// Encoder writes NestedText values to an output stream (spec §4.6,
// "structural serializer").
type Encoder struct {
	w   io.Writer
	cfg encodeConfig
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	cfg := encodeConfig{indent: defaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{w: w, cfg: cfg}
}

// Encode writes the NestedText rendering of v. A nil Value writes an
// empty document.
func (enc *Encoder) Encode(v Value) error {
	s := newEncState(enc.w, enc.cfg)
	s.writeValue(v, 0)
	err := s.err
	putEncState(s)
	return err
}

// MarshalValue returns the NestedText encoding of a Value tree.
func MarshalValue(v Value, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encState holds per-Encode mutable state, pooled to avoid an allocation
// on every call (mirrors the state/sync.Pool pattern used by the
// document's line-by-line encoder).
type encState struct {
	w   io.Writer
	cfg encodeConfig
	err error
}

var encStatePool = sync.Pool{
	New: func() any { return new(encState) },
}

func newEncState(w io.Writer, cfg encodeConfig) *encState {
	s := encStatePool.Get().(*encState)
	s.w = w
	s.cfg = cfg
	s.err = nil
	return s
}

func putEncState(s *encState) {
	s.w = nil
	s.err = nil
	encStatePool.Put(s)
}

func (s *encState) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *encState) pad(depth int) {
	if depth > 0 {
		s.write(strings.Repeat(" ", depth))
	}
}

// writeValue renders v at the given depth.
func (s *encState) writeValue(v Value, depth int) {
	if s.err != nil {
		return
	}
	switch t := v.(type) {
	case nil:
		// An absent root value encodes as an empty document.
	case String:
		s.writeString(string(t), depth)
	case List:
		s.writeList(t, depth)
	case *Mapping:
		s.writeMapping(t, depth)
	default:
		s.err = &Error{Message: errUnsupportedValue, Col: -1}
	}
}

// writeString renders a string value as "> " fragment lines at depth, one
// per line of str, including a single line. Inline "- VALUE" and
// "KEY: VALUE" forms are written by writeList and writeMapping, which call
// writeString (via writeValue) only for multiline strings, for the value
// after a multiline key, and for a string at document root.
func (s *encState) writeString(str string, depth int) {
	lines := strings.Split(str, "\n")
	for _, line := range lines {
		s.pad(depth)
		s.write("> ")
		s.write(line)
		s.write("\n")
	}
}

func (s *encState) writeList(l List, depth int) {
	if len(l) == 0 {
		return
	}
	for _, elem := range l {
		s.pad(depth)
		switch t := elem.(type) {
		case String:
			if strings.Contains(string(t), "\n") {
				s.write("-\n")
				s.writeValue(t, depth+s.cfg.indent)
			} else if t == "" {
				s.write("-\n")
			} else {
				s.write("- ")
				s.write(string(t))
				s.write("\n")
			}
		case nil:
			s.write("-\n")
		default:
			s.write("-\n")
			s.writeValue(elem, depth+s.cfg.indent)
		}
		if s.err != nil {
			return
		}
	}
}

func (s *encState) writeMapping(m *Mapping, depth int) {
	if m == nil || m.Len() == 0 {
		return
	}

	keys := m.Keys()
	if s.cfg.sorted {
		sort.Slice(keys, func(i, j int) bool {
			if s.cfg.less != nil {
				return s.cfg.less(keys[i], keys[j])
			}
			return keys[i] < keys[j]
		})
	}

	for _, key := range keys {
		val, _ := m.Get(key)
		if needsMultilineKey(key) {
			writeMultilineKey(s, key, depth)
			s.writeValueAfterMultilineKey(val, depth)
			continue
		}

		s.pad(depth)
		s.write(renderBareKey(key))
		if str, ok := val.(String); ok {
			if strings.Contains(string(str), "\n") {
				s.write(":\n")
				s.writeValue(str, depth+s.cfg.indent)
			} else if str == "" {
				s.write(":\n")
			} else {
				s.write(": ")
				s.write(string(str))
				s.write("\n")
			}
		} else {
			s.write(":\n")
			s.writeValue(val, depth+s.cfg.indent)
		}
		if s.err != nil {
			return
		}
	}
}

// writeValueAfterMultilineKey writes the value that must follow a
// multiline key, which is always nested one level deeper regardless of
// whether it is a scalar string (spec §4.3.1 requires a deeper line to
// follow a multiline key in all cases).
func (s *encState) writeValueAfterMultilineKey(v Value, depth int) {
	s.writeValue(v, depth+s.cfg.indent)
}

// writeMultilineKey emits one ": fragment" line per line of key (spec
// §4.5), at depth.
func writeMultilineKey(s *encState, key string, depth int) {
	parts := strings.Split(key, "\n")
	for _, part := range parts {
		s.pad(depth)
		if part == "" {
			s.write(":\n")
		} else {
			s.write(": ")
			s.write(part)
			s.write("\n")
		}
	}
}
