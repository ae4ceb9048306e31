package nestedtext

import (
	"bytes"
	"io"
)

// Decoder reads and decodes a NestedText document from an input stream
// (spec §5, "Decode").
type Decoder struct {
	stream *lineStream
	onDup  DuplicateKeyPolicy
}

// NewDecoder returns a new decoder that reads from r with the default
// duplicate-key policy (OnDuplicateError).
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{stream: newLineStream(r)}
}

// SetDuplicateKeyPolicy configures how the decoder handles repeated
// mapping keys at the same level. It must be called before Decode.
func (dec *Decoder) SetDuplicateKeyPolicy(policy DuplicateKeyPolicy) {
	dec.onDup = policy
}

// Decode reads the whole document and returns its Value tree. A
// document containing only blank lines and comments decodes to a nil
// Value and a nil error.
func (dec *Decoder) Decode() (Value, error) {
	p := newParser(dec.stream, dec.onDup)
	return p.parseDocument()
}

// Parse decodes data as a complete NestedText document and returns its
// Value tree.
func Parse(data []byte) (Value, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// ParseStream decodes a complete NestedText document from r.
func ParseStream(r io.Reader) (Value, error) {
	return NewDecoder(r).Decode()
}

// Unmarshal parses NestedText data and stores the result in the value
// pointed to by v, following the nt struct-tag and type-mapping rules
// documented on Marshal (spec §9, supplemented typed-decode convenience).
func Unmarshal(data []byte, v any) error {
	val, err := Parse(data)
	if err != nil {
		return err
	}
	return decodeInto(v, val)
}
