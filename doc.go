// Package nestedtext provides functionality for parsing and serializing
// NestedText documents.
//
// NestedText is a human-readable, human-writable data format whose only
// value types are strings, ordered lists, and ordered string-keyed
// mappings. There are no scalars, no quoting rules for values, and no type
// inference: every leaf in a decoded document is a string.
package nestedtext
