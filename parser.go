package nestedtext

import "strings"

// DuplicateKeyPolicy controls how the parser handles a mapping key that
// occurs more than once at the same level (spec §4.4).
type DuplicateKeyPolicy int

const (
	// OnDuplicateError raises a "duplicate key" error at the second
	// occurrence. This is the default.
	OnDuplicateError DuplicateKeyPolicy = iota
	// OnDuplicateUseFirst silently ignores later occurrences.
	OnDuplicateUseFirst
	// OnDuplicateUseLast overwrites the value on later occurrences while
	// keeping the key's original insertion position.
	OnDuplicateUseLast
)

// maxNestingDepth bounds recursive descent so that pathological input
// cannot overflow the goroutine stack (spec §9's suggested depth guard).
const maxNestingDepth = 3000

// parser is the structural parser (spec §4.3): recursive descent over a
// lineStream, dispatched by the next line's kind and guarded by
// indentation depth.
type parser struct {
	stream *lineStream
	onDup  DuplicateKeyPolicy
	depth  int
}

func newParser(s *lineStream, onDup DuplicateKeyPolicy) *parser {
	return &parser{stream: s, onDup: onDup}
}

// parseDocument is the entry point: it requires the root value (if any)
// to start at depth 0 and returns a nil Value for an empty document.
func (p *parser) parseDocument() (Value, error) {
	line, err := p.stream.peek()
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, nil
	}
	if line.depth != 0 {
		return nil, colErrorf(line.lineno, 0, errInvalidIndentation)
	}
	return p.readValue(0)
}

// readValue dispatches on the kind of the next line, per spec §4.3.
func (p *parser) readValue(depth int) (Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return nil, lineErrorf(0, errMaxNestingDepth)
	}

	line, err := p.stream.peek()
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, lineErrorf(0, errUnrecognizedLine)
	}

	switch line.kind {
	case kindStringFragment:
		return p.readString(depth)
	case kindListItem:
		return p.readList(depth)
	case kindObjectItem, kindObjectKeyContinuation:
		return p.readMapping(depth)
	default:
		return nil, lineErrorf(line.lineno, errUnrecognizedLine)
	}
}

// readList reads a list whose items all sit at depth (spec §4.3, "Read
// list").
func (p *parser) readList(depth int) (Value, error) {
	out := List{}

	for {
		line, err := p.stream.peek()
		if err != nil {
			return nil, err
		}
		if line == nil || line.depth < depth {
			break
		}
		if line.depth != depth {
			return nil, colErrorf(line.lineno, depth, errInvalidIndentation)
		}
		if line.kind != kindListItem {
			return nil, colErrorf(line.lineno, depth, errExpectedListItem)
		}
		if _, err := p.stream.next(); err != nil {
			return nil, err
		}

		if line.hasValue {
			out = append(out, String(line.value))
			continue
		}

		next, err := p.stream.peek()
		if err != nil {
			return nil, err
		}
		if next == nil || next.depth <= depth {
			out = append(out, String(""))
			continue
		}
		val, err := p.readValue(next.depth)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}

	return out, nil
}

// readMapping reads a mapping whose entries all sit at depth (spec §4.3,
// "Read mapping").
func (p *parser) readMapping(depth int) (Value, error) {
	out := NewMapping()

	for {
		line, err := p.stream.peek()
		if err != nil {
			return nil, err
		}
		if line == nil || line.depth < depth {
			break
		}
		if line.depth != depth {
			return nil, colErrorf(line.lineno, depth, errInvalidIndentation)
		}

		switch line.kind {
		case kindObjectItem:
			if _, err := p.stream.next(); err != nil {
				return nil, err
			}

			var val Value
			if line.hasValue {
				val = String(line.value)
			} else {
				next, err := p.stream.peek()
				if err != nil {
					return nil, err
				}
				if next == nil || next.depth <= depth {
					val = String("")
				} else {
					val, err = p.readValue(next.depth)
					if err != nil {
						return nil, err
					}
				}
			}
			if err := p.insert(out, line.key, val, line.lineno); err != nil {
				return nil, err
			}

		case kindObjectKeyContinuation:
			key, keyLineno, err := p.readMultilineKey(depth)
			if err != nil {
				return nil, err
			}
			next, err := p.stream.peek()
			if err != nil {
				return nil, err
			}
			if next == nil || next.depth <= depth {
				return nil, lineErrorf(keyLineno, errExpectedMultiValue)
			}
			val, err := p.readValue(next.depth)
			if err != nil {
				return nil, err
			}
			if err := p.insert(out, key, val, keyLineno); err != nil {
				return nil, err
			}

		default:
			return nil, colErrorf(line.lineno, depth, errExpectedObjectItem)
		}
	}

	return out, nil
}

// readMultilineKey consumes consecutive object-key-continuation lines at
// the exact given depth and joins their payloads with newlines (spec
// §4.3.1).
func (p *parser) readMultilineKey(depth int) (key string, firstLineno int, err error) {
	var parts []string

	for {
		line, err := p.stream.peek()
		if err != nil {
			return "", firstLineno, err
		}
		if line == nil || line.kind != kindObjectKeyContinuation || line.depth != depth {
			break
		}
		if firstLineno == 0 {
			firstLineno = line.lineno
		}
		if _, err := p.stream.next(); err != nil {
			return "", firstLineno, err
		}
		parts = append(parts, line.value)
	}

	return strings.Join(parts, "\n"), firstLineno, nil
}

// readString consumes consecutive string-fragment lines at depth >= the
// given depth, all of which must share the first fragment's actual depth
// (spec §4.3.2).
func (p *parser) readString(depth int) (Value, error) {
	var b strings.Builder
	first := true
	firstDepth := depth

	for {
		line, err := p.stream.peek()
		if err != nil {
			return nil, err
		}
		if line == nil || line.kind != kindStringFragment || line.depth < depth {
			break
		}
		if first {
			firstDepth = line.depth
		} else if line.depth != firstDepth {
			return nil, colErrorf(line.lineno, line.depth, errInvalidIndentation)
		}
		if _, err := p.stream.next(); err != nil {
			return nil, err
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(line.value)
	}

	return String(b.String()), nil
}

// insert applies the configured duplicate-key policy (spec §4.4).
func (p *parser) insert(m *Mapping, key string, value Value, lineno int) error {
	_, exists := m.Get(key)
	switch p.onDup {
	case OnDuplicateUseFirst:
		if !exists {
			m.Set(key, value)
		}
	case OnDuplicateUseLast:
		m.Set(key, value)
	default: // OnDuplicateError
		if exists {
			return lineErrorf(lineno, errDuplicateKey)
		}
		m.Set(key, value)
	}
	return nil
}
