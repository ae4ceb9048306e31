package nestedtext

import "strings"

// needsMultilineKey reports whether key cannot be safely written as the
// KEY half of a single "KEY: VALUE" line and must instead be rendered as
// one or more ": fragment" continuation lines (spec §4.5).
//
// A key is unsafe inline when writing it verbatim would make the line
// classify differently than intended: leading whitespace would be
// absorbed into the indentation, a line-initial marker would be taken
// for a list item, string fragment, key continuation, or quoted form
// (#, ', ", -, >, :), an embedded "colon + (end-of-line or space)"
// would split the line at the wrong point, or a trailing space would be
// trimmed off by the object-item splitter. An empty key is also unsafe,
// since "KEY: value" with an empty KEY is indistinguishable from an
// object-key-continuation line.
func needsMultilineKey(key string) bool {
	if key == "" || strings.Contains(key, "\n") {
		return true
	}
	if strings.HasPrefix(key, " ") || strings.HasSuffix(key, " ") {
		return true
	}
	if strings.HasPrefix(key, "#") || strings.HasPrefix(key, "'") || strings.HasPrefix(key, "\"") {
		return true
	}
	if key == "-" || strings.HasPrefix(key, "- ") {
		return true
	}
	if key == ">" || strings.HasPrefix(key, "> ") {
		return true
	}
	if key == ":" || strings.HasPrefix(key, ": ") {
		return true
	}
	for i := 0; i < len(key); i++ {
		if key[i] != ':' {
			continue
		}
		if i == len(key)-1 || key[i+1] == ' ' {
			return true
		}
	}
	return false
}

// renderBareKey returns key unmodified for use as the KEY half of a
// "KEY: VALUE" line. Callers must first confirm !needsMultilineKey(key).
func renderBareKey(key string) string {
	return key
}
