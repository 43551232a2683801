package agents

import "strings"

// headerDelimiter bounds the metadata block at the top of a descriptor file.
const headerDelimiter = "---"

// HeaderField is a single key/value line from a descriptor header block.
// Duplicates are preserved in scan order; callers decide how to collapse them.
type HeaderField struct {
	Key   string
	Value string
}

// ScanHeader extracts header fields from descriptor text. The grammar is
// deliberately minimal and must stay that way for compatibility with the
// existing descriptor files:
//
//	delimiter line ("---", ignoring surrounding whitespace)
//	zero or more "key: value" lines
//	delimiter line
//
// The header ends at the second delimiter line only; later "---" lines in the
// body never reopen it. A line splits at its first colon; the value is the
// text between the first and second colon, so anything after a second colon
// (URLs, time ranges) is dropped. That truncation is a known limitation of
// the original scanner, preserved here because changing it would change the
// rendered catalog for descriptors already in the wild. Lines without a colon
// are ignored. No quoting, lists, nesting, or multi-line values.
//
// Returns nil when the text does not begin with a delimiter line.
func ScanHeader(text string) []HeaderField {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != headerDelimiter {
		return nil
	}

	var fields []HeaderField
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == headerDelimiter {
			break
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := line[idx+1:]
		if next := strings.Index(value, ":"); next >= 0 {
			value = value[:next]
		}

		fields = append(fields, HeaderField{Key: key, Value: strings.TrimSpace(value)})
	}

	return fields
}
