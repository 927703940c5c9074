package history

import (
	"strconv"
	"strings"
	"time"
)

// FormatLine renders r as a single log line. Free-text fields are %q-quoted
// so paths with spaces survive a round trip.
func FormatLine(r Record) string {
	line := r.Time.Format(time.RFC3339) +
		"  status=" + r.Status +
		"  files=" + strconv.Itoa(r.Files)
	if r.Bundle != "" {
		line += "  bundle=" + r.Bundle
	}
	line += "  root=" + strconv.Quote(r.Root) + "  source=" + strconv.Quote(r.Source)
	if r.Detail != "" {
		line += "  detail=" + strconv.Quote(r.Detail)
	}
	return line
}

// ParseLine parses a line written by FormatLine.
func ParseLine(line string) (Record, bool) {
	ts, ok := ExtractTimestamp(line)
	if !ok {
		return Record{}, false
	}
	r := Record{
		Time:   ts,
		Status: extractField(line, "status"),
		Bundle: extractField(line, "bundle"),
		Root:   extractQuotedField(line, "root"),
		Source: extractQuotedField(line, "source"),
		Detail: extractQuotedField(line, "detail"),
	}
	if n, err := strconv.Atoi(extractField(line, "files")); err == nil {
		r.Files = n
	}
	return r, r.Status != ""
}

// ParseRecords parses every well-formed line in content.
func ParseRecords(content string) []Record {
	var records []Record
	for _, line := range strings.Split(content, "\n") {
		if r, ok := ParseLine(strings.TrimRight(line, "\r")); ok {
			records = append(records, r)
		}
	}
	return records
}

// ExtractTimestamp parses the RFC3339 timestamp at the start of a log line
// (everything before the first "  " double-space separator).
func ExtractTimestamp(line string) (time.Time, bool) {
	tsEnd := strings.Index(line, "  ")
	if tsEnd < 0 {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, line[:tsEnd])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// extractField returns the value after "key=" in a space-separated line.
// Returns "" if not found.
func extractField(line, key string) string {
	prefix := key + "="
	for _, field := range strings.Fields(line) {
		if strings.HasPrefix(field, prefix) {
			return field[len(prefix):]
		}
	}
	return ""
}

// extractQuotedField decodes the %q-encoded value after `  key=`.
func extractQuotedField(line, key string) string {
	i := strings.Index(line, "  "+key+"=\"")
	if i < 0 {
		return ""
	}
	return extractQuoted(line[i+len(key)+3:])
}

// extractQuoted extracts a Go %q-encoded string from the start of s.
// It finds the matching closing quote (respecting backslash escapes),
// then uses strconv.Unquote to decode the value. Returns "" on failure.
func extractQuoted(s string) string {
	if len(s) == 0 || s[0] != '"' {
		return ""
	}
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			text, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return ""
			}
			return text
		}
	}
	return ""
}
