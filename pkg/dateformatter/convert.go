package dateformatter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var separatorPattern = regexp.MustCompile(`[-/:. ]`)

// ConvertPattern parses text by aligning it positionally with pattern.
//
// Both strings are split on '-', '/', ':', '.' and space; the leading integer
// of each text part becomes the value of the pattern token at the same
// position. Missing, unparsable or zero parts fall back to year 0, month 1,
// day 1 and midnight. Misaligned input yields a wrong but valid date rather
// than an error. The result is in local time.
func ConvertPattern(text, pattern string) time.Time {
	patternParts := separatorPattern.Split(pattern, -1)
	textParts := separatorPattern.Split(text, -1)

	fields := make(map[string]int, len(patternParts))
	for i, part := range patternParts {
		var value int
		ok := false
		if i < len(textParts) {
			value, ok = leadingInt(textParts[i])
		}
		if !ok {
			delete(fields, part)
			continue
		}
		fields[part] = value
	}

	field := func(token string, fallback int) int {
		if v, ok := fields[token]; ok && v != 0 {
			return v
		}
		return fallback
	}

	return time.Date(
		field("YYYY", 0),
		time.Month(field("MM", 1)),
		field("DD", 1),
		field("HH", 0),
		field("mm", 0),
		field("ss", 0),
		0,
		time.Local,
	)
}

// leadingInt parses an optional sign and the run of digits at the start of s,
// ignoring leading whitespace and anything after the digits
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
