package intake

import (
	"math"
	"strconv"
	"strings"
)

// ParseLine extracts a Record from a "Name,Age,Species" line.
//
// The name runs up to the first comma. The age may be preceded by
// whitespace and an optional sign and ends at the first non-digit. Exactly
// one character after the age is skipped and the remainder of the line,
// untrimmed, is the species. Lines that do not fit report false.
func ParseLine(line string) (Record, bool) {
	if line == "" {
		return Record{}, false
	}
	comma := strings.IndexByte(line, ',')
	if comma < 0 {
		return Record{}, false
	}
	name, rest := line[:comma], line[comma+1:]

	age, n, ok := parseAge(rest)
	if !ok {
		return Record{}, false
	}
	rest = rest[n:]

	// One separator character is consumed, whatever it is.
	if rest == "" {
		return Record{}, false
	}
	species := rest[1:]
	if species == "" {
		return Record{}, false
	}

	return Record{Name: name, Age: age, Species: species}, true
}

// parseAge reads a signed decimal integer from the start of s and returns
// it with the number of bytes consumed.
func parseAge(s string) (int, int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, 0, false
	}

	v, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, 0, false
	}
	return int(v), i, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
