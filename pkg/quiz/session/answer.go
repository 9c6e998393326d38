package session

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAnswer reads the leading integer of raw, ignoring surrounding
// whitespace and anything after the digits. It reports false when raw does
// not start with an optionally signed number; such input never equals an
// answer.
func ParseAnswer(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
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
		// out of range for int, so it cannot be an answer either
		return 0, false
	}
	return n, true
}

// IsEmptyAnswer reports whether raw holds nothing to submit. Whitespace-only
// input counts as empty and is ignored rather than scored as a wrong answer,
// so a stray space cannot cost a life.
func IsEmptyAnswer(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
