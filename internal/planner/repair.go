package planner

import "strings"

// RepairJSON applies best-effort fixes for defects language models commonly
// produce: stray unescaped quotes inside string values and trailing separators
// before a closing bracket or brace. It can mis-repair legitimate text; callers
// must still validate the result.
func RepairJSON(s string) string {
	return removeTrailingSeparators(escapeStrayQuotes(s))
}

// removeTrailingSeparators drops a comma when the next non-space character
// outside a string literal closes an array or object.
func removeTrailingSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			b.WriteByte(ch)
			continue
		}

		if ch == '"' {
			inString = true
		}
		if ch == ',' {
			if next := nextNonSpace(s, i+1); next == ']' || next == '}' {
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// escapeStrayQuotes escapes a quote inside a string literal unless it is
// followed by something that can legally follow a closed string.
func escapeStrayQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]

		if !inString {
			if ch == '"' {
				inString = true
			}
			b.WriteByte(ch)
			continue
		}

		switch {
		case escaped:
			escaped = false
			b.WriteByte(ch)
		case ch == '\\':
			escaped = true
			b.WriteByte(ch)
		case ch == '"':
			if closesString(s, i+1) {
				inString = false
				b.WriteByte(ch)
			} else {
				b.WriteString(`\"`)
			}
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func closesString(s string, from int) bool {
	switch nextNonSpace(s, from) {
	case 0, ',', ':', '}', ']':
		return true
	}
	return false
}

// nextNonSpace returns 0 at end of input.
func nextNonSpace(s string, from int) byte {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return s[i]
		}
	}
	return 0
}
