package token

// IsWhitespace reports whether r belongs to the HOCON whitespace set: the
// Unicode space characters plus the line and paragraph separators.
func IsWhitespace(r rune) bool {
	switch {
	case r == '\u0009', r == ' ', r == '\u00a0', r == '\u1680':
		return true
	case r >= '\u2000' && r <= '\u200a':
		return true
	case r == '\u202f', r == '\u205f', r == '\u3000', r == '\ufeff':
		return true
	}
	return IsLineSeparator(r)
}

// IsLineSeparator reports whether r is one of the line or paragraph
// separators of the whitespace set.
func IsLineSeparator(r rune) bool {
	switch {
	case r >= '\u000a' && r <= '\u000d':
		return true
	case r >= '\u001c' && r <= '\u001f':
		return true
	case r == '\u2028', r == '\u2029':
		return true
	}
	return false
}

// IsInlineSpace reports whether r is whitespace that does not end a line.
func IsInlineSpace(r rune) bool {
	return IsWhitespace(r) && !IsLineSeparator(r)
}

// TrimSpace trims the HOCON whitespace set from both ends of s.
func TrimSpace(s string) string {
	rs := []rune(s)
	i, j := 0, len(rs)
	for i < j && IsWhitespace(rs[i]) {
		i++
	}
	for j > i && IsWhitespace(rs[j-1]) {
		j--
	}
	return string(rs[i:j])
}
