package token

import (
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	ErrBadEscape  = errors.New("bad escape")
	ErrBadUnicode = errors.New("bad unicode escape")
)

// NeedsQuote reports whether v must be written as a quoted string to be
// read back as the same string value.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if TrimSpace(v) != v {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if IsInt(v) || IsFloat(v) {
		return true
	}
	if strings.Contains(v, "//") {
		return true
	}
	for _, r := range v {
		if IsWhitespace(r) || unicode.IsControl(r) {
			return true
		}
		switch r {
		case '"', '$', '{', '}', '[', ']', ':', '=', ',', '\\', '#':
			return true
		}
	}
	return false
}

// KeyNeedsQuote is NeedsQuote for a single path segment.
func KeyNeedsQuote(v string) bool {
	return NeedsQuote(v) || strings.Contains(v, ".")
}

// Quote renders v as a double quoted string with JSON escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes the backslash escapes of a quoted string body, the text
// between the quotes as returned by ReadQuoted.
func Unquote(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	b := &strings.Builder{}
	rs := []rune(body)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		i++
		if i == len(rs) {
			return "", ErrBadEscape
		}
		switch rs[i] {
		case '"', '\\', '/':
			b.WriteRune(rs[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			u, ok := hex4(rs[i+1:])
			if !ok {
				return "", ErrBadUnicode
			}
			i += 4
			if utf16.IsSurrogate(u) && i+6 < len(rs) && rs[i+1] == '\\' && rs[i+2] == 'u' {
				if lo, ok := hex4(rs[i+3:]); ok {
					if p := utf16.DecodeRune(u, lo); p != utf8.RuneError {
						b.WriteRune(p)
						i += 6
						continue
					}
				}
			}
			b.WriteRune(u)
		default:
			return "", ErrBadEscape
		}
	}
	return b.String(), nil
}

func hex4(rs []rune) (rune, bool) {
	if len(rs) < 4 {
		return 0, false
	}
	var u rune
	for _, r := range rs[:4] {
		u <<= 4
		switch {
		case r >= '0' && r <= '9':
			u |= r - '0'
		case r >= 'a' && r <= 'f':
			u |= r - 'a' + 10
		case r >= 'A' && r <= 'F':
			u |= r - 'A' + 10
		default:
			return 0, false
		}
	}
	return u, true
}
