package token

import (
	"strings"
)

// ReadToChar reads up to the next occurrence of r and consumes it. The
// second result is false when the input ended before r was found, in which
// case everything up to the end bound was consumed.
func (c *Cursor) ReadToChar(r rune) (string, bool) {
	from := c.i
	for c.i < c.end {
		if c.src[c.i] == r {
			s := string(c.src[from:c.i])
			c.i++
			return s, true
		}
		c.i++
	}
	return string(c.src[from:c.i]), false
}

// ReadToOneOf reads until the next rune is in set or satisfies stop. The
// cursor is left on the stopping rune, which is not part of the result.
// stop may be nil.
func (c *Cursor) ReadToOneOf(set string, stop func(rune) bool) string {
	from := c.i
	for c.i < c.end {
		r := c.src[c.i]
		if strings.ContainsRune(set, r) {
			break
		}
		if stop != nil && stop(r) {
			break
		}
		c.i++
	}
	return string(c.src[from:c.i])
}

// ReadToSequence reads up to the next occurrence of seq and consumes it.
// The first rune of seq anchors the scan; the rest is verified before the
// match is committed.
func (c *Cursor) ReadToSequence(seq string) (string, bool) {
	rs := []rune(seq)
	if len(rs) == 0 {
		return "", true
	}
	from := c.i
	for c.i < c.end {
		if c.src[c.i] != rs[0] {
			c.i++
			continue
		}
		at := c.i
		if c.TestSequence(seq, true) {
			return string(c.src[from:at]), true
		}
		c.i++
	}
	return string(c.src[from:c.i]), false
}

// SkipComment consumes a line comment starting at the current index, up to
// but not including the line end. It reports whether a comment was found.
func (c *Cursor) SkipComment() bool {
	if !c.TestSequence("//", true) {
		return false
	}
	for c.i < c.end && !IsLineSeparator(c.src[c.i]) {
		c.i++
	}
	return true
}

// SkipBlank skips whitespace and line comments.
func (c *Cursor) SkipBlank() {
	for {
		c.TrimLeft()
		if !c.SkipComment() {
			return
		}
	}
}

// AtComment reports whether a line comment starts at the current index.
func (c *Cursor) AtComment() bool {
	return c.TestSequence("//", false)
}

// ReadQuoted reads the raw body of a double quoted string whose opening
// quote has already been consumed, and consumes the closing quote.
// Backslash escapes are kept verbatim for Unquote.
func (c *Cursor) ReadQuoted() (string, bool) {
	from := c.i
	for c.i < c.end {
		switch c.src[c.i] {
		case '\\':
			c.i += 2
			if c.i > c.end {
				c.i = c.end
			}
			continue
		case '"':
			s := string(c.src[from:c.i])
			c.i++
			return s, true
		}
		c.i++
	}
	return string(c.src[from:c.i]), false
}
