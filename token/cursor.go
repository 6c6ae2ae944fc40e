package token

import "strings"

// EOF is returned by Peek and Next once the cursor reaches the end bound.
const EOF rune = -1

// Cursor scans an immutable rune sequence between start and end bounds.
// The bounds exclude leading and trailing whitespace of the whole input.
// All index movement is clamped to [start, end].
type Cursor struct {
	src        []rune
	start, end int
	i          int
	doc        *PosDoc
}

// Mark is an opaque cursor position that can be restored with Reset.
type Mark struct{ i int }

func NewCursor(text string) *Cursor {
	src := []rune(text)
	c := &Cursor{
		src: src,
		end: len(src),
	}
	c.trimLeft()
	c.start = c.i
	c.trimRight()
	return c
}

func (c *Cursor) trimLeft() {
	for c.i < c.end && IsWhitespace(c.src[c.i]) {
		c.i++
	}
}

func (c *Cursor) trimRight() {
	for c.end > c.start && IsWhitespace(c.src[c.end-1]) {
		c.end--
	}
}

// Empty reports whether the trimmed input has no content.
func (c *Cursor) Empty() bool {
	return c.end <= c.start
}

// AtEnd reports whether the cursor has reached the end bound.
func (c *Cursor) AtEnd() bool {
	return c.i >= c.end
}

// Peek returns the rune at the current index without moving.
func (c *Cursor) Peek() rune {
	if c.i < c.end {
		return c.src[c.i]
	}
	return EOF
}

// Next returns the rune at the current index and advances past it.
func (c *Cursor) Next() rune {
	r := c.Peek()
	c.Advance()
	return r
}

func (c *Cursor) Advance() {
	if c.i < c.end {
		c.i++
	}
}

func (c *Cursor) Backtrack() {
	if c.i > c.start {
		c.i--
	}
}

// First returns the first rune of the trimmed input.
func (c *Cursor) First() rune {
	if c.Empty() {
		return EOF
	}
	return c.src[c.start]
}

// Last returns the last rune of the trimmed input.
func (c *Cursor) Last() rune {
	if c.Empty() {
		return EOF
	}
	return c.src[c.end-1]
}

func (c *Cursor) Mark() Mark {
	return Mark{i: c.i}
}

func (c *Cursor) Reset(m Mark) {
	c.i = min(max(m.i, c.start), c.end)
}

// TestSequence matches seq rune by rune from the current index. The index
// is left after seq only on a match with consume set; otherwise it is
// restored.
func (c *Cursor) TestSequence(seq string, consume bool) bool {
	m := c.Mark()
	for _, r := range seq {
		if c.Next() != r {
			c.Reset(m)
			return false
		}
	}
	if !consume {
		c.Reset(m)
	}
	return true
}

// TrimLeft skips whitespace from the current index.
func (c *Cursor) TrimLeft() {
	c.trimLeft()
}

// SkipInline skips whitespace that does not end a line.
func (c *Cursor) SkipInline() {
	for c.i < c.end && IsInlineSpace(c.src[c.i]) {
		c.i++
	}
}

// Pos returns the position of the current index.
func (c *Cursor) Pos() *Pos {
	if c.doc == nil {
		c.doc = NewPosDoc(c.src)
	}
	return c.doc.Pos(c.i)
}

// Errorf returns a format error located at the current index.
func (c *Cursor) Errorf(msg string) *FormatErr {
	return NewFormatErr(msg, c.Pos())
}

// Rest returns the unread input, for diagnostics.
func (c *Cursor) Rest() string {
	return string(c.src[c.i:c.end])
}

func (c *Cursor) String() string {
	var b strings.Builder
	b.WriteString(string(c.src[c.start:c.i]))
	b.WriteString("⏵")
	b.WriteString(c.Rest())
	return b.String()
}
