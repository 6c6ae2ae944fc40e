// Package token provides codepoint level scanning support for HOCON text.
//
// [Cursor] wraps an immutable rune sequence with clamped advance and backtrack
// primitives, lookahead and sequence matching. The scanners built on it
// ([Cursor.ReadToChar], [Cursor.ReadToOneOf], [Cursor.ReadToSequence] and
// [Cursor.SkipComment]) are what the grammar in package parse consumes.
//
// Whitespace classification follows [IsWhitespace], which covers the full
// Unicode space, line and paragraph separator set accepted by HOCON.
package token
