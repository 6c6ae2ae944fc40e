// Package resolve compiles value segments into final values.
//
// A value is an ordered list of [ir.Segment]s, each a literal or a
// reference to a dotted key path. [Compile] resolves the references against
// a [Scope] and, when there is more than one segment, concatenates the
// scalar results into a string. A value made of a single reference keeps
// the native type of its target.
//
// The same function serves both the parser, which compiles values as soon
// as their references are known, and configuration reads, which resolve
// pending values and interpolate `${path}` occurrences in plain strings
// (see [Interpolate] and [Deep]). Interpolation always yields text, so a
// plain string "${k}" reads as the text of k, and an array or object target
// is a concatenation error.
//
// A [State] carries the stack of references being resolved so that cycles
// are reported as format errors instead of recursing forever.
package resolve
