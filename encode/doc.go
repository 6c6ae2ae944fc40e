// Package encode renders configuration trees as HOCON, JSON or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals("name", "alice", "age", 30)
//	err := encode.Encode(node, os.Stdout)
//
//	// JSON, on a single line
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.Compact(true))
//
// HOCON output writes the fields of the top level object without braces and
// nested objects with the `key { ... }` shorthand. Values that are still
// pending are written back as their string and `${path}` segments.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/hocon/ir - configuration trees
//   - github.com/signadot/tony-format/hocon/parse - parse HOCON text
package encode
