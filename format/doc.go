// Package format names the text formats configuration sources and output
// can use, and maps file suffixes to them.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/hocon/dirbuild - load files by suffix
//   - github.com/signadot/tony-format/hocon/encode - render trees in a format
package format
