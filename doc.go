// Package hocon loads hierarchical configuration from HOCON, JSON and YAML
// text and reads it through typed, dot separated key paths.
//
// # Usage
//
//	cfg, err := hocon.ParseString(`
//	  server { host = example.com, port = 8080 }
//	  url = "http://"${server.host}
//	`)
//	host, err := cfg.GetString("server.host")
//	url, err := cfg.GetString("url")
//
//	// layer an override on top of defaults
//	cfg, err = override.WithFallback(defaults)
//
// Values are resolved when read: references written as `${path}`, inside
// HOCON values or inside plain strings of any source, are looked up first
// in the configuration itself and then in the configuration it was taken
// from (see [Config.GetConfig]). Typed getters return nil without error
// when a value is missing or has another type; errors are reserved for
// references that cannot be resolved.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/hocon/parse - HOCON grammar
//   - github.com/signadot/tony-format/hocon/dirbuild - file and directory loaders
//   - github.com/signadot/tony-format/hocon/ir - configuration trees
package hocon
