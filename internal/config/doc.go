// Package config loads and validates the playbox TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/playbox/config.toml, then playbox.toml in the working directory.
// A missing file is not an error; defaults apply.
package config
