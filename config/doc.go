// Package config assembles the settings for a manifest run.
//
// Values are layered: built-in defaults, then an optional TOML file, then
// SPRITES_* environment variables. The command line applies flags on top
// and calls Normalize and Validate before handing the Config to the
// manifest builder.
package config
