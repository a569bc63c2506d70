// Package config loads projmarks settings.
//
// Settings are layered, later layers winning: the embedded defaults, the
// user file ($XDG_CONFIG_HOME/projmarks/config.toml, or the file named by
// PROJMARKS_CONFIG or --config), PROJMARKS_* environment variables and
// finally command-line overrides. The result is decoded into Config and
// validated before use.
package config
