// Package configs manages sightkey's non-secret user configuration.
//
// Configuration lives in a single TOML file under the user config
// directory (e.g. ~/.config/sightkey/config.toml) and holds only
// preferences and an anonymous install UUID:
//
//	[user]
//	install_uuid = "..."
//
//	[defaults]
//	length = 24
//	mask_input = false
//	history_enabled = true
//
// Nothing in this package ever touches secret material. Colors, patterns,
// coordinates, and derived passwords are never written to disk; the config
// file carries preferences only, so losing or editing it can never change
// a derived password.
package configs
