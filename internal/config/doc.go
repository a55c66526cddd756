// Package config loads arcevents settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. built-in defaults (Default)
//  2. a settings file, TOML (.toml) or YAML (.yaml, .yml)
//  3. environment variables with the ARCEVENTS_ prefix
//
// A TOML file looks like:
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[dispatch]
//	responder_policy = "single"
//	workers = 8
//	queue_size = 512
//	listener_timeout = "2s"
//
//	[inspect]
//	addr = "127.0.0.1:7070"
//
//	[scripts]
//	paths = ["scripts/config.lua"]
//
// Watch reloads the settings whenever the file changes.
package config
