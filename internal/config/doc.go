// Package config provides layered configuration for the resizable host.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← RESIZABLE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← -config path (.toml, .yaml, .yml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Layers are deep-merged: maps merge key by key and every other value,
// lists included, replaces what is below it.
//
// # Basic Usage
//
//	cfg := config.New(config.WithFile("resizable.toml"))
//	if err := cfg.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	opts := cfg.Resize().Options(resolveAnchor)
//
// Malformed settings never fail a load. The offending value is replaced by
// its default and the problem is reported by ConfigErrors.
//
// # Configuration File
//
//	[resize.min_size]
//	width = 10
//	height = 4
//
//	[resize.border]
//	enabled = true
//	edge_offset = 2
//	allowed_directions = "all"
//
//	[[resize.handles]]
//	anchor = "bottom-right"
//	direction = "down|right"
//
//	[scene]
//	left = 10
//	top = 5
//	width = 40
//	height = 12
//
//	[logging]
//	level = "info"
//	file = ""
//
// # Live Reload
//
// Reload re-reads the config file and reports which setting paths changed.
// The watcher sub-package detects file changes; callers decide when to
// reload.
package config
