// Package config loads the imstr configuration from TOML or YAML files with
// environment variable overrides.
//
// Package: config
// Title: Configuration Management for imstr Foundation
// Description: Key/value configuration addressed with dot notation
//              ("alloc.max_total_bytes"). Files are parsed with
//              github.com/BurntSushi/toml or gopkg.in/yaml.v3 depending on the
//              extension. Environment variables override file values, and
//              declarative rules validate the result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Nested defaults, rule errors as structured errors
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("imstr.toml", config.LoadOptions{
//		EnvPrefix: "IMSTR",
//		Defaults:  map[string]interface{}{"format.buffer_size": 100},
//	})
//	size := cfg.GetInt("format.buffer_size")
//
// With EnvPrefix "IMSTR", the key alloc.max_total_bytes is overridden by the
// environment variable IMSTR_ALLOC_MAX_TOTAL_BYTES.
package config
