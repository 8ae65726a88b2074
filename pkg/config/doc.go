// Package config handles configuration management for themeup.
// It supports loading configuration from multiple sources including
// the embedded defaults, a TOML user file, THEMEUP_* environment variables,
// and command-line flags, in that order of precedence.
package config
