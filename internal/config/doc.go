// Package config loads, normalizes, and validates subweave's TOML
// configuration.
package config
