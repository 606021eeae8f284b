// Package config loads, normalizes, and validates inputrelay configuration.
//
// It supplies defaults that match the fixed request/marker file names, expands
// user paths (including tilde shortcuts), and reads optional TOML files. A
// missing configuration file is not an error: defaults are used and the relay
// behaves exactly as a bare invocation would.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
