// Package config loads, normalizes, and validates extsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// EXTSORT_LOG_LEVEL. The Config type centralizes the organize defaults, the
// logging sinks, and the state directory used for target locks so the CLI can
// resolve every knob in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical sink names, and clear validation errors.
package config
