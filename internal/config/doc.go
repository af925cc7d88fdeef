// Package config loads the application's configuration from environment
// variables and command-line flags, merges the sources into a single
// immutable StructuredConfig, and validates it at startup.
package config
