package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidAppConfigs is returned when the token signing key is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key is required")

	// ErrInvalidServerConfigs is returned when no HTTP listen address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configs: HTTP address is required")
)
