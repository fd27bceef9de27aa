package config

import "errors"

// Validation errors returned by [WalletConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidKeriaConfigs indicates a missing or malformed KERIA URL or
	// a non-positive KERIA timeout.
	ErrInvalidKeriaConfigs = errors.New("invalid keria configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty control API address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAppConfigs indicates an empty identifier version tag or a
	// version tag containing the name separator.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
