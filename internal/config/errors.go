package config

import "errors"

// Errors wrapped by validate, one per configuration group.
var (
	ErrInvalidAppConfigs    = errors.New("invalid app configuration")
	ErrInvalidHasherConfigs = errors.New("invalid hasher configuration")
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
