// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the process environment into a config source.
func parseEnv() (*StructuredConfig, error) {
	return parseEnvFrom(env.ToMap(os.Environ()))
}

// parseEnvFrom maps environ onto [StructuredConfig] through its `env` and
// `envPrefix` tags. Variables that are absent leave their fields zero so the
// lower-priority sources can fill them.
func parseEnvFrom(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
