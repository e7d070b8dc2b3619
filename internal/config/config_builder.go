package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder stacks configuration sources from highest to lowest
// priority. Source errors accumulate and are reported together by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

// add records one source result.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv())
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withArgs(os.Args[1:])
}

func (b *configBuilder) withArgs(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON loads the file named by the highest-priority source that names
// one. Without such a source it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonFilePath()
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaults(), nil)
}

func (b *configBuilder) jsonFilePath() string {
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			return cfg.JSONFilePath
		}
	}
	return ""
}

// build merges the stacked sources so that the first non-zero value of every
// field wins, then validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
