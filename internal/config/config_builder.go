package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configSource is one layer of configuration. Layers are merged in the
// order they were added and an earlier non-zero value always wins.
type configSource struct {
	name string
	cfg  *StructuredConfig
}

type configBuilder struct {
	sources []configSource
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{sources: make([]configSource, 0, 4)}
}

func (b *configBuilder) add(name string, cfg *StructuredConfig) *configBuilder {
	b.sources = append(b.sources, configSource{name: name, cfg: cfg})
	return b
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", src.name, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return b.fail("env", err)
	}
	return b.add("env", cfg)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	if err != nil {
		return b.fail("flags", err)
	}
	return b.add("flags", cfg)
}

// withJSON loads the file named by the highest-priority source that set a
// path, so CONFIG in the environment beats -c on the command line just like
// every other setting.
func (b *configBuilder) withJSON() *configBuilder {
	for _, src := range b.sources {
		if src.cfg.JSONFilePath == "" {
			continue
		}

		cfg, err := parseJSON(src.cfg.JSONFilePath)
		if err != nil {
			return b.fail("json", err)
		}
		return b.add("json", cfg)
	}
	return b
}

// withDefaults appends the built-in defaults. It must be the last source:
// mergo only fills fields that are still zero.
func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaults())
}
