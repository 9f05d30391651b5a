package main

import (
	"errors"
	"fmt"

	"github.com/vitalvas/markovtext/corpus"
	"github.com/vitalvas/markovtext/xconfig"
	"github.com/vitalvas/markovtext/xlogger"
)

const envPrefix = "MARKOVTEXT"

type Config struct {
	Corpus       []string       `yaml:"corpus" json:"corpus" toml:"corpus"`
	PrefixSize   int            `yaml:"prefix_size" json:"prefix_size" toml:"prefix_size" default:"2"`
	OutputLength int            `yaml:"output_length" json:"output_length" toml:"output_length" default:"100"`
	Seed         int64          `yaml:"seed" json:"seed" toml:"seed"`
	Shards       int            `yaml:"shards" json:"shards" toml:"shards" default:"1"`
	Tokenizer    corpus.Options `yaml:"tokenizer" json:"tokenizer" toml:"tokenizer"`
	Logger       xlogger.Config `yaml:"logger" json:"logger" toml:"logger"`
}

func loadConfig(files ...string) (*Config, error) {
	var cfg Config

	opts := []xconfig.Option{xconfig.WithEnv(envPrefix)}
	if len(files) > 0 {
		opts = append(opts, xconfig.WithFiles(files...), xconfig.WithStrict())
	}

	if err := xconfig.Load(&cfg, opts...); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if len(c.Corpus) == 0 {
		errs = append(errs, errors.New("at least one corpus file is required"))
	}

	if c.PrefixSize < 1 {
		errs = append(errs, fmt.Errorf("prefix_size must be at least 1, got %d", c.PrefixSize))
	}

	if c.OutputLength < 0 {
		errs = append(errs, fmt.Errorf("output_length must not be negative, got %d", c.OutputLength))
	}

	if c.Shards < 1 {
		errs = append(errs, fmt.Errorf("shards must be at least 1, got %d", c.Shards))
	}

	return errors.Join(errs...)
}
