// Package config loads the TOML configuration file of the hhc command.
//
// Example file:
//
//	[encode]
//	legacy = false
//	width = 5
//	allow_special = false
//
//	[payload]
//	compression = "zstd"
//	checksum = true
//
//	[batch]
//	workers = 8
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/arloliu/hhc/codec"
	"github.com/arloliu/hhc/format"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/payload"
	"github.com/pelletier/go-toml/v2"
)

// Config is the whole configuration file.
type Config struct {
	Encode  EncodeConfig  `toml:"encode"`
	Payload PayloadConfig `toml:"payload"`
	Batch   BatchConfig   `toml:"batch"`
}

// EncodeConfig holds the defaults of the encode, decode and batch commands.
type EncodeConfig struct {
	Legacy bool `toml:"legacy"`
	Width  int  `toml:"width"`
	// AllowSpecial overrides the variant default when set.
	AllowSpecial *bool `toml:"allow_special"`
}

// PayloadConfig holds the defaults of the pack and unpack commands.
type PayloadConfig struct {
	Compression string `toml:"compression"`
	Checksum    bool   `toml:"checksum"`
}

type BatchConfig struct {
	// Workers bounds the number of values processed at once; 0 means one per CPU.
	Workers int `toml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads and validates the file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates TOML content. Unknown keys are rejected.
func Parse(content []byte) (*Config, error) {
	cfg := &Config{}

	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidConfig, strictErr.String())
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Encode.Width < 0 {
		return fmt.Errorf("%w: encode.width must be non-negative, got %d", errs.ErrInvalidConfig, c.Encode.Width)
	}
	if _, ok := format.ParseCompression(c.Payload.Compression); !ok {
		return fmt.Errorf("%w: unknown payload.compression %q", errs.ErrInvalidConfig, c.Payload.Compression)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be non-negative, got %d", errs.ErrInvalidConfig, c.Batch.Workers)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Batch.Workers == 0 {
		c.Batch.Workers = runtime.NumCPU()
	}
}

// Variant returns the configured encoding variant.
func (c *Config) Variant() format.Variant {
	if c.Encode.Legacy {
		return format.VariantLegacy
	}

	return format.VariantSortable
}

// Encoding builds the codec described by the [encode] section.
func (c *Config) Encoding() (codec.Encoding, error) {
	opts := []codec.EncodingOption{
		codec.WithVariant(c.Variant()),
		codec.WithWidth(c.Encode.Width),
	}
	if c.Encode.AllowSpecial != nil {
		opts = append(opts, codec.WithAllowSpecial(*c.Encode.AllowSpecial))
	}

	return codec.NewEncoding(opts...)
}

// PayloadOptions returns the payload options described by the [payload] and [encode] sections.
// Returns ErrInvalidCompression for an unknown compression name.
func (c *Config) PayloadOptions() ([]payload.Option, error) {
	ct, ok := format.ParseCompression(c.Payload.Compression)
	if !ok {
		return nil, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidCompression, c.Payload.Compression)
	}

	return []payload.Option{
		payload.WithCompression(ct),
		payload.WithChecksum(c.Payload.Checksum),
		payload.WithVariant(c.Variant()),
	}, nil
}
