package payload

import (
	"fmt"

	"github.com/arloliu/hhc/format"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/internal/options"
)

// Option configures Encode and Decode.
type Option = options.Option[*config]

type config struct {
	compression format.CompressionType
	checksum    bool
	variant     format.Variant
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		compression: format.CompressionNone,
		variant:     format.VariantSortable,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the body compression (default CompressionNone).
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = ct
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, ct)
		}
	})
}

// WithChecksum appends a 32-bit checksum of the body (default false).
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.checksum = enabled
	})
}

// WithVariant selects the HHC encoding of the token (default VariantSortable).
func WithVariant(v format.Variant) Option {
	return options.New(func(c *config) error {
		switch v {
		case format.VariantSortable, format.VariantLegacy:
			c.variant = v
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidVariant, v)
		}
	})
}
