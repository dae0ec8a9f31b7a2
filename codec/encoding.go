package codec

import (
	"fmt"

	"github.com/arloliu/hhc/alphabet"
	"github.com/arloliu/hhc/format"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/internal/options"
)

// Encoding is an immutable HHC codec configuration.
//
// The zero value is not usable; start from Sortable, Legacy or NewEncoding.
type Encoding struct {
	digits       *alphabet.Alphabet
	negDigits    *alphabet.Alphabet
	width        int
	allowSpecial bool
}

var (
	// Sortable is the default encoding: ASCII-ordered digits, reversed digits for
	// negative magnitudes, and "." / ".." avoided.
	Sortable = Encoding{
		digits:    alphabet.Sortable,
		negDigits: alphabet.Sortable.Reversed(),
	}

	// Legacy is the readable-counting encoding kept for compatibility.
	// It allows "." and ".." and uses the same digits for negative magnitudes.
	Legacy = Encoding{
		digits:       alphabet.Legacy,
		negDigits:    alphabet.Legacy,
		allowSpecial: true,
	}
)

// ForVariant returns the predefined encoding for v.
func ForVariant(v format.Variant) (Encoding, error) {
	switch v {
	case format.VariantSortable:
		return Sortable, nil
	case format.VariantLegacy:
		return Legacy, nil
	default:
		return Encoding{}, fmt.Errorf("%w: %s", errs.ErrInvalidVariant, v)
	}
}

// WithWidth returns a copy of e that left-pads encodings to width characters.
// A width of 0 disables padding. It panics if width is negative.
func (e Encoding) WithWidth(width int) Encoding {
	if width < 0 {
		panic(fmt.Sprintf("codec: negative width %d", width))
	}
	e.width = width

	return e
}

// WithAllowSpecial returns a copy of e that allows or avoids producing "." and "..".
func (e Encoding) WithAllowSpecial(allow bool) Encoding {
	e.allowSpecial = allow
	return e
}

// Width returns the configured minimum width, or 0 when padding is disabled.
func (e Encoding) Width() int {
	return e.width
}

// AllowSpecial reports whether "." and ".." may be produced.
func (e Encoding) AllowSpecial() bool {
	return e.allowSpecial
}

// Alphabet returns the digits used for zero and positive values.
func (e Encoding) Alphabet() *alphabet.Alphabet {
	return e.digits
}

// NegativeAlphabet returns the digits used for the magnitude of negative values.
func (e Encoding) NegativeAlphabet() *alphabet.Alphabet {
	return e.negDigits
}

// IsSortable reports whether equal-width encodings sort numerically, which holds
// when the digits are ASCII-ordered and negative magnitudes use the reversed order.
func (e Encoding) IsSortable() bool {
	return e.digits.IsSorted() && e.negDigits.String() == e.digits.Reversed().String()
}

// EncodingOption configures NewEncoding.
type EncodingOption = options.Option[*encodingConfig]

type encodingConfig struct {
	variant      format.Variant
	chars        string
	width        int
	allowSpecial *bool
	mirror       *bool
}

// WithVariant selects the predefined encoding to start from (default VariantSortable).
func WithVariant(v format.Variant) EncodingOption {
	return options.New(func(c *encodingConfig) error {
		switch v {
		case format.VariantSortable, format.VariantLegacy:
			c.variant = v
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidVariant, v)
		}
	})
}

// WithAlphabet replaces the variant's digits with a custom 66-character alphabet.
// Validation happens in NewEncoding.
func WithAlphabet(chars string) EncodingOption {
	return options.NoError(func(c *encodingConfig) {
		c.chars = chars
	})
}

// WithWidth sets the minimum encoded width. Zero disables padding.
func WithWidth(width int) EncodingOption {
	return options.New(func(c *encodingConfig) error {
		if width < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWidth, width)
		}
		c.width = width

		return nil
	})
}

// WithAllowSpecial overrides whether "." and ".." may be produced.
func WithAllowSpecial(allow bool) EncodingOption {
	return options.NoError(func(c *encodingConfig) {
		c.allowSpecial = &allow
	})
}

// WithMirroredNegatives overrides whether negative magnitudes use the reversed alphabet.
func WithMirroredNegatives(mirror bool) EncodingOption {
	return options.NoError(func(c *encodingConfig) {
		c.mirror = &mirror
	})
}

// NewEncoding builds an Encoding from options.
//
// Defaults follow the selected variant: Sortable avoids "." and ".." and mirrors
// negative digits; Legacy allows both and does not mirror.
//
// Parameters:
//   - opts: WithVariant, WithAlphabet, WithWidth, WithAllowSpecial, WithMirroredNegatives
//
// Returns:
//   - Encoding: The configured encoding
//   - error: ErrInvalidVariant, ErrInvalidAlphabet or ErrInvalidWidth
//
// Example:
//
//	enc, err := codec.NewEncoding(
//	    codec.WithVariant(format.VariantLegacy),
//	    codec.WithAllowSpecial(false),
//	)
func NewEncoding(opts ...EncodingOption) (Encoding, error) {
	cfg := &encodingConfig{variant: format.VariantSortable}
	if err := options.Apply(cfg, opts...); err != nil {
		return Encoding{}, err
	}

	enc, err := ForVariant(cfg.variant)
	if err != nil {
		return Encoding{}, err
	}

	mirror := cfg.variant == format.VariantSortable
	if cfg.mirror != nil {
		mirror = *cfg.mirror
	}

	if cfg.chars != "" {
		a, err := alphabet.New(cfg.chars)
		if err != nil {
			return Encoding{}, err
		}
		enc.digits = a
	}

	enc.negDigits = enc.digits
	if mirror {
		enc.negDigits = enc.digits.Reversed()
	}

	if cfg.allowSpecial != nil {
		enc.allowSpecial = *cfg.allowSpecial
	}
	enc.width = cfg.width

	return enc, nil
}
