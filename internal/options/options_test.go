package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegativeWidth = errors.New("width cannot be negative")

type testConfig struct {
	width   int
	special bool
	calls   []string
}

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w < 0 {
			return errNegativeWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withSpecial(v bool) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.special = v
		c.calls = append(c.calls, "special")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withSpecial(true), withWidth(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.width)
		require.True(t, cfg.special)
		require.Equal(t, []string{"special", "width"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(-1), withSpecial(true))
		require.ErrorIs(t, err, errNegativeWidth)
		require.Contains(t, err.Error(), "option 0")
		require.False(t, cfg.special, "options after the failure must not run")
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, withWidth(3), withWidth(5)))
		require.Equal(t, 5, cfg.width)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withWidth(2)))
		require.Equal(t, 2, cfg.width)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}

func TestOption_WorksWithValueTypes(t *testing.T) {
	counter := 0
	inc := NoError(func(c *int) { *c++ })

	require.NoError(t, Apply(&counter, inc, inc))
	require.Equal(t, 2, counter)
}
