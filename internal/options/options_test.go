package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type scanConfig struct {
	offset  int
	label   string
	applied []string
}

var errNegativeOffset = errors.New("offset cannot be negative")

func withOffset(offset int) Option[*scanConfig] {
	return New(func(c *scanConfig) error {
		if offset < 0 {
			return errNegativeOffset
		}
		c.offset = offset
		c.applied = append(c.applied, "offset")

		return nil
	})
}

func withLabel(label string) Option[*scanConfig] {
	return NoError(func(c *scanConfig) {
		c.label = label
		c.applied = append(c.applied, "label")
	})
}

func TestNew(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &scanConfig{}
		require.NoError(t, withOffset(42).apply(cfg))
		require.Equal(t, 42, cfg.offset)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &scanConfig{}
		err := withOffset(-1).apply(cfg)
		require.ErrorIs(t, err, errNegativeOffset)
		require.Equal(t, 0, cfg.offset)
	})
}

func TestNoError(t *testing.T) {
	cfg := &scanConfig{}
	require.NoError(t, withLabel("top").apply(cfg))
	require.Equal(t, "top", cfg.label)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &scanConfig{}
		err := Apply(cfg, withLabel("a"), withOffset(3), withLabel("b"))
		require.NoError(t, err)
		require.Equal(t, "b", cfg.label)
		require.Equal(t, 3, cfg.offset)
		require.Equal(t, []string{"label", "offset", "label"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &scanConfig{}
		err := Apply(cfg, withLabel("a"), withOffset(-5), withLabel("b"))
		require.ErrorIs(t, err, errNegativeOffset)
		require.Equal(t, "a", cfg.label)
		require.Equal(t, []string{"label"}, cfg.applied)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &scanConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.applied)
	})

	t.Run("nil option skipped", func(t *testing.T) {
		cfg := &scanConfig{}
		require.NoError(t, Apply(cfg, nil, withLabel("x")))
		require.Equal(t, "x", cfg.label)
	})
}
