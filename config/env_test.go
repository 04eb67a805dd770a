package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseUnitInt(t *testing.T) {
	t.Run("applying suffix multipliers", func(t *testing.T) {
		cases := map[string]int{
			"0":     0,
			"7":     7,
			"100":   100,
			"007":   7,
			"2K":    2048,
			"64K":   65536,
			"1M":    1048576,
			"3M":    3 * 1024 * 1024,
			"0K":    0,
			"12345": 12345,
		}
		for in, want := range cases {
			got, err := ParseUnitInt(in)
			require.NoError(t, err, "input %q", in)
			require.Equal(t, want, got, "input %q", in)
		}
	})

	t.Run("rejecting malformed values", func(t *testing.T) {
		for _, in := range []string{"", "abc", "1.5K", "-5", "+5", "5Kb", "5k", "K", "5G", " 5", "5 ", "5KM", "0x10"} {
			_, err := ParseUnitInt(in)
			require.Error(t, err, "input %q should be rejected", in)
		}
	})

	t.Run("rejecting values that overflow", func(t *testing.T) {
		_, err := ParseUnitInt("99999999999999999999")
		require.Error(t, err)

		_, err = ParseUnitInt("9223372036854775807M")
		require.Error(t, err)
	})
}

func TestFlag(t *testing.T) {
	require.True(t, Flag(1), "Exactly 1 should be true")
	require.False(t, Flag(0))
	require.False(t, Flag(2), "Nonzero values other than 1 should be false")
	require.False(t, Flag(1024))
	require.False(t, Flag(-1))
}

func TestResolverValue(t *testing.T) {
	t.Run("falling back to defaults", func(t *testing.T) {
		r := NewResolver(nil)

		want := map[string]int{
			BatchEnvVar:  65536,
			EpochsEnvVar: 100,
			ScoreEnvVar:  1,
			MoonEnvVar:   1,
			TrickEnvVar:  1,
		}
		for name, val := range want {
			got, err := r.Value(name)
			require.NoError(t, err)
			require.Equal(t, val, got, "Default for %s", name)
		}
	})

	t.Run("overriding from environment", func(t *testing.T) {
		r := NewResolver(map[string]string{
			BatchEnvVar:  "2K",
			EpochsEnvVar: "1M",
			MoonEnvVar:   "0",
		})

		got, err := r.Value(BatchEnvVar)
		require.NoError(t, err)
		require.Equal(t, 2048, got)

		got, err = r.Value(EpochsEnvVar)
		require.NoError(t, err)
		require.Equal(t, 1048576, got)

		got, err = r.Value(MoonEnvVar)
		require.NoError(t, err)
		require.Equal(t, 0, got)
		require.False(t, Flag(got))

		got, err = r.Value(ScoreEnvVar)
		require.NoError(t, err)
		require.True(t, Flag(got), "Unset flag should default to true")
	})

	t.Run("failing on malformed value", func(t *testing.T) {
		r := NewResolver(map[string]string{TrickEnvVar: "5x"})

		_, err := r.Value(TrickEnvVar)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidConfiguration))

		var cfgErr *InvalidConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.Equal(t, TrickEnvVar, cfgErr.Name)
		require.Equal(t, "5x", cfgErr.Value)
		require.Nil(t, cfgErr.Unwrap(), "Pattern mismatch has no underlying cause")
	})

	t.Run("treating empty value as malformed", func(t *testing.T) {
		r := NewResolver(map[string]string{BatchEnvVar: ""})

		_, err := r.Value(BatchEnvVar)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Set but empty is not the same as unset")
	})

	t.Run("failing on overflow", func(t *testing.T) {
		r := NewResolver(map[string]string{EpochsEnvVar: "99999999999999999999"})

		_, err := r.Value(EpochsEnvVar)
		require.ErrorIs(t, err, ErrInvalidConfiguration)

		var cfgErr *InvalidConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		require.Error(t, cfgErr.Unwrap(), "Overflow should carry its cause")
	})

	t.Run("failing on unknown variable", func(t *testing.T) {
		r := NewResolver(nil)

		_, err := r.Value("DECK_UNKNOWN")
		require.ErrorIs(t, err, ErrUnknownVariable)
		require.NotErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("logging overrides only", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		r := NewResolver(map[string]string{BatchEnvVar: "2K"})
		r.Logger = &logger

		_, err := r.Value(BatchEnvVar)
		require.NoError(t, err)
		require.Contains(t, buf.String(), "Set DECK_BATCH to 2048")

		buf.Reset()
		_, err = r.Value(EpochsEnvVar)
		require.NoError(t, err)
		require.Empty(t, buf.String(), "Defaults should not be logged")
	})
}

func TestEnvVal(t *testing.T) {
	t.Run("reading process environment", func(t *testing.T) {
		t.Setenv(BatchEnvVar, "4K")

		got, err := EnvVal(BatchEnvVar)
		require.NoError(t, err)
		require.Equal(t, 4096, got)
	})

	t.Run("failing on malformed process environment", func(t *testing.T) {
		t.Setenv(EpochsEnvVar, "1.5K")

		_, err := EnvVal(EpochsEnvVar)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"DECK_BATCH", "DECK_EPOCHS", "DECK_MOON", "DECK_SCORE", "DECK_TRICK"}, Names())

	for _, name := range Names() {
		_, ok := DefaultValue(name)
		require.True(t, ok, "Every name should have a default")
	}
	_, ok := DefaultValue("DECK_UNKNOWN")
	require.False(t, ok)
}
