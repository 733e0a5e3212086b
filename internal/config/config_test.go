package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 100, cfg.GenRetries)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DOMINOSUM_ADDR", ":9999")
	t.Setenv("DOMINOSUM_LOG_LEVEL", "debug")
	t.Setenv("DOMINOSUM_GEN_RETRIES", "5")
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5, cfg.GenRetries)
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		c := &Config{LogLevel: tc.in}
		require.Equal(t, tc.want, c.SlogLevel(), "level %q", tc.in)
	}
}
