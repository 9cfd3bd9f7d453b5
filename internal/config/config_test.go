package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "fs", cfg.Storage)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MINDGYM_ADDR", ":9999")
	t.Setenv("MINDGYM_LOG_LEVEL", "debug")

	cfg, err := Load([]string{"-addr", ":7777"})
	require.NoError(t, err)
	require.Equal(t, ":7777", cfg.Addr, "flag must win over env")
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestBadFlag(t *testing.T) {
	_, err := Load([]string{"-no-such-flag"})
	require.Error(t, err)
}
