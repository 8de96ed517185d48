package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	os.Clearenv()
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, int64(0), cfg.Seed)
	require.Equal(t, 0, cfg.Threads)
	require.Equal(t, uint64(0), cfg.Games)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvAllSet(t *testing.T) {
	os.Clearenv()
	os.Setenv(EnvSeed, "12345")
	os.Setenv(EnvThreads, "8")
	os.Setenv(EnvGames, "200000")
	os.Setenv(EnvLogLevel, "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, int64(12345), cfg.Seed)
	require.Equal(t, 8, cfg.Threads)
	require.Equal(t, uint64(200000), cfg.Games)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnvInvalidValues(t *testing.T) {
	cases := map[string]string{
		EnvSeed:    "not-a-number",
		EnvThreads: "0",
		EnvGames:   "-5",
	}
	for key, bad := range cases {
		os.Clearenv()
		os.Setenv(key, bad)
		_, err := FromEnv()
		require.Error(t, err, key)
	}
}
