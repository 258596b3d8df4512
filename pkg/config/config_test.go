package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	dataDir := filepath.Join(tmpDir, "data")

	cfg, err := BootstrapConfig(configPath, dataDir)
	require.NoError(t, err)
	assert.True(t, ConfigExists(configPath))
	assert.Len(t, cfg.Security.APIKey, 64) // 32 bytes hex-encoded

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, dataDir, loaded.DataDir)
	assert.Equal(t, cfg.Security.APIKey, loaded.Security.APIKey)
	assert.Equal(t, "info", loaded.Logging.Level)

	// Key material must not be world-readable.
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		Bind:    "0.0.0.0",
		Port:    9000,
		DataDir: "/var/lib/hrseed",
		Codec: Codec{
			WordlistFile: "/etc/hrseed/words.txt",
			ChunkSize:    12,
		},
		Security: Security{APIKey: "fixed-key"},
		Logging:  Logging{Level: "debug"},
	}

	require.NoError(t, SaveConfig(cfg, configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingConfig(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGenerateSecureKey(t *testing.T) {
	a, err := GenerateSecureKey(16)
	require.NoError(t, err)
	b, err := GenerateSecureKey(16)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
