package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_EnvOnly(t *testing.T) {
	t.Setenv("FINKEEP_LOG_LEVEL", "debug")
	t.Setenv("FINKEEP_KDF_ITERATIONS", "5000")
	t.Setenv("FINKEEP_STORAGE_DATA_DIR", "/tmp/finkeep-test")

	cfg, err := GetConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 5000, cfg.App.KDFIterations)
	assert.Equal(t, "/tmp/finkeep-test", cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join("/tmp/finkeep-test", "finkeep.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, filepath.Join("/tmp/finkeep-test", "legacy.json"), cfg.Storage.LegacyPath)
	assert.Equal(t, filepath.Join("/tmp/finkeep-test", "user.json"), cfg.Storage.CredentialsPath)
}

func TestGetConfig_Defaults(t *testing.T) {
	t.Setenv("FINKEEP_STORAGE_DATA_DIR", t.TempDir())

	cfg, err := GetConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, defaultKDFIterations, cfg.App.KDFIterations)
}

func TestGetConfig_EnvWinsOverJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	payload := []byte(`{
		"app": {"log_level": "error", "kdf_iterations": 1234},
		"storage": {"data_dir": "` + dir + `"}
	}`)
	require.NoError(t, os.WriteFile(jsonPath, payload, 0o600))

	t.Setenv("FINKEEP_LOG_LEVEL", "warn")

	cfg, err := GetConfig(jsonPath)
	require.NoError(t, err)

	// env value wins, json fills the rest
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 1234, cfg.App.KDFIterations)
	assert.Equal(t, dir, cfg.Storage.DataDir)
}

func TestGetConfig_MissingJSONFile(t *testing.T) {
	_, err := GetConfig("/does/not/exist.json")
	require.Error(t, err)
}

func TestGetConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("FINKEEP_LOG_LEVEL", "loud")
	t.Setenv("FINKEEP_STORAGE_DATA_DIR", t.TempDir())

	_, err := GetConfig("")
	require.ErrorIs(t, err, ErrBadLogLevel)
}
