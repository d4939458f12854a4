package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_CONNECTION_LIMIT", "OUTPUT_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, OutputTable, cfg.OutputFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_TYPE", "MySQL")
	t.Setenv("DB_CONNECTION_LIMIT", "12")
	t.Setenv("OUTPUT_FORMAT", "plain")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, 12, cfg.DBConnectionLimit)
	assert.Equal(t, OutputPlain, cfg.OutputFormat)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("DB_CONNECTION_LIMIT", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}

func TestApplyArgsAndValidate(t *testing.T) {
	cfg := &Config{DBType: "postgres", DBConnectionLimit: 1, OutputFormat: OutputTable}
	require.Error(t, cfg.Validate())

	cfg.ApplyArgs("marketdb", "6543", "alice")
	assert.Equal(t, "marketdb", cfg.DBDatabase)
	assert.Equal(t, "6543", cfg.DBPort)
	assert.Equal(t, "alice", cfg.DBUser)
	assert.NoError(t, cfg.Validate())

	cfg.OutputFormat = "html"
	assert.Error(t, cfg.Validate())
}

func TestValidateSqliteNeedsNoUser(t *testing.T) {
	cfg := &Config{DBType: "sqlite-go", DBDatabase: "market.db", DBConnectionLimit: 1, OutputFormat: OutputPlain}
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MARKETDB_TEST_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MARKETDB_TEST_KEY") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("MARKETDB_TEST_KEY"))

	assert.NoError(t, LoadEnvFile(""))
	assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
