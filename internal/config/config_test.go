package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOUNESNA_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.Timeout)
	assert.True(t, cfg.Organizations.AutoApprove)
	assert.Equal(t, "@every 30m", cfg.Reconcile.Schedule)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tounesna.yaml")
	err := os.WriteFile(path, []byte(`
database:
  driver: sqlite
  file_path: /tmp/tounesna.db
  timeout: 2s
organizations:
  auto_approve: false
redis:
  addr: localhost:6379
`), 0o600)
	require.NoError(t, err)

	t.Setenv("TOUNESNA_CONFIG", path)
	t.Setenv("DB_TIMEOUT", "750ms")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/tounesna.db", cfg.Database.FilePath)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.Timeout)
	assert.False(t, cfg.Organizations.AutoApprove)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TOUNESNA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load()
	assert.Error(t, err)
}
