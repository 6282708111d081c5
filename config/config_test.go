package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, StorageLocal, cfg.StorageBackend)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_USER", "finstagram")
	t.Setenv("STORAGE_BACKEND", StorageS3)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, StorageS3, cfg.StorageBackend)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	err := Validate(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestValidateRequiresPostgresUser(t *testing.T) {
	err := Validate(&Config{DBDriver: DriverPostgres, StorageBackend: StorageLocal, UploadDir: "uploads"})
	assert.Error(t, err)
}

func TestValidateRejectsUnknownStorage(t *testing.T) {
	err := Validate(&Config{
		DBDriver:       DriverSQLite,
		SQLitePath:     "test.db",
		StorageBackend: "ftp",
	})
	assert.Error(t, err)
}
