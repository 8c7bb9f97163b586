package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")

	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, StoreBackendSQLite, cfg.Store.Backend)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("DATABASE_PATH", "/tmp/verses.db")
	t.Setenv("DATABASE_LOG_LEVEL", "silent")
	t.Setenv("STORE_BACKEND", "memory")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "/tmp/verses.db", cfg.Database.Path)
	assert.Equal(t, "silent", cfg.Database.LogLevel)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
}

func TestStoreBackend_IsValid(t *testing.T) {
	assert.True(t, StoreBackendSQLite.IsValid())
	assert.True(t, StoreBackendMemory.IsValid())
	assert.False(t, StoreBackend("postgres").IsValid())
	assert.False(t, StoreBackend("").IsValid())
}
